package cascade

// Step records what happened to one byte of a traced message.
type Step struct {
	Index     int
	Input     byte
	Output    byte
	Positions [RotorCount]int
	Stepped   [RotorCount]bool
}

// Letter reports whether the input byte was a letter and so got shifted.
func (s Step) Letter() bool {
	c := s.Input
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// Trace encrypts message like Process and returns one Step per byte.
// Positions are the rotor positions used for that byte; Stepped tells
// which rotors moved afterwards.
func (m *Machine) Trace(message string) []Step {
	defer m.reset()

	steps := make([]Step, 0, len(message))
	for i := 0; i < len(message); i++ {
		in := message[i]
		pos := m.positions()

		c := in
		for _, r := range m.rotors {
			c = r.Encrypt(c)
		}

		steps = append(steps, Step{
			Index:     i,
			Input:     in,
			Output:    c,
			Positions: pos,
			Stepped:   m.advance(),
		})
	}
	return steps
}
