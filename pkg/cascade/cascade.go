package cascade

import (
	"errors"
	"fmt"
	"strings"

	"github.com/leapstack-labs/enigma/pkg/rotor"
)

// RotorCount is the number of rotors in a Machine.
const RotorCount = 3

// ErrRotorCount is returned when a machine is built from the wrong number of offsets.
var ErrRotorCount = errors.New("wrong number of rotor offsets")

// Machine owns three rotors and steps them per processed byte.
type Machine struct {
	rotors [RotorCount]*rotor.Rotor
}

// New creates a machine from the three rotor offsets.
func New(offset1, offset2, offset3 int) *Machine {
	return &Machine{
		rotors: [RotorCount]*rotor.Rotor{
			rotor.New(offset1),
			rotor.New(offset2),
			rotor.New(offset3),
		},
	}
}

// FromOffsets creates a machine from a slice that must hold exactly three offsets.
func FromOffsets(offsets []int) (*Machine, error) {
	if len(offsets) != RotorCount {
		return nil, fmt.Errorf("%w: expected %d, got %d", ErrRotorCount, RotorCount, len(offsets))
	}
	return New(offsets[0], offsets[1], offsets[2]), nil
}

// Offsets returns the offsets of rotor 1, 2 and 3.
func (m *Machine) Offsets() [RotorCount]int {
	var out [RotorCount]int
	for i, r := range m.rotors {
		out[i] = r.Offset()
	}
	return out
}

// Process encrypts message and leaves every rotor at position 0.
func (m *Machine) Process(message string) string {
	defer m.reset()

	var sb strings.Builder
	sb.Grow(len(message))
	for i := 0; i < len(message); i++ {
		c := message[i]
		for _, r := range m.rotors {
			c = r.Encrypt(c)
		}
		sb.WriteByte(c)
		m.advance()
	}
	return sb.String()
}

// Decrypt reverses Process for a machine with the same offsets.
func (m *Machine) Decrypt(ciphertext string) string {
	defer m.reset()

	var sb strings.Builder
	sb.Grow(len(ciphertext))
	for i := 0; i < len(ciphertext); i++ {
		c := ciphertext[i]
		for j := RotorCount - 1; j >= 0; j-- {
			c = m.rotors[j].Decrypt(c)
		}
		sb.WriteByte(c)
		m.advance()
	}
	return sb.String()
}

// advance steps rotor 1 and carries into rotors 2 and 3.
// It reports which rotors moved.
func (m *Machine) advance() [RotorCount]bool {
	var stepped [RotorCount]bool
	r1, r2, r3 := m.rotors[0], m.rotors[1], m.rotors[2]

	r1.Rotate()
	stepped[0] = true

	if r1.Position() == 0 {
		r2.Rotate()
		stepped[1] = true
	}
	if r2.Position() == 0 && r1.Position() == 0 {
		r3.Rotate()
		stepped[2] = true
	}
	return stepped
}

func (m *Machine) positions() [RotorCount]int {
	var out [RotorCount]int
	for i, r := range m.rotors {
		out[i] = r.Position()
	}
	return out
}

func (m *Machine) reset() {
	for _, r := range m.rotors {
		r.Reset()
	}
}
