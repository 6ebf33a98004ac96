// Package rotor implements a single substitution wheel: a fixed offset plus
// a position counter that wraps at the end of the alphabet.
package rotor

// AlphabetSize is the number of letters a rotor can map between.
const AlphabetSize = 26

// Rotor shifts letters by its offset plus its current position.
// The zero value is a rotor with offset 0 at position 0.
type Rotor struct {
	offset   int
	shift    int // offset reduced to [0,25]
	position int
}

// New creates a rotor with the given offset at position 0.
// Offsets outside [0,25] are accepted and folded by the modulo.
func New(offset int) *Rotor {
	return &Rotor{offset: offset, shift: mod(offset, AlphabetSize)}
}

// Encrypt shifts c forward by offset+position. Bytes that are not ASCII
// letters are returned unchanged. Case is preserved.
func (r *Rotor) Encrypt(c byte) byte {
	return r.apply(c, r.shift+r.position)
}

// Decrypt undoes Encrypt for the same offset and position.
func (r *Rotor) Decrypt(c byte) byte {
	return r.apply(c, -(r.shift + r.position))
}

// Rotate advances the position by one, wrapping 25 -> 0.
func (r *Rotor) Rotate() {
	r.position = (r.position + 1) % AlphabetSize
}

// Reset returns the rotor to position 0.
func (r *Rotor) Reset() {
	r.position = 0
}

// Position returns the current position in [0,25].
func (r *Rotor) Position() int {
	return r.position
}

// Offset returns the offset the rotor was built with.
func (r *Rotor) Offset() int {
	return r.offset
}

// apply moves a letter by n places; |n| stays below 2*AlphabetSize.
func (r *Rotor) apply(c byte, n int) byte {
	var base byte
	switch {
	case c >= 'A' && c <= 'Z':
		base = 'A'
	case c >= 'a' && c <= 'z':
		base = 'a'
	default:
		return c
	}
	idx := mod(int(c-base)+n, AlphabetSize)
	return base + byte(idx)
}

// mod is a modulo whose result always has the sign of n.
func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
