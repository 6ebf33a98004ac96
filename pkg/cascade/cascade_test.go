package cascade

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMachine_Process(t *testing.T) {
	tests := []struct {
		name     string
		offsets  [3]int
		input    string
		expected string
	}{
		{name: "single letter", offsets: [3]int{1, 2, 3}, input: "A", expected: "G"},
		{name: "empty message", offsets: [3]int{1, 2, 3}, input: "", expected: ""},
		{name: "zero offsets still step", offsets: [3]int{0, 0, 0}, input: "Hi, Bob!", expected: "Hj, Fth!"},
		{name: "all same letter", offsets: [3]int{0, 0, 0}, input: "aaaa", expected: "abcd"},
		{name: "punctuation only", offsets: [3]int{5, 9, 13}, input: "1, 2; 3!", expected: "1, 2; 3!"},
		{name: "non-ascii bytes pass through", offsets: [3]int{1, 1, 1}, input: "\xc3\xa9a", expected: "\xc3\xa9f"},
		{name: "negative offsets", offsets: [3]int{-1, -1, -1}, input: "D", expected: "A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(tt.offsets[0], tt.offsets[1], tt.offsets[2])
			assert.Equal(t, tt.expected, m.Process(tt.input))
		})
	}
}

func TestMachine_ProcessIsRepeatable(t *testing.T) {
	m := New(7, 11, 19)
	msg := "The quick brown fox jumps over the lazy dog."

	first := m.Process(msg)
	second := m.Process(msg)
	assert.Equal(t, first, second)
	assert.Equal(t, [3]int{0, 0, 0}, m.positions(), "rotors must be reset after a message")
}

func TestMachine_EmptyMessageDoesNotStep(t *testing.T) {
	m := New(1, 2, 3)
	steps := m.Trace("")
	assert.Empty(t, steps)
	assert.Equal(t, [3]int{0, 0, 0}, m.positions())
}

func TestMachine_NotAnInvolution(t *testing.T) {
	m := New(1, 2, 3)

	once := m.Process("A")
	require.Equal(t, "G", once)

	twice := m.Process(once)
	assert.Equal(t, "M", twice)
	assert.NotEqual(t, "A", twice, "applying the cascade twice must not give the plaintext back")
}

func TestMachine_DecryptRoundTrip(t *testing.T) {
	offsets := [][3]int{
		{0, 0, 0},
		{1, 2, 3},
		{25, 25, 25},
		{-3, 40, 7},
		{math.MaxInt, math.MaxInt, math.MaxInt},
		{math.MinInt, math.MinInt, math.MinInt},
		{math.MaxInt, math.MinInt, 0},
	}
	msg := "Attack at dawn, hold the LINE! 0123 " + strings.Repeat("xyz", 300)

	for _, o := range offsets {
		m := New(o[0], o[1], o[2])
		assert.Equal(t, msg, m.Decrypt(m.Process(msg)), "offsets %v", o)
	}
}

func TestMachine_ExtremeOffsetsFold(t *testing.T) {
	// MaxInt is 7 mod 26
	assert.Equal(t, "hijk", New(math.MaxInt, 0, 0).Process("aaaa"))
	assert.Equal(t, New(7, 7, 7).Process("Attack at dawn"), New(math.MaxInt, math.MaxInt, math.MaxInt).Process("Attack at dawn"))
}

func TestMachine_Carry(t *testing.T) {
	m := New(0, 0, 0)

	var r2Steps, r3Steps int
	for i := 1; i <= 26*26*2; i++ {
		stepped := m.advance()
		assert.True(t, stepped[0])
		if stepped[1] {
			r2Steps++
		}
		if stepped[2] {
			r3Steps++
		}

		assert.Equal(t, i/26, r2Steps, "rotor 2 after %d steps", i)
		assert.Equal(t, i/676, r3Steps, "rotor 3 after %d steps", i)

		for _, p := range m.positions() {
			assert.GreaterOrEqual(t, p, 0)
			assert.Less(t, p, 26)
		}
	}
	assert.Equal(t, [3]int{0, 0, 2}, m.positions())
}

func TestMachine_Trace(t *testing.T) {
	m := New(1, 2, 3)
	msg := strings.Repeat("a", 677)

	steps := m.Trace(msg)
	require.Len(t, steps, len(msg))

	assert.Equal(t, [3]int{0, 0, 0}, steps[0].Positions)
	assert.Equal(t, [3]int{25, 0, 0}, steps[25].Positions)
	assert.Equal(t, [3]bool{true, true, false}, steps[25].Stepped)
	assert.Equal(t, [3]int{0, 1, 0}, steps[26].Positions)
	assert.Equal(t, [3]int{25, 25, 0}, steps[675].Positions)
	assert.Equal(t, [3]bool{true, true, true}, steps[675].Stepped)
	assert.Equal(t, [3]int{0, 0, 1}, steps[676].Positions)

	var out strings.Builder
	for _, s := range steps {
		out.WriteByte(s.Output)
	}
	assert.Equal(t, m.Process(msg), out.String(), "trace output must match Process")
}

func TestStep_Letter(t *testing.T) {
	steps := New(0, 0, 0).Trace("a1 Z")
	require.Len(t, steps, 4)
	assert.True(t, steps[0].Letter())
	assert.False(t, steps[1].Letter())
	assert.False(t, steps[2].Letter())
	assert.True(t, steps[3].Letter())
}

func TestFromOffsets(t *testing.T) {
	m, err := FromOffsets([]int{4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, [3]int{4, 5, 6}, m.Offsets())

	for _, bad := range [][]int{nil, {1}, {1, 2}, {1, 2, 3, 4}} {
		_, err := FromOffsets(bad)
		require.ErrorIs(t, err, ErrRotorCount)
	}
}
