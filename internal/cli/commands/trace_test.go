package commands

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/leapstack-labs/enigma/pkg/cascade"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestTraceCommand_JSON(t *testing.T) {
	loadTestConfig(t, "--rotors", "0,0,0")

	out, _, err := execute(t, NewTraceCommand(), "", "--format", "json", "Hi,", "Bob!")
	require.NoError(t, err)

	var rows []traceRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 8)

	var cipher strings.Builder
	for i, r := range rows {
		assert.Equal(t, i, r.Index)
		assert.Equal(t, []int{i, 0, 0}, r.Positions, "every character steps rotor 1")
		assert.Empty(t, r.Carry)
		cipher.WriteString(r.Output)
	}
	assert.Equal(t, `Hj," "Fth!`, cipher.String())
	assert.Equal(t, `" "`, rows[3].Input, "space is quoted for display")
}

func TestTraceCommand_Carry(t *testing.T) {
	loadTestConfig(t, "--rotors", "1,2,3")

	out, _, err := execute(t, NewTraceCommand(), "", "--format", "json", strings.Repeat("z", 27))
	require.NoError(t, err)

	var rows []traceRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 27)

	assert.Equal(t, []int{2}, rows[25].Carry)
	assert.Equal(t, []int{0, 1, 0}, rows[26].Positions)
}

func TestTraceCommand_Formats(t *testing.T) {
	tests := []struct {
		format   string
		contains []string
	}{
		{format: "table", contains: []string{"(2 characters)", "│"}},
		{format: "csv", contains: []string{"#,in,out,r1,r2,r3,carry", "0,a,b,0,0,0,"}},
		{format: "md", contains: []string{"| # |", "| 1 | b | d |"}},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			loadTestConfig(t, "--rotors", "1,0,0")

			out, _, err := execute(t, NewTraceCommand(), "", "--format", tt.format, "ab")
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, strings.ToLower(out), want)
			}
		})
	}
}

func TestTraceCommand_YAML(t *testing.T) {
	loadTestConfig(t, "--rotors", "1,0,0")

	out, _, err := execute(t, NewTraceCommand(), "", "--format", "yaml", "ab")
	require.NoError(t, err)
	assert.Contains(t, out, "positions: [1, 0, 0]")

	var rows []traceRow
	require.NoError(t, yaml.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "d", rows[1].Output)
}

func TestTraceCommand_Errors(t *testing.T) {
	t.Run("missing text", func(t *testing.T) {
		loadTestConfig(t, "--rotors", "1,2,3")
		_, _, err := execute(t, NewTraceCommand(), "")
		require.Error(t, err)
	})

	t.Run("unknown format", func(t *testing.T) {
		loadTestConfig(t, "--rotors", "1,2,3")
		_, _, err := execute(t, NewTraceCommand(), "", "--format", "html", "a")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown format")
	})

	t.Run("no rotors", func(t *testing.T) {
		loadTestConfig(t)
		_, _, err := execute(t, NewTraceCommand(), "", "a")
		require.ErrorIs(t, err, ErrNoRotors)
	})
}

func TestDisplayByte(t *testing.T) {
	assert.Equal(t, "a", displayByte('a'))
	assert.Equal(t, "!", displayByte('!'))
	assert.Equal(t, `" "`, displayByte(' '))
	assert.Equal(t, `"\t"`, displayByte('\t'))
	assert.Equal(t, `"\xc3"`, displayByte(0xc3))
}

func TestToTraceRows_Empty(t *testing.T) {
	rows := toTraceRows(cascade.New(1, 2, 3).Trace(""))
	assert.Empty(t, rows)
}
