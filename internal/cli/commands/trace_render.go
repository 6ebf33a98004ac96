package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/enigma/pkg/cascade"
	"gopkg.in/yaml.v3"
)

var traceFormats = []string{"table", "json", "csv", "md", "yaml"}

// traceRow is the serialized form of one trace step.
type traceRow struct {
	Index     int    `json:"index" yaml:"index"`
	Input     string `json:"input" yaml:"input"`
	Output    string `json:"output" yaml:"output"`
	Letter    bool   `json:"letter" yaml:"letter"`
	Positions []int  `json:"positions" yaml:"positions,flow"`
	Carry     []int  `json:"carry" yaml:"carry,flow"`
}

func isTraceFormat(format string) bool {
	switch strings.ToLower(format) {
	case "table", "json", "csv", "md", "markdown", "yaml", "yml":
		return true
	}
	return false
}

func renderTrace(w io.Writer, steps []cascade.Step, format string) error {
	rows := toTraceRows(steps)

	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			return err
		}
		return enc.Close()
	}

	if len(rows) == 0 {
		_, _ = fmt.Fprintln(w, "(0 characters)")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "In", "Out", "R1", "R2", "R3", "Carry"})
	for _, r := range rows {
		t.AppendRow(table.Row{
			r.Index,
			r.Input,
			r.Output,
			r.Positions[0],
			r.Positions[1],
			r.Positions[2],
			formatCarry(r.Carry),
		})
	}

	switch strings.ToLower(format) {
	case "csv":
		t.RenderCSV()
	case "md", "markdown":
		t.RenderMarkdown()
	default:
		t.Render()
		_, _ = fmt.Fprintf(w, "(%d characters)\n", len(rows))
	}
	return nil
}

func toTraceRows(steps []cascade.Step) []traceRow {
	rows := make([]traceRow, 0, len(steps))
	for _, s := range steps {
		row := traceRow{
			Index:     s.Index,
			Input:     displayByte(s.Input),
			Output:    displayByte(s.Output),
			Letter:    s.Letter(),
			Positions: s.Positions[:],
			Carry:     []int{},
		}
		// rotor 1 always steps; only carries into 2 and 3 are listed
		for i := 1; i < cascade.RotorCount; i++ {
			if s.Stepped[i] {
				row.Carry = append(row.Carry, i+1)
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func formatCarry(carry []int) string {
	parts := make([]string, len(carry))
	for i, c := range carry {
		parts[i] = "R" + strconv.Itoa(c)
	}
	return strings.Join(parts, " ")
}

// displayByte shows printable ASCII as-is and everything else quoted.
func displayByte(b byte) string {
	if b >= 0x21 && b < 0x7f {
		return string(b)
	}
	return strconv.QuoteToASCII(string([]byte{b}))
}
