package commands

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/leapstack-labs/enigma/internal/cli/output"
	"github.com/leapstack-labs/enigma/pkg/cascade"
	"github.com/spf13/cobra"
)

// errNoInput is returned when a one-shot command has nothing to read.
var errNoInput = errors.New("no input: pass text as arguments or pipe it on stdin")

// TransformOptions holds options for the encrypt and decrypt commands.
type TransformOptions struct {
	Format string
}

// transformResult is the JSON form of one transformed line.
type transformResult struct {
	Rotors [cascade.RotorCount]int `json:"rotors"`
	Input  string                  `json:"input"`
	Output string                  `json:"output"`
}

// NewEncryptCommand creates the encrypt command.
func NewEncryptCommand() *cobra.Command {
	opts := &TransformOptions{}

	cmd := &cobra.Command{
		Use:   "encrypt [text...]",
		Short: "Encrypt text with the configured rotors",
		Long: `Encrypt text without starting a session.

Arguments are joined with spaces and encrypted as one message. With no
arguments every line read from stdin is encrypted as its own message.`,
		Example: `  enigma encrypt --rotors 1,2,3 "Hello, World"
  cat notes.txt | enigma encrypt --rotors 4,8,15
  enigma encrypt --rotors 1,2,3 --format json attack at dawn`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(cmd, args, opts, (*cascade.Machine).Process)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "text", "Output format: text, json")
	return cmd
}

// NewDecryptCommand creates the decrypt command.
func NewDecryptCommand() *cobra.Command {
	opts := &TransformOptions{}

	cmd := &cobra.Command{
		Use:   "decrypt [text...]",
		Short: "Decrypt text produced with the same rotor offsets",
		Long: `Decrypt text encrypted by 'enigma encrypt' or a session.

Running the cipher twice does not undo it, so decryption shifts every
letter back by the same amounts instead. Offsets must match the ones used
for encryption.`,
		Example: `  enigma decrypt --rotors 1,2,3 "G"
  enigma encrypt --rotors 1,2,3 hello | enigma decrypt --rotors 1,2,3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(cmd, args, opts, (*cascade.Machine).Decrypt)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "text", "Output format: text, json")
	return cmd
}

func runTransform(cmd *cobra.Command, args []string, opts *TransformOptions, transform func(*cascade.Machine, string) string) error {
	cmdCtx := NewCommandContext(cmd)

	format := strings.ToLower(opts.Format)
	if format != "text" && format != "json" {
		return fmt.Errorf("unknown format %q (available: text, json)", opts.Format)
	}

	machine, err := cmdCtx.Machine()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	emit := func(line string) error {
		result := transform(machine, line)
		if format == "json" {
			return json.NewEncoder(w).Encode(transformResult{
				Rotors: machine.Offsets(),
				Input:  line,
				Output: result,
			})
		}
		_, err := fmt.Fprintln(w, result)
		return err
	}

	if len(args) > 0 {
		return emit(strings.Join(args, " "))
	}

	in := cmd.InOrStdin()
	if output.IsTerminal(in) {
		return errNoInput
	}

	var lines int
	err = forEachLine(in, func(line string) error {
		lines++
		return emit(line)
	})
	cmdCtx.Logger.Debug("transformed stdin", "command", cmd.Name(), "lines", lines)
	return err
}

// forEachLine calls fn for every line of r, without trailing newline or CR.
func forEachLine(r io.Reader, fn func(string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineSize)
	for sc.Scan() {
		if err := fn(strings.TrimSuffix(sc.Text(), "\r")); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}
	return nil
}
