package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// TraceOptions holds options for the trace command.
type TraceOptions struct {
	Format string
}

// NewTraceCommand creates the trace command.
func NewTraceCommand() *cobra.Command {
	opts := &TraceOptions{}

	cmd := &cobra.Command{
		Use:   "trace <text>",
		Short: "Show rotor positions and carries for every character",
		Long: `Encrypt text and show how the rotors step.

Each row lists the input and output character, the positions of the three
rotors used for it, and which rotors advanced afterwards. Every character
steps rotor 1, including spaces and punctuation.`,
		Example: `  enigma trace --rotors 1,2,3 "Hi, Bob!"
  enigma trace --rotors 0,0,0 --format json abc
  enigma trace --rotors 5,5,5 --format yaml hello`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrace(cmd, strings.Join(args, " "), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "table", "Output format: table, json, csv, md, yaml")
	return cmd
}

func runTrace(cmd *cobra.Command, message string, opts *TraceOptions) error {
	cmdCtx := NewCommandContext(cmd)

	if !isTraceFormat(opts.Format) {
		return fmt.Errorf("unknown format %q (available: %s)", opts.Format, strings.Join(traceFormats, ", "))
	}

	machine, err := cmdCtx.Machine()
	if err != nil {
		return err
	}

	steps := machine.Trace(message)
	cmdCtx.Logger.Debug("traced message", "steps", len(steps))
	return renderTrace(cmd.OutOrStdout(), steps, opts.Format)
}
