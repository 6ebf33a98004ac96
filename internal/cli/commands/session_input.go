package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/leapstack-labs/enigma/internal/cli/output"
	"github.com/spf13/cobra"
)

// LineReader supplies session input one line at a time.
// *readline.Instance satisfies it.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

// promptScanner reads lines from a non-terminal input and echoes prompts
// to w, so piped sessions produce the same transcript as interactive ones.
// Lines have no length limit.
type promptScanner struct {
	br     *bufio.Reader
	w      io.Writer
	prompt string
}

// NewPromptScanner returns a LineReader over r that writes prompts to w.
func NewPromptScanner(r io.Reader, w io.Writer) LineReader {
	return &promptScanner{br: bufio.NewReader(r), w: w}
}

func (p *promptScanner) SetPrompt(prompt string) {
	p.prompt = prompt
}

func (p *promptScanner) Readline() (string, error) {
	if p.prompt != "" {
		_, _ = io.WriteString(p.w, p.prompt)
	}
	line, err := p.br.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// newLineReader picks readline for terminals and a prompt scanner otherwise.
// The returned cleanup must be called when the session ends.
func newLineReader(cmd *cobra.Command, r *output.Renderer) (LineReader, func(), error) {
	in := cmd.InOrStdin()
	if !output.IsTerminal(in) {
		promptOut := r.Writer()
		if r.EffectiveMode() == output.ModeJSON {
			promptOut = io.Discard
		}
		return NewPromptScanner(in, promptOut), func() {}, nil
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
		Stdout:          cmd.OutOrStdout(),
		Stderr:          r.ErrWriter(),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize session input: %w", err)
	}
	return rl, func() { _ = rl.Close() }, nil
}
