package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/google/uuid"
	"github.com/leapstack-labs/enigma/internal/cli/output"
	"github.com/leapstack-labs/enigma/pkg/cascade"
	"github.com/spf13/cobra"
)

// Session prompts and messages.
const (
	bannerTitle   = "Simple Enigma Encryption Tool"
	offsetPrompt  = "Enter rotor %d offset (0-25): "
	messagePrompt = "Enter message to encrypt (or 'quit' to exit): "
	readyMessage  = "Enigma machine ready!"
	decryptHint   = "Note: run 'enigma decrypt --rotors a,b,c' with the same offsets to recover a message."
	farewell      = "Goodbye!"
)

// ErrInvalidInput marks operator input that could not be parsed.
var ErrInvalidInput = errors.New("invalid input")

// SessionOptions configures RunSession.
type SessionOptions struct {
	// Offsets skips the offset prompts when it holds three values.
	Offsets  []int
	NoBanner bool
}

// sessionResult is the JSON form of one processed line.
type sessionResult struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

// NewSessionCommand creates the session command.
func NewSessionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Start an interactive encryption session",
		Long: `Start an interactive encryption session.

Asks for the three rotor offsets (unless --rotors or ENIGMA_ROTORS is set),
then encrypts every line you type. Type 'quit' or 'exit', or send EOF, to
leave. This is also what 'enigma' does when run without a subcommand.`,
		Example: `  # Interactive
  enigma session

  # Preset offsets, piped input
  printf 'Hello\nquit\n' | enigma session --rotors 1,2,3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return RunSessionCommand(cmd)
		},
	}
}

// RunSessionCommand runs a session on the command's input and output streams.
func RunSessionCommand(cmd *cobra.Command) error {
	cmdCtx := NewCommandContext(cmd)

	in, cleanup, err := newLineReader(cmd, cmdCtx.Renderer)
	if err != nil {
		return err
	}
	defer cleanup()

	return RunSession(cmd.Context(), in, cmdCtx.Renderer, cmdCtx.Logger, SessionOptions{
		Offsets:  cmdCtx.Cfg.Rotors,
		NoBanner: cmdCtx.Cfg.NoBanner,
	})
}

// RunSession drives one encryption session until quit, exit, EOF or
// context cancellation. Quit and EOF return nil. Cancellation is checked
// between lines, so a read already blocked in Readline finishes first.
func RunSession(ctx context.Context, in LineReader, r *output.Renderer, logger *slog.Logger, opts SessionOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger = logger.With("session", uuid.NewString())

	if !opts.NoBanner {
		r.Header(bannerTitle)
	}

	offsets := opts.Offsets
	if len(offsets) != cascade.RotorCount {
		var err error
		offsets, err = promptOffsets(ctx, in, r, logger)
		if errors.Is(err, io.EOF) {
			logger.Info("session ended before setup", "reason", "eof")
			r.Success(farewell)
			return nil
		}
		if err != nil {
			return err
		}
	}

	machine, err := cascade.FromOffsets(offsets)
	if err != nil {
		return err
	}
	logger.Info("session started", "offsets", offsets)

	blankLine(r)
	r.Success(readyMessage)
	r.Muted(decryptHint)
	blankLine(r)

	var messages int
	in.SetPrompt(messagePrompt)
	for {
		if err := ctx.Err(); err != nil {
			logger.Info("session cancelled", "messages", messages)
			return err
		}

		line, err := in.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			logger.Info("session ended", "reason", "eof", "messages", messages)
			r.Success(farewell)
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read message: %w", err)
		}

		if isQuit(line) {
			logger.Info("session ended", "reason", "quit", "messages", messages)
			r.Success(farewell)
			return nil
		}

		encrypted := machine.Process(line)
		messages++
		logger.Debug("message processed", "bytes", len(line))

		if err := writeResult(r, line, encrypted); err != nil {
			return err
		}
	}
}

// promptOffsets asks for the three offsets, re-prompting on bad input.
func promptOffsets(ctx context.Context, in LineReader, r *output.Renderer, logger *slog.Logger) ([]int, error) {
	offsets := make([]int, 0, cascade.RotorCount)
	for i := 1; i <= cascade.RotorCount; {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		in.SetPrompt(fmt.Sprintf(offsetPrompt, i))
		line, err := in.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if err != nil {
			return nil, err
		}

		v, err := parseOffset(line)
		if err != nil {
			logger.Debug("rejected rotor offset", "rotor", i, "error", err)
			r.Error(err)
			continue
		}
		offsets = append(offsets, v)
		i++
	}
	return offsets, nil
}

// parseOffset accepts any integer; range folding is left to the rotors.
func parseOffset(s string) (int, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer offset", ErrInvalidInput, s)
	}
	return v, nil
}

func isQuit(line string) bool {
	switch strings.TrimSpace(line) {
	case "quit", "exit":
		return true
	}
	return false
}

func writeResult(r *output.Renderer, input, encrypted string) error {
	if r.EffectiveMode() == output.ModeJSON {
		return json.NewEncoder(r.Writer()).Encode(sessionResult{Input: input, Output: encrypted})
	}
	// ciphertext is only styled on a terminal so piped output stays byte-exact
	if r.IsTTY() {
		encrypted = r.Styles().Cipher.Render(encrypted)
	}
	r.Printf("Encrypted: %s\n", encrypted)
	r.Println("")
	return nil
}

func blankLine(r *output.Renderer) {
	if r.EffectiveMode() != output.ModeJSON {
		r.Println("")
	}
}
