package commands

import (
	"errors"
	"log/slog"

	"github.com/leapstack-labs/enigma/internal/cli/config"
	"github.com/leapstack-labs/enigma/internal/cli/output"
	"github.com/leapstack-labs/enigma/pkg/cascade"
	"github.com/spf13/cobra"
)

// ErrNoRotors is returned by commands that need offsets up front.
var ErrNoRotors = errors.New("rotor offsets required: pass --rotors a,b,c or set ENIGMA_ROTORS")

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the loaded configuration.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// Machine builds a cascade from the configured rotor offsets.
func (c *CommandContext) Machine() (*cascade.Machine, error) {
	if !c.Cfg.HasRotors() {
		return nil, ErrNoRotors
	}
	return cascade.FromOffsets(c.Cfg.Rotors)
}

// getConfig returns the current configuration, or defaults when nothing
// was loaded (commands run outside the root command in tests).
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return &config.Config{
		LogLevel:     config.DefaultLogLevel,
		OutputFormat: config.DefaultOutput,
	}
}
