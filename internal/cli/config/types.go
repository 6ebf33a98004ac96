// Package config provides configuration management for the enigma CLI.
//
// Values are layered, lowest to highest precedence: built-in defaults, an
// optional YAML file, ENIGMA_* environment variables and explicitly set
// command-line flags.
package config

// Config holds all CLI configuration options.
type Config struct {
	Rotors       []int  `koanf:"rotors"`
	Verbose      bool   `koanf:"verbose"`
	LogLevel     string `koanf:"log_level"`
	OutputFormat string `koanf:"output"`
	NoBanner     bool   `koanf:"no_banner"`
}

// Default configuration values.
const (
	DefaultLogLevel = "warn"
	DefaultOutput   = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	EnvPrefix       = "ENIGMA_"
)

// ConfigFileNames are looked up in the working directory when --config is not given.
var ConfigFileNames = []string{"enigma.yaml", "enigma.yml"}

// HasRotors reports whether all three rotor offsets were configured.
func (c *Config) HasRotors() bool {
	return len(c.Rotors) == 3
}
