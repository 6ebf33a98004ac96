package config

import (
	"fmt"
	"strings"
)

// validOutputs lists accepted values for the output option.
var validOutputs = []string{"auto", "text", "markdown", "md", "json"}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if n := len(c.Rotors); n != 0 && n != 3 {
		return fmt.Errorf("rotors: expected 3 offsets, got %d", n)
	}

	if c.OutputFormat != "" {
		ok := false
		for _, v := range validOutputs {
			if strings.EqualFold(c.OutputFormat, v) {
				ok = true
				break
			}
		}
		if !ok {
			return fmt.Errorf("output: unknown format %q (available: %s)", c.OutputFormat, strings.Join(validOutputs, ", "))
		}
	}

	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}
