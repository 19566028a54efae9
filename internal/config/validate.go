package config

import (
	"fmt"
	"strings"
)

const minLineBytes = 4096

// Validate checks the loaded configuration and normalizes enum values.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if err := c.Convert.validate(); err != nil {
		return fmt.Errorf("convert: %w", err)
	}
	return nil
}

func (l *LogConfig) validate() error {
	l.Format = strings.ToLower(strings.TrimSpace(l.Format))
	switch l.Format {
	case "json", "text":
	default:
		return fmt.Errorf("format must be json or text (got %q)", l.Format)
	}
	return nil
}

func (c *ConvertConfig) validate() error {
	c.OnError = strings.ToLower(strings.TrimSpace(c.OnError))
	switch c.OnError {
	case OnErrorAbort, OnErrorSkip:
	default:
		return fmt.Errorf("on_error must be %q or %q (got %q)", OnErrorAbort, OnErrorSkip, c.OnError)
	}
	if c.MaxLineBytes < minLineBytes {
		return fmt.Errorf("max_line_bytes must be >= %d (got %d)", minLineBytes, c.MaxLineBytes)
	}
	return nil
}
