package config

import "fmt"

// Validate reports configuration values that cannot be worked around.
func (c *Config) Validate() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	if c.Paths.LogDir == "" {
		return fmt.Errorf("paths.log_dir: must not be empty")
	}
	return nil
}
