package config

import (
	"errors"
	"fmt"

	"salient/internal/textsource"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateSummary(); err != nil {
		return err
	}
	if err := c.validateInputs(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return c.validateHistory()
}

func (c *Config) validateSummary() error {
	switch c.Summary.Mode {
	case ModeParagraphUnix, ModeParagraphWindows, ModeSentence:
	case ModePattern:
		if c.Summary.Pattern == "" {
			return fmt.Errorf("%w: summary.pattern must be set when summary.mode is %q", ErrInvalid, ModePattern)
		}
	default:
		return fmt.Errorf("%w: summary.mode %q is not one of %s, %s, %s, %s", ErrInvalid,
			c.Summary.Mode, ModeParagraphUnix, ModeParagraphWindows, ModeSentence, ModePattern)
	}
	if c.Summary.Take < 0 {
		return fmt.Errorf("%w: summary.take must be >= 0, got %d", ErrInvalid, c.Summary.Take)
	}
	return nil
}

func (c *Config) validateInputs() error {
	if _, err := textsource.ParseEncoding(c.Inputs.Encoding); err != nil {
		return fmt.Errorf("%w: inputs.encoding %q is not one of %v", ErrInvalid, c.Inputs.Encoding, textsource.Encodings())
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: logging.format must be console or json, got %q", ErrInvalid, c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: logging.level %q is not recognized", ErrInvalid, c.Logging.Level)
	}
	if c.Logging.MaxBackups < 0 || c.Logging.MaxAgeDays < 0 {
		return fmt.Errorf("%w: logging.max_backups and logging.max_age_days must be >= 0", ErrInvalid)
	}
	return nil
}

func (c *Config) validateHistory() error {
	if c.History.Keep < 0 {
		return fmt.Errorf("%w: history.keep must be >= 0, got %d", ErrInvalid, c.History.Keep)
	}
	return nil
}
