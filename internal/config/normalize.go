package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeSummary()
	if err := c.normalizeInputs(); err != nil {
		return err
	}
	if err := c.normalizeLogging(); err != nil {
		return err
	}
	return c.normalizeHistory()
}

func (c *Config) normalizeSummary() {
	mode := strings.ToLower(strings.TrimSpace(c.Summary.Mode))
	switch mode {
	case "":
		mode = defaultMode
	case "paragraph", "unix":
		mode = ModeParagraphUnix
	case "windows", "crlf":
		mode = ModeParagraphWindows
	case "sentences":
		mode = ModeSentence
	case "custom":
		mode = ModePattern
	}
	c.Summary.Mode = mode
}

func (c *Config) normalizeInputs() error {
	if value, ok := os.LookupEnv("SALIENT_EXCLUDE_PATH"); ok && strings.TrimSpace(value) != "" {
		c.Inputs.ExcludePath = value
	}
	var err error
	if c.Inputs.ExcludePath, err = ExpandPath(strings.TrimSpace(c.Inputs.ExcludePath)); err != nil {
		return fmt.Errorf("inputs.exclude_path: %w", err)
	}
	if c.Inputs.TextPath, err = ExpandPath(strings.TrimSpace(c.Inputs.TextPath)); err != nil {
		return fmt.Errorf("inputs.text_path: %w", err)
	}
	c.Inputs.Encoding = strings.ToLower(strings.TrimSpace(c.Inputs.Encoding))
	if c.Inputs.Encoding == "" {
		c.Inputs.Encoding = defaultEncoding
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	if value, ok := os.LookupEnv("SALIENT_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	var err error
	if c.Logging.File, err = expandPath(strings.TrimSpace(c.Logging.File)); err != nil {
		return fmt.Errorf("logging.file: %w", err)
	}
	if c.Logging.MaxSizeMB <= 0 {
		c.Logging.MaxSizeMB = defaultLogMaxSizeMB
	}
	return nil
}

func (c *Config) normalizeHistory() error {
	if strings.TrimSpace(c.History.Path) == "" {
		c.History.Path = defaultHistoryPath
	}
	var err error
	if c.History.Path, err = expandPath(strings.TrimSpace(c.History.Path)); err != nil {
		return fmt.Errorf("history.path: %w", err)
	}
	return nil
}
