package config

import (
	"fmt"
	"regexp"
	"strings"
)

var knownStrategies = map[string]struct{}{
	"splitstr": {}, "ss": {},
	"unicode-segment": {}, "us": {},
	"unicode-word": {}, "uw": {},
	"whitespace": {}, "ws": {},
	"regex-boundary": {}, "rb": {},
}

// Validate ensures the configuration is usable. Strategy tags and the filter
// pattern are checked here so a bad config fails at startup, before any input
// is read.
func (c *Config) Validate() error {
	if err := c.validateTokenizer(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateTokenizer() error {
	if _, ok := knownStrategies[c.Tokenizer.Strategy]; !ok {
		return fmt.Errorf("tokenizer.strategy: unknown value %q", c.Tokenizer.Strategy)
	}
	if c.Tokenizer.Filter != "" {
		if _, err := regexp.Compile(c.Tokenizer.Filter); err != nil {
			return fmt.Errorf("tokenizer.filter: %w", err)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
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
	return nil
}

// normalize trims and lowercases values with closed vocabularies and restores
// defaults for fields left empty.
func (c *Config) normalize() {
	c.Tokenizer.Strategy = strings.ToLower(strings.TrimSpace(c.Tokenizer.Strategy))
	if c.Tokenizer.Strategy == "" {
		c.Tokenizer.Strategy = defaultStrategy
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	if c.Output.Delimiter == "" {
		c.Output.Delimiter = defaultDelimiter
	}
}
