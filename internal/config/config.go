package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Tokenizer contains the default tokenization pipeline settings. Command-line
// flags override these per invocation.
type Tokenizer struct {
	// Strategy selects the word tokenizer: splitstr, unicode-segment,
	// unicode-word, whitespace, or regex-boundary (short tags accepted).
	Strategy string `toml:"strategy"`
	// Param initializes the strategy: the split pattern for splitstr, the
	// excluded boundary characters for regex-boundary, ignored otherwise.
	Param    string `toml:"param"`
	Downcase bool   `toml:"downcase"`
	Trim     bool   `toml:"trim"`
	// Filter discards tokens matching this regular expression.
	Filter string `toml:"filter"`
}

// Output contains output formatting defaults.
type Output struct {
	Delimiter string `toml:"delimiter"`
	Table     bool   `toml:"table"`
}

// Logging contains diagnostic output settings.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config encapsulates all configuration values for the textcut tools.
type Config struct {
	Tokenizer Tokenizer `toml:"tokenizer"`
	Output    Output    `toml:"output"`
	Logging   Logging   `toml:"logging"`
}

// SampleConfig returns the embedded sample configuration file contents.
func SampleConfig() string {
	return sampleConfig
}

// DefaultConfigPath returns the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/textcut/config.toml")
}

// Load locates, parses, and validates a configuration file. An absent file is
// not an error: defaults apply and exists reports false.
func Load(path string) (cfg *Config, resolved string, exists bool, err error) {
	defaults := Default()
	cfg = &defaults

	resolved, exists, err = resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolved)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}
	return cfg, resolved, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}

	projectPath, err := filepath.Abs("textcut.toml")
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

func expandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
	}
	return filepath.Abs(path)
}
