package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"textcut/internal/config"
)

func TestLoadDefaultsWhenFileAbsent(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if cfg.Tokenizer.Strategy != "whitespace" {
		t.Fatalf("unexpected default strategy: %q", cfg.Tokenizer.Strategy)
	}
	if cfg.Output.Delimiter != "\t" {
		t.Fatalf("unexpected default delimiter: %q", cfg.Output.Delimiter)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "console" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[tokenizer]
strategy = "regex-boundary"
param = "'"
downcase = true

[output]
delimiter = ","
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("resolved=%q exists=%v", resolved, exists)
	}
	if cfg.Tokenizer.Strategy != "regex-boundary" || cfg.Tokenizer.Param != "'" {
		t.Fatalf("unexpected tokenizer config: %+v", cfg.Tokenizer)
	}
	if !cfg.Tokenizer.Downcase {
		t.Fatal("expected downcase enabled")
	}
	if cfg.Output.Delimiter != "," {
		t.Fatalf("unexpected delimiter: %q", cfg.Output.Delimiter)
	}
	// Unset sections keep defaults.
	if cfg.Logging.Level != "info" {
		t.Fatalf("unexpected log level: %q", cfg.Logging.Level)
	}
}

func TestLoadRejectsUnknownStrategy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[tokenizer]\nstrategy = \"bogus\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, _, _, err := config.Load(path)
	if err == nil || !strings.Contains(err.Error(), "tokenizer.strategy") {
		t.Fatalf("expected strategy error, got %v", err)
	}
}

func TestLoadRejectsBadFilterPattern(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[tokenizer]\nfilter = \"[\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, _, _, err := config.Load(path)
	if err == nil || !strings.Contains(err.Error(), "tokenizer.filter") {
		t.Fatalf("expected filter error, got %v", err)
	}
}

func TestLoadRejectsBadLoggingValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[logging]\nformat = \"yaml\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected error for unknown log format")
	}
}

func TestSampleConfigParsesAndValidates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(config.SampleConfig()), 0o644); err != nil {
		t.Fatalf("write sample: %v", err)
	}

	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("sample config should load cleanly: %v", err)
	}
	if cfg.Tokenizer.Strategy != "whitespace" {
		t.Fatalf("unexpected sample strategy: %q", cfg.Tokenizer.Strategy)
	}
}
