package logging

import (
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"Warn", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestConsoleHandlerOutput(t *testing.T) {
	var buf strings.Builder
	logger, err := New(Options{Level: "debug", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("tokenized line", "tokens", 5, "strategy", "whitespace")

	line := buf.String()
	if !strings.Contains(line, "INFO tokenized line") {
		t.Errorf("missing level and message: %q", line)
	}
	if !strings.Contains(line, "tokens=5") || !strings.Contains(line, "strategy=whitespace") {
		t.Errorf("missing attributes: %q", line)
	}
}

func TestConsoleHandlerQuotesValuesWithSpaces(t *testing.T) {
	var buf strings.Builder
	logger, err := New(Options{Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Warn("bad spec", "source", "1, 2")

	if !strings.Contains(buf.String(), `source="1, 2"`) {
		t.Errorf("value not quoted: %q", buf.String())
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf strings.Builder
	logger, err := New(Options{Level: "warn", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("dropped")
	logger.Warn("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("info line should be filtered: %q", out)
	}
	if !strings.Contains(out, "kept") {
		t.Errorf("warn line missing: %q", out)
	}
}
