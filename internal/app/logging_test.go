package app

import (
	"strings"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in       string
		expected LogLevel
	}{
		{"debug", LogLevelDebug},
		{"INFO", LogLevelInfo},
		{"warning", LogLevelWarn},
		{"error", LogLevelError},
		{"nonsense", LogLevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLogLevel(tt.in); got != tt.expected {
			t.Errorf("ParseLogLevel(%q): expected %v, got %v", tt.in, tt.expected, got)
		}
	}
}

func TestLoggerFiltersByLevel(t *testing.T) {
	var sb strings.Builder
	log := NewLogger(LoggerConfig{Level: LogLevelWarn, Output: &sb, Prefix: "test"})

	log.Debug("not shown")
	log.Info("not shown")
	log.Warn("shown %d", 1)
	log.Error("shown %d", 2)

	out := sb.String()
	if strings.Contains(out, "not shown") {
		t.Errorf("low-level messages leaked: %q", out)
	}
	if !strings.Contains(out, "[WARN] test: shown 1") || !strings.Contains(out, "[ERROR] test: shown 2") {
		t.Errorf("missing expected messages: %q", out)
	}
}

func TestNullLoggerDiscards(t *testing.T) {
	var sb strings.Builder
	NullLogger.SetOutput(&sb)
	NullLogger.Error("dropped")
	if sb.Len() != 0 {
		t.Errorf("NullLogger wrote output: %q", sb.String())
	}
}
