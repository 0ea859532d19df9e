package config

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestNewLogger_LevelParsing(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"WARN", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}

	for _, tc := range tests {
		logger := NewLogger(LoggingConfig{Level: tc.level})
		if got := logger.GetLevel(); got != tc.want {
			t.Errorf("NewLogger(level=%q): expected level %s, got %s", tc.level, tc.want, got)
		}
	}
}

func TestNewLogger_ConsoleFormatAccepted(t *testing.T) {
	// Must not panic or fall over on the console writer path
	logger := NewLogger(LoggingConfig{Level: "info", Format: "console"})
	if logger.GetLevel() != zerolog.InfoLevel {
		t.Errorf("expected info level, got %s", logger.GetLevel())
	}
}
