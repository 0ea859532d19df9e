package config

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// NewLogger builds the process logger from LoggingConfig. An unrecognized
// level falls back to info rather than failing startup, consistent with how
// the rest of the env handling treats bad values. Every line carries a
// service field so aggregated logs stay attributable.
func NewLogger(cfg LoggingConfig) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	logger := zerolog.New(logOutput(cfg.Format)).
		Level(level).
		With().
		Timestamp().
		Str("service", "quiz-admin").
		Logger()
	log.Logger = logger
	return logger
}

// logOutput selects console rendering for local development, JSON otherwise.
func logOutput(format string) io.Writer {
	if strings.EqualFold(format, "console") {
		return zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	return os.Stdout
}
