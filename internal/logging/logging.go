// Package logging builds the process logger. The entry point constructs it
// once and injects it; no component reaches for a global.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// Setup returns a logger writing human-readable output to stderr and a
// line-oriented daily file under dir. The file keeps debug detail regardless
// of the console level.
func Setup(level, dir string) (zerolog.Logger, error) {
	zerolog.TimeFieldFormat = time.RFC3339

	logLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}

	console := zerolog.ConsoleWriter{Out: os.Stderr}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return zerolog.Logger{}, fmt.Errorf("failed to create log directory: %w", err)
	}

	name := fmt.Sprintf("tradebot_%s.log", time.Now().Format("2006-01-02"))
	file, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(console, file)).
		Level(logLevel).
		With().
		Timestamp().
		Logger()

	logger.Debug().Str("file", file.Name()).Msg("Logging initialised")

	return logger, nil
}
