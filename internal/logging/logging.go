// Package logging provides the process-wide structured logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   = &slog.LevelVar{}

	output io.Writer = os.Stdout
)

// SetOutput redirects log output. Call before the first GetLogger.
func SetOutput(w io.Writer) {
	output = w
}

// GetLogger returns the application logger
func GetLogger() *slog.Logger {
	loggerOnce.Do(func() {
		handler := slog.NewTextHandler(output, &slog.HandlerOptions{
			Level: levelVar,
		})
		logger = slog.New(handler)
	})
	return logger
}

// SetLevel sets the minimum level for the application logger
func SetLevel(level slog.Level) {
	levelVar.Set(level)
}

// Level returns the current minimum level
func Level() slog.Level {
	return levelVar.Level()
}

// SetRawLogLevel parses and applies a level such as "debug" or "error"
func SetRawLogLevel(raw string) {
	SetLevel(ParseLevel(raw))
}

// ParseLevel maps a level name to a slog.Level. Unknown names map to info.
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
