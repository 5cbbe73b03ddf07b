package logging

import (
	"io"
	"log/slog"
	"os"
)

// Logger is the application's logger. It is a thin wrapper around slog
// so components can carry it around without caring about handlers.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a JSON logger at the given level. Unknown level
// strings fall back to info.
func NewLogger(level string, output io.Writer) *Logger {
	if output == nil {
		output = os.Stdout
	}

	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(output, &slog.HandlerOptions{
		Level: logLevel,
	})

	return &Logger{
		Logger: slog.New(handler),
	}
}

// With returns a logger that carries the given structured fields.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{Logger: l.Logger.With(args...)}
}

// Default returns an info-level logger directed to stdout.
func Default() *Logger {
	return NewLogger("info", os.Stdout)
}
