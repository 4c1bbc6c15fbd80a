package memcopy

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with memcopy-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// This is the default for every copier.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithCopier adds the copier name to the logger.
func (l *Logger) WithCopier(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("copier", name),
	}
}

// LogAlloc logs a buffer allocation.
func (l *Logger) LogAlloc(size, alignment int, err error) {
	if err != nil {
		l.Error("alloc failed",
			"size", size,
			"alignment", alignment,
			"error", err,
		)
	} else {
		l.Debug("alloc completed",
			"size", size,
			"alignment", alignment,
		)
	}
}

// LogFree logs a buffer release.
func (l *Logger) LogFree(capacity int, err error) {
	if err != nil {
		l.Error("free failed",
			"capacity", capacity,
			"error", err,
		)
	} else {
		l.Debug("free completed",
			"capacity", capacity,
		)
	}
}

// LogWorkerPanic logs a fan-out worker that panicked.
func (l *Logger) LogWorkerPanic(workers int, err error) {
	l.Error("copy worker panicked",
		"workers", workers,
		"error", err,
	)
}
