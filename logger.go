package spatialjoin

import (
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with spatialjoin-specific context.
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
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithPartition adds a partition id field to the logger.
func (l *Logger) WithPartition(id int) *Logger {
	return &Logger{
		Logger: l.Logger.With("partition", id),
	}
}

// LogBuild logs the materialization of one build side into an index.
func (l *Logger) LogBuild(indexType string, count int, duration time.Duration) {
	l.Debug("index built",
		"index_type", indexType,
		"shapes", count,
		"duration", duration,
	)
}

// LogMilestone logs progress through a long stream of shapes.
func (l *Logger) LogMilestone(name string, count int64) {
	l.Info("reached a milestone",
		"name", name,
		"count", count,
	)
}
