package opticalmapping

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with dataset-specific context.
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
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// WithSource adds the input name to the logger.
func (l *Logger) WithSource(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("source", name),
	}
}

// WithGroup adds a (reference, query) group to the logger.
func (l *Logger) WithGroup(ref, qry any) *Logger {
	return &Logger{
		Logger: l.Logger.With("ref", ref, "qry", qry),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogLoad logs the parse of one input.
func (l *Logger) LogLoad(ctx context.Context, name string, records int, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "load failed",
			"source", name,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "load completed",
		"source", name,
		"records", records,
		"elapsed", elapsed,
	)
}

// LogMerge logs the merge of loaded shards.
func (l *Logger) LogMerge(ctx context.Context, shards, records int) {
	l.DebugContext(ctx, "shards merged",
		"shards", shards,
		"records", records,
	)
}

// LogAugment logs an augment pass.
func (l *Logger) LogAugment(ctx context.Context, groups, records int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "augment failed",
			"groups", groups,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "augment completed",
		"groups", groups,
		"records", records,
	)
}

// LogFilter logs a filter pass.
func (l *Logger) LogFilter(ctx context.Context, filters []string, in, out int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "filter failed",
			"filters", filters,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "filter completed",
		"filters", filters,
		"records_in", in,
		"records_out", out,
	)
}

// LogSave logs the write of an output.
func (l *Logger) LogSave(ctx context.Context, name string, records int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "save failed",
			"name", name,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "save completed",
		"name", name,
		"records", records,
	)
}
