package bitvector

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with bitvector-specific context. This gives
// structured logging with consistent field names across the package.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler. If handler is
// nil, uses a default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return &Logger{Logger: slog.New(handler)}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // unreachable level
	})
	return &Logger{Logger: slog.New(handler)}
}

// WithBlockSize adds a block_size field to the logger.
func (l *Logger) WithBlockSize(s uint32) *Logger {
	return &Logger{Logger: l.Logger.With("block_size", s)}
}

// LogSplit logs a leaf split (a full block dividing into two).
func (l *Logger) LogSplit(ctx context.Context) {
	l.DebugContext(ctx, "block split")
}

// LogMerge logs two adjacent leaves merging into one.
func (l *Logger) LogMerge(ctx context.Context) {
	l.DebugContext(ctx, "block merge")
}

// LogSteal logs an occupancy rebalance that steals bits from a neighbor
// rather than merging.
func (l *Logger) LogSteal(ctx context.Context) {
	l.DebugContext(ctx, "block steal")
}

// LogRotate logs an AVL rotation performed while fixing the tree.
func (l *Logger) LogRotate(ctx context.Context) {
	l.DebugContext(ctx, "tree rotate")
}

// LogOutOfRange logs a rejected operation whose index fell outside the
// vector's current bounds.
func (l *Logger) LogOutOfRange(ctx context.Context, op string, index, size uint32) {
	l.WarnContext(ctx, "operation rejected: index out of range",
		"op", op,
		"index", index,
		"size", size,
	)
}
