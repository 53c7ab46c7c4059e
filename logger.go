package vertexid

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with vertexid-specific context.
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
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithName adds a shard-set name field to the logger.
func (l *Logger) WithName(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("name", name),
	}
}

// WithTranslator adds the translator configuration to the logger.
func (l *Logger) WithTranslator(t Translator) *Logger {
	return &Logger{
		Logger: l.Logger.With(
			"interval_length", t.IntervalLength(),
			"num_shards", t.NumShards(),
		),
	}
}

// LogSave logs a descriptor write.
func (l *Logger) LogSave(ctx context.Context, name string, t Translator, err error) {
	if err != nil {
		l.ErrorContext(ctx, "save failed",
			"name", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "saved shard set",
			"name", name,
			"interval_length", t.IntervalLength(),
			"num_shards", t.NumShards(),
		)
	}
}

// LogLoad logs a descriptor read.
func (l *Logger) LogLoad(ctx context.Context, name string, t Translator, err error) {
	if err != nil {
		l.WarnContext(ctx, "load failed",
			"name", name,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "loaded shard set",
			"name", name,
			"interval_length", t.IntervalLength(),
			"num_shards", t.NumShards(),
		)
	}
}

// LogBatchLoad logs a multi-name load.
func (l *Logger) LogBatchLoad(ctx context.Context, count, failed int) {
	if failed > 0 {
		l.WarnContext(ctx, "batch load completed with failures",
			"total", count,
			"failed", failed,
			"success", count-failed,
		)
	} else {
		l.InfoContext(ctx, "batch load completed",
			"count", count,
		)
	}
}
