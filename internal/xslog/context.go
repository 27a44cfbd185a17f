package xslog

import (
	"context"
	"log/slog"
)

type loggerKey struct{}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}

// WithAttrs stores a child of the context logger that carries attrs.
func WithAttrs(ctx context.Context, attrs ...slog.Attr) context.Context {
	if len(attrs) == 0 {
		return ctx
	}
	logger := FromContext(ctx)
	return WithLogger(ctx, slog.New(logger.Handler().WithAttrs(attrs)))
}

// Discard returns a logger that drops every record. Full-screen programs
// use it when no log file is configured, since stderr belongs to the
// terminal UI.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
