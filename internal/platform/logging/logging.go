package logging

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

// contextKey prevents collisions with other packages' context values.
type contextKey string

const loggerKey = contextKey("logger")

// New creates the process logger. Production gets JSON for log shippers,
// everything else a human-readable text handler.
func New(production bool) *slog.Logger {
	if production {
		return slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

// WithLogger stores a logger in the context.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromCtx retrieves the context logger, falling back to slog.Default.
func FromCtx(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// WithRequestScope returns a child context whose logger is enriched with a
// fresh request ID plus the method and path of the outgoing call.
func WithRequestScope(ctx context.Context, method, path string) (context.Context, *slog.Logger) {
	requestLogger := FromCtx(ctx).With(
		slog.String("request_id", uuid.NewString()),
		slog.String("method", method),
		slog.String("path", path),
	)
	return WithLogger(ctx, requestLogger), requestLogger
}
