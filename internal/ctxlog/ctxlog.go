// Package ctxlog carries a configured *slog.Logger inside a context.Context,
// so the logger picked at startup reaches every layer without threading an
// extra parameter through each call.
package ctxlog

import (
	"context"
	"log/slog"
)

// ctxKey is unexported so no other package can collide with our context key.
type ctxKey struct{}

// WithLogger returns a new context with the provided logger embedded.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext extracts the logger embedded in ctx. Every execution path seeds
// the context at startup, so a missing logger is a programmer error and
// panics rather than silently logging nowhere.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
		return logger
	}
	panic("ctxlog: logger missing from context")
}
