package middleware

import (
	"context"
	"log/slog"
)

// contextKey is a private type for context keys defined by this package.
// Using a custom type prevents collisions.
type contextKey string

const (
	// loggerCtxKey stores the request-scoped logger in the request context.
	loggerCtxKey = contextKey("logger")

	// clientIDKey stores the authenticated API client's ID in the request context.
	clientIDKey = contextKey("clientID")
)

// GetLoggerFromCtx retrieves the request-scoped logger from the context.
// It falls back to the default logger so callers outside a request (tests,
// startup code) can use the same code paths.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerCtxKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// GetClientIDFromCtx retrieves the authenticated client ID from the context.
// It returns the ID and a boolean indicating if it was found.
func GetClientIDFromCtx(ctx context.Context) (string, bool) {
	clientID, ok := ctx.Value(clientIDKey).(string)
	return clientID, ok
}
