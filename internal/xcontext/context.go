// Package xcontext stores request-scoped values under unexported keys.
package xcontext

import "context"

type (
	requestIDKey struct{}
	sessionIDKey struct{}
	shutdownKey  struct{}
)

func value[T any](ctx context.Context, key any) (T, bool) {
	v, ok := ctx.Value(key).(T)
	return v, ok
}

func SetRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

func GetRequestID(ctx context.Context) (string, bool) {
	return value[string](ctx, requestIDKey{})
}

// SetSessionID records the client session that sent the request.
func SetSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey{}, sessionID)
}

func GetSessionID(ctx context.Context) (string, bool) {
	return value[string](ctx, sessionIDKey{})
}

// SetShutdownInProgress marks requests that arrive after the server began
// draining.
func SetShutdownInProgress(ctx context.Context, inProgress bool) context.Context {
	return context.WithValue(ctx, shutdownKey{}, inProgress)
}

func IsShutdownInProgress(ctx context.Context) bool {
	inProgress, ok := value[bool](ctx, shutdownKey{})
	return ok && inProgress
}
