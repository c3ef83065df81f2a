package telemetry

import "context"

// sessionIDKey is the context key type used to store a session ID.
type sessionIDKey struct{}

// WithSessionID returns a child context that carries the provided session ID.
// If ctx is nil, context.Background() is used.
func WithSessionID(ctx context.Context, id string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, sessionIDKey{}, id)
}

// SessionIDFromContext returns the session ID from ctx, if present.
// Returns "", false if the value is missing or not a non-empty string.
func SessionIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	v := ctx.Value(sessionIDKey{})
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
