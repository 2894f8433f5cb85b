package hrapi

import "context"

type ctxKey int

const (
	tokenKey ctxKey = iota
	requestIDKey
)

// WithToken returns a context carrying the caller's bearer token. Every call
// made with it is authenticated as that caller.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	return token, ok && token != ""
}

// WithRequestID propagates the inbound request id to upstream calls.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func RequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey).(string)
	return id, ok && id != ""
}
