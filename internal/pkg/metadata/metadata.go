// Package metadata propagates per-request identifiers (request id,
// idempotency key) through context, so use cases can read them without
// depending on the HTTP layer.
package metadata

import "context"

// contextKey is unexported so keys from other packages cannot collide.
type contextKey string

const (
	// HeaderXRequestID identifies a request across log lines.
	HeaderXRequestID = "X-Request-Id"
	// HeaderXIdempotencyKey lets clients replay a write safely.
	HeaderXIdempotencyKey = "X-Idempotency-Key"
)

const (
	ctxKeyRequestID      contextKey = "request_id"
	ctxKeyIdempotencyKey contextKey = "idempotency_key"
)

// WithRequestID stores the request id in ctx.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, id)
}

// RequestID returns the request id stored in ctx, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKeyRequestID).(string)
	return id
}

// WithIdempotencyKey stores the idempotency key in ctx.
func WithIdempotencyKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, ctxKeyIdempotencyKey, key)
}

// IdempotencyKey returns the idempotency key stored in ctx, or "".
func IdempotencyKey(ctx context.Context) string {
	key, _ := ctx.Value(ctxKeyIdempotencyKey).(string)
	return key
}
