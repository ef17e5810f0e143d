// Package cache provides the small key/value cache the write paths use to
// replay idempotent requests: a client retrying CreateOrder or
// ProcessPayment with the same x-idempotency-key gets the original result
// instead of a duplicate record.
package cache

import (
	"context"
	"fmt"
	"time"
)

// Cache is the port. Get returns "" (no error) on a miss.
type Cache interface {
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	GenerateKey(operation, key string) string
}

// keyFor builds the namespaced cache key shared by both implementations.
func keyFor(serviceName, operation, key string) string {
	return fmt.Sprintf("%s:%s:%s", serviceName, operation, key)
}
