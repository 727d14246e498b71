// Package cache defines the short-TTL byte cache used in front of the
// suggestion queries, with a process-local implementation here and a
// Redis implementation in the redis adapter.
package cache

import (
	"context"
	"time"
)

// Cache stores serialized values under string keys with a TTL. It is an
// optimization only: callers must behave identically on a miss.
type Cache interface {
	// Get returns the cached value and whether it was present and fresh.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores the value, overwriting any previous entry for the key.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
