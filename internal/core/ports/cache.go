package ports

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with per-key TTL. The Redis client
// implements it; tests use an in-memory map.
type Cache interface {
	// Get returns (nil, nil) on a miss. A non-nil error means the cache
	// itself failed; callers degrade to the durable store, never fail.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, val []byte, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}
