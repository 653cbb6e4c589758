package cache

import (
	"context"
	"time"
)

// Cache is the contract for the cache layer so repositories do not depend
// on a concrete Redis client.
type Cache interface {
	// Get fetches a key and unmarshals it into dest.
	// found == false means cache miss; dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores a value under key with a TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys from the cache.
	Delete(ctx context.Context, keys ...string) error

	// Ping verifies connectivity.
	Ping(ctx context.Context) error
}
