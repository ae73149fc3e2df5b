// ABOUTME: Cache interface consumed by the sitemap generation engine
// ABOUTME: Implementations can be Redis, in-memory, SQLite, or any other backend

package interfaces

import (
	"context"
	"time"
)

// Cache defines the interface for cache operations.
// The engine treats every implementation as best-effort: a Get error is a
// cache miss, a Set error leaves the already-generated result unaffected.
//
// Example usage:
//
//	data, err := cache.Get(ctx, "sitemap:example.com")
//	if err != nil {
//		// cache miss, regenerate
//	}
//
//	err = cache.Set(ctx, "sitemap:example.com", xml, time.Hour)
type Cache interface {
	// Get retrieves a value from the cache by key.
	// Returns the cached data as []byte or an error if the key doesn't exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with the given key and TTL.
	// If ttl is 0, the value should be stored indefinitely.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache by key.
	// Returns nil if the key doesn't exist.
	Delete(ctx context.Context, key string) error
}
