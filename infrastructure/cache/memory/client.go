// ABOUTME: In-memory cache implementation built on patrickmn/go-cache
// ABOUTME: Provides TTL support and automatic cleanup of expired entries

package memory

import (
	"context"
	"errors"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// ErrCacheMiss is the error returned when a key is not found in the cache.
var ErrCacheMiss = errors.New("cache: key not found")

// MemoryCache implements the Cache interface using an in-process store
type MemoryCache struct {
	cache *gocache.Cache
}

// NewMemoryCache creates a new in-memory cache instance.
// defaultExpiration is the library-level default TTL; cleanupInterval
// controls how often expired entries are purged.
func NewMemoryCache(defaultExpiration, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{
		cache: gocache.New(defaultExpiration, cleanupInterval),
	}
}

// Get retrieves a value from the cache
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	value, found := c.cache.Get(key)
	if !found {
		return nil, ErrCacheMiss
	}

	data, ok := value.([]byte)
	if !ok {
		return nil, ErrCacheMiss
	}

	// Return a copy so callers cannot mutate the cached bytes
	result := make([]byte, len(data))
	copy(result, data)
	return result, nil
}

// Set stores a value in the cache with the given TTL.
// A zero TTL stores the value without expiration.
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	expiration := ttl
	if ttl == 0 {
		expiration = gocache.NoExpiration
	}

	c.cache.Set(key, valueCopy, expiration)
	return nil
}

// Delete removes a key from the cache
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	c.cache.Delete(key)
	return nil
}
