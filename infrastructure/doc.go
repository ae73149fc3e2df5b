// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, logging, and route discovery.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache built on patrickmn/go-cache
// - cache/redis: Redis-based cache implementation
// - cache/sqlite: File-backed cache that survives restarts
// - logger/logrus: Structured logger implementation backed by logrus
// - routes: Route registry adapters (static list, chi router)
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Testable: Include both unit and integration tests
// - Production-ready: Include timeouts and error handling
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache(time.Hour, 10*time.Minute)
//	err := cache.Set(ctx, "sitemap:example.com", data, 1*time.Hour)
//	value, err := cache.Get(ctx, "sitemap:example.com")
//
// Redis Cache Example:
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{
//	    Address:  "localhost:6379",
//	    Password: "",
//	    DB:       0,
//	})
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := logrus.NewLogger("info", false)
//	logger.Info("Sitemap generated", map[string]interface{}{
//	    "domain": "example.com",
//	    "urls":   42,
//	})
package infrastructure
