package handlers

import (
	"context"
	"errors"
	"sync"
	"time"

	"sitemap-app-api/core/interfaces"
	"sitemap-app-api/core/sitemap"
)

// noopLogger discards all log output
type noopLogger struct{}

func (noopLogger) Debug(msg string, fields map[string]interface{}) {}
func (noopLogger) Info(msg string, fields map[string]interface{})  {}
func (noopLogger) Warn(msg string, fields map[string]interface{})  {}
func (noopLogger) Error(msg string, fields map[string]interface{}) {}

// mapCache is a minimal in-process cache backend
type mapCache struct {
	mu    sync.Mutex
	store map[string][]byte
}

func newMapCache() *mapCache {
	return &mapCache{store: make(map[string][]byte)}
}

func (c *mapCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if data, ok := c.store[key]; ok {
		return data, nil
	}
	return nil, errors.New("cache miss")
}

func (c *mapCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[key] = value
	return nil
}

func (c *mapCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.store, key)
	return nil
}

// stubStrategy serves a fixed path list
type stubStrategy struct {
	paths []string
}

func (s *stubStrategy) Items(ctx context.Context) interfaces.ItemSource {
	items := make([]interfaces.Item, 0, len(s.paths))
	for _, p := range s.paths {
		items = append(items, p)
	}
	return items
}

func (s *stubStrategy) Location(item interfaces.Item) (string, error) {
	return item.(string), nil
}

func (s *stubStrategy) LastMod(item interfaces.Item) *time.Time { return nil }
func (s *stubStrategy) ChangeFreq(item interfaces.Item) string  { return "weekly" }
func (s *stubStrategy) Priority(item interfaces.Item) float64   { return 0.8 }

// newTestService wires an engine over a map cache and stub strategy
func newTestService(ttl time.Duration, paths ...string) *sitemap.Service {
	deps := interfaces.Dependencies{
		Cache:  newMapCache(),
		Logger: noopLogger{},
	}
	return sitemap.NewService(deps, ttl, &stubStrategy{paths: paths})
}
