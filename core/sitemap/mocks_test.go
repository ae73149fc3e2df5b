package sitemap

import (
	"context"
	"sync"
	"time"

	"sitemap-app-api/core/interfaces"
)

// mockCache is a mock implementation of the Cache interface
type mockCache struct {
	getFunc    func(ctx context.Context, key string) ([]byte, error)
	setFunc    func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	deleteFunc func(ctx context.Context, key string) error
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, key)
	}
	return nil, ErrNoEntry
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setFunc != nil {
		return m.setFunc(ctx, key, value, ttl)
	}
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, key)
	}
	return nil
}

// ErrNoEntry is the default miss error of the mock cache
var ErrNoEntry = errNoEntry{}

type errNoEntry struct{}

func (errNoEntry) Error() string { return "key not found" }

// storeCache is a working in-memory cache for call-count tests
type storeCache struct {
	mu    sync.Mutex
	items map[string][]byte
}

func newStoreCache() *storeCache {
	return &storeCache{items: make(map[string][]byte)}
}

func (s *storeCache) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if data, ok := s.items[key]; ok {
		return data, nil
	}
	return nil, ErrNoEntry
}

func (s *storeCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = value
	return nil
}

func (s *storeCache) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
	return nil
}

// mockLogger is a no-op logger that records error messages
type mockLogger struct {
	mu     sync.Mutex
	errors []string
	warns  []string
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warns = append(m.warns, msg)
}

func (m *mockLogger) Error(msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors = append(m.errors, msg)
}

// mockStrategy is a configurable strategy with an items call counter
type mockStrategy struct {
	mu         sync.Mutex
	itemsCalls int

	itemsFunc      func(ctx context.Context) interfaces.ItemSource
	locationFunc   func(item interfaces.Item) (string, error)
	lastModFunc    func(item interfaces.Item) *time.Time
	changeFreqFunc func(item interfaces.Item) string
	priorityFunc   func(item interfaces.Item) float64
}

func (m *mockStrategy) Items(ctx context.Context) interfaces.ItemSource {
	m.mu.Lock()
	m.itemsCalls++
	m.mu.Unlock()

	if m.itemsFunc != nil {
		return m.itemsFunc(ctx)
	}
	return []interfaces.Item{}
}

func (m *mockStrategy) Location(item interfaces.Item) (string, error) {
	if m.locationFunc != nil {
		return m.locationFunc(item)
	}
	return item.(string), nil
}

func (m *mockStrategy) LastMod(item interfaces.Item) *time.Time {
	if m.lastModFunc != nil {
		return m.lastModFunc(item)
	}
	return nil
}

func (m *mockStrategy) ChangeFreq(item interfaces.Item) string {
	if m.changeFreqFunc != nil {
		return m.changeFreqFunc(item)
	}
	return ""
}

func (m *mockStrategy) Priority(item interfaces.Item) float64 {
	if m.priorityFunc != nil {
		return m.priorityFunc(item)
	}
	return 0.5
}

func (m *mockStrategy) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.itemsCalls
}

// itemList is a convenience builder for materialized sources
func itemList(paths ...string) []interfaces.Item {
	items := make([]interfaces.Item, 0, len(paths))
	for _, p := range paths {
		items = append(items, p)
	}
	return items
}

func testDeps(cache interfaces.Cache) interfaces.Dependencies {
	return interfaces.Dependencies{
		Cache:  cache,
		Logger: &mockLogger{},
	}
}
