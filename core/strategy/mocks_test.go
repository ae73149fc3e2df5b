package strategy

import (
	"context"
	"sync"

	"sitemap-app-api/core/interfaces"
)

// mockLogger is a no-op logger that records warning messages
type mockLogger struct {
	mu    sync.Mutex
	warns []string
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warns = append(m.warns, msg)
}

func (m *mockLogger) warnCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.warns)
}

// mockRegistry serves a fixed route list
type mockRegistry struct {
	paths []string
}

func (m *mockRegistry) Routes() []interfaces.Route {
	routes := make([]interfaces.Route, 0, len(m.paths))
	for _, p := range m.paths {
		routes = append(routes, interfaces.Route{Path: p})
	}
	return routes
}

// resolve runs a strategy's item source through the shapes the engine
// accepts, mirroring the engine's normalization for test assertions
func resolve(ctx context.Context, src interfaces.ItemSource) ([]interfaces.Item, error) {
	switch s := src.(type) {
	case []interfaces.Item:
		return s, nil
	case interfaces.ItemsFunc:
		return s(ctx)
	case <-chan interfaces.Item:
		var items []interfaces.Item
		for item := range s {
			items = append(items, item)
		}
		return items, nil
	default:
		return nil, nil
	}
}

// locations extracts the Location of every item
func locations(t interface {
	Fatalf(format string, args ...interface{})
}, strat interfaces.SitemapStrategy, items []interfaces.Item) []string {
	paths := make([]string, 0, len(items))
	for _, item := range items {
		loc, err := strat.Location(item)
		if err != nil {
			t.Fatalf("Location returned error: %v", err)
		}
		paths = append(paths, loc)
	}
	return paths
}

func validConfig() Config {
	return Config{Domain: "example.com"}
}
