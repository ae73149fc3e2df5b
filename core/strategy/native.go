// ABOUTME: Native strategy sourcing locations from the application's route registry
// ABOUTME: Applies exclude patterns first, then the include allow-list when present

package strategy

import (
	"context"
	"fmt"
	"time"

	coreerrors "sitemap-app-api/core/errors"
	"sitemap-app-api/core/interfaces"
)

// NativeStrategy produces entries from the registered routes of the
// application's router, filtered by the configured regex patterns.
type NativeStrategy struct {
	cfg      Config
	registry interfaces.RouteRegistry
	filter   *routeFilter
	logger   interfaces.Logger
}

// NewNativeStrategy creates a native strategy backed by the given registry.
// Returns the fatal configuration error when the domain is missing.
func NewNativeStrategy(cfg Config, registry interfaces.RouteRegistry, logger interfaces.Logger) (*NativeStrategy, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &NativeStrategy{
		cfg:      cfg,
		registry: registry,
		filter:   newRouteFilter(cfg.Options.IncludePatterns, cfg.excludePatterns(), logger),
		logger:   logger,
	}, nil
}

// Items returns a deferred source that resolves the registry's current
// routes when the engine consumes it.
func (s *NativeStrategy) Items(ctx context.Context) interfaces.ItemSource {
	return interfaces.ItemsFunc(func(ctx context.Context) ([]interfaces.Item, error) {
		if s.registry == nil {
			return nil, &coreerrors.StrategyError{
				Strategy: "native",
				Message:  "no route registry configured",
			}
		}

		paths := registryPaths(s.registry)
		filtered := s.filter.apply(paths)

		items := make([]interfaces.Item, 0, len(filtered))
		for _, path := range filtered {
			items = append(items, path)
		}
		return items, nil
	})
}

// Location returns the item's route path.
func (s *NativeStrategy) Location(item interfaces.Item) (string, error) {
	path, ok := item.(string)
	if !ok {
		return "", fmt.Errorf("unexpected route item type %T", item)
	}
	return path, nil
}

// LastMod is unknown for routes.
func (s *NativeStrategy) LastMod(item interfaces.Item) *time.Time {
	return nil
}

// ChangeFreq returns the configured fallback frequency.
func (s *NativeStrategy) ChangeFreq(item interfaces.Item) string {
	return s.cfg.ChangeFreq
}

// Priority applies the depth heuristic to the route path.
func (s *NativeStrategy) Priority(item interfaces.Item) float64 {
	path, ok := item.(string)
	if !ok {
		return 0.5
	}
	return DepthPriority(path)
}

// registryPaths extracts the plain path strings from a registry.
func registryPaths(registry interfaces.RouteRegistry) []string {
	routes := registry.Routes()
	paths := make([]string, 0, len(routes))
	for _, route := range routes {
		paths = append(paths, route.Path)
	}
	return paths
}
