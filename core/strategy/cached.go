// ABOUTME: Cached strategy pairing the native route source with a background refresher
// ABOUTME: Doubles the effective cache TTL and keeps the cache warm on a timer

package strategy

import (
	"context"
	"fmt"
	"time"

	"sitemap-app-api/core/interfaces"
	"sitemap-app-api/core/sitemap"
)

// CachedStrategy serves the same route registry as the native strategy
// but doubles the effective cache TTL and optionally owns a background
// refresh task. The refresher fires every configured TTL while cached
// documents live twice that long, so a healthy refresher means requests
// never pay the generation cost.
type CachedStrategy struct {
	cfg       Config
	registry  interfaces.RouteRegistry
	filter    *routeFilter
	logger    interfaces.Logger
	refresher *sitemap.Refresher
}

// NewCachedStrategy creates a cached strategy backed by the given registry.
// Returns the fatal configuration error when the domain is missing.
func NewCachedStrategy(cfg Config, registry interfaces.RouteRegistry, logger interfaces.Logger) (*CachedStrategy, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &CachedStrategy{
		cfg:      cfg,
		registry: registry,
		filter:   newRouteFilter(cfg.Options.IncludePatterns, cfg.excludePatterns(), logger),
		logger:   logger,
	}, nil
}

// EffectiveTTL is twice the configured cache TTL, giving the background
// refresher a full interval of slack before a cached document expires.
func (s *CachedStrategy) EffectiveTTL() time.Duration {
	return 2 * s.cfg.TTL()
}

// Init starts the background refresh task when background_refresh is
// enabled. At most one task is alive per strategy instance; repeated
// Init calls are no-ops while it runs.
func (s *CachedStrategy) Init(refresh sitemap.RefreshFunc) {
	if !s.cfg.Options.BackgroundRefresh {
		return
	}

	if s.refresher == nil {
		s.refresher = sitemap.NewRefresher(s.cfg.TTL(), refresh, s.logger)
	}

	s.refresher.Start()
	s.logger.Info("Background sitemap refresh started", map[string]interface{}{
		"domain":   s.cfg.Domain,
		"interval": s.cfg.TTL().String(),
	})
}

// Cleanup cancels the background task and waits for it to exit.
// Safe to call without Init and safe to call twice; the cancellation
// never reaches the caller.
func (s *CachedStrategy) Cleanup() {
	if s.refresher != nil {
		s.refresher.Stop()
	}
}

// Refreshing reports whether the background task is alive.
func (s *CachedStrategy) Refreshing() bool {
	return s.refresher != nil && s.refresher.Running()
}

// Items returns a streamed source over the filtered registry routes.
func (s *CachedStrategy) Items(ctx context.Context) interfaces.ItemSource {
	ch := make(chan interfaces.Item)

	go func() {
		defer close(ch)

		if s.registry == nil {
			return
		}

		for _, path := range s.filter.apply(registryPaths(s.registry)) {
			select {
			case ch <- path:
			case <-ctx.Done():
				return
			}
		}
	}()

	return (<-chan interfaces.Item)(ch)
}

// Location returns the item's route path.
func (s *CachedStrategy) Location(item interfaces.Item) (string, error) {
	path, ok := item.(string)
	if !ok {
		return "", fmt.Errorf("unexpected route item type %T", item)
	}
	return path, nil
}

// LastMod is unknown for routes.
func (s *CachedStrategy) LastMod(item interfaces.Item) *time.Time {
	return nil
}

// ChangeFreq returns the configured fallback frequency.
func (s *CachedStrategy) ChangeFreq(item interfaces.Item) string {
	return s.cfg.ChangeFreq
}

// Priority applies the depth heuristic to the route path.
func (s *CachedStrategy) Priority(item interfaces.Item) float64 {
	path, ok := item.(string)
	if !ok {
		return 0.5
	}
	return DepthPriority(path)
}

// compile-time checks that every variant satisfies the strategy contract
var (
	_ interfaces.SitemapStrategy = (*StaticStrategy)(nil)
	_ interfaces.SitemapStrategy = (*NativeStrategy)(nil)
	_ interfaces.SitemapStrategy = (*DynamicStrategy)(nil)
	_ interfaces.SitemapStrategy = (*CachedStrategy)(nil)
)
