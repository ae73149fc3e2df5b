// ABOUTME: Sitemap generation engine with cache-first get-or-generate semantics
// ABOUTME: Normalizes strategy item sources, builds the XML document, writes through the cache

package sitemap

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"sitemap-app-api/core/domain"
	coreerrors "sitemap-app-api/core/errors"
	"sitemap-app-api/core/interfaces"
)

// cacheKeyPrefix namespaces sitemap documents in the shared cache backend.
const cacheKeyPrefix = "sitemap:"

// CacheKey returns the cache key for a domain's sitemap document.
func CacheKey(host string) string {
	return cacheKeyPrefix + host
}

// Service is the sitemap generation engine. It consumes one or more
// strategies, normalizes their item sources into a uniform sequence,
// and serializes the result as sitemaps.org 0.9 XML.
//
// All strategy and cache failures are recoverable: the engine degrades
// to fewer (or fallback) entries rather than failing a generation pass.
type Service struct {
	deps       interfaces.Dependencies
	strategies []interfaces.SitemapStrategy
	ttl        time.Duration
}

// NewService creates a new sitemap generation service.
// A non-positive ttl falls back to one hour.
func NewService(deps interfaces.Dependencies, ttl time.Duration, strategies ...interfaces.SitemapStrategy) *Service {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Service{
		deps:       deps,
		strategies: strategies,
		ttl:        ttl,
	}
}

// TTL returns the cache TTL the engine writes entries with.
func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Generate returns the sitemap document for the domain, serving cached
// bytes when available. Strategies are not invoked on a cache hit.
// The protocol must be a concrete scheme ("http" or "https"); callers
// resolve "auto" from their request context before calling.
func (s *Service) Generate(ctx context.Context, host, protocol string) ([]byte, error) {
	if host == "" {
		return nil, &coreerrors.ConfigError{Field: "domain", Message: "domain is not set"}
	}

	key := CacheKey(host)
	if cached := s.getCached(ctx, key); cached != nil {
		return cached, nil
	}

	return s.regenerate(ctx, key, host, protocol)
}

// Regenerate builds a fresh document and writes it through the cache,
// bypassing any cached copy. Used by the background refresher to keep
// the cache warm.
func (s *Service) Regenerate(ctx context.Context, host, protocol string) ([]byte, error) {
	if host == "" {
		return nil, &coreerrors.ConfigError{Field: "domain", Message: "domain is not set"}
	}
	return s.regenerate(ctx, CacheKey(host), host, protocol)
}

// regenerate collects entries from all strategies, builds the document,
// and performs a best-effort cache write.
func (s *Service) regenerate(ctx context.Context, key, host, protocol string) ([]byte, error) {
	entries := s.collectEntries(ctx, host, protocol)
	data := buildSitemap(entries)
	s.cacheResult(ctx, key, data)
	return data, nil
}

// getCached reads the cached document. Any cache error is a miss.
func (s *Service) getCached(ctx context.Context, key string) []byte {
	data, err := s.deps.Cache.Get(ctx, key)
	if err != nil {
		s.deps.Logger.Debug("Sitemap cache miss", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return nil
	}
	return data
}

// cacheResult writes the generated document through the cache.
// Write failures are logged and swallowed; the caller still gets the bytes.
func (s *Service) cacheResult(ctx context.Context, key string, data []byte) {
	if err := s.deps.Cache.Set(ctx, key, data, s.ttl); err != nil {
		s.deps.Logger.Warn("Sitemap cache write failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}

// collectEntries gathers entries from every strategy. A failing strategy
// contributes zero entries and never aborts the run.
func (s *Service) collectEntries(ctx context.Context, host, protocol string) []domain.SitemapEntry {
	var entries []domain.SitemapEntry

	for i, strat := range s.strategies {
		items, err := s.strategyItems(ctx, strat)
		if err != nil {
			s.deps.Logger.Error("Strategy item source failed", map[string]interface{}{
				"strategy": fmt.Sprintf("%T", strat),
				"index":    i,
				"error":    err.Error(),
			})
			continue
		}

		for _, item := range items {
			entries = append(entries, s.buildEntry(strat, item, host, protocol))
		}
	}

	return entries
}

// strategyItems resolves one strategy's item source through the
// normalization adapter. Panics inside the source are converted to errors
// so one broken strategy cannot take down a multi-strategy run.
func (s *Service) strategyItems(ctx context.Context, strat interfaces.SitemapStrategy) (items []interfaces.Item, err error) {
	defer func() {
		if r := recover(); r != nil {
			items = nil
			err = fmt.Errorf("item source panic: %v", r)
		}
	}()

	return collectItems(ctx, strat.Items(ctx))
}

// buildEntry extracts one item's fields. Any per-item failure, including a
// location embedding a scheme or host, yields the degraded fallback entry
// instead of dropping the item or aborting the pass.
func (s *Service) buildEntry(strat interfaces.SitemapStrategy, item interfaces.Item, host, protocol string) (entry domain.SitemapEntry) {
	defer func() {
		if r := recover(); r != nil {
			s.deps.Logger.Warn("Item field extraction panicked", map[string]interface{}{
				"strategy": fmt.Sprintf("%T", strat),
				"panic":    fmt.Sprintf("%v", r),
			})
			entry = fallbackEntry(host, protocol)
		}
	}()

	loc, err := strat.Location(item)
	if err != nil {
		s.deps.Logger.Warn("Item location extraction failed", map[string]interface{}{
			"strategy": fmt.Sprintf("%T", strat),
			"error":    err.Error(),
		})
		return fallbackEntry(host, protocol)
	}

	if !isRelativeLocation(loc) {
		s.deps.Logger.Warn("Item location embeds scheme or host", map[string]interface{}{
			"strategy": fmt.Sprintf("%T", strat),
			"location": loc,
		})
		return fallbackEntry(host, protocol)
	}

	if !strings.HasPrefix(loc, "/") {
		loc = "/" + loc
	}

	return domain.SitemapEntry{
		Loc:        protocol + "://" + host + loc,
		LastMod:    strat.LastMod(item),
		ChangeFreq: strat.ChangeFreq(item),
		Priority:   domain.ClampPriority(strat.Priority(item)),
	}
}

// fallbackEntry is the degraded entry substituted for a failed item:
// the site root at priority 0.5.
func fallbackEntry(host, protocol string) domain.SitemapEntry {
	return domain.SitemapEntry{
		Loc:      protocol + "://" + host + "/",
		Priority: 0.5,
	}
}

// isRelativeLocation reports whether loc is path-relative: path plus
// optional query and fragment, with no scheme and no host.
func isRelativeLocation(loc string) bool {
	if strings.HasPrefix(loc, "//") {
		return false
	}

	u, err := url.Parse(loc)
	if err != nil {
		return false
	}

	return u.Scheme == "" && u.Host == ""
}
