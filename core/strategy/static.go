// ABOUTME: Static strategy serving a fixed, configured URL list
// ABOUTME: The simplest variant, returning a fully materialized item source

package strategy

import (
	"context"
	"fmt"
	"time"

	"sitemap-app-api/core/interfaces"
)

// StaticStrategy produces entries from the configured static URL list.
type StaticStrategy struct {
	cfg    Config
	logger interfaces.Logger
}

// NewStaticStrategy creates a static strategy.
// Returns the fatal configuration error when the domain is missing.
func NewStaticStrategy(cfg Config, logger interfaces.Logger) (*StaticStrategy, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &StaticStrategy{
		cfg:    cfg,
		logger: logger,
	}, nil
}

// Items returns the configured URLs as a materialized source.
func (s *StaticStrategy) Items(ctx context.Context) interfaces.ItemSource {
	items := make([]interfaces.Item, 0, len(s.cfg.Options.StaticURLs))
	for _, u := range s.cfg.Options.StaticURLs {
		items = append(items, u)
	}
	return items
}

// Location returns the item's configured path.
func (s *StaticStrategy) Location(item interfaces.Item) (string, error) {
	path, ok := item.(string)
	if !ok {
		return "", fmt.Errorf("unexpected static item type %T", item)
	}
	return path, nil
}

// LastMod is unknown for static URLs.
func (s *StaticStrategy) LastMod(item interfaces.Item) *time.Time {
	return nil
}

// ChangeFreq returns the configured fallback frequency.
func (s *StaticStrategy) ChangeFreq(item interfaces.Item) string {
	return s.cfg.ChangeFreq
}

// Priority applies the depth heuristic to the item's path.
func (s *StaticStrategy) Priority(item interfaces.Item) float64 {
	path, ok := item.(string)
	if !ok {
		return 0.5
	}
	return DepthPriority(path)
}
