// ABOUTME: Dynamic strategy generating one placeholder entry per configured model
// ABOUTME: A full deployment would resolve real object URLs through a data-access layer

package strategy

import (
	"context"
	"fmt"
	"strings"
	"time"

	"sitemap-app-api/core/interfaces"
)

// dynamicPriority is the fixed priority of model-derived entries.
const dynamicPriority = 0.7

// DynamicStrategy produces one synthetic entry per configured model.
// TODO: query a storage layer for real per-model object slugs instead of
// the sample-item placeholder.
type DynamicStrategy struct {
	cfg    Config
	logger interfaces.Logger
}

// NewDynamicStrategy creates a dynamic strategy.
// Returns the fatal configuration error when the domain is missing.
func NewDynamicStrategy(cfg Config, logger interfaces.Logger) (*DynamicStrategy, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &DynamicStrategy{
		cfg:    cfg,
		logger: logger,
	}, nil
}

// Items returns a deferred source with one item per model config.
func (s *DynamicStrategy) Items(ctx context.Context) interfaces.ItemSource {
	return interfaces.ItemsFunc(func(ctx context.Context) ([]interfaces.Item, error) {
		items := make([]interfaces.Item, 0, len(s.cfg.Options.ModelConfigs))
		for _, mc := range s.cfg.Options.ModelConfigs {
			items = append(items, mc)
		}
		return items, nil
	})
}

// Location builds the placeholder path for a model.
func (s *DynamicStrategy) Location(item interfaces.Item) (string, error) {
	mc, ok := item.(ModelConfig)
	if !ok {
		return "", fmt.Errorf("unexpected model item type %T", item)
	}
	return "/" + strings.ToLower(mc.Model) + "/sample-item", nil
}

// LastMod is unknown for placeholder entries.
func (s *DynamicStrategy) LastMod(item interfaces.Item) *time.Time {
	return nil
}

// ChangeFreq returns the configured fallback frequency.
func (s *DynamicStrategy) ChangeFreq(item interfaces.Item) string {
	return s.cfg.ChangeFreq
}

// Priority is fixed for model-derived entries.
func (s *DynamicStrategy) Priority(item interfaces.Item) float64 {
	return dynamicPriority
}
