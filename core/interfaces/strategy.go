// ABOUTME: SitemapStrategy interface and the item-source shapes the engine accepts
// ABOUTME: Strategies supply URLs plus per-item metadata; the engine owns normalization

package interfaces

import (
	"context"
	"time"
)

// Item is an opaque value produced by a strategy's item source.
// Only the strategy that produced an item knows how to interpret it.
type Item interface{}

// ItemsFunc is a deferred item source: invoked once by the engine, it
// resolves to the full item list or an error.
type ItemsFunc func(ctx context.Context) ([]Item, error)

// ItemSource is the value returned by SitemapStrategy.Items. Exactly one
// of three shapes is accepted:
//
//	[]Item       materialized list, iterated synchronously
//	ItemsFunc    deferred list, resolved once then iterated
//	<-chan Item  streamed, consumed until closed
//
// Sources are finite and not restartable. Any other shape is treated as a
// per-strategy error: that strategy contributes zero entries.
type ItemSource interface{}

// SitemapStrategy is a pluggable source of sitemap-eligible URLs plus
// per-item metadata. Implementations must not be invoked when the engine
// serves a cache hit.
type SitemapStrategy interface {
	// Items returns the strategy's item source for one generation pass.
	Items(ctx context.Context) ItemSource

	// Location returns the item's path-relative location (path plus
	// optional query/fragment, no scheme or host). Locations that embed a
	// scheme or host are rejected by the engine and replaced with a safe
	// fallback entry.
	Location(item Item) (string, error)

	// LastMod returns the item's last modification time, or nil if unknown.
	LastMod(item Item) *time.Time

	// ChangeFreq returns the item's change frequency hint, or "" for none.
	ChangeFreq(item Item) string

	// Priority returns the item's priority. The engine clamps the value
	// to [0.0, 1.0].
	Priority(item Item) float64
}
