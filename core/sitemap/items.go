// ABOUTME: Item-source normalization adapter for the generation engine
// ABOUTME: Folds the three supported source shapes into one materialized item list

package sitemap

import (
	"context"
	"fmt"

	"sitemap-app-api/core/interfaces"
)

// collectItems normalizes the three supported item-source shapes into one
// materialized list:
//
//	[]Item       iterated synchronously
//	ItemsFunc    resolved once, then iterated
//	<-chan Item  consumed until closed or the context is cancelled
//
// A nil source yields no items. Any other shape is an error the caller
// logs and treats as an empty contribution.
func collectItems(ctx context.Context, src interfaces.ItemSource) ([]interfaces.Item, error) {
	switch s := src.(type) {
	case nil:
		return nil, nil

	case []interfaces.Item:
		return s, nil

	case interfaces.ItemsFunc:
		return s(ctx)

	case func(ctx context.Context) ([]interfaces.Item, error):
		return s(ctx)

	case <-chan interfaces.Item:
		return drainItems(ctx, s)

	case chan interfaces.Item:
		return drainItems(ctx, s)

	default:
		return nil, fmt.Errorf("unsupported item source shape %T", src)
	}
}

// drainItems consumes a streamed source until it closes.
func drainItems(ctx context.Context, ch <-chan interfaces.Item) ([]interfaces.Item, error) {
	var items []interfaces.Item

	for {
		select {
		case <-ctx.Done():
			return items, ctx.Err()
		case item, ok := <-ch:
			if !ok {
				return items, nil
			}
			items = append(items, item)
		}
	}
}
