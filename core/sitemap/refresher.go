// ABOUTME: Background cache refresher with an explicit start/stop lifecycle
// ABOUTME: Owns one cancellable goroutine that regenerates the sitemap on a timer

package sitemap

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"sitemap-app-api/core/interfaces"
)

// defaultBackoff is the pause after a failed refresh cycle.
const defaultBackoff = 5 * time.Second

// RefreshFunc performs one cache refresh cycle.
type RefreshFunc func(ctx context.Context) error

// Refresher periodically invokes a refresh function to keep the sitemap
// cache warm. It is an owned resource: Start spawns at most one goroutine,
// Stop cancels it and waits for it to exit. A failing cycle is logged and
// followed by a fixed backoff; only Stop ends the loop.
type Refresher struct {
	interval time.Duration
	backoff  time.Duration
	refresh  RefreshFunc
	logger   interfaces.Logger

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	running bool
}

// NewRefresher creates a refresher that fires every interval.
func NewRefresher(interval time.Duration, refresh RefreshFunc, logger interfaces.Logger) *Refresher {
	return &Refresher{
		interval: interval,
		backoff:  defaultBackoff,
		refresh:  refresh,
		logger:   logger,
	}
}

// Start launches the refresh loop. Calling Start on a running refresher
// is a no-op, so at most one loop is alive per instance.
func (r *Refresher) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	r.cancel = cancel
	r.done = done
	r.running = true

	go r.run(ctx, done)
}

// Stop cancels the refresh loop and waits for it to exit. The
// cancellation is swallowed: callers never observe it as an error, and
// stopping an already-stopped refresher is safe.
func (r *Refresher) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.running {
		return
	}

	r.cancel()
	<-r.done

	r.cancel = nil
	r.done = nil
	r.running = false
}

// Running reports whether the refresh loop is alive.
func (r *Refresher) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}

// run is the refresh loop: sleep, refresh, repeat. A cycle error is
// logged and followed by the backoff sleep rather than loop death.
func (r *Refresher) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(r.interval):
		}

		if err := r.safeRefresh(ctx); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}

			r.logger.Error("Background sitemap refresh failed", map[string]interface{}{
				"error":   err.Error(),
				"backoff": r.backoff.String(),
			})

			select {
			case <-ctx.Done():
				return
			case <-time.After(r.backoff):
			}
		}
	}
}

// safeRefresh runs one cycle, converting panics to errors so a broken
// strategy cannot kill the loop.
func (r *Refresher) safeRefresh(ctx context.Context) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("refresh panic: %v", rec)
		}
	}()

	return r.refresh(ctx)
}
