// Package poller keeps an in-memory snapshot of the active-deliveries feed
// fresh, so the delivery map reads the latest poll instead of hitting the
// RunPro API on every render.
package poller

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/runpro9ja/admin-gateway/internal/core/domain"
)

const defaultInterval = 30 * time.Second

// FetchFunc produces the current active-deliveries feed.
type FetchFunc func(ctx context.Context) domain.Feed[[]domain.ActiveDelivery]

// Poller runs FetchFunc on a fixed interval, no backoff. Each refresh
// carries a generation number; a refresh that finishes after a newer one has
// started is discarded, so a slow response can never overwrite fresher data.
type Poller struct {
	fetch    FetchFunc
	interval time.Duration
	log      zerolog.Logger

	mu          sync.Mutex
	gen         uint64
	snapshot    domain.Feed[[]domain.ActiveDelivery]
	hasSnapshot bool
}

// New creates a Poller. If interval <= 0, defaultInterval is used.
func New(fetch FetchFunc, interval time.Duration, log zerolog.Logger) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{fetch: fetch, interval: interval, log: log}
}

// Run polls until ctx is cancelled. Stopping is deterministic: the ticker is
// released before Run returns and no further refresh is started.
func (p *Poller) Run(ctx context.Context) {
	p.Refresh(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// A refresh slower than the interval must not block the
			// ticker; the generation guard discards its late result.
			go p.Refresh(ctx)
		}
	}
}

// Refresh performs one generation-tagged fetch and applies the result unless
// a newer refresh started in the meantime.
func (p *Poller) Refresh(ctx context.Context) {
	p.mu.Lock()
	p.gen++
	gen := p.gen
	p.mu.Unlock()

	feed := p.fetch(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()

	if gen != p.gen {
		p.log.Debug().Uint64("generation", gen).Msg("discarding superseded delivery refresh")
		return
	}

	// A failed poll keeps the previous live snapshot; sample data only
	// replaces sample data or nothing.
	if feed.Fallback() && p.hasSnapshot && !p.snapshot.Fallback() {
		return
	}

	p.snapshot = feed
	p.hasSnapshot = true
}

// Snapshot returns the latest applied feed. ok is false until the first
// refresh completes.
func (p *Poller) Snapshot() (domain.Feed[[]domain.ActiveDelivery], bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshot, p.hasSnapshot
}
