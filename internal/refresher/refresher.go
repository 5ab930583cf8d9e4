// Package refresher keeps the quote cache warm for every stored watchlist.
package refresher

import (
	"context"
	"time"

	"github.com/akulinkin/stockboard/internal/logger"
	"github.com/akulinkin/stockboard/internal/symbols"
)

// WatchlistLister returns the symbol strings of all stored watchlists.
type WatchlistLister interface {
	ListAll(ctx context.Context) ([]string, error)
}

// CacheWarmer fetches and caches quotes for a symbol list.
type CacheWarmer interface {
	WarmCache(ctx context.Context, symbols []string)
}

// Refresher periodically refreshes quotes for every symbol that appears in
// any watchlist. Each tick runs under its own timeout, so a hung upstream
// never blocks shutdown or the next tick indefinitely.
type Refresher struct {
	lister   WatchlistLister
	warmer   CacheWarmer
	interval time.Duration
	timeout  time.Duration
}

// New creates a Refresher.
func New(lister WatchlistLister, warmer CacheWarmer, interval, timeout time.Duration) *Refresher {
	return &Refresher{
		lister:   lister,
		warmer:   warmer,
		interval: interval,
		timeout:  timeout,
	}
}

// Run blocks until ctx is cancelled, refreshing on every tick.
func (r *Refresher) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	logger.Log.Infof("Refresher started, interval %s", r.interval)

	for {
		select {
		case <-ctx.Done():
			logger.Log.Info("Refresher stopped")
			return
		case <-ticker.C:
			r.tick(ctx)
		}
	}
}

func (r *Refresher) tick(ctx context.Context) {
	tickCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	lists, err := r.lister.ListAll(tickCtx)
	if err != nil {
		logger.Log.Errorw("refresh tick: failed to list watchlists", "error", err)
		return
	}

	syms := union(lists)
	if len(syms) == 0 {
		return
	}

	r.warmer.WarmCache(tickCtx, syms)
	logger.Log.Infow("refresh tick complete", "symbols", len(syms))
}

// union parses every stored symbol string and deduplicates the result,
// keeping first-seen order.
func union(lists []string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, list := range lists {
		for _, s := range symbols.Parse(list) {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}
