package services

import (
	"context"

	"github.com/akulinkin/stockboard/internal/logger"
	"github.com/akulinkin/stockboard/internal/models"
)

// QuoteFetcher retrieves quote snapshots from the market-data source.
// It always returns one row per requested symbol, in input order.
type QuoteFetcher interface {
	FetchQuotes(ctx context.Context, symbols []string) []models.Quote
}

// QuoteCache caches quote snapshots.
type QuoteCache interface {
	GetQuote(ctx context.Context, symbol string) (*models.Quote, error)
	SetQuote(ctx context.Context, q models.Quote) error
}

// QuoteService serves quote rows cache-first, fetching only the misses.
type QuoteService struct {
	fetcher QuoteFetcher
	cache   QuoteCache
}

// NewQuoteService creates a new QuoteService.
func NewQuoteService(fetcher QuoteFetcher, cache QuoteCache) *QuoteService {
	return &QuoteService{
		fetcher: fetcher,
		cache:   cache,
	}
}

// GetQuotes returns one row per requested symbol, in input order. Cached
// rows are served from Redis; the rest are fetched in one batch and cached.
// Placeholder rows are never cached, so an unavailable symbol is retried on
// the next lookup.
func (s *QuoteService) GetQuotes(ctx context.Context, symbols []string) []models.Quote {
	rows := make([]models.Quote, len(symbols))
	missing := make([]string, 0, len(symbols))
	missingAt := make(map[string][]int, len(symbols))

	for i, sym := range symbols {
		if s.cache != nil {
			cached, err := s.cache.GetQuote(ctx, sym)
			if err != nil {
				logger.Log.Warnw("quote cache read failed", "symbol", sym, "error", err)
			}
			if cached != nil {
				rows[i] = *cached
				continue
			}
		}
		if _, seen := missingAt[sym]; !seen {
			missing = append(missing, sym)
		}
		missingAt[sym] = append(missingAt[sym], i)
	}

	if len(missing) == 0 {
		return rows
	}

	for _, q := range s.fetcher.FetchQuotes(ctx, missing) {
		for _, i := range missingAt[q.Symbol] {
			rows[i] = q
		}
		if s.cache != nil && !q.Unavailable {
			if err := s.cache.SetQuote(ctx, q); err != nil {
				logger.Log.Warnw("quote cache write failed", "symbol", q.Symbol, "error", err)
			}
		}
	}

	return rows
}

// WarmCache fetches and caches quotes for the given symbols without
// returning rows. Used by the background refresher.
func (s *QuoteService) WarmCache(ctx context.Context, symbols []string) {
	if len(symbols) == 0 {
		return
	}
	for _, q := range s.fetcher.FetchQuotes(ctx, symbols) {
		if s.cache == nil || q.Unavailable {
			continue
		}
		if err := s.cache.SetQuote(ctx, q); err != nil {
			logger.Log.Warnw("quote cache write failed", "symbol", q.Symbol, "error", err)
		}
	}
}
