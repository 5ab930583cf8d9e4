// Package quotes fetches market-data snapshots from a Yahoo-style quote API.
package quotes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/akulinkin/stockboard/internal/logger"
	"github.com/akulinkin/stockboard/internal/models"
)

// Client fetches quote snapshots over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Opt configures a Client.
type Opt func(*Client)

// WithBaseURL overrides the quote API base URL.
func WithBaseURL(base string) Opt {
	return func(c *Client) { c.baseURL = strings.TrimRight(base, "/") }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Opt {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// New creates a quote client.
func New(opts ...Opt) *Client {
	c := &Client{
		baseURL:    "https://query1.finance.yahoo.com",
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// quoteResponse mirrors the relevant part of the upstream payload.
type quoteResponse struct {
	QuoteResponse struct {
		Result []struct {
			Symbol                     string  `json:"symbol"`
			LongName                   string  `json:"longName"`
			ShortName                  string  `json:"shortName"`
			RegularMarketPrice         float64 `json:"regularMarketPrice"`
			RegularMarketChange        float64 `json:"regularMarketChange"`
			RegularMarketChangePercent float64 `json:"regularMarketChangePercent"`
			RegularMarketVolume        int64   `json:"regularMarketVolume"`
		} `json:"result"`
	} `json:"quoteResponse"`
}

// FetchQuotes returns one row per requested symbol, in input order.
// Symbols the upstream cannot resolve produce placeholder rows; a failed
// batch request produces placeholder rows for every requested symbol.
// Callers rely on the 1:1 correspondence for table rendering.
func (c *Client) FetchQuotes(ctx context.Context, symbols []string) []models.Quote {
	rows := make([]models.Quote, 0, len(symbols))
	if len(symbols) == 0 {
		return rows
	}

	bySymbol, err := c.fetch(ctx, symbols)
	if err != nil {
		logger.Log.Errorw("quote batch fetch failed", "symbols", symbols, "error", err)
	}

	for _, s := range symbols {
		q, ok := bySymbol[s]
		if !ok {
			rows = append(rows, models.Placeholder(s))
			continue
		}
		rows = append(rows, q)
	}
	return rows
}

func (c *Client) fetch(ctx context.Context, symbols []string) (map[string]models.Quote, error) {
	u := fmt.Sprintf("%s/v7/finance/quote?symbols=%s",
		c.baseURL, url.QueryEscape(strings.Join(symbols, ",")))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("quote API returned status %d", resp.StatusCode)
	}

	var payload quoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	bySymbol := make(map[string]models.Quote, len(payload.QuoteResponse.Result))
	for _, r := range payload.QuoteResponse.Result {
		name := r.LongName
		if name == "" {
			name = r.ShortName
		}
		if name == "" {
			name = r.Symbol
		}
		if r.RegularMarketPrice == 0 {
			// upstream answered but has no price for the symbol
			continue
		}
		bySymbol[r.Symbol] = models.Quote{
			Symbol:    r.Symbol,
			Name:      name,
			Price:     r.RegularMarketPrice,
			Change:    r.RegularMarketChange,
			ChangePct: r.RegularMarketChangePercent,
			Volume:    r.RegularMarketVolume,
		}
	}
	return bySymbol, nil
}
