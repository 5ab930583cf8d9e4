package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/akulinkin/stockboard/internal/logger"
	"github.com/akulinkin/stockboard/internal/middlewares"
	"github.com/akulinkin/stockboard/internal/models"
	"github.com/akulinkin/stockboard/internal/symbols"
)

// Quoter defines the quote lookup interface.
type Quoter interface {
	GetQuotes(ctx context.Context, symbols []string) []models.Quote
}

// WatchlistSymbolser returns the user's watchlist parsed into tickers.
type WatchlistSymbolser interface {
	Symbols(ctx context.Context, userID int64) ([]string, error)
}

// QuotesResponse represents a list of quote rows
// swagger:model QuotesResponse
type QuotesResponse struct {
	// One row per requested symbol, in request order
	Quotes []models.Quote `json:"quotes"`
}

// QuotesErrorResponse represents an error response for quote lookups
// swagger:model QuotesErrorResponse
type QuotesErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewWatchlistQuotesHandler returns an HTTP handler serving quote rows for
// the authenticated user's watchlist. This is the dashboard table's data
// source.
// @Summary Get quotes for the authenticated user's watchlist
// @Tags quotes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.QuotesResponse "One quote row per watchlist symbol"
// @Failure 401 "Missing or invalid token"
// @Failure 500 {object} handlers.QuotesErrorResponse "Internal server error"
// @Router /watchlist/quotes [get]
func NewWatchlistQuotesHandler(watchlist WatchlistSymbolser, quoter Quoter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		syms, err := watchlist.Symbols(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(QuotesErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(QuotesResponse{
			Quotes: quoter.GetQuotes(r.Context(), syms),
		})
	}
}

// NewQuotesHandler returns an HTTP handler serving quote rows for an
// ad hoc comma-separated symbol list.
// @Summary Get quotes for arbitrary symbols
// @Tags quotes
// @Produce json
// @Security BearerAuth
// @Param symbols query string true "Comma-separated ticker symbols"
// @Success 200 {object} handlers.QuotesResponse "One quote row per requested symbol"
// @Failure 400 {object} handlers.QuotesErrorResponse "Missing symbols parameter"
// @Failure 401 "Missing or invalid token"
// @Router /quotes [get]
func NewQuotesHandler(quoter Quoter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		syms := symbols.Parse(r.URL.Query().Get("symbols"))
		if len(syms) == 0 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(QuotesErrorResponse{
				Error: "symbols query parameter is required",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(QuotesResponse{
			Quotes: quoter.GetQuotes(r.Context(), syms),
		})
	}
}
