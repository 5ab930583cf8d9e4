package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/akulinkin/stockboard/internal/logger"
	"github.com/akulinkin/stockboard/internal/middlewares"
)

// WatchlistGetter defines the read side of the watchlist service.
type WatchlistGetter interface {
	Get(ctx context.Context, userID int64) (string, error)
}

// WatchlistSaver defines the write side of the watchlist service.
type WatchlistSaver interface {
	Save(ctx context.Context, userID int64, symbols string) error
}

// WatchlistResponse represents a user's stored watchlist
// swagger:model WatchlistResponse
type WatchlistResponse struct {
	// Comma-separated ticker symbols
	// default: TSLA, NVDA, 1810.HK, ^HSI, ETH-USD
	Symbols string `json:"symbols"`
}

// WatchlistSaveRequest represents the JSON body for saving a watchlist
// swagger:model WatchlistSaveRequest
type WatchlistSaveRequest struct {
	// Comma-separated ticker symbols
	// required: true
	// default: AAPL, GOOG
	Symbols string `json:"symbols"`
}

// WatchlistSaveResponse represents a successful save
// swagger:model WatchlistSaveResponse
type WatchlistSaveResponse struct {
	// Success message
	// default: Watchlist saved
	Message string `json:"message"`
}

// WatchlistErrorResponse represents an error response for watchlist operations
// swagger:model WatchlistErrorResponse
type WatchlistErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewWatchlistGetHandler returns an HTTP handler serving the user's watchlist.
// @Summary Get the authenticated user's watchlist
// @Tags watchlist
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.WatchlistResponse "Stored symbol string, empty if never saved"
// @Failure 401 "Missing or invalid token"
// @Failure 500 {object} handlers.WatchlistErrorResponse "Internal server error"
// @Router /watchlist [get]
func NewWatchlistGetHandler(svc WatchlistGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		list, err := svc.Get(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(WatchlistErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(WatchlistResponse{
			Symbols: list,
		})
	}
}

// NewWatchlistSaveHandler returns an HTTP handler saving the user's watchlist.
// @Summary Save the authenticated user's watchlist
// @Tags watchlist
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param watchlistSaveRequest body handlers.WatchlistSaveRequest true "Watchlist save request"
// @Success 200 {object} handlers.WatchlistSaveResponse "Watchlist saved"
// @Failure 400 {object} handlers.WatchlistErrorResponse "Invalid request body"
// @Failure 401 "Missing or invalid token"
// @Failure 500 {object} handlers.WatchlistErrorResponse "Internal server error"
// @Router /watchlist [put]
func NewWatchlistSaveHandler(svc WatchlistSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req WatchlistSaveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(WatchlistErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		if err := svc.Save(r.Context(), userID, req.Symbols); err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(WatchlistErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(WatchlistSaveResponse{
			Message: "Watchlist saved",
		})
	}
}
