package models

import (
	"time"
)

// DefaultWatchlist is the symbol list seeded for every new user at registration.
const DefaultWatchlist = "TSLA, NVDA, 1810.HK, ^HSI, ETH-USD"

// WatchlistDB represents a watchlist record in the database
type WatchlistDB struct {
	WatchlistID int64     `json:"id" db:"id"`                 // Primary key
	UserID      int64     `json:"user_id" db:"user_id"`       // Owning user
	Symbols     string    `json:"symbols" db:"symbols"`       // Comma-separated ticker symbols
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}

// WatchlistEvent is published to Kafka whenever a user saves their watchlist.
type WatchlistEvent struct {
	EventID   string `json:"event_id"`
	Timestamp int64  `json:"timestamp"`
	UserID    int64  `json:"user_id"`
	Symbols   string `json:"symbols"`
}
