package repositories

import (
	"context"
	"database/sql"
	"strings"

	"github.com/akulinkin/stockboard/internal/logger"
	"github.com/jmoiron/sqlx"
)

// WatchlistWriteRepository handles watchlist write operations
type WatchlistWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewWatchlistWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *WatchlistWriteRepository {
	return &WatchlistWriteRepository{db: db, txGetter: txGetter}
}

// Save performs an UPSERT: creates the watchlist row if the user has none,
// otherwise overwrites its contents and bumps the timestamp.
func (r *WatchlistWriteRepository) Save(ctx context.Context, userID int64, symbols string) error {
	const query = `
		INSERT INTO watchlists (user_id, symbols, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET symbols = EXCLUDED.symbols, updated_at = NOW()
	`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	args := []any{userID, symbols}
	res, err := executor.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// WatchlistReadRepository handles watchlist read operations
type WatchlistReadRepository struct {
	db *sqlx.DB
}

func NewWatchlistReadRepository(db *sqlx.DB) *WatchlistReadRepository {
	return &WatchlistReadRepository{db: db}
}

// GetByUserID returns the stored symbol string for a user, or an empty
// string if no row exists.
func (r *WatchlistReadRepository) GetByUserID(ctx context.Context, userID int64) (string, error) {
	const query = `
		SELECT symbols
		FROM watchlists
		WHERE user_id = $1
	`

	var symbols string
	err := r.db.GetContext(ctx, &symbols, query, userID)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", symbols,
		"error", err,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", err
	}
	return symbols, nil
}

// ListAll returns the symbol strings of every stored watchlist. The
// background refresher unions them to know which quotes to keep warm.
func (r *WatchlistReadRepository) ListAll(ctx context.Context) ([]string, error) {
	const query = `
		SELECT symbols
		FROM watchlists
	`

	var all []string
	err := r.db.SelectContext(ctx, &all, query)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(all),
		"error", err,
	)

	return all, err
}
