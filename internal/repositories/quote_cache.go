package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/akulinkin/stockboard/internal/logger"
	"github.com/akulinkin/stockboard/internal/models"
	"github.com/redis/go-redis/v9"
)

// QuoteCacheRepository provides cached quote snapshots using Redis
type QuoteCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached quotes
}

// NewQuoteCacheRepository creates a new repository instance with the given TTL
func NewQuoteCacheRepository(client *redis.Client, expiration time.Duration) *QuoteCacheRepository {
	return &QuoteCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func quoteKey(symbol string) string {
	return fmt.Sprintf("quote:%s", symbol)
}

// GetQuote fetches a cached quote for a symbol. Returns nil without error on a cache miss.
func (r *QuoteCacheRepository) GetQuote(ctx context.Context, symbol string) (*models.Quote, error) {
	key := quoteKey(symbol)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"result", val,
			"error", err,
		)
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var q models.Quote
	if err := json.Unmarshal([]byte(val), &q); err != nil {
		logger.Log.Infow(
			"key", key,
			"value", val,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"result", q,
		"error", nil,
	)

	return &q, nil
}

// SetQuote caches a quote snapshot in Redis with expiration
func (r *QuoteCacheRepository) SetQuote(ctx context.Context, q models.Quote) error {
	key := quoteKey(q.Symbol)

	data, err := json.Marshal(q)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"quote", q,
		"result", "ok",
		"error", err,
	)

	return err
}
