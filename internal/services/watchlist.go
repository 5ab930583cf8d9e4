package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/akulinkin/stockboard/internal/logger"
	"github.com/akulinkin/stockboard/internal/models"
	"github.com/akulinkin/stockboard/internal/symbols"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// WatchlistReader defines read operations for watchlists.
type WatchlistReader interface {
	GetByUserID(ctx context.Context, userID int64) (string, error)
}

// WatchlistWriter defines write operations for watchlists.
type WatchlistWriter interface {
	Save(ctx context.Context, userID int64, symbols string) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// WatchlistService handles watchlist reads/saves and Kafka publishing.
type WatchlistService struct {
	readRepo    WatchlistReader
	writeRepo   WatchlistWriter
	kafkaWriter KafkaWriter
}

// NewWatchlistService creates a new WatchlistService.
func NewWatchlistService(readRepo WatchlistReader, writeRepo WatchlistWriter, kafkaWriter KafkaWriter) *WatchlistService {
	return &WatchlistService{
		readRepo:    readRepo,
		writeRepo:   writeRepo,
		kafkaWriter: kafkaWriter,
	}
}

// Get returns the user's stored symbol string, empty if none exists yet.
func (s *WatchlistService) Get(ctx context.Context, userID int64) (string, error) {
	list, err := s.readRepo.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get watchlist", "userID", userID, "error", err)
		return "", err
	}
	return list, nil
}

// Symbols returns the user's watchlist parsed into individual tickers.
func (s *WatchlistService) Symbols(ctx context.Context, userID int64) ([]string, error) {
	list, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return symbols.Parse(list), nil
}

// Save normalizes and stores the user's symbol string, then publishes an
// update event.
func (s *WatchlistService) Save(ctx context.Context, userID int64, rawSymbols string) error {
	normalized := symbols.Normalize(rawSymbols)

	if err := s.writeRepo.Save(ctx, userID, normalized); err != nil {
		logger.Log.Errorw("failed to save watchlist", "userID", userID, "error", err)
		return err
	}

	s.publishUpdate(ctx, models.WatchlistEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		UserID:    userID,
		Symbols:   normalized,
	})

	return nil
}

// publishUpdate publishes a watchlist update to Kafka.
func (s *WatchlistService) publishUpdate(ctx context.Context, event models.WatchlistEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal watchlist event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish watchlist event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Watchlist event published to Kafka", "event_id", event.EventID, "user_id", event.UserID)
	}
}
