package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/akulinkin/stockboard/internal/models"
	"github.com/akulinkin/stockboard/internal/services"
	"github.com/golang/mock/gomock"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

func TestWatchlistService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockWatchlistReader(ctrl)
	mockWriter := services.NewMockWatchlistWriter(ctrl)

	svc := services.NewWatchlistService(mockReader, mockWriter, nil)

	t.Run("returns stored string", func(t *testing.T) {
		mockReader.EXPECT().
			GetByUserID(gomock.Any(), int64(1)).
			Return("AAPL, GOOG", nil)

		list, err := svc.Get(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, "AAPL, GOOG", list)
	})

	t.Run("empty when no row", func(t *testing.T) {
		mockReader.EXPECT().
			GetByUserID(gomock.Any(), int64(2)).
			Return("", nil)

		list, err := svc.Get(context.Background(), 2)
		assert.NoError(t, err)
		assert.Equal(t, "", list)
	})

	t.Run("propagates reader error", func(t *testing.T) {
		mockReader.EXPECT().
			GetByUserID(gomock.Any(), int64(3)).
			Return("", errors.New("db error"))

		_, err := svc.Get(context.Background(), 3)
		assert.EqualError(t, err, "db error")
	})
}

func TestWatchlistService_Symbols(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockWatchlistReader(ctrl)
	svc := services.NewWatchlistService(mockReader, services.NewMockWatchlistWriter(ctrl), nil)

	mockReader.EXPECT().
		GetByUserID(gomock.Any(), int64(1)).
		Return(models.DefaultWatchlist, nil)

	syms, err := svc.Symbols(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, []string{"TSLA", "NVDA", "1810.HK", "^HSI", "ETH-USD"}, syms)
}

func TestWatchlistService_Save(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockWatchlistReader(ctrl)
	mockWriter := services.NewMockWatchlistWriter(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)

	svc := services.NewWatchlistService(mockReader, mockWriter, mockKafka)

	t.Run("normalizes before storing and publishes event", func(t *testing.T) {
		mockWriter.EXPECT().
			Save(gomock.Any(), int64(1), "AAPL, GOOG").
			Return(nil)

		var published kafka.Message
		mockKafka.EXPECT().
			WriteMessages(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
				published = msgs[0]
				return nil
			})

		err := svc.Save(context.Background(), 1, "  AAPL ,, GOOG , ")
		assert.NoError(t, err)

		var event models.WatchlistEvent
		assert.NoError(t, json.Unmarshal(published.Value, &event))
		assert.Equal(t, int64(1), event.UserID)
		assert.Equal(t, "AAPL, GOOG", event.Symbols)
		assert.NotEmpty(t, event.EventID)
	})

	t.Run("write error is returned, nothing published", func(t *testing.T) {
		mockWriter.EXPECT().
			Save(gomock.Any(), int64(1), "AAPL").
			Return(errors.New("db error"))

		err := svc.Save(context.Background(), 1, "AAPL")
		assert.EqualError(t, err, "db error")
	})

	t.Run("kafka failure does not fail the save", func(t *testing.T) {
		mockWriter.EXPECT().
			Save(gomock.Any(), int64(1), "AAPL").
			Return(nil)
		mockKafka.EXPECT().
			WriteMessages(gomock.Any(), gomock.Any()).
			Return(errors.New("broker down"))

		err := svc.Save(context.Background(), 1, "AAPL")
		assert.NoError(t, err)
	})
}

func TestWatchlistService_Save_NoKafkaWriter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := services.NewMockWatchlistWriter(ctrl)
	svc := services.NewWatchlistService(services.NewMockWatchlistReader(ctrl), mockWriter, nil)

	mockWriter.EXPECT().
		Save(gomock.Any(), int64(1), "AAPL").
		Return(nil)

	assert.NoError(t, svc.Save(context.Background(), 1, "AAPL"))
}
