package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/akulinkin/stockboard/internal/models"
	"github.com/akulinkin/stockboard/internal/services"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestQuoteService_GetQuotes_CacheFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFetcher := services.NewMockQuoteFetcher(ctrl)
	mockCache := services.NewMockQuoteCache(ctrl)

	svc := services.NewQuoteService(mockFetcher, mockCache)

	cached := models.Quote{Symbol: "TSLA", Name: "Tesla, Inc.", Price: 250}
	fetched := models.Quote{Symbol: "NVDA", Name: "NVIDIA Corporation", Price: 120}

	mockCache.EXPECT().GetQuote(gomock.Any(), "TSLA").Return(&cached, nil)
	mockCache.EXPECT().GetQuote(gomock.Any(), "NVDA").Return(nil, nil)

	// only the miss is fetched, and backfilled into the cache
	mockFetcher.EXPECT().
		FetchQuotes(gomock.Any(), []string{"NVDA"}).
		Return([]models.Quote{fetched})
	mockCache.EXPECT().SetQuote(gomock.Any(), fetched).Return(nil)

	rows := svc.GetQuotes(context.Background(), []string{"TSLA", "NVDA"})
	assert.Equal(t, []models.Quote{cached, fetched}, rows)
}

func TestQuoteService_GetQuotes_PlaceholdersNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFetcher := services.NewMockQuoteFetcher(ctrl)
	mockCache := services.NewMockQuoteCache(ctrl)

	svc := services.NewQuoteService(mockFetcher, mockCache)

	mockCache.EXPECT().GetQuote(gomock.Any(), "???").Return(nil, nil)
	mockFetcher.EXPECT().
		FetchQuotes(gomock.Any(), []string{"???"}).
		Return([]models.Quote{models.Placeholder("???")})
	// no SetQuote expected

	rows := svc.GetQuotes(context.Background(), []string{"???"})
	assert.Len(t, rows, 1)
	assert.Equal(t, models.UnavailableName, rows[0].Name)
	assert.True(t, rows[0].Unavailable)
}

func TestQuoteService_GetQuotes_CacheErrorFallsThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFetcher := services.NewMockQuoteFetcher(ctrl)
	mockCache := services.NewMockQuoteCache(ctrl)

	svc := services.NewQuoteService(mockFetcher, mockCache)

	q := models.Quote{Symbol: "AAPL", Name: "Apple Inc.", Price: 190}

	mockCache.EXPECT().GetQuote(gomock.Any(), "AAPL").Return(nil, errors.New("redis down"))
	mockFetcher.EXPECT().
		FetchQuotes(gomock.Any(), []string{"AAPL"}).
		Return([]models.Quote{q})
	mockCache.EXPECT().SetQuote(gomock.Any(), q).Return(errors.New("redis down"))

	rows := svc.GetQuotes(context.Background(), []string{"AAPL"})
	assert.Equal(t, []models.Quote{q}, rows)
}

func TestQuoteService_GetQuotes_DuplicateSymbols(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFetcher := services.NewMockQuoteFetcher(ctrl)
	svc := services.NewQuoteService(mockFetcher, nil)

	q := models.Quote{Symbol: "AAPL", Name: "Apple Inc.", Price: 190}

	// duplicates collapse to a single upstream request but keep both rows
	mockFetcher.EXPECT().
		FetchQuotes(gomock.Any(), []string{"AAPL"}).
		Return([]models.Quote{q})

	rows := svc.GetQuotes(context.Background(), []string{"AAPL", "AAPL"})
	assert.Equal(t, []models.Quote{q, q}, rows)
}

func TestQuoteService_WarmCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFetcher := services.NewMockQuoteFetcher(ctrl)
	mockCache := services.NewMockQuoteCache(ctrl)

	svc := services.NewQuoteService(mockFetcher, mockCache)

	good := models.Quote{Symbol: "TSLA", Name: "Tesla, Inc.", Price: 250}
	bad := models.Placeholder("???")

	mockFetcher.EXPECT().
		FetchQuotes(gomock.Any(), []string{"TSLA", "???"}).
		Return([]models.Quote{good, bad})
	mockCache.EXPECT().SetQuote(gomock.Any(), good).Return(nil)

	svc.WarmCache(context.Background(), []string{"TSLA", "???"})
}

func TestQuoteService_WarmCache_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := services.NewQuoteService(services.NewMockQuoteFetcher(ctrl), services.NewMockQuoteCache(ctrl))
	svc.WarmCache(context.Background(), nil)
}
