package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/akulinkin/stockboard/internal/middlewares"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func authedRequest(method, target string, body *bytes.Buffer, userID int64) *http.Request {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, body)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	return req.WithContext(middlewares.SetUserIDToContext(req.Context(), userID))
}

func TestWatchlistGetHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		mockSetup    func(m *MockWatchlistGetter)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name: "success",
			mockSetup: func(m *MockWatchlistGetter) {
				m.EXPECT().
					Get(gomock.Any(), int64(1)).
					Return("TSLA, NVDA, 1810.HK, ^HSI, ETH-USD", nil)
			},
			expectedCode: 200,
			expectedBody: map[string]string{"symbols": "TSLA, NVDA, 1810.HK, ^HSI, ETH-USD"},
		},
		{
			name: "empty when never saved",
			mockSetup: func(m *MockWatchlistGetter) {
				m.EXPECT().
					Get(gomock.Any(), int64(1)).
					Return("", nil)
			},
			expectedCode: 200,
			expectedBody: map[string]string{"symbols": ""},
		},
		{
			name: "internal server error",
			mockSetup: func(m *MockWatchlistGetter) {
				m.EXPECT().
					Get(gomock.Any(), int64(1)).
					Return("", errors.New("database failure"))
			},
			expectedCode: 500,
			expectedBody: map[string]string{"error": "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockWatchlistGetter(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewWatchlistGetHandler(mockSvc)

			req := authedRequest(http.MethodGet, "/watchlist", nil, 1)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]string
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}

func TestWatchlistGetHandler_NoAuthContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewWatchlistGetHandler(NewMockWatchlistGetter(ctrl))

	req := httptest.NewRequest(http.MethodGet, "/watchlist", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestWatchlistSaveHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		symbols      string
		mockSetup    func(m *MockWatchlistSaver)
		expectedCode int
		expectedBody map[string]string
		rawBody      bool
	}{
		{
			name:    "success",
			symbols: "AAPL, GOOG",
			mockSetup: func(m *MockWatchlistSaver) {
				m.EXPECT().
					Save(gomock.Any(), int64(1), "AAPL, GOOG").
					Return(nil)
			},
			expectedCode: 200,
			expectedBody: map[string]string{"message": "Watchlist saved"},
		},
		{
			name:    "internal server error",
			symbols: "AAPL",
			mockSetup: func(m *MockWatchlistSaver) {
				m.EXPECT().
					Save(gomock.Any(), int64(1), "AAPL").
					Return(errors.New("database failure"))
			},
			expectedCode: 500,
			expectedBody: map[string]string{"error": "Internal server error"},
		},
		{
			name:         "invalid json",
			rawBody:      true,
			expectedCode: 400,
			expectedBody: map[string]string{"error": "invalid request body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockWatchlistSaver(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewWatchlistSaveHandler(mockSvc)

			var body *bytes.Buffer
			if tt.rawBody {
				body = bytes.NewBufferString("{invalid json}")
			} else {
				bodyBytes, _ := json.Marshal(WatchlistSaveRequest{Symbols: tt.symbols})
				body = bytes.NewBuffer(bodyBytes)
			}

			req := authedRequest(http.MethodPut, "/watchlist", body, 1)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]string
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}

func TestWatchlistSaveHandler_NoAuthContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewWatchlistSaveHandler(NewMockWatchlistSaver(ctrl))

	req := httptest.NewRequest(http.MethodPut, "/watchlist", bytes.NewBufferString(`{"symbols":"AAPL"}`))
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
