package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"market-pulse/internal/store"
	"market-pulse/internal/types"
)

type stubService struct {
	lastTicker string
}

func (s *stubService) MarketPulse(_ context.Context, ticker string) types.PulseResponse {
	s.lastTicker = ticker
	return types.PulseResponse{
		Ticker:      "AAPL",
		AsOf:        "2024-03-08",
		Momentum:    types.MomentumResult{Returns: []float64{1.1}, Score: 1.1},
		News:        []types.NewsItem{},
		Pulse:       "bullish",
		Explanation: "up and to the right",
		Sentiment:   types.SentimentSummary{Label: "neutral", Summary: "No recent news headlines."},
	}
}

func testServer(t *testing.T) (*Server, *stubService) {
	t.Helper()
	cfg, err := store.LoadConfig("nonexistent.yaml")
	require.NoError(t, err)
	svc := &stubService{}
	return New(cfg, svc), svc
}

func TestMarketPulseEndpoint(t *testing.T) {
	srv, svc := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/market-pulse?ticker=aapl", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "aapl", svc.lastTicker)

	var got types.PulseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "AAPL", got.Ticker)
	assert.Equal(t, "bullish", got.Pulse)
	assert.Equal(t, "up and to the right", got.Explanation)
}

func TestMarketPulseMissingTicker(t *testing.T) {
	srv, _ := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/market-pulse", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthEndpoint(t *testing.T) {
	srv, _ := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
