package interfaces

import (
	"context"

	"market-pulse/internal/types"
)

// SeriesProvider fetches a daily closing-price series for a ticker.
// Implementations return an error (or an empty series) when the upstream
// response lacks the expected series field.
type SeriesProvider interface {
	Name() string
	FetchDailySeries(ctx context.Context, ticker string) (types.PriceSeries, error)
}

// NewsProvider fetches recent headlines for a ticker, most recent first.
type NewsProvider interface {
	Name() string
	FetchHeadlines(ctx context.Context, ticker string, limit int) ([]types.NewsItem, error)
}
