package news

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"market-pulse/internal/types"
)

type stubNewsProvider struct {
	name  string
	items []types.NewsItem
	err   error
	calls int
}

func (s *stubNewsProvider) Name() string { return s.name }

func (s *stubNewsProvider) FetchHeadlines(_ context.Context, _ string, _ int) ([]types.NewsItem, error) {
	s.calls++
	return s.items, s.err
}

func headlines(n int) []types.NewsItem {
	items := make([]types.NewsItem, n)
	for i := range items {
		items[i] = types.NewsItem{Title: "headline", URL: "https://example.com"}
	}
	return items
}

func TestLatestProviderError(t *testing.T) {
	p := &stubNewsProvider{name: "newsapi", err: errors.New("boom")}
	svc := NewService(5, time.Second, p)

	got := svc.Latest(context.Background(), "AAPL")

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestLatestTruncatesToLimit(t *testing.T) {
	p := &stubNewsProvider{name: "newsapi", items: headlines(9)}
	svc := NewService(5, time.Second, p)

	got := svc.Latest(context.Background(), "AAPL")

	assert.Len(t, got, 5)
}

func TestLatestFallbackOnlyWhenPrimaryEmpty(t *testing.T) {
	primary := &stubNewsProvider{name: "newsapi", items: headlines(3)}
	fallback := &stubNewsProvider{name: "google-news", items: headlines(2)}
	svc := NewService(5, time.Second, primary, fallback)

	got := svc.Latest(context.Background(), "AAPL")

	assert.Len(t, got, 3)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 0, fallback.calls)
}

func TestLatestFallbackAfterEmptyPrimary(t *testing.T) {
	primary := &stubNewsProvider{name: "newsapi"}
	fallback := &stubNewsProvider{name: "google-news", items: headlines(2)}
	svc := NewService(5, time.Second, primary, fallback)

	got := svc.Latest(context.Background(), "AAPL")

	assert.Len(t, got, 2)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, fallback.calls)
}
