package news

import (
	"context"
	"time"

	"market-pulse/internal/interfaces"
	"market-pulse/internal/logger"
	"market-pulse/internal/trace"
	"market-pulse/internal/types"
)

// Service fetches a bounded set of recent headlines for a ticker. It
// never fails: provider errors degrade to an empty list. When more than
// one provider is configured, later providers are consulted only after
// earlier ones return nothing.
type Service struct {
	providers []interfaces.NewsProvider
	limit     int
	timeout   time.Duration
}

// NewService creates a headline service over an ordered provider list.
func NewService(limit int, timeout time.Duration, providers ...interfaces.NewsProvider) *Service {
	return &Service{providers: providers, limit: limit, timeout: timeout}
}

// Latest returns at most the configured number of headlines, most recent first.
func (s *Service) Latest(ctx context.Context, ticker string) []types.NewsItem {
	ctx, span := trace.StartSpan(ctx, "news.Latest")
	defer span.End()

	for _, p := range s.providers {
		cctx, cancel := context.WithTimeout(ctx, s.timeout)
		items, err := p.FetchHeadlines(cctx, ticker, s.limit)
		cancel()
		if err != nil {
			logger.Warn(ctx, "News provider failed", "provider", p.Name(), "ticker", ticker, "error", err)
			continue
		}
		if len(items) == 0 {
			logger.Debug(ctx, "News provider returned no articles", "provider", p.Name(), "ticker", ticker)
			continue
		}
		if len(items) > s.limit {
			items = items[:s.limit]
		}
		return items
	}
	return []types.NewsItem{}
}
