package pulse

import (
	"context"
	"strings"
	"sync"
	"time"

	"market-pulse/internal/interfaces"
	"market-pulse/internal/logger"
	"market-pulse/internal/news"
	"market-pulse/internal/prices"
	"market-pulse/internal/trace"
	"market-pulse/internal/types"
)

// Service assembles the composite market-pulse response for a ticker.
// Momentum resolution and news fetching are independent and run
// concurrently; sentiment and the model call wait for both.
type Service struct {
	momentum *prices.Resolver
	news     *news.Service
	engine   interfaces.Engine
	now      func() time.Time
}

// NewService creates the composite service.
func NewService(momentum *prices.Resolver, newsSvc *news.Service, engine interfaces.Engine) *Service {
	return &Service{
		momentum: momentum,
		news:     newsSvc,
		engine:   engine,
		now:      time.Now,
	}
}

// MarketPulse produces the composite response. It never fails: every
// upstream failure has already been absorbed into a documented default
// by the component that owns it.
func (s *Service) MarketPulse(ctx context.Context, ticker string) types.PulseResponse {
	ctx, span := trace.StartSpan(ctx, "pulse.MarketPulse")
	defer span.End()

	symbol := strings.ToUpper(strings.TrimSpace(ticker))
	timer := logger.StartOperation(ctx, "market-pulse", "ticker", symbol)

	var (
		momentum types.MomentumResult
		items    []types.NewsItem
	)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		momentum = s.momentum.Resolve(ctx, symbol)
	}()
	go func() {
		defer wg.Done()
		items = s.news.Latest(ctx, symbol)
	}()
	wg.Wait()

	verdict := s.engine.Evaluate(ctx, symbol, momentum, items)
	timer.End("pulse", verdict.Pulse)

	return types.PulseResponse{
		Ticker:      symbol,
		AsOf:        s.now().Format("2006-01-02"),
		Momentum:    momentum,
		News:        items,
		Pulse:       verdict.Pulse,
		Explanation: verdict.Explanation,
		Sentiment:   verdict.Sentiment,
	}
}
