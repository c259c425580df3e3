package prices

import (
	"context"
	"math"
	"sort"
	"time"

	"market-pulse/internal/interfaces"
	"market-pulse/internal/logger"
	"market-pulse/internal/trace"
	"market-pulse/internal/types"
)

// momentumWindow is the number of closing prices used per resolution,
// yielding up to momentumWindow-1 day-over-day returns.
const momentumWindow = 6

// Resolver derives a momentum score from a daily closing-price series,
// trying each provider in order until one yields a usable series.
type Resolver struct {
	providers []interfaces.SeriesProvider
	timeout   time.Duration
}

// NewResolver creates a resolver over an ordered provider chain.
func NewResolver(timeout time.Duration, providers ...interfaces.SeriesProvider) *Resolver {
	return &Resolver{providers: providers, timeout: timeout}
}

// Resolve computes the momentum result for a ticker. It never fails: if
// no provider yields a series the zero result is returned.
func (r *Resolver) Resolve(ctx context.Context, ticker string) types.MomentumResult {
	ctx, span := trace.StartSpan(ctx, "prices.Resolve")
	defer span.End()

	series := r.fetchSeries(ctx, ticker)
	if len(series) == 0 {
		logger.Warn(ctx, "No price series available, returning zero momentum", "ticker", ticker)
		return types.MomentumResult{Returns: []float64{}}
	}
	return Momentum(series)
}

// fetchSeries walks the provider chain, stopping at the first usable series.
func (r *Resolver) fetchSeries(ctx context.Context, ticker string) types.PriceSeries {
	for _, p := range r.providers {
		cctx, cancel := context.WithTimeout(ctx, r.timeout)
		series, err := p.FetchDailySeries(cctx, ticker)
		cancel()
		if err != nil {
			logger.Warn(ctx, "Price provider failed, trying next", "provider", p.Name(), "ticker", ticker, "error", err)
			continue
		}
		if len(series) == 0 {
			continue
		}
		logger.Debug(ctx, "Price series resolved", "provider", p.Name(), "ticker", ticker, "dates", len(series))
		return series
	}
	return nil
}

// Momentum computes day-over-day percentage returns over the most recent
// closes of a series, most recent first, and their mean.
func Momentum(series types.PriceSeries) types.MomentumResult {
	dates := make([]string, 0, len(series))
	for d := range series {
		dates = append(dates, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	if len(dates) > momentumWindow {
		dates = dates[:momentumWindow]
	}

	closes := make([]float64, len(dates))
	for i, d := range dates {
		closes[i] = series[d]
	}

	returns := make([]float64, 0, momentumWindow-1)
	for i := 0; i+1 < len(closes); i++ {
		r := (closes[i] - closes[i+1]) / closes[i+1] * 100
		returns = append(returns, round2(r))
	}

	var score float64
	if len(returns) > 0 {
		sum := 0.0
		for _, r := range returns {
			sum += r
		}
		score = round2(sum / float64(len(returns)))
	}

	return types.MomentumResult{Returns: returns, Score: score}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
