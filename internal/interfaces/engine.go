package interfaces

import (
	"context"

	"market-pulse/internal/types"
)

// Engine turns momentum and news for a ticker into a cached PulseVerdict.
// Evaluate never fails; provider errors degrade to a neutral verdict.
type Engine interface {
	Evaluate(ctx context.Context, ticker string, momentum types.MomentumResult, news []types.NewsItem) types.PulseVerdict
}
