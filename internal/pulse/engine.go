package pulse

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"market-pulse/internal/interfaces"
	"market-pulse/internal/logger"
	"market-pulse/internal/news"
	"market-pulse/internal/trace"
	"market-pulse/internal/types"
)

// Fallback texts used when the model provider fails entirely. A fallback
// verdict is never cached: a transient provider failure must not poison
// future identical requests.
const (
	fallbackExplanation      = "Momentum is unclear due to an API error."
	fallbackSentimentSummary = "API error prevented sentiment analysis."
	unclearExplanation       = "Model response unclear. Defaulting to neutral."
	noNewsPlaceholder        = "No major recent news."
)

// EngineConfig bounds the verdict cache and the model call.
type EngineConfig struct {
	CacheCapacity int
	CacheTTL      time.Duration
	ModelTimeout  time.Duration
}

// DefaultEngineConfig returns the default engine configuration.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		CacheCapacity: 100,
		CacheTTL:      600 * time.Second,
		ModelTimeout:  15 * time.Second,
	}
}

// Engine produces a PulseVerdict per ticker, charging at most one model
// call per ticker per cache window.
type Engine struct {
	model   interfaces.ModelClient
	scorer  *news.Scorer
	cache   *verdictCache
	group   singleflight.Group
	timeout time.Duration
}

var _ interfaces.Engine = (*Engine)(nil)

// NewEngine creates a pulse engine.
func NewEngine(model interfaces.ModelClient, scorer *news.Scorer, cfg EngineConfig) *Engine {
	return &Engine{
		model:   model,
		scorer:  scorer,
		cache:   newVerdictCache(cfg.CacheCapacity, cfg.CacheTTL),
		timeout: cfg.ModelTimeout,
	}
}

// Evaluate returns the verdict for a ticker, from cache when live. The
// cache key is the uppercase ticker alone, not a hash of the inputs:
// within the TTL window repeat requests return the first verdict even
// when momentum or news have changed since.
func (e *Engine) Evaluate(ctx context.Context, ticker string, momentum types.MomentumResult, items []types.NewsItem) types.PulseVerdict {
	ctx, span := trace.StartSpan(ctx, "pulse.Evaluate")
	defer span.End()

	symbol := strings.ToUpper(strings.TrimSpace(ticker))

	if verdict, ok := e.cache.get(symbol); ok {
		logger.Debug(ctx, "Verdict cache hit", "ticker", symbol)
		return verdict
	}

	// Concurrent misses for the same ticker collapse into one model call.
	v, _, _ := e.group.Do(symbol, func() (any, error) {
		if verdict, ok := e.cache.get(symbol); ok {
			return verdict, nil
		}
		return e.evaluateMiss(ctx, symbol, momentum, items), nil
	})
	return v.(types.PulseVerdict)
}

func (e *Engine) evaluateMiss(ctx context.Context, symbol string, momentum types.MomentumResult, items []types.NewsItem) types.PulseVerdict {
	sentiment := e.scorer.Score(items)
	prompt := buildPrompt(symbol, momentum, sentiment, items)

	// The model call runs to completion or timeout even if the inbound
	// request goes away.
	cctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), e.timeout)
	defer cancel()

	raw, err := e.model.Generate(cctx, prompt)
	if err != nil {
		logger.ErrorWithErr(ctx, "Model provider failed", err, "ticker", symbol)
		return fallbackVerdict()
	}

	verdict, ok := parseVerdict(raw)
	if !ok {
		logger.Warn(ctx, "Model response not parseable, defaulting to neutral", "ticker", symbol, "raw_chars", len(raw))
		verdict = modelVerdict{Pulse: PulseNeutral, Explanation: unclearExplanation}
	}

	result := types.PulseVerdict{
		Pulse:       verdict.Pulse,
		Explanation: verdict.Explanation,
		Sentiment:   sentiment,
	}
	e.cache.set(symbol, result)

	logger.Verdict(ctx, symbol, result.Pulse, sentiment.Score, "momentum_score", momentum.Score)
	return result
}

// fallbackVerdict is returned on total model failure and never cached.
func fallbackVerdict() types.PulseVerdict {
	return types.PulseVerdict{
		Pulse:       PulseNeutral,
		Explanation: fallbackExplanation,
		Sentiment: types.SentimentSummary{
			Score:   0.0,
			Label:   "neutral",
			Summary: fallbackSentimentSummary,
		},
	}
}

// buildPrompt renders the fixed analyst prompt from the ticker's
// momentum, sentiment summary and headlines.
func buildPrompt(symbol string, momentum types.MomentumResult, sentiment types.SentimentSummary, items []types.NewsItem) string {
	momentumText := fmt.Sprintf("Last 5-day returns: %v, momentum score: %v", momentum.Returns, momentum.Score)

	headlinesText := noNewsPlaceholder
	if len(items) > 0 {
		lines := make([]string, 0, len(items))
		for _, item := range items {
			lines = append(lines, fmt.Sprintf("- %s: %s", item.Title, item.Description))
		}
		headlinesText = strings.Join(lines, "\n")
	}

	return fmt.Sprintf(`You are a financial analyst AI. Analyze the following stock data for %s.

Momentum:
%s

News Sentiment:
%s

Latest News Headlines:
%s

Based on the momentum score AND the summarized news sentiment, decide if the outlook for %s for **tomorrow** is:
- bullish (positive),
- bearish (negative), or
- neutral.

Then, explain briefly in 2-3 sentences why (reference BOTH momentum & news context).

IMPORTANT: Respond ONLY in this strict JSON format (no extra text!):
{
  "pulse": "bullish|bearish|neutral",
  "explanation": "Your reasoning here"
}`, symbol, momentumText, sentiment.Summary, headlinesText, symbol)
}
