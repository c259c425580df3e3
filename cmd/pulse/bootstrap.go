package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"market-pulse/internal/interfaces"
	"market-pulse/internal/llm/claude"
	"market-pulse/internal/llm/gemini"
	"market-pulse/internal/llm/llmobs"
	"market-pulse/internal/llm/noop"
	"market-pulse/internal/llm/openai"
	"market-pulse/internal/logger"
	"market-pulse/internal/news"
	"market-pulse/internal/prices"
	"market-pulse/internal/pulse"
	"market-pulse/internal/scheduler"
	"market-pulse/internal/store"
	"market-pulse/internal/trace"
)

// initializeSystem initializes environment, logger and tracer
func initializeSystem() error {
	_ = godotenv.Load()

	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if err := trace.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize tracer: %v\n", err)
	}
	return nil
}

// loadConfig loads and returns the configuration
func loadConfig(ctx context.Context) (*store.Config, error) {
	cfg, err := store.LoadConfig("config.yaml")
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to load config", err)
		return nil, err
	}
	return cfg, nil
}

// requireCredentials aborts startup when mandatory API keys are absent.
// This is the only condition that fails a request pipeline at startup;
// everything else degrades at runtime.
func requireCredentials(cfg *store.Config) error {
	if os.Getenv("ALPHAVANTAGE_KEY") == "" {
		return fmt.Errorf("ALPHAVANTAGE_KEY not set")
	}

	keyEnv := map[string]string{
		"GEMINI": "GEMINI_API_KEY",
		"OPENAI": "OPENAI_API_KEY",
		"CLAUDE": "CLAUDE_API_KEY",
	}[cfg.LLM.Provider]
	if keyEnv != "" && os.Getenv(keyEnv) == "" {
		return fmt.Errorf("%s not set for llm provider %s", keyEnv, cfg.LLM.Provider)
	}
	return nil
}

// initializeResolver builds the price provider chain: Alpha Vantage
// first, Twelve Data as the single failover.
func initializeResolver(cfg *store.Config) *prices.Resolver {
	timeout := time.Duration(cfg.Providers.TimeoutSeconds) * time.Second
	return prices.NewResolver(timeout,
		prices.NewAlphaVantage(timeout),
		prices.NewTwelveData(timeout),
	)
}

// initializeNews builds the news service; the scraper fallback is only
// in the chain when enabled in config.
func initializeNews(ctx context.Context, cfg *store.Config) *news.Service {
	timeout := time.Duration(cfg.Providers.TimeoutSeconds) * time.Second

	providers := []interfaces.NewsProvider{news.NewNewsAPI(timeout)}
	if cfg.Providers.NewsScraper {
		logger.Info(ctx, "Google News scraper fallback enabled")
		providers = append(providers, news.NewGoogleNewsScraper(timeout))
	}

	return news.NewService(cfg.Providers.NewsPageSize, timeout, providers...)
}

// initializeModel selects the model client and wraps it with observability
func initializeModel(ctx context.Context, cfg *store.Config) interfaces.ModelClient {
	var client interfaces.ModelClient

	switch cfg.LLM.Provider {
	case "GEMINI":
		client = gemini.New(cfg)
	case "OPENAI":
		client = openai.New(cfg)
	case "CLAUDE":
		client = claude.New(cfg)
	default:
		client = noop.New()
		logger.Warn(ctx, "No model provider configured - using noop client (always neutral)")
	}

	return llmobs.Wrap(client)
}

// initializeEngine builds the pulse engine with cache bounds from config
func initializeEngine(cfg *store.Config, model interfaces.ModelClient) *pulse.Engine {
	return pulse.NewEngine(model, news.NewScorer(), pulse.EngineConfig{
		CacheCapacity: cfg.Cache.Capacity,
		CacheTTL:      time.Duration(cfg.Cache.TTLSeconds) * time.Second,
		ModelTimeout:  time.Duration(cfg.Providers.TimeoutSeconds) * time.Second,
	})
}

// initializeScheduler builds the optional cache pre-warm job
func initializeScheduler(ctx context.Context, cfg *store.Config, svc *pulse.Service) *scheduler.Scheduler {
	if cfg.Prewarm.Cron == "" || len(cfg.Prewarm.Watchlist) == 0 {
		return nil
	}

	sched, err := scheduler.New(svc, cfg.Prewarm.Cron, cfg.Prewarm.Watchlist)
	if err != nil {
		logger.Warn(ctx, "Invalid prewarm cron, scheduler disabled", "cron", cfg.Prewarm.Cron, "error", err)
		return nil
	}
	logger.Info(ctx, "Cache pre-warm scheduled", "cron", cfg.Prewarm.Cron, "tickers", len(cfg.Prewarm.Watchlist))
	return sched
}
