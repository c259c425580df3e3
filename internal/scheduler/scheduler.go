package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"

	"market-pulse/internal/logger"
	"market-pulse/internal/types"
)

// PulseService is the operation the scheduler pre-warms.
type PulseService interface {
	MarketPulse(ctx context.Context, ticker string) types.PulseResponse
}

// Scheduler pre-warms the verdict cache for a watchlist on a cron
// schedule so interactive requests for popular tickers hit the cache.
type Scheduler struct {
	cron      *cron.Cron
	svc       PulseService
	watchlist []string
}

// New creates a scheduler. Returns an error for an invalid cron spec.
func New(svc PulseService, spec string, watchlist []string) (*Scheduler, error) {
	s := &Scheduler{
		cron:      cron.New(),
		svc:       svc,
		watchlist: watchlist,
	}

	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scheduler) run() {
	ctx := context.Background()
	logger.Info(ctx, "Pre-warming verdict cache", "tickers", len(s.watchlist))

	for _, ticker := range s.watchlist {
		resp := s.svc.MarketPulse(ctx, ticker)
		logger.Debug(ctx, "Pre-warmed ticker", "ticker", resp.Ticker, "pulse", resp.Pulse)
	}
}

// Start begins the cron schedule.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops the cron schedule, waiting for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
