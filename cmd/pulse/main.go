package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"market-pulse/internal/logger"
	"market-pulse/internal/pulse"
	"market-pulse/internal/server"
	"market-pulse/internal/trace"
)

func main() {
	if err := initializeSystem(); err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := loadConfig(ctx)
	if err != nil {
		os.Exit(1)
	}
	if err := requireCredentials(cfg); err != nil {
		logger.ErrorWithErr(ctx, "Missing mandatory credentials", err)
		os.Exit(1)
	}

	resolver := initializeResolver(cfg)
	newsSvc := initializeNews(ctx, cfg)
	model := initializeModel(ctx, cfg)
	engine := initializeEngine(cfg, model)

	svc := pulse.NewService(resolver, newsSvc, engine)
	srv := server.New(cfg, svc)

	sched := initializeScheduler(ctx, cfg, svc)
	if sched != nil {
		sched.Start()
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)

	errc := make(chan error, 1)
	go func() {
		errc <- srv.Start()
	}()

	logger.Info(ctx, "Market pulse service started", "port", cfg.Server.Port, "llm_provider", cfg.LLM.Provider)

	select {
	case <-sigc:
		logger.Info(ctx, "Shutting down...")
	case err := <-errc:
		if err != nil {
			logger.ErrorWithErr(ctx, "HTTP server failed", err)
		}
	}

	if sched != nil {
		sched.Stop()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorWithErr(ctx, "Server shutdown failed", err)
	}
	if err := trace.Shutdown(shutdownCtx); err != nil {
		logger.ErrorWithErr(ctx, "Tracer shutdown failed", err)
	}
}
