package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/felixgeelhaar/cadence/internal/analytics/application/workers"
	"github.com/felixgeelhaar/cadence/internal/app"
	"github.com/felixgeelhaar/cadence/pkg/config"
	"github.com/felixgeelhaar/cadence/pkg/observability"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		cfg = &config.Config{AppEnv: "development"}
	}

	logger := observability.NewLoggerFor(cfg.AppEnv, cfg.LogLevel)
	logger.Info("starting cadence worker")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	container, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize", "error", err)
		os.Exit(1)
	}
	defer container.Close()

	workerConfig := workers.SummaryWorkerConfig{
		SummaryTime:   cfg.SummaryTime,
		CheckInterval: cfg.SummaryInterval,
	}
	worker := workers.NewSummaryWorker(
		container.Engine,
		workers.NewLogNotifier(logger),
		workerConfig,
		logger,
	)

	logger.Info("starting summary worker",
		"summary_time", workerConfig.SummaryTime,
		"check_interval", workerConfig.CheckInterval,
	)

	if err := worker.Run(ctx); err != nil {
		logger.Error("summary worker failed", "error", err)
		os.Exit(1)
	}

	logger.Info("worker stopped")
}
