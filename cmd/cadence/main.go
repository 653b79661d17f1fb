package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/felixgeelhaar/cadence/adapter/cli"
	cliActivity "github.com/felixgeelhaar/cadence/adapter/cli/activity"
	cliDiary "github.com/felixgeelhaar/cadence/adapter/cli/diary"
	"github.com/felixgeelhaar/cadence/adapter/cli/insights"
	cliSession "github.com/felixgeelhaar/cadence/adapter/cli/session"
	cliTimetable "github.com/felixgeelhaar/cadence/adapter/cli/timetable"
	"github.com/felixgeelhaar/cadence/internal/app"
	"github.com/felixgeelhaar/cadence/pkg/config"
	"github.com/felixgeelhaar/cadence/pkg/observability"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		cfg = &config.Config{AppEnv: "development"}
	}

	logger := observability.NewLoggerFor(cfg.AppEnv, cfg.LogLevel)
	cli.SetLogger(logger)

	container, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize", "error", err)
		os.Exit(1)
	}
	defer container.Close()

	cliActivity.SetService(container.TrackingService)
	cliSession.SetService(container.TrackingService)
	cliTimetable.SetService(container.TrackingService)
	cliDiary.SetService(container.TrackingService)
	insights.SetEngine(container.Engine)
	insights.SetDefaultTopicDays(cfg.TopicDays)

	cli.AddCommand(cliActivity.Cmd)
	cli.AddCommand(cliSession.Cmd)
	cli.AddCommand(cliTimetable.Cmd)
	cli.AddCommand(cliDiary.Cmd)
	cli.AddCommand(insights.Cmd)

	cli.Execute()
}
