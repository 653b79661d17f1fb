// Package workers contains background workers for the analytics context.
package workers

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/felixgeelhaar/cadence/internal/analytics/application/services"
	"github.com/felixgeelhaar/cadence/internal/analytics/domain"
	"github.com/felixgeelhaar/cadence/internal/shared/timeutil"
	trackingDomain "github.com/felixgeelhaar/cadence/internal/tracking/domain"
)

// DefaultSummaryTime is the default local wall-clock time for the daily
// summary.
const DefaultSummaryTime = "21:00"

// DefaultCheckInterval is how often the worker checks the clock.
const DefaultCheckInterval = time.Minute

// DailySummary is the payload delivered once per day.
type DailySummary struct {
	Date      string
	Dashboard *domain.DashboardSummary
	Momentum  *domain.MomentumScore
	Burnout   *domain.BurnoutRisk
}

// Notifier delivers a daily summary to the user.
type Notifier interface {
	Notify(ctx context.Context, summary DailySummary) error
}

// SummaryWorkerConfig configures the summary worker.
type SummaryWorkerConfig struct {
	SummaryTime   string // "HH:MM" in the engine's location
	CheckInterval time.Duration
}

// DefaultSummaryWorkerConfig returns the default configuration.
func DefaultSummaryWorkerConfig() SummaryWorkerConfig {
	return SummaryWorkerConfig{
		SummaryTime:   DefaultSummaryTime,
		CheckInterval: DefaultCheckInterval,
	}
}

// SummaryWorker delivers one analytics summary per day once the configured
// wall-clock time has passed.
type SummaryWorker struct {
	engine   *services.Engine
	notifier Notifier
	config   SummaryWorkerConfig
	logger   *slog.Logger
	running  atomic.Bool
	stopCh   chan struct{}

	lastSentDate string
}

// NewSummaryWorker creates a new summary worker.
func NewSummaryWorker(engine *services.Engine, notifier Notifier, config SummaryWorkerConfig, logger *slog.Logger) *SummaryWorker {
	if logger == nil {
		logger = slog.Default()
	}
	if config.SummaryTime == "" {
		config.SummaryTime = DefaultSummaryTime
	}
	if config.CheckInterval <= 0 {
		config.CheckInterval = DefaultCheckInterval
	}
	return &SummaryWorker{
		engine:   engine,
		notifier: notifier,
		config:   config,
		logger:   logger,
		stopCh:   make(chan struct{}),
	}
}

// Run starts the worker and blocks until context is cancelled or Stop() is
// called.
func (w *SummaryWorker) Run(ctx context.Context) error {
	if _, err := trackingDomain.ParseClock(w.config.SummaryTime); err != nil {
		return fmt.Errorf("invalid summary time %q: %w", w.config.SummaryTime, err)
	}

	w.running.Store(true)
	w.logger.Info("summary worker started",
		"summary_time", w.config.SummaryTime,
		"check_interval", w.config.CheckInterval,
	)

	w.tick(ctx, time.Now())

	ticker := time.NewTicker(w.config.CheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.running.Store(false)
			w.logger.Info("summary worker stopped (context cancelled)")
			return ctx.Err()
		case <-w.stopCh:
			w.running.Store(false)
			w.logger.Info("summary worker stopped (stop signal)")
			return nil
		case now := <-ticker.C:
			w.tick(ctx, now)
		}
	}
}

// Stop signals the worker to stop gracefully.
func (w *SummaryWorker) Stop() {
	if w.running.Load() {
		close(w.stopCh)
	}
}

// IsRunning returns true if the worker is currently running.
func (w *SummaryWorker) IsRunning() bool {
	return w.running.Load()
}

// tick delivers the summary when the configured time has passed and nothing
// was sent for today's date yet.
func (w *SummaryWorker) tick(ctx context.Context, now time.Time) {
	local := now.In(w.engine.Location())
	date := timeutil.DateKey(local, w.engine.Location())
	if date == w.lastSentDate {
		return
	}

	due, _ := trackingDomain.ParseClock(w.config.SummaryTime)
	minuteOfDay := local.Hour()*60 + local.Minute()
	if minuteOfDay < due {
		return
	}

	if err := w.deliver(ctx, now, date); err != nil {
		w.logger.Error("failed to deliver daily summary", "date", date, "error", err)
		return
	}
	w.lastSentDate = date
}

func (w *SummaryWorker) deliver(ctx context.Context, now time.Time, date string) error {
	dashboard, err := w.engine.Dashboard(ctx, now)
	if err != nil {
		return err
	}
	momentum, err := w.engine.Momentum(ctx, now)
	if err != nil {
		return err
	}
	burnout, err := w.engine.BurnoutRisk(ctx, now)
	if err != nil {
		return err
	}

	summary := DailySummary{
		Date:      date,
		Dashboard: dashboard,
		Momentum:  momentum,
		Burnout:   burnout,
	}
	if err := w.notifier.Notify(ctx, summary); err != nil {
		return err
	}

	w.logger.Info("daily summary delivered",
		"date", date,
		"today_minutes", dashboard.TodayMinutes,
		"momentum", momentum.Score,
		"burnout", burnout.Score,
	)
	return nil
}

// LogNotifier writes summaries to the structured log. It is the default
// delivery channel when no external notifier is wired.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a log-backed notifier.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger}
}

// Notify logs the summary.
func (n *LogNotifier) Notify(_ context.Context, summary DailySummary) error {
	n.logger.Info("daily summary",
		"date", summary.Date,
		"today_minutes", summary.Dashboard.TodayMinutes,
		"week_minutes", summary.Dashboard.WeekMinutes,
		"streak", summary.Dashboard.CurrentStreak,
		"momentum_score", summary.Momentum.Score,
		"momentum_trend", summary.Momentum.Trend,
		"burnout_score", summary.Burnout.Score,
		"burnout_level", summary.Burnout.Band,
	)
	return nil
}
