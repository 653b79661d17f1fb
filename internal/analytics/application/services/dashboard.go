package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/felixgeelhaar/cadence/internal/analytics/domain"
	"github.com/felixgeelhaar/cadence/internal/shared/timeutil"
	trackingDomain "github.com/felixgeelhaar/cadence/internal/tracking/domain"
)

// Dashboard produces the at-a-glance summary: rolling minute totals, the
// current streak, and today's per-activity breakdown.
func (e *Engine) Dashboard(ctx context.Context, now time.Time) (*domain.DashboardSummary, error) {
	now = now.In(e.loc)
	dayStart := timeutil.DayStart(now, e.loc)
	dayEnd := timeutil.DayEnd(now, e.loc)

	today, err := e.source.TotalMinutes(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to sum today's minutes: %w", err)
	}

	weekFrom, weekTo := timeutil.TrailingWindow(now, 7, e.loc)
	week, err := e.source.TotalMinutes(ctx, weekFrom, weekTo)
	if err != nil {
		return nil, fmt.Errorf("failed to sum weekly minutes: %w", err)
	}

	monthFrom, monthTo := timeutil.TrailingWindow(now, 30, e.loc)
	month, err := e.source.TotalMinutes(ctx, monthFrom, monthTo)
	if err != nil {
		return nil, fmt.Errorf("failed to sum monthly minutes: %w", err)
	}

	streak, err := e.Streak(ctx, now)
	if err != nil {
		return nil, err
	}

	byActivity, err := e.source.MinutesByActivity(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load today's breakdown: %w", err)
	}

	return &domain.DashboardSummary{
		TodayMinutes:    today,
		WeekMinutes:     week,
		MonthMinutes:    month,
		CurrentStreak:   streak,
		TodayByActivity: byActivity,
	}, nil
}

// DeepWork summarizes deep-work sessions (>=45 min) over the trailing 7 days.
func (e *Engine) DeepWork(ctx context.Context, now time.Time) (*domain.DeepWorkStats, error) {
	now = now.In(e.loc)
	from, to := timeutil.TrailingWindow(now, 7, e.loc)

	facts, err := e.source.SessionFacts(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load sessions: %w", err)
	}

	stats := &domain.DeepWorkStats{}
	for _, f := range facts {
		if f.Minutes < trackingDomain.DeepWorkMinutes {
			continue
		}
		stats.SessionsWeek++
		stats.TotalMinutes += f.Minutes
		if f.Minutes > stats.LongestSession {
			stats.LongestSession = f.Minutes
		}
	}

	if stats.SessionsWeek > 0 {
		stats.AvgSessionLength = int(math.Round(float64(stats.TotalMinutes) / float64(stats.SessionsWeek)))
	}
	if len(facts) > 0 {
		stats.FocusConsistency = int(math.Round(100 * float64(stats.SessionsWeek) / float64(len(facts))))
	}
	return stats, nil
}
