package services

import (
	"context"
	"fmt"
	"time"

	"github.com/felixgeelhaar/cadence/internal/analytics/domain"
	"github.com/felixgeelhaar/cadence/internal/shared/timeutil"
)

const (
	burnoutVolumeHigh     = 2400 // minutes over 7 days (40h)
	burnoutVolumeElevated = 1800 // minutes over 7 days (30h)
	lowSignalThreshold    = 2.5  // diary mood/energy average below this is a risk signal
)

// BurnoutRisk estimates burnout risk over the trailing 7 days. Factors are
// evaluated independently and add up; each triggered factor contributes a
// human-readable label (elevated-but-not-high volume adds points without a
// label, preserving long-standing behavior).
func (e *Engine) BurnoutRisk(ctx context.Context, now time.Time) (*domain.BurnoutRisk, error) {
	now = now.In(e.loc)
	from, to := timeutil.TrailingWindow(now, 7, e.loc)

	risk := &domain.BurnoutRisk{Factors: []string{}}

	volume, err := e.source.TotalMinutes(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to sum weekly minutes: %w", err)
	}
	switch {
	case volume > burnoutVolumeHigh:
		risk.Score += 40
		risk.Factors = append(risk.Factors, "High volume (>40h/week)")
	case volume > burnoutVolumeElevated:
		risk.Score += 20
	}

	fromDate := timeutil.DateKey(from, e.loc)
	toDate := timeutil.DateKey(now, e.loc)
	diary, err := e.source.DiarySignal(ctx, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("failed to load diary signal: %w", err)
	}
	if diary.MoodCount > 0 && diary.AvgMood < lowSignalThreshold {
		risk.Score += 30
		risk.Factors = append(risk.Factors, "Low mood trend")
	}
	if diary.EnergyCount > 0 && diary.AvgEnergy < lowSignalThreshold {
		risk.Score += 20
		risk.Factors = append(risk.Factors, "Low energy trend")
	}

	timestamps, err := e.source.SessionTimestamps(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load session timestamps: %w", err)
	}
	if len(timeutil.DistinctDays(timestamps, e.loc)) == 7 {
		risk.Score += 10
		risk.Factors = append(risk.Factors, "No rest days")
	}

	// The current factors top out at exactly 100; clamp anyway so a future
	// factor cannot silently push the score past the scale.
	if risk.Score > 100 {
		risk.Score = 100
	}

	switch {
	case risk.Score >= 60:
		risk.Band = domain.RiskHigh
	case risk.Score >= 30:
		risk.Band = domain.RiskMedium
	default:
		risk.Band = domain.RiskLow
	}

	return risk, nil
}
