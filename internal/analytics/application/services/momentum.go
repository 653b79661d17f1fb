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

const (
	// streakReferenceDays is the streak length that saturates the streak
	// component.
	streakReferenceDays = 30
	// weekVolumeReference is the weekly minute volume that saturates the
	// volume component (35 hours).
	weekVolumeReference = 2100
	// deepWorkReference is the weekly deep-session count that saturates the
	// deep work component.
	deepWorkReference = 10
)

// Momentum combines streak, weekly volume, day coverage, and deep-work
// count into a 0-100 composite, plus a week-over-week volume trend.
func (e *Engine) Momentum(ctx context.Context, now time.Time) (*domain.MomentumScore, error) {
	now = now.In(e.loc)
	weekFrom, weekTo := timeutil.TrailingWindow(now, 7, e.loc)

	streak, err := e.Streak(ctx, now)
	if err != nil {
		return nil, err
	}

	weekMinutes, err := e.source.TotalMinutes(ctx, weekFrom, weekTo)
	if err != nil {
		return nil, fmt.Errorf("failed to sum weekly minutes: %w", err)
	}

	timestamps, err := e.source.SessionTimestamps(ctx, weekFrom, weekTo)
	if err != nil {
		return nil, fmt.Errorf("failed to load session timestamps: %w", err)
	}
	activeDays := len(timeutil.DistinctDays(timestamps, e.loc))

	deepSessions, err := e.source.LongSessionCount(ctx, weekFrom, weekTo, trackingDomain.DeepWorkMinutes)
	if err != nil {
		return nil, fmt.Errorf("failed to count deep sessions: %w", err)
	}

	score := &domain.MomentumScore{
		StreakComponent:      cappedRatio(streak, streakReferenceDays),
		VolumeComponent:      cappedRatio(weekMinutes, weekVolumeReference),
		ConsistencyComponent: float64(activeDays) / 7 * 100,
		DeepWorkComponent:    cappedRatio(deepSessions, deepWorkReference),
	}
	score.Score = int(math.Round(0.25 * (score.StreakComponent +
		score.VolumeComponent + score.ConsistencyComponent + score.DeepWorkComponent)))

	priorFrom, priorTo := timeutil.PriorWindow(now, 7, e.loc)
	priorMinutes, err := e.source.TotalMinutes(ctx, priorFrom, priorTo)
	if err != nil {
		return nil, fmt.Errorf("failed to sum prior week minutes: %w", err)
	}
	score.Trend = volumeTrend(weekMinutes, priorMinutes)

	return score, nil
}

// cappedRatio normalizes value against reference to 0-100, saturating at 100.
func cappedRatio(value, reference int) float64 {
	return math.Min(float64(value)/float64(reference), 1) * 100
}

// volumeTrend compares current to prior weekly volume at a +/-10% band. A
// prior of zero never divides; any current volume then counts as rising.
func volumeTrend(current, prior int) domain.Trend {
	if prior == 0 {
		if current > 0 {
			return domain.TrendRising
		}
		return domain.TrendStable
	}
	switch {
	case float64(current) > 1.1*float64(prior):
		return domain.TrendRising
	case float64(current) < 0.9*float64(prior):
		return domain.TrendFalling
	default:
		return domain.TrendStable
	}
}
