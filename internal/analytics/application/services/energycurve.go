package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/felixgeelhaar/cadence/internal/analytics/domain"
	"github.com/felixgeelhaar/cadence/internal/shared/timeutil"
)

// energyCurveDays is the lookback window for the hourly energy curve.
const energyCurveDays = 30

// EnergyCurve buckets the trailing 30 days of rated sessions by hour of day
// and averages focus and energy independently per hour. The result always
// has exactly 24 points in ascending hour order; hours without samples are
// zero-sentinel points, which callers must not read as genuine low ratings.
func (e *Engine) EnergyCurve(ctx context.Context, now time.Time) ([]domain.EnergyCurvePoint, error) {
	now = now.In(e.loc)
	from, to := timeutil.TrailingWindow(now, energyCurveDays, e.loc)

	facts, err := e.source.SessionFacts(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load rated sessions: %w", err)
	}

	var (
		focusSum    [24]int
		focusCount  [24]int
		energySum   [24]int
		energyCount [24]int
		samples     [24]int
	)

	for _, f := range facts {
		if !f.HasRating() {
			continue
		}
		hour := f.LoggedAt.In(e.loc).Hour()
		samples[hour]++
		if f.FocusRating != nil {
			focusSum[hour] += *f.FocusRating
			focusCount[hour]++
		}
		if f.EnergyAfter != nil {
			energySum[hour] += *f.EnergyAfter
			energyCount[hour]++
		}
	}

	curve := make([]domain.EnergyCurvePoint, 24)
	for h := 0; h < 24; h++ {
		point := domain.EnergyCurvePoint{Hour: h, SampleSize: samples[h]}
		if focusCount[h] > 0 {
			point.AvgFocus = roundTenth(float64(focusSum[h]) / float64(focusCount[h]))
		}
		if energyCount[h] > 0 {
			point.AvgEnergy = roundTenth(float64(energySum[h]) / float64(energyCount[h]))
		}
		curve[h] = point
	}
	return curve, nil
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
