package services

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/felixgeelhaar/cadence/internal/analytics/domain"
	"github.com/felixgeelhaar/cadence/internal/shared/timeutil"
)

// brainCapacityUnits is 100% load: six hours of pure deep-work-equivalent
// effort per day.
const brainCapacityUnits = 360

const (
	highCognitiveWeight = 1.5
	lowCognitiveWeight  = 0.5
)

// CognitiveWeight returns the load multiplier for a session based on its
// activity's category and name. Matching is case-sensitive and the
// category/name signals are hard-coded; the heuristic is isolated here so
// the policy can be replaced without touching the aggregation math.
func CognitiveWeight(category, name string) float64 {
	if category == "Work" || category == "Study" ||
		strings.Contains(name, "Code") || strings.Contains(name, "Deep") {
		return highCognitiveWeight
	}
	return lowCognitiveWeight
}

// BrainLoad estimates today's cognitive load as a percentage of a fixed
// daily capacity. Only sessions logged on now's calendar day count.
func (e *Engine) BrainLoad(ctx context.Context, now time.Time) (*domain.BrainLoad, error) {
	now = now.In(e.loc)
	dayStart := timeutil.DayStart(now, e.loc)
	dayEnd := timeutil.DayEnd(now, e.loc)

	facts, err := e.source.SessionFacts(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load today's sessions: %w", err)
	}

	var loadUnits float64
	for _, f := range facts {
		loadUnits += float64(f.Minutes) * CognitiveWeight(f.Category, f.ActivityName)
	}

	load := &domain.BrainLoad{
		CurrentLoad: int(math.Min(math.Round(100*loadUnits/brainCapacityUnits), 100)),
	}

	switch {
	case load.CurrentLoad > 90:
		load.Status = domain.LoadOverload
		load.Suggestion = "Brain fried. Switch to low-focus tasks or rest."
	case load.CurrentLoad > 60:
		load.Status = domain.LoadHigh
		load.Suggestion = "High load. Consider a break soon."
	default:
		load.Status = domain.LoadOptimal
		load.Suggestion = "You have mental capacity available."
	}

	return load, nil
}
