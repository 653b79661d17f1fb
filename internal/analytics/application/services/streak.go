package services

import (
	"context"
	"fmt"
	"time"

	"github.com/felixgeelhaar/cadence/internal/shared/timeutil"
)

// streakHistoryDays caps how far back the streak walk looks.
const streakHistoryDays = 365

// CurrentStreak counts consecutive calendar days with at least one session,
// ending at or adjacent to today. activeDays must be distinct day midnights
// in the streak's timezone, most recent first; today is that timezone's
// current day midnight.
//
// A user who has not yet logged anything today keeps an in-progress streak:
// if the most recent active day is yesterday, counting starts there. If the
// most recent active day is older than yesterday, the streak is 0.
func CurrentStreak(activeDays []time.Time, today time.Time) int {
	if len(activeDays) == 0 {
		return 0
	}

	expected := today
	if !activeDays[0].Equal(today) {
		yesterday := today.AddDate(0, 0, -1)
		if !activeDays[0].Equal(yesterday) {
			return 0
		}
		expected = yesterday
	}

	streak := 0
	for _, day := range activeDays {
		if !day.Equal(expected) {
			break
		}
		streak++
		expected = expected.AddDate(0, 0, -1)
	}
	return streak
}

// Streak returns the current consecutive-day streak as of now.
func (e *Engine) Streak(ctx context.Context, now time.Time) (int, error) {
	now = now.In(e.loc)
	from := timeutil.DayStart(now, e.loc).AddDate(0, 0, -(streakHistoryDays - 1))
	to := timeutil.DayEnd(now, e.loc)

	timestamps, err := e.source.SessionTimestamps(ctx, from, to)
	if err != nil {
		return 0, fmt.Errorf("failed to load session timestamps: %w", err)
	}

	activeDays := timeutil.DistinctDays(timestamps, e.loc)
	return CurrentStreak(activeDays, timeutil.DayStart(now, e.loc)), nil
}
