// Package timeutil provides calendar-day bucketing helpers used by the
// analytics engine. All bucketing happens in an explicit *time.Location so
// that day boundaries are consistent across every metric; timestamps in the
// store stay in UTC.
package timeutil

import (
	"sort"
	"time"
)

// DayStart returns midnight of t's calendar day in loc.
func DayStart(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// DayEnd returns midnight of the following calendar day in loc. Ranges are
// half-open: [DayStart, DayEnd).
func DayEnd(t time.Time, loc *time.Location) time.Time {
	return DayStart(t, loc).AddDate(0, 0, 1)
}

// SameDay reports whether a and b fall on the same calendar day in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// DateKey formats t's calendar day in loc as "2006-01-02", the key format
// used by diary entries.
func DateKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02")
}

// DistinctDays reduces a list of timestamps to their distinct calendar days
// in loc, as midnights, ordered most recent first. Input order does not
// matter.
func DistinctDays(timestamps []time.Time, loc *time.Location) []time.Time {
	seen := make(map[string]struct{}, len(timestamps))
	var days []time.Time
	for _, ts := range timestamps {
		day := DayStart(ts, loc)
		key := day.Format("2006-01-02")
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })
	return days
}

// TrailingWindow returns the half-open instant range covering the trailing
// n calendar days ending with now's day, i.e. [DayStart(now)-(n-1)d,
// DayEnd(now)).
func TrailingWindow(now time.Time, days int, loc *time.Location) (time.Time, time.Time) {
	end := DayEnd(now, loc)
	start := DayStart(now, loc).AddDate(0, 0, -(days - 1))
	return start, end
}

// PriorWindow returns the n-day window immediately preceding the trailing
// window, used for week-over-week comparisons.
func PriorWindow(now time.Time, days int, loc *time.Location) (time.Time, time.Time) {
	start, _ := TrailingWindow(now, days, loc)
	return start.AddDate(0, 0, -days), start
}
