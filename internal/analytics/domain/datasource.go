package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SessionFact is the raw session row shape the engine consumes: duration,
// the owning activity's classification fields, and the optional ratings.
type SessionFact struct {
	ActivityID   uuid.UUID
	ActivityName string
	Category     string
	Minutes      int
	FocusRating  *int
	EnergyAfter  *int
	LoggedAt     time.Time
}

// HasRating reports whether the session carries at least one subjective
// rating and therefore qualifies for the energy curve.
func (f SessionFact) HasRating() bool {
	return f.FocusRating != nil || f.EnergyAfter != nil
}

// TopicTotal is an activity's summed minutes over a window.
type TopicTotal struct {
	Topic   string
	Minutes int
}

// DiarySignal carries diary mood/energy averages over a date range. The
// averages exclude entries without the corresponding rating; MoodCount and
// EnergyCount say how many entries actually contributed, so a zero average
// with a zero count means "no signal", never "terrible week".
type DiarySignal struct {
	AvgMood     float64
	AvgEnergy   float64
	MoodCount   int
	EnergyCount int
}

// PlannedSlot is an active timetable slot joined with its activity name,
// ready for adherence evaluation.
type PlannedSlot struct {
	SlotID       uuid.UUID
	ActivityID   uuid.UUID
	ActivityName string
	StartTime    string // "HH:MM"
	EndTime      string // "HH:MM"
}

// DataSource is the narrow read API the engine issues against the record
// store. All instant ranges are half-open [from, to) in UTC; calendar-day
// semantics are applied by the engine, not the store. Implementations must
// be safe for concurrent use: the engine performs no writes and callers may
// run several analytics queries in parallel.
type DataSource interface {
	// SessionTimestamps returns the logged-at instants of sessions in the
	// range, most recent first.
	SessionTimestamps(ctx context.Context, from, to time.Time) ([]time.Time, error)

	// TotalMinutes sums session minutes in the range.
	TotalMinutes(ctx context.Context, from, to time.Time) (int, error)

	// ActivityMinutes sums one activity's session minutes in the range.
	ActivityMinutes(ctx context.Context, activityID uuid.UUID, from, to time.Time) (int, error)

	// LongSessionCount counts sessions of at least minMinutes in the range.
	LongSessionCount(ctx context.Context, from, to time.Time, minMinutes int) (int, error)

	// SessionFacts returns raw session rows joined with activity fields for
	// the range, most recent first.
	SessionFacts(ctx context.Context, from, to time.Time) ([]SessionFact, error)

	// TopicTotals returns summed minutes grouped by activity name for the
	// range, descending, truncated to limit entries.
	TopicTotals(ctx context.Context, from, to time.Time, limit int) ([]TopicTotal, error)

	// DiarySignal returns diary mood/energy averages for entries with date
	// keys in [fromDate, toDate], both "2006-01-02" inclusive.
	DiarySignal(ctx context.Context, fromDate, toDate string) (*DiarySignal, error)

	// PlannedSlots returns the active timetable slots for a weekday
	// (0=Sunday) ordered by start time.
	PlannedSlots(ctx context.Context, dayOfWeek int) ([]PlannedSlot, error)

	// MinutesByActivity returns per-activity minute totals for the range,
	// descending.
	MinutesByActivity(ctx context.Context, from, to time.Time) ([]ActivityTotal, error)
}
