package persistence

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	analytics "github.com/felixgeelhaar/cadence/internal/analytics/domain"
)

// SQLiteAnalyticsSource implements the analytics read API over the SQLite
// record store. All range filters use half-open [from, to) comparisons on
// the RFC3339 text column, which orders lexicographically the same as
// chronologically for UTC timestamps.
type SQLiteAnalyticsSource struct {
	dbConn *sql.DB
}

// NewSQLiteAnalyticsSource creates a new SQLite analytics source.
func NewSQLiteAnalyticsSource(dbConn *sql.DB) *SQLiteAnalyticsSource {
	return &SQLiteAnalyticsSource{dbConn: dbConn}
}

func rfc3339Range(from, to time.Time) (string, string) {
	return from.UTC().Format(time.RFC3339), to.UTC().Format(time.RFC3339)
}

// SessionTimestamps returns the logged-at instants of sessions in the range,
// most recent first.
func (s *SQLiteAnalyticsSource) SessionTimestamps(ctx context.Context, from, to time.Time) ([]time.Time, error) {
	fromStr, toStr := rfc3339Range(from, to)
	rows, err := s.dbConn.QueryContext(ctx,
		`SELECT logged_at FROM sessions
		 WHERE logged_at >= ? AND logged_at < ?
		 ORDER BY logged_at DESC`, fromStr, toStr)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var timestamps []time.Time
	for rows.Next() {
		var loggedAtStr string
		if err := rows.Scan(&loggedAtStr); err != nil {
			return nil, err
		}
		loggedAt, err := time.Parse(time.RFC3339, loggedAtStr)
		if err != nil {
			return nil, err
		}
		timestamps = append(timestamps, loggedAt)
	}
	return timestamps, rows.Err()
}

// TotalMinutes sums session minutes in the range.
func (s *SQLiteAnalyticsSource) TotalMinutes(ctx context.Context, from, to time.Time) (int, error) {
	fromStr, toStr := rfc3339Range(from, to)
	var total int64
	err := s.dbConn.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(minutes), 0) FROM sessions
		 WHERE logged_at >= ? AND logged_at < ?`, fromStr, toStr).Scan(&total)
	return int(total), err
}

// ActivityMinutes sums one activity's session minutes in the range.
func (s *SQLiteAnalyticsSource) ActivityMinutes(ctx context.Context, activityID uuid.UUID, from, to time.Time) (int, error) {
	fromStr, toStr := rfc3339Range(from, to)
	var total int64
	err := s.dbConn.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(minutes), 0) FROM sessions
		 WHERE activity_id = ? AND logged_at >= ? AND logged_at < ?`,
		activityID.String(), fromStr, toStr).Scan(&total)
	return int(total), err
}

// LongSessionCount counts sessions of at least minMinutes in the range.
func (s *SQLiteAnalyticsSource) LongSessionCount(ctx context.Context, from, to time.Time, minMinutes int) (int, error) {
	fromStr, toStr := rfc3339Range(from, to)
	var count int64
	err := s.dbConn.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sessions
		 WHERE minutes >= ? AND logged_at >= ? AND logged_at < ?`,
		int64(minMinutes), fromStr, toStr).Scan(&count)
	return int(count), err
}

// SessionFacts returns session rows joined with activity fields for the
// range, most recent first.
func (s *SQLiteAnalyticsSource) SessionFacts(ctx context.Context, from, to time.Time) ([]analytics.SessionFact, error) {
	fromStr, toStr := rfc3339Range(from, to)
	rows, err := s.dbConn.QueryContext(ctx,
		`SELECT s.activity_id, a.name, a.category, s.minutes,
		        s.focus_rating, s.energy_after, s.logged_at
		 FROM sessions s
		 JOIN activities a ON a.id = s.activity_id
		 WHERE s.logged_at >= ? AND s.logged_at < ?
		 ORDER BY s.logged_at DESC`, fromStr, toStr)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var facts []analytics.SessionFact
	for rows.Next() {
		var (
			activityIDStr, name, category string
			minutes                       int64
			focusRating, energyAfter      sql.NullInt64
			loggedAtStr                   string
		)
		err := rows.Scan(&activityIDStr, &name, &category, &minutes, &focusRating, &energyAfter, &loggedAtStr)
		if err != nil {
			return nil, err
		}

		activityID, err := uuid.Parse(activityIDStr)
		if err != nil {
			return nil, err
		}
		loggedAt, err := time.Parse(time.RFC3339, loggedAtStr)
		if err != nil {
			return nil, err
		}

		facts = append(facts, analytics.SessionFact{
			ActivityID:   activityID,
			ActivityName: name,
			Category:     category,
			Minutes:      int(minutes),
			FocusRating:  fromNullInt(focusRating),
			EnergyAfter:  fromNullInt(energyAfter),
			LoggedAt:     loggedAt,
		})
	}
	return facts, rows.Err()
}

// TopicTotals returns summed minutes grouped by activity name, descending,
// truncated to limit entries.
func (s *SQLiteAnalyticsSource) TopicTotals(ctx context.Context, from, to time.Time, limit int) ([]analytics.TopicTotal, error) {
	fromStr, toStr := rfc3339Range(from, to)
	rows, err := s.dbConn.QueryContext(ctx,
		`SELECT a.name, SUM(s.minutes) AS total
		 FROM sessions s
		 JOIN activities a ON a.id = s.activity_id
		 WHERE s.logged_at >= ? AND s.logged_at < ?
		 GROUP BY a.name
		 ORDER BY total DESC
		 LIMIT ?`, fromStr, toStr, int64(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []analytics.TopicTotal
	for rows.Next() {
		var (
			topic   string
			minutes int64
		)
		if err := rows.Scan(&topic, &minutes); err != nil {
			return nil, err
		}
		totals = append(totals, analytics.TopicTotal{Topic: topic, Minutes: int(minutes)})
	}
	return totals, rows.Err()
}

// DiarySignal returns diary mood/energy averages for the inclusive date
// range. Entries without a rating contribute to neither average nor count.
func (s *SQLiteAnalyticsSource) DiarySignal(ctx context.Context, fromDate, toDate string) (*analytics.DiarySignal, error) {
	var (
		avgMood, avgEnergy     sql.NullFloat64
		moodCount, energyCount int64
	)
	err := s.dbConn.QueryRowContext(ctx,
		`SELECT AVG(mood), AVG(energy), COUNT(mood), COUNT(energy)
		 FROM diary_entries
		 WHERE date >= ? AND date <= ?`, fromDate, toDate).
		Scan(&avgMood, &avgEnergy, &moodCount, &energyCount)
	if err != nil {
		return nil, err
	}

	return &analytics.DiarySignal{
		AvgMood:     avgMood.Float64,
		AvgEnergy:   avgEnergy.Float64,
		MoodCount:   int(moodCount),
		EnergyCount: int(energyCount),
	}, nil
}

// PlannedSlots returns the active timetable slots for a weekday joined with
// their activity names, ordered by start time.
func (s *SQLiteAnalyticsSource) PlannedSlots(ctx context.Context, dayOfWeek int) ([]analytics.PlannedSlot, error) {
	rows, err := s.dbConn.QueryContext(ctx,
		`SELECT t.id, t.activity_id, a.name, t.start_time, t.end_time
		 FROM schedule_slots t
		 JOIN activities a ON a.id = t.activity_id
		 WHERE t.day_of_week = ? AND t.active = 1
		 ORDER BY t.start_time`, int64(dayOfWeek))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slots []analytics.PlannedSlot
	for rows.Next() {
		var slotIDStr, activityIDStr, name, startTime, endTime string
		if err := rows.Scan(&slotIDStr, &activityIDStr, &name, &startTime, &endTime); err != nil {
			return nil, err
		}
		slotID, err := uuid.Parse(slotIDStr)
		if err != nil {
			return nil, err
		}
		activityID, err := uuid.Parse(activityIDStr)
		if err != nil {
			return nil, err
		}
		slots = append(slots, analytics.PlannedSlot{
			SlotID:       slotID,
			ActivityID:   activityID,
			ActivityName: name,
			StartTime:    startTime,
			EndTime:      endTime,
		})
	}
	return slots, rows.Err()
}

// MinutesByActivity returns per-activity minute totals with display fields,
// descending.
func (s *SQLiteAnalyticsSource) MinutesByActivity(ctx context.Context, from, to time.Time) ([]analytics.ActivityTotal, error) {
	fromStr, toStr := rfc3339Range(from, to)
	rows, err := s.dbConn.QueryContext(ctx,
		`SELECT a.name, a.icon, a.color, SUM(s.minutes) AS total
		 FROM sessions s
		 JOIN activities a ON a.id = s.activity_id
		 WHERE s.logged_at >= ? AND s.logged_at < ?
		 GROUP BY a.id
		 ORDER BY total DESC`, fromStr, toStr)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []analytics.ActivityTotal
	for rows.Next() {
		var (
			name, icon, color string
			minutes           int64
		)
		if err := rows.Scan(&name, &icon, &color, &minutes); err != nil {
			return nil, err
		}
		totals = append(totals, analytics.ActivityTotal{
			Name:    name,
			Icon:    icon,
			Color:   color,
			Minutes: int(minutes),
		})
	}
	return totals, rows.Err()
}
