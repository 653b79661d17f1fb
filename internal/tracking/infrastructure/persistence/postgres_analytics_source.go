package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	analytics "github.com/felixgeelhaar/cadence/internal/analytics/domain"
)

// PostgresAnalyticsSource implements the analytics read API using PostgreSQL.
type PostgresAnalyticsSource struct {
	pool *pgxpool.Pool
}

// NewPostgresAnalyticsSource creates a new PostgreSQL analytics source.
func NewPostgresAnalyticsSource(pool *pgxpool.Pool) *PostgresAnalyticsSource {
	return &PostgresAnalyticsSource{pool: pool}
}

// SessionTimestamps returns the logged-at instants of sessions in the range,
// most recent first.
func (s *PostgresAnalyticsSource) SessionTimestamps(ctx context.Context, from, to time.Time) ([]time.Time, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT logged_at FROM sessions
		 WHERE logged_at >= $1 AND logged_at < $2
		 ORDER BY logged_at DESC`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var timestamps []time.Time
	for rows.Next() {
		var loggedAt time.Time
		if err := rows.Scan(&loggedAt); err != nil {
			return nil, err
		}
		timestamps = append(timestamps, loggedAt)
	}
	return timestamps, rows.Err()
}

// TotalMinutes sums session minutes in the range.
func (s *PostgresAnalyticsSource) TotalMinutes(ctx context.Context, from, to time.Time) (int, error) {
	var total int
	err := s.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(minutes), 0) FROM sessions
		 WHERE logged_at >= $1 AND logged_at < $2`, from, to).Scan(&total)
	return total, err
}

// ActivityMinutes sums one activity's session minutes in the range.
func (s *PostgresAnalyticsSource) ActivityMinutes(ctx context.Context, activityID uuid.UUID, from, to time.Time) (int, error) {
	var total int
	err := s.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(minutes), 0) FROM sessions
		 WHERE activity_id = $1 AND logged_at >= $2 AND logged_at < $3`,
		activityID, from, to).Scan(&total)
	return total, err
}

// LongSessionCount counts sessions of at least minMinutes in the range.
func (s *PostgresAnalyticsSource) LongSessionCount(ctx context.Context, from, to time.Time, minMinutes int) (int, error) {
	var count int
	err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM sessions
		 WHERE minutes >= $1 AND logged_at >= $2 AND logged_at < $3`,
		minMinutes, from, to).Scan(&count)
	return count, err
}

// SessionFacts returns session rows joined with activity fields for the
// range, most recent first.
func (s *PostgresAnalyticsSource) SessionFacts(ctx context.Context, from, to time.Time) ([]analytics.SessionFact, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT s.activity_id, a.name, a.category, s.minutes,
		        s.focus_rating, s.energy_after, s.logged_at
		 FROM sessions s
		 JOIN activities a ON a.id = s.activity_id
		 WHERE s.logged_at >= $1 AND s.logged_at < $2
		 ORDER BY s.logged_at DESC`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var facts []analytics.SessionFact
	for rows.Next() {
		var fact analytics.SessionFact
		err := rows.Scan(&fact.ActivityID, &fact.ActivityName, &fact.Category,
			&fact.Minutes, &fact.FocusRating, &fact.EnergyAfter, &fact.LoggedAt)
		if err != nil {
			return nil, err
		}
		facts = append(facts, fact)
	}
	return facts, rows.Err()
}

// TopicTotals returns summed minutes grouped by activity name, descending,
// truncated to limit entries.
func (s *PostgresAnalyticsSource) TopicTotals(ctx context.Context, from, to time.Time, limit int) ([]analytics.TopicTotal, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT a.name, SUM(s.minutes) AS total
		 FROM sessions s
		 JOIN activities a ON a.id = s.activity_id
		 WHERE s.logged_at >= $1 AND s.logged_at < $2
		 GROUP BY a.name
		 ORDER BY total DESC
		 LIMIT $3`, from, to, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []analytics.TopicTotal
	for rows.Next() {
		var t analytics.TopicTotal
		if err := rows.Scan(&t.Topic, &t.Minutes); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

// DiarySignal returns diary mood/energy averages for the inclusive date range.
func (s *PostgresAnalyticsSource) DiarySignal(ctx context.Context, fromDate, toDate string) (*analytics.DiarySignal, error) {
	signal := &analytics.DiarySignal{}
	var avgMood, avgEnergy *float64
	err := s.pool.QueryRow(ctx,
		`SELECT AVG(mood), AVG(energy), COUNT(mood), COUNT(energy)
		 FROM diary_entries
		 WHERE date >= $1 AND date <= $2`, fromDate, toDate).
		Scan(&avgMood, &avgEnergy, &signal.MoodCount, &signal.EnergyCount)
	if err != nil {
		return nil, err
	}
	if avgMood != nil {
		signal.AvgMood = *avgMood
	}
	if avgEnergy != nil {
		signal.AvgEnergy = *avgEnergy
	}
	return signal, nil
}

// PlannedSlots returns the active timetable slots for a weekday joined with
// their activity names, ordered by start time.
func (s *PostgresAnalyticsSource) PlannedSlots(ctx context.Context, dayOfWeek int) ([]analytics.PlannedSlot, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT t.id, t.activity_id, a.name, t.start_time, t.end_time
		 FROM schedule_slots t
		 JOIN activities a ON a.id = t.activity_id
		 WHERE t.day_of_week = $1 AND t.active
		 ORDER BY t.start_time`, dayOfWeek)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slots []analytics.PlannedSlot
	for rows.Next() {
		var slot analytics.PlannedSlot
		err := rows.Scan(&slot.SlotID, &slot.ActivityID, &slot.ActivityName, &slot.StartTime, &slot.EndTime)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	return slots, rows.Err()
}

// MinutesByActivity returns per-activity minute totals with display fields,
// descending.
func (s *PostgresAnalyticsSource) MinutesByActivity(ctx context.Context, from, to time.Time) ([]analytics.ActivityTotal, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT a.name, a.icon, a.color, SUM(s.minutes) AS total
		 FROM sessions s
		 JOIN activities a ON a.id = s.activity_id
		 WHERE s.logged_at >= $1 AND s.logged_at < $2
		 GROUP BY a.id
		 ORDER BY total DESC`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []analytics.ActivityTotal
	for rows.Next() {
		var t analytics.ActivityTotal
		if err := rows.Scan(&t.Name, &t.Icon, &t.Color, &t.Minutes); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}
