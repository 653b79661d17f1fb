package persistence

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/felixgeelhaar/cadence/internal/tracking/domain"
)

// SQLiteSlotRepository implements domain.SlotRepository using SQLite.
type SQLiteSlotRepository struct {
	dbConn *sql.DB
}

// NewSQLiteSlotRepository creates a new SQLite slot repository.
func NewSQLiteSlotRepository(dbConn *sql.DB) *SQLiteSlotRepository {
	return &SQLiteSlotRepository{dbConn: dbConn}
}

const slotColumns = `id, day_of_week, start_time, end_time, activity_id, label, active, created_at`

// Create persists a new slot.
func (r *SQLiteSlotRepository) Create(ctx context.Context, slot *domain.ScheduleSlot) error {
	_, err := r.dbConn.ExecContext(ctx,
		`INSERT INTO schedule_slots (`+slotColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		slot.ID().String(),
		int64(slot.DayOfWeek()),
		slot.StartTime(),
		slot.EndTime(),
		slot.ActivityID().String(),
		toNullString(slot.Label()),
		boolToInt64(slot.IsActive()),
		slot.CreatedAt().UTC().Format(time.RFC3339),
	)
	return err
}

// Update persists changes to an existing slot.
func (r *SQLiteSlotRepository) Update(ctx context.Context, slot *domain.ScheduleSlot) error {
	_, err := r.dbConn.ExecContext(ctx,
		`UPDATE schedule_slots
		 SET day_of_week = ?, start_time = ?, end_time = ?, activity_id = ?, label = ?, active = ?
		 WHERE id = ?`,
		int64(slot.DayOfWeek()),
		slot.StartTime(),
		slot.EndTime(),
		slot.ActivityID().String(),
		toNullString(slot.Label()),
		boolToInt64(slot.IsActive()),
		slot.ID().String(),
	)
	return err
}

// ListForWeekday retrieves active slots for a weekday ordered by start time.
func (r *SQLiteSlotRepository) ListForWeekday(ctx context.Context, dayOfWeek int) ([]*domain.ScheduleSlot, error) {
	rows, err := r.dbConn.QueryContext(ctx,
		`SELECT `+slotColumns+` FROM schedule_slots
		 WHERE day_of_week = ? AND active = 1
		 ORDER BY start_time`, int64(dayOfWeek))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanSlots(rows)
}

// ListAll retrieves every active slot ordered by weekday then start time.
func (r *SQLiteSlotRepository) ListAll(ctx context.Context) ([]*domain.ScheduleSlot, error) {
	rows, err := r.dbConn.QueryContext(ctx,
		`SELECT `+slotColumns+` FROM schedule_slots
		 WHERE active = 1
		 ORDER BY day_of_week, start_time`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanSlots(rows)
}

// Delete removes a slot.
func (r *SQLiteSlotRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.dbConn.ExecContext(ctx, `DELETE FROM schedule_slots WHERE id = ?`, id.String())
	return err
}

func (r *SQLiteSlotRepository) scanSlots(rows *sql.Rows) ([]*domain.ScheduleSlot, error) {
	var slots []*domain.ScheduleSlot
	for rows.Next() {
		var (
			idStr, startTime, endTime, activityIDStr string
			dayOfWeek, active                        int64
			label                                    sql.NullString
			createdAtStr                             string
		)
		err := rows.Scan(&idStr, &dayOfWeek, &startTime, &endTime, &activityIDStr, &label, &active, &createdAtStr)
		if err != nil {
			return nil, err
		}

		id, err := uuid.Parse(idStr)
		if err != nil {
			return nil, err
		}
		activityID, err := uuid.Parse(activityIDStr)
		if err != nil {
			return nil, err
		}
		createdAt, err := time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, err
		}

		slots = append(slots, domain.RehydrateScheduleSlot(
			id,
			int(dayOfWeek),
			startTime, endTime,
			activityID,
			fromNullString(label),
			active != 0,
			createdAt,
		))
	}
	return slots, rows.Err()
}
