package persistence

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/felixgeelhaar/cadence/internal/tracking/domain"
)

// SQLiteActivityRepository implements domain.ActivityRepository using SQLite.
type SQLiteActivityRepository struct {
	dbConn *sql.DB
}

// NewSQLiteActivityRepository creates a new SQLite activity repository.
func NewSQLiteActivityRepository(dbConn *sql.DB) *SQLiteActivityRepository {
	return &SQLiteActivityRepository{dbConn: dbConn}
}

const activityColumns = `id, name, category, icon, color, daily_target_minutes, archived, created_at, updated_at`

// Create persists a new activity.
func (r *SQLiteActivityRepository) Create(ctx context.Context, activity *domain.Activity) error {
	_, err := r.dbConn.ExecContext(ctx,
		`INSERT INTO activities (`+activityColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		activity.ID().String(),
		activity.Name(),
		activity.Category(),
		activity.Icon(),
		activity.Color(),
		int64(activity.DailyTargetMinutes()),
		boolToInt64(activity.IsArchived()),
		activity.CreatedAt().UTC().Format(time.RFC3339),
		activity.UpdatedAt().UTC().Format(time.RFC3339),
	)
	return err
}

// Update persists changes to an existing activity.
func (r *SQLiteActivityRepository) Update(ctx context.Context, activity *domain.Activity) error {
	_, err := r.dbConn.ExecContext(ctx,
		`UPDATE activities
		 SET name = ?, category = ?, icon = ?, color = ?,
		     daily_target_minutes = ?, archived = ?, updated_at = ?
		 WHERE id = ?`,
		activity.Name(),
		activity.Category(),
		activity.Icon(),
		activity.Color(),
		int64(activity.DailyTargetMinutes()),
		boolToInt64(activity.IsArchived()),
		activity.UpdatedAt().UTC().Format(time.RFC3339),
		activity.ID().String(),
	)
	return err
}

// GetByID retrieves an activity by ID. Returns nil when not found.
func (r *SQLiteActivityRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Activity, error) {
	row := r.dbConn.QueryRowContext(ctx,
		`SELECT `+activityColumns+` FROM activities WHERE id = ?`, id.String())
	return r.scanActivity(row)
}

// GetByName retrieves an activity by its unique display name.
func (r *SQLiteActivityRepository) GetByName(ctx context.Context, name string) (*domain.Activity, error) {
	row := r.dbConn.QueryRowContext(ctx,
		`SELECT `+activityColumns+` FROM activities WHERE name = ?`, name)
	return r.scanActivity(row)
}

// List retrieves activities ordered by name.
func (r *SQLiteActivityRepository) List(ctx context.Context, includeArchived bool) ([]*domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities`
	if !includeArchived {
		query += ` WHERE archived = 0`
	}
	query += ` ORDER BY name`

	rows, err := r.dbConn.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []*domain.Activity
	for rows.Next() {
		activity, err := r.scanActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, activity)
	}
	return activities, rows.Err()
}

// Delete removes an activity; sessions and slots cascade.
func (r *SQLiteActivityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.dbConn.ExecContext(ctx, `DELETE FROM activities WHERE id = ?`, id.String())
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteActivityRepository) scanActivity(row rowScanner) (*domain.Activity, error) {
	var (
		idStr, name, category, icon, color string
		target, archived                   int64
		createdAtStr, updatedAtStr         string
	)
	err := row.Scan(&idStr, &name, &category, &icon, &color, &target, &archived, &createdAtStr, &updatedAtStr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, err
	}
	createdAt, err := time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, err
	}
	updatedAt, err := time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return nil, err
	}

	return domain.RehydrateActivity(
		id, name, category, icon, color,
		int(target),
		archived != 0,
		createdAt, updatedAt,
	), nil
}
