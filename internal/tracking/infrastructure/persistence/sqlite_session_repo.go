package persistence

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/felixgeelhaar/cadence/internal/tracking/domain"
)

// SQLiteSessionRepository implements domain.SessionRepository using SQLite.
type SQLiteSessionRepository struct {
	dbConn *sql.DB
}

// NewSQLiteSessionRepository creates a new SQLite session repository.
func NewSQLiteSessionRepository(dbConn *sql.DB) *SQLiteSessionRepository {
	return &SQLiteSessionRepository{dbConn: dbConn}
}

const sessionColumns = `id, activity_id, minutes, notes, source, focus_rating, energy_after, distractions, logged_at`

// Create persists a new session.
func (r *SQLiteSessionRepository) Create(ctx context.Context, session *domain.Session) error {
	_, err := r.dbConn.ExecContext(ctx,
		`INSERT INTO sessions (`+sessionColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		session.ID().String(),
		session.ActivityID().String(),
		int64(session.Minutes()),
		toNullString(session.Notes()),
		string(session.Source()),
		toNullInt(session.FocusRating()),
		toNullInt(session.EnergyAfter()),
		toNullString(session.Distractions()),
		session.LoggedAt().UTC().Format(time.RFC3339),
	)
	return err
}

// GetByID retrieves a session by ID. Returns nil when not found.
func (r *SQLiteSessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	row := r.dbConn.QueryRowContext(ctx,
		`SELECT `+sessionColumns+` FROM sessions WHERE id = ?`, id.String())
	session, err := r.scanSession(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return session, nil
}

// List retrieves sessions matching the filter, most recent first.
func (r *SQLiteSessionRepository) List(ctx context.Context, filter domain.SessionFilter) ([]*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE 1=1`
	var args []any
	if filter.ActivityID != nil {
		query += ` AND activity_id = ?`
		args = append(args, filter.ActivityID.String())
	}
	if filter.From != nil {
		query += ` AND logged_at >= ?`
		args = append(args, filter.From.UTC().Format(time.RFC3339))
	}
	if filter.To != nil {
		query += ` AND logged_at < ?`
		args = append(args, filter.To.UTC().Format(time.RFC3339))
	}
	query += ` ORDER BY logged_at DESC`
	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, int64(filter.Limit))
	}

	rows, err := r.dbConn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*domain.Session
	for rows.Next() {
		session, err := r.scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	return sessions, rows.Err()
}

// Delete removes a session.
func (r *SQLiteSessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.dbConn.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id.String())
	return err
}

func (r *SQLiteSessionRepository) scanSession(row rowScanner) (*domain.Session, error) {
	var (
		idStr, activityIDStr      string
		minutes                   int64
		notes, distractions       sql.NullString
		source                    string
		focusRating, energyAfter  sql.NullInt64
		loggedAtStr               string
	)
	err := row.Scan(&idStr, &activityIDStr, &minutes, &notes, &source,
		&focusRating, &energyAfter, &distractions, &loggedAtStr)
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
	loggedAt, err := time.Parse(time.RFC3339, loggedAtStr)
	if err != nil {
		return nil, err
	}

	return domain.RehydrateSession(
		id, activityID,
		int(minutes),
		fromNullString(notes),
		domain.SessionSource(source),
		fromNullInt(focusRating),
		fromNullInt(energyAfter),
		fromNullString(distractions),
		loggedAt,
	), nil
}
