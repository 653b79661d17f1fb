package persistence

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/felixgeelhaar/cadence/internal/tracking/domain"
)

// SQLiteDiaryRepository implements domain.DiaryRepository using SQLite.
type SQLiteDiaryRepository struct {
	dbConn *sql.DB
}

// NewSQLiteDiaryRepository creates a new SQLite diary repository.
func NewSQLiteDiaryRepository(dbConn *sql.DB) *SQLiteDiaryRepository {
	return &SQLiteDiaryRepository{dbConn: dbConn}
}

const diaryColumns = `id, date, mood, energy, content, tags, wins, challenges, tomorrow_plan, created_at, updated_at`

// Upsert creates or replaces the entry for its date. The date column carries
// a unique constraint; conflicting writes keep the original id and creation
// time.
func (r *SQLiteDiaryRepository) Upsert(ctx context.Context, entry *domain.DiaryEntry) error {
	_, err := r.dbConn.ExecContext(ctx,
		`INSERT INTO diary_entries (`+diaryColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(date) DO UPDATE SET
		   mood = excluded.mood,
		   energy = excluded.energy,
		   content = excluded.content,
		   tags = excluded.tags,
		   wins = excluded.wins,
		   challenges = excluded.challenges,
		   tomorrow_plan = excluded.tomorrow_plan,
		   updated_at = excluded.updated_at`,
		entry.ID().String(),
		entry.Date(),
		toNullInt(entry.Mood()),
		toNullInt(entry.Energy()),
		toNullString(entry.Content()),
		toNullString(entry.Tags()),
		toNullString(entry.Wins()),
		toNullString(entry.Challenges()),
		toNullString(entry.TomorrowPlan()),
		entry.CreatedAt().UTC().Format(time.RFC3339),
		entry.UpdatedAt().UTC().Format(time.RFC3339),
	)
	return err
}

// GetByDate retrieves the entry for a "2006-01-02" date. Returns nil when no
// entry exists.
func (r *SQLiteDiaryRepository) GetByDate(ctx context.Context, date string) (*domain.DiaryEntry, error) {
	row := r.dbConn.QueryRowContext(ctx,
		`SELECT `+diaryColumns+` FROM diary_entries WHERE date = ?`, date)
	entry, err := r.scanEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return entry, nil
}

// ListRecent retrieves the most recent entries, newest first.
func (r *SQLiteDiaryRepository) ListRecent(ctx context.Context, limit int) ([]*domain.DiaryEntry, error) {
	rows, err := r.dbConn.QueryContext(ctx,
		`SELECT `+diaryColumns+` FROM diary_entries ORDER BY date DESC LIMIT ?`, int64(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.DiaryEntry
	for rows.Next() {
		entry, err := r.scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (r *SQLiteDiaryRepository) scanEntry(row rowScanner) (*domain.DiaryEntry, error) {
	var (
		idStr, date                              string
		mood, energy                             sql.NullInt64
		content, tags, wins, challenges, tomorrow sql.NullString
		createdAtStr, updatedAtStr               string
	)
	err := row.Scan(&idStr, &date, &mood, &energy, &content, &tags, &wins, &challenges, &tomorrow, &createdAtStr, &updatedAtStr)
	if err != nil {
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

	return domain.RehydrateDiaryEntry(
		id, date,
		fromNullInt(mood), fromNullInt(energy),
		fromNullString(content), fromNullString(tags), fromNullString(wins),
		fromNullString(challenges), fromNullString(tomorrow),
		createdAt, updatedAt,
	), nil
}
