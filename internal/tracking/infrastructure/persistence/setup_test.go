package persistence

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"

	"github.com/felixgeelhaar/cadence/internal/tracking/domain"
)

// setupTestDB creates an in-memory SQLite database with the schema applied.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	sqlDB, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	_, err = sqlDB.Exec(`PRAGMA foreign_keys = ON`)
	require.NoError(t, err)

	schemaPath := filepath.Join("..", "..", "..", "..", "migrations", "sqlite", "000001_initial_schema.up.sql")
	schema, err := os.ReadFile(schemaPath)
	require.NoError(t, err, "Failed to read SQLite schema file")

	_, err = sqlDB.Exec(string(schema))
	require.NoError(t, err, "Failed to apply SQLite schema")

	return sqlDB
}

// createTestActivity inserts an activity row for foreign key constraints.
func createTestActivity(t *testing.T, sqlDB *sql.DB, name, category string) *domain.Activity {
	t.Helper()

	activity, err := domain.NewActivity(name, category)
	require.NoError(t, err)

	repo := NewSQLiteActivityRepository(sqlDB)
	require.NoError(t, repo.Create(context.Background(), activity))
	return activity
}

// testTime returns a fixed UTC instant at the given hour on 2025-03-15.
func testTime(hour int) time.Time {
	return time.Date(2025, 3, 15, hour, 0, 0, 0, time.UTC)
}

func mustSession(t *testing.T, activity *domain.Activity, minutes int, loggedAt time.Time) *domain.Session {
	t.Helper()
	session, err := domain.NewSession(activity.ID(), minutes, loggedAt)
	require.NoError(t, err)
	return session
}
