package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/cadence/internal/tracking/domain"
)

func TestSQLiteSessionRepository_CreateAndGet(t *testing.T) {
	sqlDB := setupTestDB(t)
	repo := NewSQLiteSessionRepository(sqlDB)
	ctx := context.Background()

	activity := createTestActivity(t, sqlDB, "Coding", "Work")

	session := mustSession(t, activity, 50, testTime(9))
	session.WithSource(domain.SourceTimer).WithNotes("morning block").WithDistractions("slack")
	require.NoError(t, session.RateFocus(4))
	require.NoError(t, session.RateEnergyAfter(3))

	require.NoError(t, repo.Create(ctx, session))

	loaded, err := repo.GetByID(ctx, session.ID())
	require.NoError(t, err)
	require.NotNil(t, loaded)

	assert.Equal(t, session.ID(), loaded.ID())
	assert.Equal(t, activity.ID(), loaded.ActivityID())
	assert.Equal(t, 50, loaded.Minutes())
	assert.Equal(t, domain.SourceTimer, loaded.Source())
	assert.Equal(t, "morning block", loaded.Notes())
	assert.Equal(t, "slack", loaded.Distractions())
	require.NotNil(t, loaded.FocusRating())
	assert.Equal(t, 4, *loaded.FocusRating())
	require.NotNil(t, loaded.EnergyAfter())
	assert.Equal(t, 3, *loaded.EnergyAfter())
	assert.True(t, loaded.LoggedAt().Equal(testTime(9)))
}

func TestSQLiteSessionRepository_UnratedRoundTrip(t *testing.T) {
	sqlDB := setupTestDB(t)
	repo := NewSQLiteSessionRepository(sqlDB)
	ctx := context.Background()

	activity := createTestActivity(t, sqlDB, "Coding", "Work")
	session := mustSession(t, activity, 25, testTime(14))
	require.NoError(t, repo.Create(ctx, session))

	loaded, err := repo.GetByID(ctx, session.ID())
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Nil(t, loaded.FocusRating())
	assert.Nil(t, loaded.EnergyAfter())
}

func TestSQLiteSessionRepository_GetByID_NotFound(t *testing.T) {
	sqlDB := setupTestDB(t)
	repo := NewSQLiteSessionRepository(sqlDB)

	loaded, err := repo.GetByID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestSQLiteSessionRepository_List(t *testing.T) {
	sqlDB := setupTestDB(t)
	repo := NewSQLiteSessionRepository(sqlDB)
	ctx := context.Background()

	coding := createTestActivity(t, sqlDB, "Coding", "Work")
	guitar := createTestActivity(t, sqlDB, "Guitar", "leisure")

	require.NoError(t, repo.Create(ctx, mustSession(t, coding, 60, testTime(9))))
	require.NoError(t, repo.Create(ctx, mustSession(t, coding, 30, testTime(15))))
	require.NoError(t, repo.Create(ctx, mustSession(t, guitar, 20, testTime(19))))

	t.Run("all sessions most recent first", func(t *testing.T) {
		sessions, err := repo.List(ctx, domain.SessionFilter{})
		require.NoError(t, err)
		require.Len(t, sessions, 3)
		assert.Equal(t, 20, sessions[0].Minutes())
		assert.Equal(t, 30, sessions[1].Minutes())
		assert.Equal(t, 60, sessions[2].Minutes())
	})

	t.Run("filter by activity", func(t *testing.T) {
		id := coding.ID()
		sessions, err := repo.List(ctx, domain.SessionFilter{ActivityID: &id})
		require.NoError(t, err)
		assert.Len(t, sessions, 2)
	})

	t.Run("filter by time range is half open", func(t *testing.T) {
		from := testTime(9)
		to := testTime(15)
		sessions, err := repo.List(ctx, domain.SessionFilter{From: &from, To: &to})
		require.NoError(t, err)
		require.Len(t, sessions, 1)
		assert.Equal(t, 60, sessions[0].Minutes())
	})

	t.Run("limit", func(t *testing.T) {
		sessions, err := repo.List(ctx, domain.SessionFilter{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, sessions, 2)
	})
}

func TestSQLiteSessionRepository_Delete(t *testing.T) {
	sqlDB := setupTestDB(t)
	repo := NewSQLiteSessionRepository(sqlDB)
	ctx := context.Background()

	activity := createTestActivity(t, sqlDB, "Coding", "Work")
	session := mustSession(t, activity, 40, time.Now().UTC().Truncate(time.Second))
	require.NoError(t, repo.Create(ctx, session))

	require.NoError(t, repo.Delete(ctx, session.ID()))

	loaded, err := repo.GetByID(ctx, session.ID())
	require.NoError(t, err)
	assert.Nil(t, loaded)
}
