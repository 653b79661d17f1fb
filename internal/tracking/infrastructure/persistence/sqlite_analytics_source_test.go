package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/cadence/internal/tracking/domain"
)

func TestSQLiteAnalyticsSource_SessionTimestamps(t *testing.T) {
	sqlDB := setupTestDB(t)
	sessions := NewSQLiteSessionRepository(sqlDB)
	source := NewSQLiteAnalyticsSource(sqlDB)
	ctx := context.Background()

	activity := createTestActivity(t, sqlDB, "Coding", "Work")
	require.NoError(t, sessions.Create(ctx, mustSession(t, activity, 30, testTime(9))))
	require.NoError(t, sessions.Create(ctx, mustSession(t, activity, 30, testTime(15))))

	timestamps, err := source.SessionTimestamps(ctx, testTime(0), testTime(23))
	require.NoError(t, err)
	require.Len(t, timestamps, 2)
	assert.True(t, timestamps[0].Equal(testTime(15)))
	assert.True(t, timestamps[1].Equal(testTime(9)))

	// Half-open range: a session at the upper bound is excluded.
	timestamps, err = source.SessionTimestamps(ctx, testTime(0), testTime(15))
	require.NoError(t, err)
	assert.Len(t, timestamps, 1)
}

func TestSQLiteAnalyticsSource_MinuteAggregates(t *testing.T) {
	sqlDB := setupTestDB(t)
	sessions := NewSQLiteSessionRepository(sqlDB)
	source := NewSQLiteAnalyticsSource(sqlDB)
	ctx := context.Background()

	coding := createTestActivity(t, sqlDB, "Coding", "Work")
	guitar := createTestActivity(t, sqlDB, "Guitar", "leisure")

	require.NoError(t, sessions.Create(ctx, mustSession(t, coding, 60, testTime(9))))
	require.NoError(t, sessions.Create(ctx, mustSession(t, coding, 45, testTime(14))))
	require.NoError(t, sessions.Create(ctx, mustSession(t, guitar, 20, testTime(19))))

	from, to := testTime(0), testTime(23)

	total, err := source.TotalMinutes(ctx, from, to)
	require.NoError(t, err)
	assert.Equal(t, 125, total)

	codingTotal, err := source.ActivityMinutes(ctx, coding.ID(), from, to)
	require.NoError(t, err)
	assert.Equal(t, 105, codingTotal)

	long, err := source.LongSessionCount(ctx, from, to, 45)
	require.NoError(t, err)
	assert.Equal(t, 2, long)

	t.Run("empty range sums to zero", func(t *testing.T) {
		total, err := source.TotalMinutes(ctx, testTime(0).AddDate(0, 0, -7), testTime(0).AddDate(0, 0, -6))
		require.NoError(t, err)
		assert.Equal(t, 0, total)
	})
}

func TestSQLiteAnalyticsSource_SessionFacts(t *testing.T) {
	sqlDB := setupTestDB(t)
	sessions := NewSQLiteSessionRepository(sqlDB)
	source := NewSQLiteAnalyticsSource(sqlDB)
	ctx := context.Background()

	activity := createTestActivity(t, sqlDB, "Coding", "Work")

	rated := mustSession(t, activity, 50, testTime(9))
	require.NoError(t, rated.RateFocus(4))
	require.NoError(t, sessions.Create(ctx, rated))
	require.NoError(t, sessions.Create(ctx, mustSession(t, activity, 20, testTime(15))))

	facts, err := source.SessionFacts(ctx, testTime(0), testTime(23))
	require.NoError(t, err)
	require.Len(t, facts, 2)

	// Most recent first; joined activity fields present.
	assert.Equal(t, 20, facts[0].Minutes)
	assert.Equal(t, "Coding", facts[0].ActivityName)
	assert.Equal(t, "Work", facts[0].Category)
	assert.Nil(t, facts[0].FocusRating)

	require.NotNil(t, facts[1].FocusRating)
	assert.Equal(t, 4, *facts[1].FocusRating)
	assert.Equal(t, activity.ID(), facts[1].ActivityID)
}

func TestSQLiteAnalyticsSource_TopicTotals(t *testing.T) {
	sqlDB := setupTestDB(t)
	sessions := NewSQLiteSessionRepository(sqlDB)
	source := NewSQLiteAnalyticsSource(sqlDB)
	ctx := context.Background()

	coding := createTestActivity(t, sqlDB, "Coding", "Work")
	guitar := createTestActivity(t, sqlDB, "Guitar", "leisure")
	reading := createTestActivity(t, sqlDB, "Reading", "Study")

	require.NoError(t, sessions.Create(ctx, mustSession(t, coding, 100, testTime(9))))
	require.NoError(t, sessions.Create(ctx, mustSession(t, coding, 100, testTime(11))))
	require.NoError(t, sessions.Create(ctx, mustSession(t, guitar, 150, testTime(13))))
	require.NoError(t, sessions.Create(ctx, mustSession(t, reading, 50, testTime(15))))

	totals, err := source.TopicTotals(ctx, testTime(0), testTime(23), 2)
	require.NoError(t, err)
	require.Len(t, totals, 2)

	assert.Equal(t, "Coding", totals[0].Topic)
	assert.Equal(t, 200, totals[0].Minutes)
	assert.Equal(t, "Guitar", totals[1].Topic)
	assert.Equal(t, 150, totals[1].Minutes)
}

func TestSQLiteAnalyticsSource_DiarySignal(t *testing.T) {
	sqlDB := setupTestDB(t)
	diary := NewSQLiteDiaryRepository(sqlDB)
	source := NewSQLiteAnalyticsSource(sqlDB)
	ctx := context.Background()

	dates := []struct {
		date   string
		mood   int
		energy int
	}{
		{"2025-03-13", 2, 3},
		{"2025-03-14", 4, 0},
		{"2025-03-15", 3, 5},
	}
	for _, d := range dates {
		entry, err := domain.NewDiaryEntry(d.date)
		require.NoError(t, err)
		if d.mood > 0 {
			require.NoError(t, entry.SetMood(d.mood))
		}
		if d.energy > 0 {
			require.NoError(t, entry.SetEnergy(d.energy))
		}
		require.NoError(t, diary.Upsert(ctx, entry))
	}

	signal, err := source.DiarySignal(ctx, "2025-03-13", "2025-03-15")
	require.NoError(t, err)

	assert.Equal(t, 3, signal.MoodCount)
	assert.InDelta(t, 3.0, signal.AvgMood, 0.001)
	assert.Equal(t, 2, signal.EnergyCount)
	assert.InDelta(t, 4.0, signal.AvgEnergy, 0.001)

	t.Run("empty range carries zero counts", func(t *testing.T) {
		signal, err := source.DiarySignal(ctx, "2024-01-01", "2024-01-07")
		require.NoError(t, err)
		assert.Equal(t, 0, signal.MoodCount)
		assert.Equal(t, 0, signal.EnergyCount)
		assert.Equal(t, 0.0, signal.AvgMood)
	})
}

func TestSQLiteAnalyticsSource_PlannedSlots(t *testing.T) {
	sqlDB := setupTestDB(t)
	slots := NewSQLiteSlotRepository(sqlDB)
	source := NewSQLiteAnalyticsSource(sqlDB)
	ctx := context.Background()

	activity := createTestActivity(t, sqlDB, "Coding", "Work")

	evening, err := domain.NewScheduleSlot(1, "19:00", "20:00", activity.ID())
	require.NoError(t, err)
	morning, err := domain.NewScheduleSlot(1, "09:00", "10:30", activity.ID())
	require.NoError(t, err)
	inactive, err := domain.NewScheduleSlot(1, "12:00", "13:00", activity.ID())
	require.NoError(t, err)
	inactive.Deactivate()

	require.NoError(t, slots.Create(ctx, evening))
	require.NoError(t, slots.Create(ctx, morning))
	require.NoError(t, slots.Create(ctx, inactive))

	planned, err := source.PlannedSlots(ctx, 1)
	require.NoError(t, err)
	require.Len(t, planned, 2)

	assert.Equal(t, morning.ID(), planned[0].SlotID)
	assert.Equal(t, "Coding", planned[0].ActivityName)
	assert.Equal(t, "09:00", planned[0].StartTime)
	assert.Equal(t, evening.ID(), planned[1].SlotID)

	other, err := source.PlannedSlots(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestSQLiteAnalyticsSource_MinutesByActivity(t *testing.T) {
	sqlDB := setupTestDB(t)
	sessions := NewSQLiteSessionRepository(sqlDB)
	source := NewSQLiteAnalyticsSource(sqlDB)
	ctx := context.Background()

	coding := createTestActivity(t, sqlDB, "Coding", "Work")
	guitar := createTestActivity(t, sqlDB, "Guitar", "leisure")

	require.NoError(t, sessions.Create(ctx, mustSession(t, guitar, 30, testTime(9))))
	require.NoError(t, sessions.Create(ctx, mustSession(t, coding, 90, testTime(11))))

	totals, err := source.MinutesByActivity(ctx, testTime(0), testTime(23))
	require.NoError(t, err)
	require.Len(t, totals, 2)

	assert.Equal(t, "Coding", totals[0].Name)
	assert.Equal(t, 90, totals[0].Minutes)
	assert.Equal(t, "📌", totals[0].Icon)
	assert.Equal(t, "#6C63FF", totals[0].Color)
	assert.Equal(t, "Guitar", totals[1].Name)
}

func TestSQLiteAnalyticsSource_ImplementsInterfaceAgainstEngineWindows(t *testing.T) {
	// Sanity check that RFC3339 text comparison handles window boundaries
	// produced from a non-UTC location.
	sqlDB := setupTestDB(t)
	sessions := NewSQLiteSessionRepository(sqlDB)
	source := NewSQLiteAnalyticsSource(sqlDB)
	ctx := context.Background()

	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	activity := createTestActivity(t, sqlDB, "Coding", "Work")
	// 23:30 UTC on Mar 14 is 00:30 Mar 15 in Berlin.
	late := time.Date(2025, 3, 14, 23, 30, 0, 0, time.UTC)
	require.NoError(t, sessions.Create(ctx, mustSession(t, activity, 30, late)))

	berlinDayStart := time.Date(2025, 3, 15, 0, 0, 0, 0, loc)
	berlinDayEnd := berlinDayStart.AddDate(0, 0, 1)

	total, err := source.TotalMinutes(ctx, berlinDayStart, berlinDayEnd)
	require.NoError(t, err)
	assert.Equal(t, 30, total)

	utcDayStart := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	total, err = source.TotalMinutes(ctx, utcDayStart, utcDayStart.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, 0, total)
}
