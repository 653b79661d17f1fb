package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/cadence/internal/analytics/domain"
)

func TestEngine_Dashboard(t *testing.T) {
	t.Run("empty store", func(t *testing.T) {
		engine := newTestEngine(&memSource{})

		summary, err := engine.Dashboard(context.Background(), fixedNow)
		require.NoError(t, err)

		assert.Equal(t, 0, summary.TodayMinutes)
		assert.Equal(t, 0, summary.WeekMinutes)
		assert.Equal(t, 0, summary.MonthMinutes)
		assert.Equal(t, 0, summary.CurrentStreak)
		assert.Empty(t, summary.TodayByActivity)
	})

	t.Run("rolling totals and streak", func(t *testing.T) {
		source := &memSource{sessions: []domain.SessionFact{
			sessionAt(0, 9, 60),
			sessionAt(0, 14, 30),
			sessionAt(1, 9, 45),
			sessionAt(2, 9, 45),
			sessionAt(10, 9, 120),
			sessionAt(40, 9, 500),
		}}
		engine := newTestEngine(source)

		summary, err := engine.Dashboard(context.Background(), fixedNow)
		require.NoError(t, err)

		assert.Equal(t, 90, summary.TodayMinutes)
		assert.Equal(t, 180, summary.WeekMinutes)
		assert.Equal(t, 300, summary.MonthMinutes)
		assert.Equal(t, 3, summary.CurrentStreak)
	})

	t.Run("today's breakdown busiest first", func(t *testing.T) {
		source := &memSource{sessions: []domain.SessionFact{
			namedFact("Coding", 0, 90),
			namedFact("Guitar", 0, 30),
			namedFact("Yesterday thing", 1, 600),
		}}
		engine := newTestEngine(source)

		summary, err := engine.Dashboard(context.Background(), fixedNow)
		require.NoError(t, err)
		require.Len(t, summary.TodayByActivity, 2)

		assert.Equal(t, domain.ActivityTotal{Name: "Coding", Minutes: 90}, summary.TodayByActivity[0])
		assert.Equal(t, domain.ActivityTotal{Name: "Guitar", Minutes: 30}, summary.TodayByActivity[1])
	})
}

func TestEngine_DeepWork(t *testing.T) {
	t.Run("empty store", func(t *testing.T) {
		engine := newTestEngine(&memSource{})

		stats, err := engine.DeepWork(context.Background(), fixedNow)
		require.NoError(t, err)

		assert.Equal(t, 0, stats.SessionsWeek)
		assert.Equal(t, 0, stats.TotalMinutes)
		assert.Equal(t, 0, stats.AvgSessionLength)
		assert.Equal(t, 0, stats.LongestSession)
		assert.Equal(t, 0, stats.FocusConsistency)
	})

	t.Run("only sessions of forty-five minutes or more count", func(t *testing.T) {
		source := &memSource{sessions: []domain.SessionFact{
			sessionAt(0, 9, 90),
			sessionAt(1, 9, 45),
			sessionAt(2, 9, 44),
			sessionAt(3, 9, 20),
		}}
		engine := newTestEngine(source)

		stats, err := engine.DeepWork(context.Background(), fixedNow)
		require.NoError(t, err)

		assert.Equal(t, 2, stats.SessionsWeek)
		assert.Equal(t, 135, stats.TotalMinutes)
		assert.Equal(t, 68, stats.AvgSessionLength)
		assert.Equal(t, 90, stats.LongestSession)
		assert.Equal(t, 50, stats.FocusConsistency)
	})

	t.Run("old deep sessions fall outside the week", func(t *testing.T) {
		source := &memSource{sessions: []domain.SessionFact{
			sessionAt(10, 9, 120),
		}}
		engine := newTestEngine(source)

		stats, err := engine.DeepWork(context.Background(), fixedNow)
		require.NoError(t, err)
		assert.Equal(t, 0, stats.SessionsWeek)
	})
}
