package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/cadence/internal/analytics/domain"
)

func TestEngine_Momentum_PerfectWeek(t *testing.T) {
	source := &memSource{}
	// 30-day streak: one session each day. The most recent 7 days carry
	// 300 minutes in two deep sessions each: 2100 weekly minutes, 7/7
	// active days, 14 deep sessions (caps at 10).
	for i := 0; i < 7; i++ {
		source.sessions = append(source.sessions,
			sessionAt(i, 9, 150),
			sessionAt(i, 15, 150),
		)
	}
	for i := 7; i < 30; i++ {
		source.sessions = append(source.sessions, sessionAt(i, 9, 30))
	}
	engine := newTestEngine(source)

	score, err := engine.Momentum(context.Background(), fixedNow)
	require.NoError(t, err)

	assert.Equal(t, 100.0, score.StreakComponent)
	assert.Equal(t, 100.0, score.VolumeComponent)
	assert.Equal(t, 100.0, score.ConsistencyComponent)
	assert.Equal(t, 100.0, score.DeepWorkComponent)
	assert.Equal(t, 100, score.Score)
}

func TestEngine_Momentum_EmptyStore(t *testing.T) {
	engine := newTestEngine(&memSource{})

	score, err := engine.Momentum(context.Background(), fixedNow)
	require.NoError(t, err)

	assert.Equal(t, 0, score.Score)
	assert.Equal(t, 0.0, score.StreakComponent)
	assert.Equal(t, 0.0, score.VolumeComponent)
	assert.Equal(t, 0.0, score.ConsistencyComponent)
	assert.Equal(t, 0.0, score.DeepWorkComponent)
	assert.Equal(t, domain.TrendStable, score.Trend)
}

func TestEngine_Momentum_ComponentsCappedUnderExtremeInput(t *testing.T) {
	source := &memSource{}
	// Absurd volume: 10 deep sessions of 5000 minutes every day this week.
	for i := 0; i < 7; i++ {
		for j := 0; j < 10; j++ {
			source.sessions = append(source.sessions, sessionAt(i, (j+8)%24, 5000))
		}
	}
	// And a 400-day history (only the capped 365 are fetched).
	for i := 7; i < 400; i++ {
		source.sessions = append(source.sessions, sessionAt(i, 9, 30))
	}
	engine := newTestEngine(source)

	score, err := engine.Momentum(context.Background(), fixedNow)
	require.NoError(t, err)

	for _, component := range []float64{
		score.StreakComponent, score.VolumeComponent,
		score.ConsistencyComponent, score.DeepWorkComponent,
	} {
		assert.GreaterOrEqual(t, component, 0.0)
		assert.LessOrEqual(t, component, 100.0)
	}
	assert.GreaterOrEqual(t, score.Score, 0)
	assert.LessOrEqual(t, score.Score, 100)
}

func TestEngine_Momentum_PartialComponents(t *testing.T) {
	source := &memSource{}
	// Days 0-4: one 200-minute deep session each (1000 min, 5 deep).
	// Days 5-6: one 25-minute session each (50 min, not deep).
	// Days 7-14: 30 minutes each, extending the streak to 15 days.
	for i := 0; i < 5; i++ {
		source.sessions = append(source.sessions, sessionAt(i, 9, 200))
	}
	source.sessions = append(source.sessions,
		sessionAt(5, 9, 25),
		sessionAt(6, 9, 25),
	)
	for i := 7; i < 15; i++ {
		source.sessions = append(source.sessions, sessionAt(i, 9, 30))
	}
	engine := newTestEngine(source)

	score, err := engine.Momentum(context.Background(), fixedNow)
	require.NoError(t, err)

	// streak 15/30, volume 1050/2100, days 7/7, deep 5/10.
	assert.InDelta(t, 50.0, score.StreakComponent, 0.001)
	assert.InDelta(t, 50.0, score.VolumeComponent, 0.001)
	assert.InDelta(t, 100.0, score.ConsistencyComponent, 0.001)
	assert.InDelta(t, 50.0, score.DeepWorkComponent, 0.001)
	assert.Equal(t, 63, score.Score)
}

func TestVolumeTrend(t *testing.T) {
	tests := []struct {
		name    string
		current int
		prior   int
		want    domain.Trend
	}{
		{"clearly rising", 1200, 1000, domain.TrendRising},
		{"clearly falling", 800, 1000, domain.TrendFalling},
		{"within band is stable", 1050, 1000, domain.TrendStable},
		{"exact boundary up is stable", 1100, 1000, domain.TrendStable},
		{"exact boundary down is stable", 900, 1000, domain.TrendStable},
		{"zero prior with volume is rising", 500, 0, domain.TrendRising},
		{"zero prior and zero current is stable", 0, 0, domain.TrendStable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, volumeTrend(tt.current, tt.prior))
		})
	}
}

func TestEngine_Momentum_Trend(t *testing.T) {
	source := &memSource{}
	// Current week: 600 minutes. Prior week (days 7-13 back): 1200 minutes.
	for i := 0; i < 6; i++ {
		source.sessions = append(source.sessions, sessionAt(i, 9, 100))
	}
	for i := 7; i < 13; i++ {
		source.sessions = append(source.sessions, sessionAt(i, 9, 200))
	}
	engine := newTestEngine(source)

	score, err := engine.Momentum(context.Background(), fixedNow)
	require.NoError(t, err)
	assert.Equal(t, domain.TrendFalling, score.Trend)
}
