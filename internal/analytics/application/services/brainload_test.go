package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/cadence/internal/analytics/domain"
)

func todayFact(category, name string, hour, minutes int) domain.SessionFact {
	return domain.SessionFact{
		ActivityID:   uuid.Nil,
		ActivityName: name,
		Category:     category,
		Minutes:      minutes,
		LoggedAt:     day(0).Add(time.Duration(hour) * time.Hour),
	}
}

func TestCognitiveWeight(t *testing.T) {
	tests := []struct {
		name     string
		category string
		activity string
		want     float64
	}{
		{"work category", "Work", "Emails", 1.5},
		{"study category", "Study", "Flashcards", 1.5},
		{"code in name", "other", "Code Review", 1.5},
		{"deep in name", "other", "Deep Reading", 1.5},
		{"plain leisure", "leisure", "Guitar", 0.5},
		{"lowercase work category does not match", "work", "Emails", 0.5},
		{"lowercase code in name does not match", "other", "code review", 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CognitiveWeight(tt.category, tt.activity))
		})
	}
}

func TestEngine_BrainLoad(t *testing.T) {
	t.Run("zero sessions today is zero load and optimal", func(t *testing.T) {
		engine := newTestEngine(&memSource{})

		load, err := engine.BrainLoad(context.Background(), fixedNow)
		require.NoError(t, err)

		assert.Equal(t, 0, load.CurrentLoad)
		assert.Equal(t, domain.LoadOptimal, load.Status)
		assert.Equal(t, "You have mental capacity available.", load.Suggestion)
	})

	t.Run("weighted minutes against fixed capacity", func(t *testing.T) {
		// 120 heavy minutes (180 units) + 120 light minutes (60 units)
		// = 240 units of 360, so 67%.
		source := &memSource{sessions: []domain.SessionFact{
			todayFact("Work", "Emails", 9, 120),
			todayFact("leisure", "Guitar", 18, 120),
		}}
		engine := newTestEngine(source)

		load, err := engine.BrainLoad(context.Background(), fixedNow)
		require.NoError(t, err)

		assert.Equal(t, 67, load.CurrentLoad)
		assert.Equal(t, domain.LoadHigh, load.Status)
		assert.Equal(t, "High load. Consider a break soon.", load.Suggestion)
	})

	t.Run("load caps at one hundred", func(t *testing.T) {
		source := &memSource{sessions: []domain.SessionFact{
			todayFact("Work", "Deep Work", 8, 600),
		}}
		engine := newTestEngine(source)

		load, err := engine.BrainLoad(context.Background(), fixedNow)
		require.NoError(t, err)

		assert.Equal(t, 100, load.CurrentLoad)
		assert.Equal(t, domain.LoadOverload, load.Status)
		assert.Equal(t, "Brain fried. Switch to low-focus tasks or rest.", load.Suggestion)
	})

	t.Run("status band boundaries", func(t *testing.T) {
		tests := []struct {
			name         string
			lightMinutes int
			wantLoad     int
			wantStatus   domain.LoadStatus
		}{
			// Light sessions carry 0.5 weight: minutes/2 units of 360.
			{"sixty percent is still optimal", 432, 60, domain.LoadOptimal},
			{"just above sixty is high", 440, 61, domain.LoadHigh},
			{"ninety percent is still high", 648, 90, domain.LoadHigh},
			{"just above ninety is overload", 656, 91, domain.LoadOverload},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				source := &memSource{sessions: []domain.SessionFact{
					todayFact("leisure", "Guitar", 10, tt.lightMinutes),
				}}
				engine := newTestEngine(source)

				load, err := engine.BrainLoad(context.Background(), fixedNow)
				require.NoError(t, err)
				assert.Equal(t, tt.wantLoad, load.CurrentLoad)
				assert.Equal(t, tt.wantStatus, load.Status)
			})
		}
	})

	t.Run("yesterday's sessions do not count", func(t *testing.T) {
		source := &memSource{sessions: []domain.SessionFact{
			sessionAt(1, 9, 300),
		}}
		engine := newTestEngine(source)

		load, err := engine.BrainLoad(context.Background(), fixedNow)
		require.NoError(t, err)
		assert.Equal(t, 0, load.CurrentLoad)
	})
}
