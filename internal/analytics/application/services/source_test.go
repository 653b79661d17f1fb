package services

import (
	"context"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/felixgeelhaar/cadence/internal/analytics/domain"
	"github.com/google/uuid"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

// fixedNow is a Saturday afternoon; every test pins "now" here so results
// are deterministic.
var fixedNow = time.Date(2025, 3, 15, 14, 30, 0, 0, time.UTC)

type diaryDay struct {
	date   string
	mood   *int
	energy *int
}

// memSource is an in-memory DataSource over plain slices.
type memSource struct {
	sessions []domain.SessionFact
	slots    []domain.PlannedSlot
	diary    []diaryDay
}

func (m *memSource) inRange(ts, from, to time.Time) bool {
	return !ts.Before(from) && ts.Before(to)
}

func (m *memSource) SessionTimestamps(ctx context.Context, from, to time.Time) ([]time.Time, error) {
	var out []time.Time
	for _, s := range m.sessions {
		if m.inRange(s.LoggedAt, from, to) {
			out = append(out, s.LoggedAt)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].After(out[j]) })
	return out, nil
}

func (m *memSource) TotalMinutes(ctx context.Context, from, to time.Time) (int, error) {
	total := 0
	for _, s := range m.sessions {
		if m.inRange(s.LoggedAt, from, to) {
			total += s.Minutes
		}
	}
	return total, nil
}

func (m *memSource) ActivityMinutes(ctx context.Context, activityID uuid.UUID, from, to time.Time) (int, error) {
	total := 0
	for _, s := range m.sessions {
		if s.ActivityID == activityID && m.inRange(s.LoggedAt, from, to) {
			total += s.Minutes
		}
	}
	return total, nil
}

func (m *memSource) LongSessionCount(ctx context.Context, from, to time.Time, minMinutes int) (int, error) {
	count := 0
	for _, s := range m.sessions {
		if s.Minutes >= minMinutes && m.inRange(s.LoggedAt, from, to) {
			count++
		}
	}
	return count, nil
}

func (m *memSource) SessionFacts(ctx context.Context, from, to time.Time) ([]domain.SessionFact, error) {
	var out []domain.SessionFact
	for _, s := range m.sessions {
		if m.inRange(s.LoggedAt, from, to) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memSource) TopicTotals(ctx context.Context, from, to time.Time, limit int) ([]domain.TopicTotal, error) {
	byName := map[string]int{}
	for _, s := range m.sessions {
		if m.inRange(s.LoggedAt, from, to) {
			byName[s.ActivityName] += s.Minutes
		}
	}
	var totals []domain.TopicTotal
	for name, minutes := range byName {
		totals = append(totals, domain.TopicTotal{Topic: name, Minutes: minutes})
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Minutes != totals[j].Minutes {
			return totals[i].Minutes > totals[j].Minutes
		}
		return totals[i].Topic < totals[j].Topic
	})
	if len(totals) > limit {
		totals = totals[:limit]
	}
	return totals, nil
}

func (m *memSource) DiarySignal(ctx context.Context, fromDate, toDate string) (*domain.DiarySignal, error) {
	signal := &domain.DiarySignal{}
	moodSum, energySum := 0, 0
	for _, d := range m.diary {
		if d.date < fromDate || d.date > toDate {
			continue
		}
		if d.mood != nil {
			moodSum += *d.mood
			signal.MoodCount++
		}
		if d.energy != nil {
			energySum += *d.energy
			signal.EnergyCount++
		}
	}
	if signal.MoodCount > 0 {
		signal.AvgMood = float64(moodSum) / float64(signal.MoodCount)
	}
	if signal.EnergyCount > 0 {
		signal.AvgEnergy = float64(energySum) / float64(signal.EnergyCount)
	}
	return signal, nil
}

func (m *memSource) PlannedSlots(ctx context.Context, dayOfWeek int) ([]domain.PlannedSlot, error) {
	return m.slots, nil
}

func (m *memSource) MinutesByActivity(ctx context.Context, from, to time.Time) ([]domain.ActivityTotal, error) {
	byName := map[string]int{}
	for _, s := range m.sessions {
		if m.inRange(s.LoggedAt, from, to) {
			byName[s.ActivityName] += s.Minutes
		}
	}
	var out []domain.ActivityTotal
	for name, minutes := range byName {
		out = append(out, domain.ActivityTotal{Name: name, Minutes: minutes})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Minutes > out[j].Minutes })
	return out, nil
}

func newTestEngine(source *memSource) *Engine {
	return NewEngine(source, time.UTC, testLogger())
}

func ratingPtr(v int) *int { return &v }

// sessionAt builds a session fact n days before fixedNow at the given hour.
func sessionAt(daysAgo, hour, minutes int) domain.SessionFact {
	day := fixedNow.AddDate(0, 0, -daysAgo)
	return domain.SessionFact{
		ActivityID:   uuid.Nil,
		ActivityName: "Study Session",
		Category:     "study",
		Minutes:      minutes,
		LoggedAt:     time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, time.UTC),
	}
}
