package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrDiaryInvalidDate   = errors.New("diary date must be in YYYY-MM-DD format")
	ErrDiaryInvalidRating = errors.New("mood and energy must be between 1 and 5")
)

// DiaryEntry is the single journal entry for one calendar date. Mood and
// energy are optional 1-5 self-ratings; the analytics engine reads them as
// burnout signals and never mutates entries.
type DiaryEntry struct {
	id           uuid.UUID
	date         string // "2006-01-02", unique
	mood         *int
	energy       *int
	content      string
	tags         string
	wins         string
	challenges   string
	tomorrowPlan string
	createdAt    time.Time
	updatedAt    time.Time
}

// NewDiaryEntry creates an entry for the given calendar date.
func NewDiaryEntry(date string) (*DiaryEntry, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, ErrDiaryInvalidDate
	}
	now := time.Now()
	return &DiaryEntry{
		id:        uuid.New(),
		date:      date,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// Getters
func (e *DiaryEntry) ID() uuid.UUID        { return e.id }
func (e *DiaryEntry) Date() string         { return e.date }
func (e *DiaryEntry) Mood() *int           { return e.mood }
func (e *DiaryEntry) Energy() *int         { return e.energy }
func (e *DiaryEntry) Content() string      { return e.content }
func (e *DiaryEntry) Tags() string         { return e.tags }
func (e *DiaryEntry) Wins() string         { return e.wins }
func (e *DiaryEntry) Challenges() string   { return e.challenges }
func (e *DiaryEntry) TomorrowPlan() string { return e.tomorrowPlan }
func (e *DiaryEntry) CreatedAt() time.Time { return e.createdAt }
func (e *DiaryEntry) UpdatedAt() time.Time { return e.updatedAt }

// SetMood sets the 1-5 mood rating.
func (e *DiaryEntry) SetMood(mood int) error {
	if mood < 1 || mood > 5 {
		return ErrDiaryInvalidRating
	}
	e.mood = &mood
	e.touch()
	return nil
}

// SetEnergy sets the 1-5 energy rating.
func (e *DiaryEntry) SetEnergy(energy int) error {
	if energy < 1 || energy > 5 {
		return ErrDiaryInvalidRating
	}
	e.energy = &energy
	e.touch()
	return nil
}

// SetText updates the free-text fields. Empty strings clear a field.
func (e *DiaryEntry) SetText(content, tags, wins, challenges, tomorrowPlan string) {
	e.content = content
	e.tags = tags
	e.wins = wins
	e.challenges = challenges
	e.tomorrowPlan = tomorrowPlan
	e.touch()
}

func (e *DiaryEntry) touch() {
	e.updatedAt = time.Now()
}

// RehydrateDiaryEntry recreates an entry from persisted state.
func RehydrateDiaryEntry(
	id uuid.UUID,
	date string,
	mood, energy *int,
	content, tags, wins, challenges, tomorrowPlan string,
	createdAt, updatedAt time.Time,
) *DiaryEntry {
	return &DiaryEntry{
		id:           id,
		date:         date,
		mood:         mood,
		energy:       energy,
		content:      content,
		tags:         tags,
		wins:         wins,
		challenges:   challenges,
		tomorrowPlan: tomorrowPlan,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}
