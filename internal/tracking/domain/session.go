package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSessionInvalidMinutes = errors.New("session minutes must be positive")
	ErrSessionInvalidRating  = errors.New("rating must be between 1 and 5")
)

// SessionSource identifies how a session was logged.
type SessionSource string

const (
	SourceManual SessionSource = "manual"
	SourceTimer  SessionSource = "timer"
	SourceBot    SessionSource = "bot"
)

// Session is a single logged block of time spent on one activity. Sessions
// are immutable after creation except for deletion; they are the primary
// signal feeding every analytics aggregate.
type Session struct {
	id           uuid.UUID
	activityID   uuid.UUID
	minutes      int
	notes        string
	source       SessionSource
	focusRating  *int // 1-5, nil when not rated
	energyAfter  *int // 1-5, nil when not rated
	distractions string
	loggedAt     time.Time
}

// NewSession logs a session for an activity. loggedAt is the creation
// instant and never changes afterwards.
func NewSession(activityID uuid.UUID, minutes int, loggedAt time.Time) (*Session, error) {
	if minutes <= 0 {
		return nil, ErrSessionInvalidMinutes
	}
	return &Session{
		id:         uuid.New(),
		activityID: activityID,
		minutes:    minutes,
		source:     SourceManual,
		loggedAt:   loggedAt,
	}, nil
}

// WithSource sets the source tag.
func (s *Session) WithSource(src SessionSource) *Session {
	s.source = src
	return s
}

// WithNotes sets the free-text notes.
func (s *Session) WithNotes(notes string) *Session {
	s.notes = notes
	return s
}

// WithDistractions records what pulled attention away during the session.
func (s *Session) WithDistractions(d string) *Session {
	s.distractions = d
	return s
}

// RateFocus sets the 1-5 subjective focus rating.
func (s *Session) RateFocus(rating int) error {
	if rating < 1 || rating > 5 {
		return ErrSessionInvalidRating
	}
	s.focusRating = &rating
	return nil
}

// RateEnergyAfter sets the 1-5 post-session energy rating.
func (s *Session) RateEnergyAfter(rating int) error {
	if rating < 1 || rating > 5 {
		return ErrSessionInvalidRating
	}
	s.energyAfter = &rating
	return nil
}

// Getters
func (s *Session) ID() uuid.UUID         { return s.id }
func (s *Session) ActivityID() uuid.UUID { return s.activityID }
func (s *Session) Minutes() int          { return s.minutes }
func (s *Session) Notes() string         { return s.notes }
func (s *Session) Source() SessionSource { return s.source }
func (s *Session) FocusRating() *int     { return s.focusRating }
func (s *Session) EnergyAfter() *int     { return s.energyAfter }
func (s *Session) Distractions() string  { return s.distractions }
func (s *Session) LoggedAt() time.Time   { return s.loggedAt }

// IsDeepWork reports whether the session qualifies as deep work (>=45 min).
func (s *Session) IsDeepWork() bool {
	return s.minutes >= DeepWorkMinutes
}

// DeepWorkMinutes is the minimum duration for a session to count as deep work.
const DeepWorkMinutes = 45

// RehydrateSession recreates a session from persisted state.
func RehydrateSession(
	id, activityID uuid.UUID,
	minutes int,
	notes string,
	source SessionSource,
	focusRating, energyAfter *int,
	distractions string,
	loggedAt time.Time,
) *Session {
	return &Session{
		id:           id,
		activityID:   activityID,
		minutes:      minutes,
		notes:        notes,
		source:       source,
		focusRating:  focusRating,
		energyAfter:  energyAfter,
		distractions: distractions,
		loggedAt:     loggedAt,
	}
}
