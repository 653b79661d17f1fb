package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ActivityRepository defines persistence operations for activities.
type ActivityRepository interface {
	// Create persists a new activity.
	Create(ctx context.Context, activity *Activity) error

	// Update persists changes to an existing activity.
	Update(ctx context.Context, activity *Activity) error

	// GetByID retrieves an activity by ID. Returns nil when not found.
	GetByID(ctx context.Context, id uuid.UUID) (*Activity, error)

	// GetByName retrieves an activity by its unique display name.
	GetByName(ctx context.Context, name string) (*Activity, error)

	// List retrieves activities ordered by name.
	List(ctx context.Context, includeArchived bool) ([]*Activity, error)

	// Delete removes an activity and cascades to its sessions.
	Delete(ctx context.Context, id uuid.UUID) error
}

// SessionFilter narrows session listings.
type SessionFilter struct {
	ActivityID *uuid.UUID
	From       *time.Time
	To         *time.Time
	Limit      int
}

// SessionRepository defines persistence operations for logged sessions.
type SessionRepository interface {
	// Create persists a new session.
	Create(ctx context.Context, session *Session) error

	// GetByID retrieves a session by ID. Returns nil when not found.
	GetByID(ctx context.Context, id uuid.UUID) (*Session, error)

	// List retrieves sessions matching the filter, most recent first.
	List(ctx context.Context, filter SessionFilter) ([]*Session, error)

	// Delete removes a session.
	Delete(ctx context.Context, id uuid.UUID) error
}

// SlotRepository defines persistence operations for timetable slots.
type SlotRepository interface {
	// Create persists a new slot.
	Create(ctx context.Context, slot *ScheduleSlot) error

	// Update persists changes to an existing slot.
	Update(ctx context.Context, slot *ScheduleSlot) error

	// ListForWeekday retrieves active slots for a weekday ordered by start time.
	ListForWeekday(ctx context.Context, dayOfWeek int) ([]*ScheduleSlot, error)

	// ListAll retrieves every active slot ordered by weekday then start time.
	ListAll(ctx context.Context) ([]*ScheduleSlot, error)

	// Delete removes a slot.
	Delete(ctx context.Context, id uuid.UUID) error
}

// DiaryRepository defines persistence operations for diary entries.
type DiaryRepository interface {
	// Upsert creates or replaces the entry for its date.
	Upsert(ctx context.Context, entry *DiaryEntry) error

	// GetByDate retrieves the entry for a "2006-01-02" date. Returns nil
	// when no entry exists.
	GetByDate(ctx context.Context, date string) (*DiaryEntry, error)

	// ListRecent retrieves the most recent entries, newest first.
	ListRecent(ctx context.Context, limit int) ([]*DiaryEntry, error)
}
