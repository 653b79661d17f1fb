package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSlotInvalidWeekday = errors.New("day of week must be between 0 (Sunday) and 6 (Saturday)")
	ErrSlotInvalidTime    = errors.New("slot time must be in HH:MM format")
	ErrSlotInvalidRange   = errors.New("slot end must be after start on the same day")
)

// ScheduleSlot is a recurring weekly planned time block for one activity.
// It defines a plan, not an instance of actual time spent. Slots are
// same-day only; overnight spans are not supported.
type ScheduleSlot struct {
	id         uuid.UUID
	dayOfWeek  int // 0=Sunday .. 6=Saturday
	startTime  string
	endTime    string
	activityID uuid.UUID
	label      string
	active     bool
	createdAt  time.Time
}

// NewScheduleSlot creates a slot for the given weekday with "HH:MM" start
// and end times.
func NewScheduleSlot(dayOfWeek int, startTime, endTime string, activityID uuid.UUID) (*ScheduleSlot, error) {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return nil, ErrSlotInvalidWeekday
	}
	start, err := ParseClock(startTime)
	if err != nil {
		return nil, err
	}
	end, err := ParseClock(endTime)
	if err != nil {
		return nil, err
	}
	if end <= start {
		return nil, ErrSlotInvalidRange
	}

	return &ScheduleSlot{
		id:         uuid.New(),
		dayOfWeek:  dayOfWeek,
		startTime:  startTime,
		endTime:    endTime,
		activityID: activityID,
		active:     true,
		createdAt:  time.Now(),
	}, nil
}

// Getters
func (s *ScheduleSlot) ID() uuid.UUID         { return s.id }
func (s *ScheduleSlot) DayOfWeek() int        { return s.dayOfWeek }
func (s *ScheduleSlot) StartTime() string     { return s.startTime }
func (s *ScheduleSlot) EndTime() string       { return s.endTime }
func (s *ScheduleSlot) ActivityID() uuid.UUID { return s.activityID }
func (s *ScheduleSlot) Label() string         { return s.label }
func (s *ScheduleSlot) IsActive() bool        { return s.active }
func (s *ScheduleSlot) CreatedAt() time.Time  { return s.createdAt }

// SetLabel sets an optional display label.
func (s *ScheduleSlot) SetLabel(label string) {
	s.label = label
}

// Activate enables the slot for adherence evaluation.
func (s *ScheduleSlot) Activate() { s.active = true }

// Deactivate removes the slot from adherence evaluation without deleting it.
func (s *ScheduleSlot) Deactivate() { s.active = false }

// PlannedMinutes returns end minus start in minutes.
func (s *ScheduleSlot) PlannedMinutes() int {
	start, _ := ParseClock(s.startTime)
	end, _ := ParseClock(s.endTime)
	return end - start
}

// ParseClock parses a wall-clock "HH:MM" string into minutes since midnight.
func ParseClock(clock string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(clock, "%d:%d", &h, &m); err != nil {
		return 0, ErrSlotInvalidTime
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, ErrSlotInvalidTime
	}
	return h*60 + m, nil
}

// RehydrateScheduleSlot recreates a slot from persisted state.
func RehydrateScheduleSlot(
	id uuid.UUID,
	dayOfWeek int,
	startTime, endTime string,
	activityID uuid.UUID,
	label string,
	active bool,
	createdAt time.Time,
) *ScheduleSlot {
	return &ScheduleSlot{
		id:         id,
		dayOfWeek:  dayOfWeek,
		startTime:  startTime,
		endTime:    endTime,
		activityID: activityID,
		label:      label,
		active:     active,
		createdAt:  createdAt,
	}
}
