// Package domain contains the domain model for the tracking bounded context:
// activities, logged sessions, timetable slots, and diary entries.
package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrActivityEmptyName = errors.New("activity name cannot be empty")
	ErrActivityArchived  = errors.New("activity is archived")
)

// Activity represents something the user spends time on. The category tag is
// free-form and feeds the cognitive-load weighting in analytics.
type Activity struct {
	id                 uuid.UUID
	name               string
	category           string
	icon               string
	color              string
	dailyTargetMinutes int
	archived           bool
	createdAt          time.Time
	updatedAt          time.Time
}

// NewActivity creates a new activity with a unique display name.
func NewActivity(name, category string) (*Activity, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrActivityEmptyName
	}
	if category == "" {
		category = "other"
	}

	now := time.Now()
	return &Activity{
		id:        uuid.New(),
		name:      name,
		category:  category,
		icon:      "📌",
		color:     "#6C63FF",
		createdAt: now,
		updatedAt: now,
	}, nil
}

// Getters
func (a *Activity) ID() uuid.UUID           { return a.id }
func (a *Activity) Name() string            { return a.name }
func (a *Activity) Category() string        { return a.category }
func (a *Activity) Icon() string            { return a.icon }
func (a *Activity) Color() string           { return a.color }
func (a *Activity) DailyTargetMinutes() int { return a.dailyTargetMinutes }
func (a *Activity) IsArchived() bool        { return a.archived }
func (a *Activity) CreatedAt() time.Time    { return a.createdAt }
func (a *Activity) UpdatedAt() time.Time    { return a.updatedAt }

// Rename updates the display name.
func (a *Activity) Rename(name string) error {
	if a.archived {
		return ErrActivityArchived
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrActivityEmptyName
	}
	a.name = name
	a.touch()
	return nil
}

// Retag updates the category tag.
func (a *Activity) Retag(category string) error {
	if a.archived {
		return ErrActivityArchived
	}
	if category == "" {
		category = "other"
	}
	a.category = category
	a.touch()
	return nil
}

// SetAppearance updates the icon and color.
func (a *Activity) SetAppearance(icon, color string) {
	if icon != "" {
		a.icon = icon
	}
	if color != "" {
		a.color = color
	}
	a.touch()
}

// SetDailyTarget updates the daily target in minutes. Zero means no target.
func (a *Activity) SetDailyTarget(minutes int) {
	if minutes < 0 {
		minutes = 0
	}
	a.dailyTargetMinutes = minutes
	a.touch()
}

// Archive marks the activity as archived. Archived activities keep their
// history but stop appearing in pickers and timetables.
func (a *Activity) Archive() {
	if !a.archived {
		a.archived = true
		a.touch()
	}
}

// Unarchive restores an archived activity.
func (a *Activity) Unarchive() {
	if a.archived {
		a.archived = false
		a.touch()
	}
}

func (a *Activity) touch() {
	a.updatedAt = time.Now()
}

// RehydrateActivity recreates an activity from persisted state.
func RehydrateActivity(
	id uuid.UUID,
	name, category, icon, color string,
	dailyTargetMinutes int,
	archived bool,
	createdAt, updatedAt time.Time,
) *Activity {
	return &Activity{
		id:                 id,
		name:               name,
		category:           category,
		icon:               icon,
		color:              color,
		dailyTargetMinutes: dailyTargetMinutes,
		archived:           archived,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}
