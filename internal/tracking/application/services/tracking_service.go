// Package services contains the application service for the tracking
// bounded context. It coordinates the repositories and enforces the
// cross-aggregate rules the aggregates cannot see themselves.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/felixgeelhaar/cadence/internal/shared/timeutil"
	"github.com/felixgeelhaar/cadence/internal/tracking/domain"
)

var (
	ErrActivityNotFound  = errors.New("activity not found")
	ErrActivityNameTaken = errors.New("activity name already in use")
	ErrSessionNotFound   = errors.New("session not found")
)

// TrackingService is the write-side entry point for activities, sessions,
// timetable slots, and diary entries.
type TrackingService struct {
	activities domain.ActivityRepository
	sessions   domain.SessionRepository
	slots      domain.SlotRepository
	diary      domain.DiaryRepository
	loc        *time.Location
	logger     *slog.Logger
}

// NewTrackingService creates a new tracking service.
func NewTrackingService(
	activities domain.ActivityRepository,
	sessions domain.SessionRepository,
	slots domain.SlotRepository,
	diary domain.DiaryRepository,
	loc *time.Location,
	logger *slog.Logger,
) *TrackingService {
	if loc == nil {
		loc = time.UTC
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &TrackingService{
		activities: activities,
		sessions:   sessions,
		slots:      slots,
		diary:      diary,
		loc:        loc,
		logger:     logger,
	}
}

// CreateActivity creates a new activity with a unique name.
func (s *TrackingService) CreateActivity(ctx context.Context, name, category string) (*domain.Activity, error) {
	existing, err := s.activities.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check activity name: %w", err)
	}
	if existing != nil {
		return nil, ErrActivityNameTaken
	}

	activity, err := domain.NewActivity(name, category)
	if err != nil {
		return nil, err
	}
	if err := s.activities.Create(ctx, activity); err != nil {
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}

	s.logger.Info("activity created", "activity_id", activity.ID(), "name", activity.Name())
	return activity, nil
}

// ListActivities returns activities ordered by name.
func (s *TrackingService) ListActivities(ctx context.Context, includeArchived bool) ([]*domain.Activity, error) {
	return s.activities.List(ctx, includeArchived)
}

// ResolveActivity finds an activity by name.
func (s *TrackingService) ResolveActivity(ctx context.Context, name string) (*domain.Activity, error) {
	activity, err := s.activities.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if activity == nil {
		return nil, ErrActivityNotFound
	}
	return activity, nil
}

// ArchiveActivity archives an activity, keeping its history.
func (s *TrackingService) ArchiveActivity(ctx context.Context, name string) error {
	activity, err := s.ResolveActivity(ctx, name)
	if err != nil {
		return err
	}
	activity.Archive()
	if err := s.activities.Update(ctx, activity); err != nil {
		return fmt.Errorf("failed to archive activity: %w", err)
	}
	s.logger.Info("activity archived", "activity_id", activity.ID(), "name", activity.Name())
	return nil
}

// SetDailyTarget sets an activity's daily target in minutes.
func (s *TrackingService) SetDailyTarget(ctx context.Context, name string, minutes int) error {
	activity, err := s.ResolveActivity(ctx, name)
	if err != nil {
		return err
	}
	activity.SetDailyTarget(minutes)
	return s.activities.Update(ctx, activity)
}

// LogSessionInput carries the optional fields of a session log.
type LogSessionInput struct {
	ActivityName string
	Minutes      int
	Notes        string
	Distractions string
	Source       domain.SessionSource
	FocusRating  *int
	EnergyAfter  *int
}

// LogSession records a block of spent time against an activity. The session
// is stamped with the current instant.
func (s *TrackingService) LogSession(ctx context.Context, now time.Time, input LogSessionInput) (*domain.Session, error) {
	activity, err := s.ResolveActivity(ctx, input.ActivityName)
	if err != nil {
		return nil, err
	}
	if activity.IsArchived() {
		return nil, domain.ErrActivityArchived
	}

	session, err := domain.NewSession(activity.ID(), input.Minutes, now)
	if err != nil {
		return nil, err
	}
	if input.Source != "" {
		session.WithSource(input.Source)
	}
	session.WithNotes(input.Notes).WithDistractions(input.Distractions)
	if input.FocusRating != nil {
		if err := session.RateFocus(*input.FocusRating); err != nil {
			return nil, err
		}
	}
	if input.EnergyAfter != nil {
		if err := session.RateEnergyAfter(*input.EnergyAfter); err != nil {
			return nil, err
		}
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to log session: %w", err)
	}

	s.logger.Info("session logged",
		"session_id", session.ID(),
		"activity", activity.Name(),
		"minutes", session.Minutes(),
	)
	return session, nil
}

// DeleteSession removes a logged session.
func (s *TrackingService) DeleteSession(ctx context.Context, id uuid.UUID) error {
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if session == nil {
		return ErrSessionNotFound
	}
	return s.sessions.Delete(ctx, id)
}

// RecentSessions lists the most recent sessions.
func (s *TrackingService) RecentSessions(ctx context.Context, limit int) ([]*domain.Session, error) {
	return s.sessions.List(ctx, domain.SessionFilter{Limit: limit})
}

// AddSlot plans a recurring weekly time block for an activity.
func (s *TrackingService) AddSlot(ctx context.Context, activityName string, dayOfWeek int, startTime, endTime string) (*domain.ScheduleSlot, error) {
	activity, err := s.ResolveActivity(ctx, activityName)
	if err != nil {
		return nil, err
	}

	slot, err := domain.NewScheduleSlot(dayOfWeek, startTime, endTime, activity.ID())
	if err != nil {
		return nil, err
	}
	if err := s.slots.Create(ctx, slot); err != nil {
		return nil, fmt.Errorf("failed to create slot: %w", err)
	}

	s.logger.Info("slot created",
		"slot_id", slot.ID(),
		"activity", activity.Name(),
		"day_of_week", slot.DayOfWeek(),
		"start", slot.StartTime(),
	)
	return slot, nil
}

// Timetable lists every active slot ordered by weekday then start time.
func (s *TrackingService) Timetable(ctx context.Context) ([]*domain.ScheduleSlot, error) {
	return s.slots.ListAll(ctx)
}

// RemoveSlot deletes a timetable slot.
func (s *TrackingService) RemoveSlot(ctx context.Context, id uuid.UUID) error {
	return s.slots.Delete(ctx, id)
}

// WriteDiaryInput carries a diary upsert.
type WriteDiaryInput struct {
	Mood         *int
	Energy       *int
	Content      string
	Tags         string
	Wins         string
	Challenges   string
	TomorrowPlan string
}

// WriteDiary creates or updates today's diary entry.
func (s *TrackingService) WriteDiary(ctx context.Context, now time.Time, input WriteDiaryInput) (*domain.DiaryEntry, error) {
	date := timeutil.DateKey(now, s.loc)

	entry, err := s.diary.GetByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load diary entry: %w", err)
	}
	if entry == nil {
		entry, err = domain.NewDiaryEntry(date)
		if err != nil {
			return nil, err
		}
	}

	if input.Mood != nil {
		if err := entry.SetMood(*input.Mood); err != nil {
			return nil, err
		}
	}
	if input.Energy != nil {
		if err := entry.SetEnergy(*input.Energy); err != nil {
			return nil, err
		}
	}
	entry.SetText(input.Content, input.Tags, input.Wins, input.Challenges, input.TomorrowPlan)

	if err := s.diary.Upsert(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to save diary entry: %w", err)
	}

	s.logger.Info("diary entry saved", "date", date)
	return entry, nil
}

// DiaryEntry returns the entry for a date, nil when absent.
func (s *TrackingService) DiaryEntry(ctx context.Context, date string) (*domain.DiaryEntry, error) {
	return s.diary.GetByDate(ctx, date)
}
