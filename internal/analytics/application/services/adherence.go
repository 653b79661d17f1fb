package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/felixgeelhaar/cadence/internal/analytics/domain"
	"github.com/felixgeelhaar/cadence/internal/shared/timeutil"
	trackingDomain "github.com/felixgeelhaar/cadence/internal/tracking/domain"
)

// doneThreshold is the fraction of planned minutes that counts a slot as done.
const doneThreshold = 0.8

// Adherence evaluates the timetable for one calendar day: each active slot
// for that weekday is judged against the day's logged minutes for its
// activity.
func (e *Engine) Adherence(ctx context.Context, date time.Time) (*domain.AdherenceDay, error) {
	dayStart := timeutil.DayStart(date, e.loc)
	dayEnd := timeutil.DayEnd(date, e.loc)
	weekday := int(dayStart.Weekday())

	slots, err := e.source.PlannedSlots(ctx, weekday)
	if err != nil {
		return nil, fmt.Errorf("failed to load timetable slots: %w", err)
	}

	day := &domain.AdherenceDay{
		Date:      timeutil.DateKey(dayStart, e.loc),
		DayOfWeek: weekday,
		Slots:     make([]domain.AdherenceSlot, 0, len(slots)),
	}

	for _, slot := range slots {
		planned, err := plannedMinutes(slot)
		if err != nil {
			return nil, fmt.Errorf("invalid slot %s: %w", slot.SlotID, err)
		}

		logged, err := e.source.ActivityMinutes(ctx, slot.ActivityID, dayStart, dayEnd)
		if err != nil {
			return nil, fmt.Errorf("failed to sum logged minutes: %w", err)
		}

		status := domain.SlotMissed
		switch {
		case float64(logged) >= doneThreshold*float64(planned):
			status = domain.SlotDone
		case logged > 0:
			status = domain.SlotPartial
		}

		day.Slots = append(day.Slots, domain.AdherenceSlot{
			SlotID:         slot.SlotID,
			StartTime:      slot.StartTime,
			EndTime:        slot.EndTime,
			ActivityID:     slot.ActivityID,
			ActivityName:   slot.ActivityName,
			PlannedMinutes: planned,
			LoggedMinutes:  logged,
			Status:         status,
		})

		day.PlannedMinutes += planned
		day.CompletedMinutes += min(logged, planned)
	}

	if day.PlannedMinutes > 0 {
		day.AdherencePct = int(math.Round(100 * float64(day.CompletedMinutes) / float64(day.PlannedMinutes)))
	}

	return day, nil
}

// WeeklyAdherence evaluates the trailing 7 calendar days, today inclusive,
// in chronological order.
func (e *Engine) WeeklyAdherence(ctx context.Context, now time.Time) ([]domain.AdherenceDay, error) {
	now = now.In(e.loc)
	days := make([]domain.AdherenceDay, 0, 7)
	for i := 6; i >= 0; i-- {
		date := timeutil.DayStart(now, e.loc).AddDate(0, 0, -i)
		day, err := e.Adherence(ctx, date)
		if err != nil {
			return nil, err
		}
		days = append(days, *day)
	}
	return days, nil
}

func plannedMinutes(slot domain.PlannedSlot) (int, error) {
	start, err := trackingDomain.ParseClock(slot.StartTime)
	if err != nil {
		return 0, err
	}
	end, err := trackingDomain.ParseClock(slot.EndTime)
	if err != nil {
		return 0, err
	}
	return end - start, nil
}
