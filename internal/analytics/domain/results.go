// Package domain contains the result types and read-side contracts of the
// behavior analytics engine. Results are computed on demand and never
// persisted; given identical store contents and an identical "now" they are
// deterministic.
package domain

import "github.com/google/uuid"

// SlotStatus classifies how well a timetable slot was honored.
type SlotStatus string

const (
	SlotDone    SlotStatus = "done"    // logged >= 80% of planned
	SlotPartial SlotStatus = "partial" // logged > 0 but below 80%
	SlotMissed  SlotStatus = "missed"  // nothing logged
)

// AdherenceSlot is one timetable slot judged against the day's logged time.
//
// LoggedMinutes is the day total for the slot's activity, not time inside
// the slot window. When an activity is booked into several slots on the same
// day, each slot is judged against that same total, so completed minutes can
// double-count. Downstream consumers depend on these numbers; do not "fix"
// this here.
type AdherenceSlot struct {
	SlotID         uuid.UUID  `json:"slot_id"`
	StartTime      string     `json:"start_time"`
	EndTime        string     `json:"end_time"`
	ActivityID     uuid.UUID  `json:"activity_id"`
	ActivityName   string     `json:"activity_name"`
	PlannedMinutes int        `json:"planned_minutes"`
	LoggedMinutes  int        `json:"logged_minutes"`
	Status         SlotStatus `json:"status"`
}

// AdherenceDay aggregates one day's slots into a completion percentage.
type AdherenceDay struct {
	Date             string          `json:"date"` // "2006-01-02"
	DayOfWeek        int             `json:"day_of_week"`
	PlannedMinutes   int             `json:"planned_minutes"`
	CompletedMinutes int             `json:"completed_minutes"`
	AdherencePct     int             `json:"adherence_pct"`
	Slots            []AdherenceSlot `json:"slots"`
}

// Trend labels week-over-week volume movement.
type Trend string

const (
	TrendRising  Trend = "rising"
	TrendStable  Trend = "stable"
	TrendFalling Trend = "falling"
)

// MomentumScore is the 0-100 composite engagement score with its four
// components, each independently normalized to 0-100.
type MomentumScore struct {
	Score                int     `json:"score"`
	StreakComponent      float64 `json:"streak_component"`
	VolumeComponent      float64 `json:"volume_component"`
	ConsistencyComponent float64 `json:"consistency_component"`
	DeepWorkComponent    float64 `json:"deep_work_component"`
	Trend                Trend   `json:"trend"`
}

// RiskBand categorizes a burnout risk score.
type RiskBand string

const (
	RiskLow    RiskBand = "low"    // score < 30
	RiskMedium RiskBand = "medium" // 30 <= score < 60
	RiskHigh   RiskBand = "high"   // score >= 60
)

// BurnoutRisk is the additive 0-100 risk estimate with the factors that
// contributed to it.
type BurnoutRisk struct {
	Score   int      `json:"risk_score"`
	Band    RiskBand `json:"risk_level"`
	Factors []string `json:"factors"`
}

// LoadStatus bands the same-day cognitive load percentage.
type LoadStatus string

const (
	LoadOptimal  LoadStatus = "optimal"  // <= 60
	LoadHigh     LoadStatus = "high"     // > 60
	LoadOverload LoadStatus = "overload" // > 90
)

// BrainLoad is the same-day cognitive load estimate against a fixed
// deep-work-equivalent capacity.
type BrainLoad struct {
	CurrentLoad int        `json:"current_load"` // 0-100
	Status      LoadStatus `json:"status"`
	Suggestion  string     `json:"suggestion"`
}

// EnergyCurvePoint is the average focus/energy rating for one hour of day
// over the trailing 30 days. Zero averages with SampleSize == 0 mean "no
// data", not a genuinely low rating.
type EnergyCurvePoint struct {
	Hour       int     `json:"hour"` // 0-23
	AvgFocus   float64 `json:"avg_focus"`
	AvgEnergy  float64 `json:"avg_energy"`
	SampleSize int     `json:"sample_size"`
}

// TopicShare is one activity's share of logged minutes over a trailing
// window. Percentages are computed over the returned top-10 set only, so
// they may not represent global share when more activities exist.
type TopicShare struct {
	Topic      string `json:"topic"`
	Minutes    int    `json:"minutes"`
	Percentage int    `json:"percentage"`
}

// ActivityTotal is one activity's minute total for a day.
type ActivityTotal struct {
	Name    string `json:"name"`
	Icon    string `json:"icon"`
	Color   string `json:"color"`
	Minutes int    `json:"minutes"`
}

// DashboardSummary is the at-a-glance view: rolling totals, streak, and
// today's per-activity breakdown.
type DashboardSummary struct {
	TodayMinutes    int             `json:"today_minutes"`
	WeekMinutes     int             `json:"week_minutes"`
	MonthMinutes    int             `json:"month_minutes"`
	CurrentStreak   int             `json:"current_streak"`
	TodayByActivity []ActivityTotal `json:"today_by_activity"`
}

// DeepWorkStats summarizes deep-work sessions (>=45 min) over the trailing
// 7 days.
type DeepWorkStats struct {
	SessionsWeek     int `json:"deep_sessions_week"`
	TotalMinutes     int `json:"total_deep_minutes"`
	AvgSessionLength int `json:"avg_session_length"`
	FocusConsistency int `json:"focus_consistency"` // % of all sessions that were deep
	LongestSession   int `json:"longest_session"`
}
