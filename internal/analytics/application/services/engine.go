// Package services implements the temporal behavior analytics engine:
// streaks, schedule adherence, momentum, burnout risk, brain load, the
// hourly energy curve, and topic distribution. Every operation is a
// stateless read-side computation; the caller samples "now" once and passes
// it in, which keeps results deterministic and midnight-rollover safe.
package services

import (
	"log/slog"
	"time"

	"github.com/felixgeelhaar/cadence/internal/analytics/domain"
)

// Engine computes derived metrics from the record store. All calendar-day
// bucketing uses the engine's location; store timestamps stay in UTC.
type Engine struct {
	source domain.DataSource
	loc    *time.Location
	logger *slog.Logger
}

// NewEngine creates an analytics engine reading from source. Day boundaries
// are evaluated in loc.
func NewEngine(source domain.DataSource, loc *time.Location, logger *slog.Logger) *Engine {
	if loc == nil {
		loc = time.Local
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{source: source, loc: loc, logger: logger}
}

// Location returns the timezone used for day bucketing.
func (e *Engine) Location() *time.Location {
	return e.loc
}
