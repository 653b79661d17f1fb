package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/felixgeelhaar/cadence/internal/analytics/domain"
	"github.com/felixgeelhaar/cadence/internal/shared/timeutil"
)

const (
	// DefaultTopicDays is the default lookback window for topic distribution.
	DefaultTopicDays = 30
	// topicLimit caps the distribution at the busiest activities.
	topicLimit = 10
)

// TopicDistribution returns minute shares by activity name over the
// trailing days window, busiest first, truncated to the top 10. Percentages
// are computed over the returned set only, so they may not sum to 100 when
// more than 10 activities logged time in the window.
func (e *Engine) TopicDistribution(ctx context.Context, now time.Time, days int) ([]domain.TopicShare, error) {
	if days <= 0 {
		days = DefaultTopicDays
	}
	now = now.In(e.loc)
	from, to := timeutil.TrailingWindow(now, days, e.loc)

	totals, err := e.source.TopicTotals(ctx, from, to, topicLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load topic totals: %w", err)
	}

	var total int
	for _, t := range totals {
		total += t.Minutes
	}

	shares := make([]domain.TopicShare, 0, len(totals))
	for _, t := range totals {
		share := domain.TopicShare{Topic: t.Topic, Minutes: t.Minutes}
		if total > 0 {
			share.Percentage = int(math.Round(100 * float64(t.Minutes) / float64(total)))
		}
		shares = append(shares, share)
	}
	return shares, nil
}
