// Package insights exposes the analytics engine on the command line.
package insights

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/cadence/internal/analytics/application/services"
)

var engine *services.Engine

// SetEngine configures the analytics engine for CLI commands.
func SetEngine(e *services.Engine) {
	engine = e
}

// now returns the single reference instant for one command invocation.
func now() time.Time {
	return time.Now()
}

// Cmd is the root command for insights operations.
var Cmd = &cobra.Command{
	Use:   "insights",
	Short: "Behavioral analytics over your tracked time",
	Long: `Compute analytics from your logged sessions, timetable, and diary.

All metrics are derived on demand from the record store; nothing here
writes anything.

Examples:
  cadence insights dashboard   # at-a-glance summary
  cadence insights momentum    # 0-100 engagement score
  cadence insights burnout     # burnout risk estimate
  cadence insights energy      # hourly focus/energy averages`,
}

func init() {
	Cmd.AddCommand(dashboardCmd)
	Cmd.AddCommand(streakCmd)
	Cmd.AddCommand(momentumCmd)
	Cmd.AddCommand(adherenceCmd)
	Cmd.AddCommand(burnoutCmd)
	Cmd.AddCommand(brainloadCmd)
	Cmd.AddCommand(energyCmd)
	Cmd.AddCommand(topicsCmd)
	Cmd.AddCommand(deepworkCmd)
}
