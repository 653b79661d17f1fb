package insights

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Short:   "At-a-glance summary of today, this week, and your streak",
	Aliases: []string{"dash", "d"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if engine == nil {
			return fmt.Errorf("analytics engine not available")
		}

		summary, err := engine.Dashboard(cmd.Context(), now())
		if err != nil {
			return fmt.Errorf("failed to get dashboard: %w", err)
		}

		fmt.Println()
		fmt.Println(strings.Repeat("=", 60))
		fmt.Println("  DASHBOARD")
		fmt.Println(strings.Repeat("=", 60))
		fmt.Println()
		fmt.Printf("  Today:  %dm\n", summary.TodayMinutes)
		fmt.Printf("  Week:   %dm\n", summary.WeekMinutes)
		fmt.Printf("  Month:  %dm\n", summary.MonthMinutes)
		fmt.Printf("  Streak: %d day(s)\n", summary.CurrentStreak)

		if len(summary.TodayByActivity) > 0 {
			fmt.Println()
			fmt.Println("  TODAY BY ACTIVITY")
			fmt.Println(strings.Repeat("-", 60))
			for _, a := range summary.TodayByActivity {
				fmt.Printf("    %s %-24s %4dm\n", a.Icon, a.Name, a.Minutes)
			}
		}
		fmt.Println()
		return nil
	},
}

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Current consecutive-day activity streak",
	RunE: func(cmd *cobra.Command, args []string) error {
		if engine == nil {
			return fmt.Errorf("analytics engine not available")
		}

		streak, err := engine.Streak(cmd.Context(), now())
		if err != nil {
			return fmt.Errorf("failed to compute streak: %w", err)
		}

		if streak == 0 {
			fmt.Println("No active streak. Log a session to start one.")
			return nil
		}
		fmt.Printf("Current streak: %d day(s)\n", streak)
		return nil
	},
}

var deepworkCmd = &cobra.Command{
	Use:   "deepwork",
	Short: "Deep-work sessions (45m+) over the trailing week",
	RunE: func(cmd *cobra.Command, args []string) error {
		if engine == nil {
			return fmt.Errorf("analytics engine not available")
		}

		stats, err := engine.DeepWork(cmd.Context(), now())
		if err != nil {
			return fmt.Errorf("failed to compute deep work stats: %w", err)
		}

		fmt.Println()
		fmt.Println("  DEEP WORK (last 7 days)")
		fmt.Println(strings.Repeat("-", 60))
		fmt.Printf("    Sessions:       %d\n", stats.SessionsWeek)
		fmt.Printf("    Total:          %dm\n", stats.TotalMinutes)
		fmt.Printf("    Avg length:     %dm\n", stats.AvgSessionLength)
		fmt.Printf("    Longest:        %dm\n", stats.LongestSession)
		fmt.Printf("    Deep share:     %d%%\n", stats.FocusConsistency)
		fmt.Println()
		return nil
	},
}
