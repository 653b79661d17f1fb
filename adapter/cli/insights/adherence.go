package insights

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var adherenceWeek bool

var adherenceCmd = &cobra.Command{
	Use:   "adherence",
	Short: "How well today followed the planned timetable",
	RunE: func(cmd *cobra.Command, args []string) error {
		if engine == nil {
			return fmt.Errorf("analytics engine not available")
		}

		if adherenceWeek {
			days, err := engine.WeeklyAdherence(cmd.Context(), now())
			if err != nil {
				return fmt.Errorf("failed to compute weekly adherence: %w", err)
			}
			fmt.Println()
			fmt.Println("  TIMETABLE ADHERENCE (last 7 days)")
			fmt.Println(strings.Repeat("-", 60))
			for _, day := range days {
				fmt.Printf("    %s  %3d%%  (%dm of %dm)\n",
					day.Date, day.AdherencePct, day.CompletedMinutes, day.PlannedMinutes)
			}
			fmt.Println()
			return nil
		}

		day, err := engine.Adherence(cmd.Context(), now())
		if err != nil {
			return fmt.Errorf("failed to compute adherence: %w", err)
		}

		fmt.Println()
		fmt.Printf("  ADHERENCE %s: %d%%\n", day.Date, day.AdherencePct)
		if len(day.Slots) == 0 {
			fmt.Println("  Nothing planned for today.")
			fmt.Println()
			return nil
		}
		fmt.Println(strings.Repeat("-", 60))
		for _, slot := range day.Slots {
			fmt.Printf("    %s-%s  %-20s %4dm/%4dm  %s\n",
				slot.StartTime, slot.EndTime, slot.ActivityName,
				slot.LoggedMinutes, slot.PlannedMinutes, slot.Status)
		}
		fmt.Println()
		return nil
	},
}

func init() {
	adherenceCmd.Flags().BoolVar(&adherenceWeek, "week", false, "show the trailing 7 days")
}
