package insights

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var energyCmd = &cobra.Command{
	Use:   "energy",
	Short: "Hourly focus/energy averages over the trailing 30 days",
	RunE: func(cmd *cobra.Command, args []string) error {
		if engine == nil {
			return fmt.Errorf("analytics engine not available")
		}

		curve, err := engine.EnergyCurve(cmd.Context(), now())
		if err != nil {
			return fmt.Errorf("failed to compute energy curve: %w", err)
		}

		fmt.Println()
		fmt.Println("  ENERGY CURVE (last 30 days)")
		fmt.Println(strings.Repeat("-", 60))
		fmt.Println("    Hour   Focus  Energy  Samples")
		for _, point := range curve {
			if point.SampleSize == 0 {
				continue
			}
			fmt.Printf("    %02d:00  %5.1f  %6.1f  %7d\n",
				point.Hour, point.AvgFocus, point.AvgEnergy, point.SampleSize)
		}
		fmt.Println()
		return nil
	},
}

var (
	topicDays        int
	defaultTopicDays int
)

// SetDefaultTopicDays overrides the lookback window used when --days is not
// given.
func SetDefaultTopicDays(days int) {
	defaultTopicDays = days
}

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "Where your time went, busiest activities first",
	RunE: func(cmd *cobra.Command, args []string) error {
		if engine == nil {
			return fmt.Errorf("analytics engine not available")
		}

		if !cmd.Flags().Changed("days") && defaultTopicDays > 0 {
			topicDays = defaultTopicDays
		}

		shares, err := engine.TopicDistribution(cmd.Context(), now(), topicDays)
		if err != nil {
			return fmt.Errorf("failed to compute topic distribution: %w", err)
		}

		if len(shares) == 0 {
			fmt.Println("No sessions logged in the window.")
			return nil
		}

		fmt.Println()
		fmt.Printf("  TOP ACTIVITIES (last %d days)\n", topicDays)
		fmt.Println(strings.Repeat("-", 60))
		for _, share := range shares {
			fmt.Printf("    %-24s %5dm  %3d%%\n", share.Topic, share.Minutes, share.Percentage)
		}
		fmt.Println()
		return nil
	},
}

func init() {
	topicsCmd.Flags().IntVar(&topicDays, "days", 30, "lookback window in days")
}
