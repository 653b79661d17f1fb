package insights

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var momentumCmd = &cobra.Command{
	Use:   "momentum",
	Short: "Composite 0-100 engagement score with components and trend",
	RunE: func(cmd *cobra.Command, args []string) error {
		if engine == nil {
			return fmt.Errorf("analytics engine not available")
		}

		score, err := engine.Momentum(cmd.Context(), now())
		if err != nil {
			return fmt.Errorf("failed to compute momentum: %w", err)
		}

		fmt.Println()
		fmt.Println(strings.Repeat("=", 60))
		fmt.Printf("  MOMENTUM: %d/100 (%s)\n", score.Score, score.Trend)
		fmt.Println(strings.Repeat("=", 60))
		fmt.Println()
		fmt.Printf("    Streak:       %5.1f\n", score.StreakComponent)
		fmt.Printf("    Volume:       %5.1f\n", score.VolumeComponent)
		fmt.Printf("    Consistency:  %5.1f\n", score.ConsistencyComponent)
		fmt.Printf("    Deep work:    %5.1f\n", score.DeepWorkComponent)
		fmt.Println()
		return nil
	},
}
