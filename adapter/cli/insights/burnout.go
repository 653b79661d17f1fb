package insights

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var burnoutCmd = &cobra.Command{
	Use:   "burnout",
	Short: "Burnout risk estimate over the trailing week",
	RunE: func(cmd *cobra.Command, args []string) error {
		if engine == nil {
			return fmt.Errorf("analytics engine not available")
		}

		risk, err := engine.BurnoutRisk(cmd.Context(), now())
		if err != nil {
			return fmt.Errorf("failed to compute burnout risk: %w", err)
		}

		fmt.Println()
		fmt.Printf("  BURNOUT RISK: %d/100 (%s)\n", risk.Score, risk.Band)
		if len(risk.Factors) > 0 {
			fmt.Println(strings.Repeat("-", 60))
			for _, f := range risk.Factors {
				fmt.Printf("    - %s\n", f)
			}
		}
		fmt.Println()
		return nil
	},
}

var brainloadCmd = &cobra.Command{
	Use:   "brainload",
	Short: "Today's cognitive load against a fixed daily capacity",
	RunE: func(cmd *cobra.Command, args []string) error {
		if engine == nil {
			return fmt.Errorf("analytics engine not available")
		}

		load, err := engine.BrainLoad(cmd.Context(), now())
		if err != nil {
			return fmt.Errorf("failed to compute brain load: %w", err)
		}

		fmt.Println()
		fmt.Printf("  BRAIN LOAD: %d%% (%s)\n", load.CurrentLoad, load.Status)
		fmt.Printf("  %s\n", load.Suggestion)
		fmt.Println()
		return nil
	},
}
