// Package diary contains the daily journal commands.
package diary

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/cadence/internal/tracking/application/services"
)

var trackingService *services.TrackingService

// SetService configures the tracking service for CLI commands.
func SetService(service *services.TrackingService) {
	trackingService = service
}

// Cmd is the root command for diary operations.
var Cmd = &cobra.Command{
	Use:   "diary",
	Short: "Keep a daily journal with mood and energy ratings",
}

var (
	writeMood       int
	writeEnergy     int
	writeContent    string
	writeTags       string
	writeWins       string
	writeChallenges string
	writeTomorrow   string
)

var writeCmd = &cobra.Command{
	Use:   "write",
	Short: "Create or update today's entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		if trackingService == nil {
			return fmt.Errorf("tracking service not available")
		}

		input := services.WriteDiaryInput{
			Content:      writeContent,
			Tags:         writeTags,
			Wins:         writeWins,
			Challenges:   writeChallenges,
			TomorrowPlan: writeTomorrow,
		}
		if writeMood > 0 {
			input.Mood = &writeMood
		}
		if writeEnergy > 0 {
			input.Energy = &writeEnergy
		}

		entry, err := trackingService.WriteDiary(cmd.Context(), time.Now(), input)
		if err != nil {
			return fmt.Errorf("failed to save diary entry: %w", err)
		}

		fmt.Printf("Saved entry for %s\n", entry.Date())
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show [date]",
	Short: "Show the entry for a date (defaults to today)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if trackingService == nil {
			return fmt.Errorf("tracking service not available")
		}

		date := time.Now().Format("2006-01-02")
		if len(args) == 1 {
			date = args[0]
		}

		entry, err := trackingService.DiaryEntry(cmd.Context(), date)
		if err != nil {
			return fmt.Errorf("failed to load diary entry: %w", err)
		}
		if entry == nil {
			fmt.Printf("No entry for %s\n", date)
			return nil
		}

		fmt.Println()
		fmt.Printf("  %s\n", entry.Date())
		if entry.Mood() != nil {
			fmt.Printf("  Mood:   %d/5\n", *entry.Mood())
		}
		if entry.Energy() != nil {
			fmt.Printf("  Energy: %d/5\n", *entry.Energy())
		}
		if entry.Content() != "" {
			fmt.Printf("\n  %s\n", entry.Content())
		}
		if entry.Wins() != "" {
			fmt.Printf("  Wins: %s\n", entry.Wins())
		}
		if entry.Challenges() != "" {
			fmt.Printf("  Challenges: %s\n", entry.Challenges())
		}
		if entry.TomorrowPlan() != "" {
			fmt.Printf("  Tomorrow: %s\n", entry.TomorrowPlan())
		}
		fmt.Println()
		return nil
	},
}

func init() {
	writeCmd.Flags().IntVar(&writeMood, "mood", 0, "mood rating 1-5")
	writeCmd.Flags().IntVar(&writeEnergy, "energy", 0, "energy rating 1-5")
	writeCmd.Flags().StringVar(&writeContent, "content", "", "entry text")
	writeCmd.Flags().StringVar(&writeTags, "tags", "", "comma-separated tags")
	writeCmd.Flags().StringVar(&writeWins, "wins", "", "what went well")
	writeCmd.Flags().StringVar(&writeChallenges, "challenges", "", "what was hard")
	writeCmd.Flags().StringVar(&writeTomorrow, "tomorrow", "", "plan for tomorrow")

	Cmd.AddCommand(writeCmd)
	Cmd.AddCommand(showCmd)
}
