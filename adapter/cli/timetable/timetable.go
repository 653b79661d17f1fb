// Package timetable contains the weekly schedule commands.
package timetable

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/cadence/internal/tracking/application/services"
)

var trackingService *services.TrackingService

// SetService configures the tracking service for CLI commands.
func SetService(service *services.TrackingService) {
	trackingService = service
}

var weekdays = [...]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// Cmd is the root command for timetable operations.
var Cmd = &cobra.Command{
	Use:   "timetable",
	Short: "Plan recurring weekly time blocks",
}

var (
	addDay   int
	addStart string
	addEnd   string
)

var addCmd = &cobra.Command{
	Use:   "add <activity>",
	Short: "Plan a weekly slot for an activity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if trackingService == nil {
			return fmt.Errorf("tracking service not available")
		}

		slot, err := trackingService.AddSlot(cmd.Context(), args[0], addDay, addStart, addEnd)
		if err != nil {
			return fmt.Errorf("failed to add slot: %w", err)
		}

		fmt.Printf("Planned %s %s-%s for %q (%dm)\n",
			weekdays[slot.DayOfWeek()], slot.StartTime(), slot.EndTime(), args[0], slot.PlannedMinutes())
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "Show the weekly timetable",
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if trackingService == nil {
			return fmt.Errorf("tracking service not available")
		}

		slots, err := trackingService.Timetable(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list timetable: %w", err)
		}
		if len(slots) == 0 {
			fmt.Println("Timetable is empty. Plan a slot with: cadence timetable add <activity>")
			return nil
		}

		fmt.Println()
		fmt.Println(strings.Repeat("-", 60))
		lastDay := -1
		for _, slot := range slots {
			if slot.DayOfWeek() != lastDay {
				fmt.Printf("  %s\n", weekdays[slot.DayOfWeek()])
				lastDay = slot.DayOfWeek()
			}
			label := ""
			if slot.Label() != "" {
				label = "  " + slot.Label()
			}
			fmt.Printf("    %s-%s  %s%s\n", slot.StartTime(), slot.EndTime(), slot.ID(), label)
		}
		fmt.Println()
		return nil
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove <slot-id>",
	Short: "Remove a slot from the timetable",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if trackingService == nil {
			return fmt.Errorf("tracking service not available")
		}

		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid slot id: %w", err)
		}
		if err := trackingService.RemoveSlot(cmd.Context(), id); err != nil {
			return fmt.Errorf("failed to remove slot: %w", err)
		}
		fmt.Println("Slot removed.")
		return nil
	},
}

func init() {
	addCmd.Flags().IntVar(&addDay, "day", 1, "day of week (0=Sunday .. 6=Saturday)")
	addCmd.Flags().StringVar(&addStart, "start", "", "start time HH:MM (required)")
	addCmd.Flags().StringVar(&addEnd, "end", "", "end time HH:MM (required)")
	_ = addCmd.MarkFlagRequired("start")
	_ = addCmd.MarkFlagRequired("end")

	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(removeCmd)
}
