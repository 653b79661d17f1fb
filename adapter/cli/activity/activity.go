// Package activity contains the activity management commands.
package activity

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/cadence/internal/tracking/application/services"
)

var trackingService *services.TrackingService

// SetService configures the tracking service for CLI commands.
func SetService(service *services.TrackingService) {
	trackingService = service
}

// Cmd is the root command for activity operations.
var Cmd = &cobra.Command{
	Use:   "activity",
	Short: "Manage the activities you track time against",
}

var (
	addCategory string
	addTarget   int
)

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a new activity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if trackingService == nil {
			return fmt.Errorf("tracking service not available")
		}

		activity, err := trackingService.CreateActivity(cmd.Context(), args[0], addCategory)
		if err != nil {
			return fmt.Errorf("failed to create activity: %w", err)
		}
		if addTarget > 0 {
			if err := trackingService.SetDailyTarget(cmd.Context(), activity.Name(), addTarget); err != nil {
				return fmt.Errorf("failed to set daily target: %w", err)
			}
		}

		fmt.Printf("Created activity %q (%s)\n", activity.Name(), activity.Category())
		return nil
	},
}

var listArchived bool

var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List activities",
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if trackingService == nil {
			return fmt.Errorf("tracking service not available")
		}

		activities, err := trackingService.ListActivities(cmd.Context(), listArchived)
		if err != nil {
			return fmt.Errorf("failed to list activities: %w", err)
		}
		if len(activities) == 0 {
			fmt.Println("No activities yet. Create one with: cadence activity add <name>")
			return nil
		}

		fmt.Println()
		fmt.Println(strings.Repeat("-", 60))
		for _, a := range activities {
			marker := " "
			if a.IsArchived() {
				marker = "A"
			}
			target := ""
			if a.DailyTargetMinutes() > 0 {
				target = fmt.Sprintf("  target %dm/day", a.DailyTargetMinutes())
			}
			fmt.Printf("  %s %s %-24s %-10s%s\n", marker, a.Icon(), a.Name(), a.Category(), target)
		}
		fmt.Println()
		return nil
	},
}

var archiveCmd = &cobra.Command{
	Use:   "archive <name>",
	Short: "Archive an activity, keeping its history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if trackingService == nil {
			return fmt.Errorf("tracking service not available")
		}

		if err := trackingService.ArchiveActivity(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("failed to archive activity: %w", err)
		}
		fmt.Printf("Archived %q\n", args[0])
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addCategory, "category", "", "category tag (defaults to \"other\")")
	addCmd.Flags().IntVar(&addTarget, "target", 0, "daily target in minutes")
	listCmd.Flags().BoolVar(&listArchived, "archived", false, "include archived activities")

	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(archiveCmd)
}
