// Package session contains the session logging commands.
package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/cadence/internal/tracking/application/services"
	"github.com/felixgeelhaar/cadence/internal/tracking/domain"
)

var trackingService *services.TrackingService

// SetService configures the tracking service for CLI commands.
func SetService(service *services.TrackingService) {
	trackingService = service
}

// Cmd is the root command for session operations.
var Cmd = &cobra.Command{
	Use:   "log",
	Short: "Log and review time spent on activities",
}

var (
	logMinutes      int
	logNotes        string
	logDistractions string
	logFocus        int
	logEnergy       int
)

var addCmd = &cobra.Command{
	Use:   "add <activity>",
	Short: "Log a session against an activity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if trackingService == nil {
			return fmt.Errorf("tracking service not available")
		}

		input := services.LogSessionInput{
			ActivityName: args[0],
			Minutes:      logMinutes,
			Notes:        logNotes,
			Distractions: logDistractions,
			Source:       domain.SourceManual,
		}
		if logFocus > 0 {
			input.FocusRating = &logFocus
		}
		if logEnergy > 0 {
			input.EnergyAfter = &logEnergy
		}

		session, err := trackingService.LogSession(cmd.Context(), time.Now(), input)
		if err != nil {
			return fmt.Errorf("failed to log session: %w", err)
		}

		fmt.Printf("Logged %dm on %q\n", session.Minutes(), args[0])
		return nil
	},
}

var listLimit int

var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "Show recent sessions, newest first",
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if trackingService == nil {
			return fmt.Errorf("tracking service not available")
		}

		sessions, err := trackingService.RecentSessions(cmd.Context(), listLimit)
		if err != nil {
			return fmt.Errorf("failed to list sessions: %w", err)
		}
		if len(sessions) == 0 {
			fmt.Println("No sessions logged yet.")
			return nil
		}

		fmt.Println()
		fmt.Println(strings.Repeat("-", 60))
		for _, s := range sessions {
			notes := ""
			if s.Notes() != "" {
				notes = "  " + s.Notes()
			}
			fmt.Printf("  %s  %4dm  %s%s\n",
				s.LoggedAt().Local().Format("2006-01-02 15:04"), s.Minutes(), s.ID(), notes)
		}
		fmt.Println()
		return nil
	},
}

func init() {
	addCmd.Flags().IntVarP(&logMinutes, "minutes", "m", 0, "session length in minutes (required)")
	addCmd.Flags().StringVar(&logNotes, "notes", "", "free-text notes")
	addCmd.Flags().StringVar(&logDistractions, "distractions", "", "what pulled attention away")
	addCmd.Flags().IntVar(&logFocus, "focus", 0, "focus rating 1-5")
	addCmd.Flags().IntVar(&logEnergy, "energy", 0, "energy-after rating 1-5")
	_ = addCmd.MarkFlagRequired("minutes")

	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 20, "number of sessions to show")

	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(listCmd)
}
