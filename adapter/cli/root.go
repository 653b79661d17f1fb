// Package cli wires the cobra command tree for the cadence binary.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *slog.Logger
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "cadence",
	Short: "Cadence - personal time tracking and behavior analytics",
	Long: `Cadence tracks where your time goes and turns the raw log into
behavioral signals: streaks, momentum, timetable adherence, burnout
risk, and your daily energy curve.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Debug("command start", "command", cmd.CommandPath())
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	start := time.Now()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if logger != nil {
		logger.Debug("command end", "duration_ms", time.Since(start).Milliseconds())
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// AddCommand adds a command to the root command.
func AddCommand(cmd *cobra.Command) {
	rootCmd.AddCommand(cmd)
}

// SetLogger sets the CLI logger.
func SetLogger(l *slog.Logger) {
	logger = l
}
