package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	logger "github.com/albertocavalcante/pintui/internal/logging"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	// FormatCmd groups the value-formatting subcommands: size,
	// duration, count, and truncate.
	FormatCmd = &cobra.Command{
		Use:   "format",
		Short: "Format and parse values for terminal display",
		Long: `Converts raw values to the human-readable forms used across pintui
output, and parses human-readable sizes back to bytes.

Examples:
  pintui format size 52428800      # 50.0 MB
  pintui format size 1.5GB         # 1610612736
  pintui format duration 90000     # 1m 30s
  pintui format count 1234567      # 1,234,567
  pintui format truncate /very/long/path/to/file.txt --width 15`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing format command with verbose=%t, debug=%t", verbose, debug)
		},
	}
)

func init() {
	FormatCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	FormatCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	FormatCmd.AddCommand(sizeCmd)
	FormatCmd.AddCommand(durationCmd)
	FormatCmd.AddCommand(countCmd)
	FormatCmd.AddCommand(truncateCmd)
}

// ResetGlobalState resets all command flags to their defaults for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	resetTruncateCommandState()

	FormatCmd.PersistentFlags().VisitAll(resetFlag)
	for _, sub := range FormatCmd.Commands() {
		sub.Flags().VisitAll(resetFlag)
	}
}

func resetFlag(f *pflag.Flag) {
	_ = f.Value.Set(f.DefValue)
	f.Changed = false
}
