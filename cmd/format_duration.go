package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/albertocavalcante/pintui/format"
)

var durationCmd = &cobra.Command{
	Use:   "duration <milliseconds>",
	Short: "Format a duration in human-readable form",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ms, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil || ms < 0 {
			return Logger.ErrorfAndReturn("expected a non-negative millisecond count, got %q", args[0])
		}

		fmt.Fprintln(cmd.OutOrStdout(), format.HumanDuration(time.Duration(ms)*time.Millisecond))
		return nil
	},
}
