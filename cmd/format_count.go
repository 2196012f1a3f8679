package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/albertocavalcante/pintui/format"
)

var countCmd = &cobra.Command{
	Use:   "count <number>",
	Short: "Format a number with thousands separators",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return Logger.ErrorfAndReturn("expected a non-negative integer, got %q", args[0])
		}

		fmt.Fprintln(cmd.OutOrStdout(), format.HumanCount(n))
		return nil
	},
}
