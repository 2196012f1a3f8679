package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/albertocavalcante/pintui/format"
	"github.com/albertocavalcante/pintui/term"
)

var truncateWidth int

var truncateCmd = &cobra.Command{
	Use:   "truncate <path>",
	Short: "Truncate a path to fit a given width",
	Long: `Truncate a file path so it fits within a column width, keeping the
most specific (rightmost) part and prefixing the cut with "...".

When --width is 0 the current terminal width is used.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		width := truncateWidth
		if width == 0 {
			width = term.Width()
		}
		if width < 0 {
			return Logger.ErrorfAndReturn("width must be non-negative, got %d", width)
		}

		fmt.Fprintln(cmd.OutOrStdout(), format.TruncatePath(args[0], width))
		return nil
	},
}

func init() {
	truncateCmd.Flags().IntVarP(&truncateWidth, "width", "w", 0, "Maximum width in characters (0 = terminal width)")
}

func resetTruncateCommandState() {
	truncateWidth = 0
}
