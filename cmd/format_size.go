package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/albertocavalcante/pintui/format"
)

var sizeParse bool

var sizeCmd = &cobra.Command{
	Use:   "size <value>",
	Short: "Convert between byte counts and human-readable sizes",
	Long: `Converts in whichever direction fits the input: a plain integer is
formatted as a human-readable size, anything else is parsed as a
human-readable size and printed as bytes. Pass --parse to force the
parsing direction, so "1024" means 1024 bytes rather than a number to
format.

The unit ladder is binary: 1 KB = 1024 bytes.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Debugf("size argument: %q", args[0])

		if n, err := strconv.ParseUint(args[0], 10, 64); err == nil && !sizeParse {
			Logger.Infof("formatting %d bytes", n)
			fmt.Fprintln(cmd.OutOrStdout(), format.HumanSize(n))
			return nil
		}

		bytes, err := format.ParseSize(args[0])
		if err != nil {
			return Logger.ErrorfAndReturn("cannot parse size %q: %w", args[0], err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatUint(bytes, 10))
		return nil
	},
}

func init() {
	sizeCmd.Flags().BoolVar(&sizeParse, "parse", false, "always parse the value as a human-readable size")
}
