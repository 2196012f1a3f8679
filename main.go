package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/albertocavalcante/pintui/cmd"
)

var rootCmd = &cobra.Command{
	Use:   "pintui",
	Short: "Pintui - Terminal output formatting for CLI tools.",
	Long: `Pintui is a toolkit for producing clean, consistent terminal output:
human-readable sizes, durations and counts, aligned tables and
key/value groups, status messages, checklists, and progress displays.

Usage:
  pintui <command> [flags]

Available Commands:
  format     Format and parse values for terminal display
  demo       Showcase every output primitive

Run 'pintui help <command>' for more details on a specific command.
`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Welcome to pintui! Run 'pintui --help' to see available commands.")
	},
}

func main() {
	rootCmd.AddCommand(cmd.FormatCmd)
	rootCmd.AddCommand(cmd.DemoCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
