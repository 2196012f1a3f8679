package cmd

import (
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/albertocavalcante/pintui/checklist"
	"github.com/albertocavalcante/pintui/diff"
	"github.com/albertocavalcante/pintui/dryrun"
	"github.com/albertocavalcante/pintui/icons"
	"github.com/albertocavalcante/pintui/layout"
	"github.com/albertocavalcante/pintui/message"
	"github.com/albertocavalcante/pintui/progress"
	"github.com/albertocavalcante/pintui/summary"
)

// DemoCmd renders every output primitive once so changes to colors or
// spacing can be eyeballed in an actual terminal.
var DemoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Showcase every output primitive",
	Run: func(cmd *cobra.Command, args []string) {
		banner := figure.NewColorFigure("pintui", "", "cyan", true)
		banner.Print()
		layout.Blank()

		layout.Header("Messages")
		message.Info("an informational line")
		message.Success("an operation succeeded")
		message.Warn("something needs attention")
		message.Dim("a low-priority aside")
		layout.Blank()

		layout.Header("Checklist")
		checklist.Ok("dependencies resolved")
		checklist.Fail("remote unreachable")
		checklist.Skip("cache warm-up")
		checklist.Pending("publishing artifacts")
		layout.Blank()

		group := checklist.NewGroup("Environment")
		group.Item(icons.Ok(), "go 1.23.7", "toolchain")
		group.Item(icons.Ok(), "git 2.47", "")
		group.Print()

		layout.Header("Table")
		table := layout.NewTable()
		table.AddRow("NAME", "SIZE", "MODIFIED")
		table.AddRow("report.pdf", "1.2 MB", "2m 14s ago")
		table.AddRow("notes.txt", "804 B", "1.3s ago")
		table.Print()
		layout.Blank()

		layout.Header("Key/value group")
		kv := layout.NewKvGroup()
		kv.Add("Project", "pintui")
		kv.Add("Branch", "main")
		kv.Add("Dirty", "no")
		kv.Print()
		layout.Blank()

		layout.Header("Diff")
		diff.Added("new file: cmd/demo.go")
		diff.Removed("old file: legacy.go")
		diff.Changed("modified: go.mod")
		diff.Context("unchanged: README.md")
		layout.Blank()

		layout.Header("Dry run")
		dryrun.Action("delete", "cache/objects (1.2 GB)")
		dryrun.Action("rewrite", "config.toml")
		dryrun.Footer()
		layout.Blank()

		layout.Header("Summary")
		summary.Stat(3, "file", "files", color.New(color.FgGreen))
		summary.Line([]summary.StatItem{
			{Count: 12, Label: "synced", Color: color.New(color.FgGreen)},
			{Count: 1, Label: "skipped", Color: color.New(color.FgYellow)},
			{Count: 0, Label: "failed", Color: color.New(color.FgRed)},
		})
		layout.Blank()

		layout.Header("Progress")
		spin := progress.Spinner("resolving dependencies...")
		time.Sleep(600 * time.Millisecond)
		spin.Success("dependencies resolved")

		bar := progress.Bar(40, "downloading")
		for i := 0; i < 40; i++ {
			bar.Add(1)
			time.Sleep(15 * time.Millisecond)
		}
		bar.Success("download complete")

		stages := progress.NewStageProgress(3)
		stage := stages.Next("fetching metadata")
		time.Sleep(200 * time.Millisecond)
		stage.Success("metadata fetched")
		stages.Skip("verifying signatures")
		stage = stages.Next("writing lockfile")
		time.Sleep(200 * time.Millisecond)
		stage.Success("lockfile written")
		layout.Blank()

		message.Success("demo complete")
	},
}
