// Package summary prints end-of-command statistics: single counts or
// multi-stat lines where each segment carries its own color.
//
//	summary.Stat(42, "package", "packages", color.New(color.FgCyan))
//	//   42 packages
//
//	summary.Line([]summary.StatItem{
//	    {Count: 12, Label: "local-only", Color: color.New(color.FgCyan)},
//	    {Count: 45, Label: "synced", Color: color.New(color.FgGreen)},
//	})
//	//   12 local-only, 45 synced
package summary

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/albertocavalcante/pintui/format"
)

// StatItem is one segment of a multi-stat Line.
type StatItem struct {
	Count int
	Label string
	Color *color.Color
}

// Stat prints a single colored "count label" line with a 2-space
// indent. The label is chosen with the usual singular/plural rule.
func Stat(count int, singular, plural string, c *color.Color) {
	fmt.Printf("  %s\n", c.Sprint(format.Pluralize(count, singular, plural)))
}

// Line prints multiple stats on one line, separated by ", ", each
// segment colored independently. Labels are used as-is, with no
// singular/plural logic. An empty slice prints nothing.
func Line(items []StatItem) {
	if len(items) == 0 {
		return
	}

	segments := make([]string, len(items))
	for i, item := range items {
		segments[i] = item.Color.Sprintf("%d %s", item.Count, item.Label)
	}
	fmt.Printf("  %s\n", strings.Join(segments, ", "))
}
