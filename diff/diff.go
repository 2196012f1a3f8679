// Package diff prints lines in a unified-diff-like style: colored
// markers for added, removed and changed lines, dimmed context lines.
//
//	diff.Added("new_config_line = true")    //   + new_config_line = true
//	diff.Removed("old_config_line = false") //   - old_config_line = false
//	diff.Changed("value: old → new")        //   ~ value: old → new
//	diff.Context("unchanged line")          //     unchanged line
package diff

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/albertocavalcante/pintui/icons"
)

var (
	addedStyle   = color.New(color.FgGreen)
	removedStyle = color.New(color.FgRed)
	changedStyle = color.New(color.FgYellow)
	contextStyle = color.New(color.Faint)
)

// Added prints an added line: green + marker, green text.
func Added(line string) {
	fmt.Printf("  %s %s\n", icons.Added(), addedStyle.Sprint(line))
}

// Removed prints a removed line: red - marker, red text.
func Removed(line string) {
	fmt.Printf("  %s %s\n", icons.Removed(), removedStyle.Sprint(line))
}

// Changed prints a modified line: yellow ~ marker, yellow text.
func Changed(line string) {
	fmt.Printf("  %s %s\n", icons.Changed(), changedStyle.Sprint(line))
}

// Context prints an unchanged line, dimmed, indented to line up with
// the marked lines above.
func Context(line string) {
	fmt.Printf("  %s\n", contextStyle.Sprintf("  %s", line))
}
