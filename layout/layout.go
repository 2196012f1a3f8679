package layout

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/albertocavalcante/pintui/format"
)

var (
	headerStyle  = color.New(color.Bold)
	sectionStyle = color.New(color.FgCyan, color.Bold)
	keyStyle     = color.New(color.Faint)
	stepStyle    = color.New(color.FgBlue, color.Bold)
	dividerStyle = color.New(color.Faint)
)

// Header prints a bold title with a dimmed underline of the same
// display width, preceded by a blank line for separation.
//
// Example:
//
//	layout.Header("Configuration")
//	// Output:
//	//
//	// Configuration
//	// ─────────────
func Header(title string) {
	fmt.Println()
	headerStyle.Println(title)
	dividerStyle.Println(strings.Repeat("─", format.Width(title)))
}

// Section prints a cyan, bold section header preceded by a blank line.
func Section(title string) {
	fmt.Println()
	sectionStyle.Println(title)
}

// KV prints a single indented key-value pair with a dimmed key.
//
// For a block of pairs with aligned keys, use KvGroup instead.
func KV(key, value string) {
	fmt.Printf("  %s: %s\n", keyStyle.Sprint(key), value)
}

// KVf prints a key-value pair with a formatted value.
func KVf(key, format string, a ...any) {
	KV(key, fmt.Sprintf(format, a...))
}

// Step prints a step indicator for multi-step operations, with a
// blue bold [current/total] prefix.
//
// Example:
//
//	layout.Step(1, 3, "Fetching dependencies")
//	// Output: [1/3] Fetching dependencies
func Step(num, total int, msg string) {
	fmt.Printf("%s %s\n", stepStyle.Sprintf("[%d/%d]", num, total), msg)
}

// Stepf prints a step indicator with a formatted message.
func Stepf(num, total int, format string, a ...any) {
	Step(num, total, fmt.Sprintf(format, a...))
}

// Blank prints a blank line for visual separation.
func Blank() {
	fmt.Println()
}

// Divider prints a dimmed horizontal rule of the given width.
func Divider(width int) {
	dividerStyle.Println(strings.Repeat("─", width))
}

// Indent prints a line indented by 2 spaces per level.
func Indent(level int, msg string) {
	fmt.Printf("%s%s\n", strings.Repeat("  ", level), msg)
}

// Indentf prints an indented line with a formatted message.
func Indentf(level int, format string, a ...any) {
	Indent(level, fmt.Sprintf(format, a...))
}
