package checklist

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/albertocavalcante/pintui/icons"
)

// Ok prints a completed item with a green ✓ icon.
func Ok(msg string) {
	fmt.Printf("  %s %s\n", icons.Ok(), msg)
}

// Fail prints a failed item with a red ✗ icon.
func Fail(msg string) {
	fmt.Printf("  %s %s\n", icons.Failed(), msg)
}

// Skip prints a skipped or not-applicable item with a dimmed ○ icon.
func Skip(msg string) {
	fmt.Printf("  %s %s\n", icons.Skipped(), msg)
}

// Pending prints an in-progress item with a cyan → icon.
func Pending(msg string) {
	fmt.Printf("  %s %s\n", icons.Pointer(), msg)
}

// Item prints a checklist item with a custom icon and color, for the
// cases the built-in statuses don't cover.
//
// Example:
//
//	checklist.Item(icons.Star, color.New(color.FgYellow), "Featured package")
func Item(icon string, c *color.Color, msg string) {
	fmt.Printf("  %s %s\n", c.Sprint(icon), msg)
}
