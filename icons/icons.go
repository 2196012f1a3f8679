// Package icons defines the canonical Unicode icons shared by every
// pintui output helper.
//
// Each icon is available as a raw string constant, for callers that
// want to apply their own styling, and as a convenience function that
// returns the icon pre-colored with its default color:
//
//	fmt.Printf("%s All checks passed\n", icons.Ok())
//	fmt.Printf("%s custom style\n", color.New(color.FgMagenta, color.Bold).Sprint(icons.Star))
//
// Coloring goes through fatih/color, which disables itself when
// NO_COLOR is set or output is not a terminal.
package icons

import "github.com/fatih/color"

// Raw icon constants.
const (
	// OK indicates success or a completed task: ✓
	OK = "✓"
	// Fail indicates failure or a rejected item: ✗
	Fail = "✗"
	// Warn indicates a non-fatal issue: ⚠
	Warn = "⚠"
	// Info indicates an informational message: ℹ
	Info = "ℹ"
	// Arrow indicates a transition or pending action: →
	Arrow = "→"
	// Skip indicates a skipped or inactive item: ○
	Skip = "○"
	// Pending indicates an in-progress item: ●
	Pending = "●"
	// Star marks favorites or highlights: ★
	Star = "★"
	// Add marks an added line or item: +
	Add = "+"
	// Remove marks a removed line or item: -
	Remove = "-"
	// Change marks a modified line or item: ~
	Change = "~"

	// DiamondFilled is a decorative marker: ◆
	DiamondFilled = "◆"
	// DiamondEmpty is a decorative marker (outline variant): ◇
	DiamondEmpty = "◇"
	// Play marks a run or start action: ▶
	Play = "▶"
	// Refresh marks a reload or retry action: ↻
	Refresh = "↻"
)

var (
	okColor      = color.New(color.FgGreen)
	failColor    = color.New(color.FgRed)
	warnColor    = color.New(color.FgYellow)
	infoColor    = color.New(color.FgBlue)
	arrowColor   = color.New(color.FgCyan)
	skipColor    = color.New(color.Faint)
	pendingColor = color.New(color.FgYellow)
	starColor    = color.New(color.FgGreen)
	addColor     = color.New(color.FgGreen)
	removeColor  = color.New(color.FgRed)
	changeColor  = color.New(color.FgYellow)
)

// Ok returns the green ✓ icon.
func Ok() string { return okColor.Sprint(OK) }

// Failed returns the red ✗ icon.
func Failed() string { return failColor.Sprint(Fail) }

// Warning returns the yellow ⚠ icon.
func Warning() string { return warnColor.Sprint(Warn) }

// Informational returns the blue ℹ icon.
func Informational() string { return infoColor.Sprint(Info) }

// Pointer returns the cyan → icon.
func Pointer() string { return arrowColor.Sprint(Arrow) }

// Skipped returns the dimmed ○ icon.
func Skipped() string { return skipColor.Sprint(Skip) }

// InProgress returns the yellow ● icon.
func InProgress() string { return pendingColor.Sprint(Pending) }

// Starred returns the green ★ icon.
func Starred() string { return starColor.Sprint(Star) }

// Added returns the green + icon.
func Added() string { return addColor.Sprint(Add) }

// Removed returns the red - icon.
func Removed() string { return removeColor.Sprint(Remove) }

// Changed returns the yellow ~ icon.
func Changed() string { return changeColor.Sprint(Change) }
