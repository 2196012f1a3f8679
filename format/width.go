package format

import "github.com/mattn/go-runewidth"

// Width returns the display width of s in terminal columns.
//
// East-Asian wide and fullwidth runes count as 2 columns, combining
// and zero-width runes as 0, and everything else printable as 1. This
// is distinct from both len(s) (bytes) and utf8.RuneCountInString(s)
// (code points); all alignment in the layout package uses Width.
//
// Example:
//
//	format.Width("abc")   // 3
//	format.Width("名前")  // 4
func Width(s string) int {
	return runewidth.StringWidth(s)
}
