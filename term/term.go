// Package term reports the current terminal dimensions, with sensible
// fallbacks when stdout is not a terminal (piped output, CI logs).
//
// Nothing else in this library queries the terminal: the layout
// engine takes widths from its caller. Use this package at the edge
// to pick those widths.
package term

import (
	"os"

	"golang.org/x/term"
)

// DefaultWidth is the column count assumed when detection fails.
const DefaultWidth = 80

// DefaultHeight is the row count assumed when detection fails.
const DefaultHeight = 24

// Width returns the terminal width in columns, or DefaultWidth when
// stdout is not a terminal.
func Width() int {
	w, _ := size()
	return w
}

// Height returns the terminal height in rows, or DefaultHeight when
// stdout is not a terminal.
func Height() int {
	_, h := size()
	return h
}

func size() (int, int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return w, h
}
