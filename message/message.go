package message

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/albertocavalcante/pintui/icons"
)

var dimStyle = color.New(color.Faint)

// Info prints an info message with a blue ℹ icon.
//
// Use for general information that doesn't indicate success or failure.
func Info(msg string) {
	fprintIconLine(os.Stdout, icons.Informational(), msg)
}

// Infof prints a formatted info message with a blue ℹ icon.
func Infof(format string, a ...any) {
	Info(fmt.Sprintf(format, a...))
}

// Success prints a success message with a green ✓ icon.
func Success(msg string) {
	fprintIconLine(os.Stdout, icons.Ok(), msg)
}

// Successf prints a formatted success message with a green ✓ icon.
func Successf(format string, a ...any) {
	Success(fmt.Sprintf(format, a...))
}

// Warn prints a warning message with a yellow ⚠ icon.
//
// Use for non-fatal issues that the user should be aware of.
func Warn(msg string) {
	fprintIconLine(os.Stdout, icons.Warning(), msg)
}

// Warnf prints a formatted warning message with a yellow ⚠ icon.
func Warnf(format string, a ...any) {
	Warn(fmt.Sprintf(format, a...))
}

// Error prints an error message with a red ✗ icon to stderr.
func Error(msg string) {
	fprintIconLine(os.Stderr, icons.Failed(), msg)
}

// Errorf prints a formatted error message with a red ✗ icon to stderr.
func Errorf(format string, a ...any) {
	Error(fmt.Sprintf(format, a...))
}

// Dim prints a dimmed, indented message.
//
// Use for secondary details that shouldn't draw attention away from
// primary content.
func Dim(msg string) {
	fprintDim(os.Stdout, msg)
}

// Dimf prints a formatted dimmed message.
func Dimf(format string, a ...any) {
	Dim(fmt.Sprintf(format, a...))
}

func fprintIconLine(w io.Writer, icon, msg string) {
	fmt.Fprintf(w, "%s %s\n", icon, msg)
}

func fprintDim(w io.Writer, msg string) {
	fmt.Fprintf(w, "  %s\n", dimStyle.Sprint(msg))
}
