package progress

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"

	"github.com/albertocavalcante/pintui/icons"
)

// spinnerInterval is the frame interval shared by all spinners.
const spinnerInterval = 80 * time.Millisecond

// Spinner creates and starts a spinner for indeterminate progress.
//
// The spinner animates until one of the finish methods on the
// returned handle is called.
func Spinner(msg string) *SpinnerHandle {
	s := spinner.New(spinner.CharSets[14], spinnerInterval) // ⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏
	s.Suffix = " " + msg
	// Continue uncolored if the terminal rejects the color.
	_ = s.Color("cyan")
	s.Start()
	return &SpinnerHandle{spinner: s}
}

// SpinnerHandle controls a running spinner and replaces it with a
// final status line when the work completes.
type SpinnerHandle struct {
	spinner *spinner.Spinner
}

// Success stops the spinner and prints a green ✓ line.
func (h *SpinnerHandle) Success(msg string) {
	h.spinner.Stop()
	fmt.Printf("\r%s %s\n", icons.Ok(), msg)
}

// Error stops the spinner and prints a red ✗ line to stderr.
func (h *SpinnerHandle) Error(msg string) {
	h.spinner.Stop()
	fmt.Fprintf(os.Stderr, "\r%s %s\n", icons.Failed(), msg)
}

// Warn stops the spinner and prints a yellow ⚠ line.
func (h *SpinnerHandle) Warn(msg string) {
	h.spinner.Stop()
	fmt.Printf("\r%s %s\n", icons.Warning(), msg)
}

// Clear stops the spinner and erases it without a final message.
func (h *SpinnerHandle) Clear() {
	h.spinner.Stop()
	fmt.Print("\r\033[K")
}

// UpdateMessage changes the message shown next to the running spinner.
func (h *SpinnerHandle) UpdateMessage(msg string) {
	h.spinner.Suffix = " " + msg
}
