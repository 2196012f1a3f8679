package progress

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"

	"github.com/albertocavalcante/pintui/icons"
)

// Bar creates a progress bar for determinate progress. Use when the
// total amount of work is known up front.
func Bar(total int64, prefix string) *BarHandle {
	bar := progressbar.NewOptions64(total,
		progressbar.OptionSetDescription(prefix),
		progressbar.OptionSetWidth(40),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[cyan]━[reset]",
			SaucerHead:    "[cyan]╸[reset]",
			SaucerPadding: "[blue]─[reset]",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionShowCount(),
		progressbar.OptionSpinnerType(14),
	)
	return &BarHandle{bar: bar}
}

// BarHandle controls a progress bar and replaces it with a final
// status line when the work completes.
type BarHandle struct {
	bar *progressbar.ProgressBar
}

// Add advances the bar by n units.
func (h *BarHandle) Add(n int) {
	_ = h.bar.Add(n)
}

// Add64 advances the bar by n units.
func (h *BarHandle) Add64(n int64) {
	_ = h.bar.Add64(n)
}

// Set moves the bar to an absolute position.
func (h *BarHandle) Set(n int) {
	_ = h.bar.Set(n)
}

// Set64 moves the bar to an absolute position.
func (h *BarHandle) Set64(n int64) {
	_ = h.bar.Set64(n)
}

// Success finishes the bar and prints a green ✓ line.
func (h *BarHandle) Success(msg string) {
	_ = h.bar.Finish()
	fmt.Printf("\r%s %s\n", icons.Ok(), msg)
}

// Error finishes the bar and prints a red ✗ line to stderr.
func (h *BarHandle) Error(msg string) {
	_ = h.bar.Finish()
	fmt.Fprintf(os.Stderr, "\r%s %s\n", icons.Failed(), msg)
}

// Clear finishes the bar and erases it without a final message.
func (h *BarHandle) Clear() {
	_ = h.bar.Clear()
}
