package progress

import (
	"fmt"

	"github.com/briandowns/spinner"

	"github.com/albertocavalcante/pintui/icons"
)

// StageProgress tracks progress through a fixed sequence of named
// stages, prefixing each with a [current/total] counter.
//
//	stages := progress.NewStageProgress(3)
//
//	s := stages.Next("Downloading")
//	// ... download ...
//	s.Success("Downloaded")
//
//	stages.Skip("Installing") // not needed on this platform
type StageProgress struct {
	current int
	total   int
}

// NewStageProgress creates a tracker for the given number of stages.
func NewStageProgress(total int) *StageProgress {
	return &StageProgress{total: total}
}

// Next starts the next stage and returns a spinner for it, prefixed
// with the stage counter.
func (sp *StageProgress) Next(name string) *SpinnerHandle {
	sp.current++
	s := spinner.New(spinner.CharSets[14], spinnerInterval)
	s.Prefix = fmt.Sprintf("[%d/%d] ", sp.current, sp.total)
	s.Suffix = " " + name
	_ = s.Color("cyan")
	s.Start()
	return &SpinnerHandle{spinner: s}
}

// Skip marks the next stage as skipped without running a spinner.
func (sp *StageProgress) Skip(name string) {
	sp.current++
	fmt.Printf("  %s [%d/%d] %s (skipped)\n", icons.Skipped(), sp.current, sp.total, name)
}

// Current returns the current stage number, 1-indexed; 0 before the
// first call to Next or Skip.
func (sp *StageProgress) Current() int {
	return sp.current
}

// Total returns the total number of stages.
func (sp *StageProgress) Total() int {
	return sp.total
}

// IsComplete reports whether every stage has been started or skipped.
func (sp *StageProgress) IsComplete() bool {
	return sp.current >= sp.total
}
