// Package dryrun prints preview output for commands running in
// dry-run mode: planned action lines and a closing no-changes notice.
//
//	dryrun.Action("Would trim", "git (4.2 MB)")
//	dryrun.Action("Would trim", "node_modules (120 MB)")
//	dryrun.Footer()
//	// Output:
//	//   → Would trim git (4.2 MB)
//	//   → Would trim node_modules (120 MB)
//	// ⚠ Dry run — no changes made
package dryrun

import (
	"fmt"

	"github.com/albertocavalcante/pintui/icons"
)

// Action prints one planned action with the standard checklist indent
// and a cyan arrow prefix.
func Action(verb, detail string) {
	fmt.Printf("  %s %s %s\n", icons.Pointer(), verb, detail)
}

// Footer prints the closing notice that no changes were made. Call
// once at the end of a dry-run session.
func Footer() {
	fmt.Printf("%s Dry run — no changes made\n", icons.Warning())
}
