package dryrun

import "testing"

func TestDryRunDoesNotPanic(t *testing.T) {
	Action("Would trim", "git (4.2 MB)")
	Action("Would delete", "キャッシュ (1.3 GB)")
	Action("", "")
	Footer()
}
