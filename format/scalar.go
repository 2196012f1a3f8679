package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Pluralize formats a count with the appropriate singular/plural form.
//
// Example:
//
//	format.Pluralize(0, "file", "files")  // "0 files"
//	format.Pluralize(1, "file", "files")  // "1 file"
//	format.Pluralize(5, "file", "files")  // "5 files"
func Pluralize(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// HumanCount formats a number with comma separators for readability.
//
// A comma is inserted every three digits counting from the right.
// Values below 1000 are returned unchanged.
//
// Example:
//
//	format.HumanCount(999)      // "999"
//	format.HumanCount(1234567)  // "1,234,567"
func HumanCount(n uint64) string {
	s := strconv.FormatUint(n, 10)
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + len(s)/3)
	for i, ch := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(ch)
	}
	return b.String()
}

// HumanDuration formats a duration in a human-readable way.
//
// The representation coarsens with magnitude: milliseconds below one
// second, seconds with one decimal below a minute, minutes and seconds
// below an hour, then hours and minutes (seconds dropped). Boundary
// values land in the coarser bucket, so exactly 60s is "1m 0s".
//
// Example:
//
//	format.HumanDuration(500 * time.Millisecond)  // "500ms"
//	format.HumanDuration(5 * time.Second)         // "5.0s"
//	format.HumanDuration(90 * time.Second)        // "1m 30s"
//	format.HumanDuration(3661 * time.Second)      // "1h 1m"
func HumanDuration(d time.Duration) string {
	secs := int64(d.Seconds())
	millis := d.Milliseconds() % 1000

	switch {
	case secs == 0:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case secs < 60:
		// Tenths truncated, not rounded.
		return fmt.Sprintf("%d.%ds", secs, millis/100)
	case secs < 3600:
		return fmt.Sprintf("%dm %ds", secs/60, secs%60)
	default:
		return fmt.Sprintf("%dh %dm", secs/3600, (secs%3600)/60)
	}
}
