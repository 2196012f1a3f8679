// Package format converts raw values into human-readable strings for
// terminal output, and parses a few of them back.
//
// The functions here are pure: they take caller-supplied values, return
// strings (or an error, for parsing), and never touch the terminal
// themselves. Higher-level packages (layout, checklist, message) build
// on these primitives.
//
// # Sizes
//
// HumanSize and ParseSize share one unit ladder: B, KB, MB, GB, TB with
// binary (1024-based) multipliers. The decimal-looking unit names are
// deliberate and carried for compatibility — "1 KB" here is 1024 bytes,
// not 1000.
//
//	format.HumanSize(1024 * 1024 * 50)  // "50.0 MB"
//	format.ParseSize("1.5GB")           // 1610612736, nil
//
// ParseSize failures are sentinel errors (ErrEmptySize, ErrInvalidSize,
// ErrNegativeSize) so callers can match with errors.Is().
//
// # Display Width
//
// Width returns the number of terminal columns a string occupies, which
// differs from both byte length and rune count for CJK and combining
// characters. Every alignment computation in the layout package goes
// through Width.
//
// # Scalars
//
//	format.Pluralize(1, "file", "files")          // "1 file"
//	format.HumanCount(1234567)                    // "1,234,567"
//	format.HumanDuration(90 * time.Second)        // "1m 30s"
//	format.TruncatePath("/a/long/path/file", 12)  // "...path/file"
package format
