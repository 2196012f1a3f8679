package format

// TruncatePath truncates a path string for display, preserving the end.
//
// When path is longer than maxLen characters, the front is cut off and
// replaced with "..." so the result fits within maxLen. The tail of a
// path — the filename and its immediate parents — is usually what
// disambiguates it, so that is what survives.
//
// Lengths are measured in runes, not bytes, and the cut never lands
// inside a multi-byte rune. With maxLen of 3 or less nothing of the
// path survives and the result is exactly "...".
//
// Example:
//
//	format.TruncatePath("short.txt", 20)                    // "short.txt"
//	format.TruncatePath("/very/long/path/to/file.txt", 15)  // ".../to/file.txt"
//	format.TruncatePath("test", 3)                          // "..."
func TruncatePath(path string, maxLen int) string {
	// Byte length is an upper bound on rune count, so this also covers
	// every multi-byte path that fits.
	if len(path) <= maxLen {
		return path
	}

	runes := []rune(path)
	if len(runes) <= maxLen {
		return path
	}
	if maxLen <= 3 {
		return "..."
	}

	keep := maxLen - 3
	return "..." + string(runes[len(runes)-keep:])
}
