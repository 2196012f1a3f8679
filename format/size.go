package format

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Byte size multipliers. Binary (1024-based) semantics despite the
// decimal-looking names — see the package documentation.
const (
	KB uint64 = 1024
	MB uint64 = KB * 1024
	GB uint64 = MB * 1024
	TB uint64 = GB * 1024
)

// Sentinel errors returned by ParseSize. Match with errors.Is().
var (
	// ErrEmptySize indicates the input was empty after trimming whitespace.
	ErrEmptySize = errors.New("empty size string")

	// ErrInvalidSize indicates the numeric portion could not be parsed
	// as a decimal number.
	ErrInvalidSize = errors.New("invalid number in size")

	// ErrNegativeSize indicates the parsed value was negative.
	ErrNegativeSize = errors.New("size cannot be negative")
)

// HumanSize formats bytes as a human-readable size string.
//
// The largest unit in which the value is at least 1 is selected, so
// values below 1024 always render as plain bytes. Precision is fixed
// per unit: TB gets two decimals, GB/MB/KB one, B none.
//
// Example:
//
//	format.HumanSize(0)                  // "0 B"
//	format.HumanSize(1023)               // "1023 B"
//	format.HumanSize(1024)               // "1.0 KB"
//	format.HumanSize(1536)               // "1.5 KB"
//	format.HumanSize(1024 * 1024 * 50)   // "50.0 MB"
func HumanSize(bytes uint64) string {
	switch {
	case bytes >= TB:
		return fmt.Sprintf("%.2f TB", float64(bytes)/float64(TB))
	case bytes >= GB:
		return fmt.Sprintf("%.1f GB", float64(bytes)/float64(GB))
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// ParseSize parses a human-readable size string into bytes.
//
// Suffixes B, KB, MB, GB, and TB are recognised case-insensitively,
// with the same 1024-based multipliers HumanSize uses. A number with
// no suffix is a raw byte count. Fractional values are allowed and
// the result is truncated toward zero, so ParseSize is not an exact
// inverse of HumanSize.
//
// Example:
//
//	format.ParseSize("100")      // 100, nil
//	format.ParseSize("1kb")      // 1024, nil
//	format.ParseSize("1.5GB")    // 1610612736, nil
//	format.ParseSize(" 1 GB ")   // 1073741824, nil
//	format.ParseSize("invalid")  // 0, ErrInvalidSize
func ParseSize(s string) (uint64, error) {
	s = strings.TrimSpace(strings.ToUpper(s))

	if s == "" {
		return 0, ErrEmptySize
	}

	var numStr string
	var multiplier uint64 = 1

	// Longest suffix first, so "TB" is not mistaken for a trailing "B".
	switch {
	case strings.HasSuffix(s, "TB"):
		numStr = strings.TrimSuffix(s, "TB")
		multiplier = TB
	case strings.HasSuffix(s, "GB"):
		numStr = strings.TrimSuffix(s, "GB")
		multiplier = GB
	case strings.HasSuffix(s, "MB"):
		numStr = strings.TrimSuffix(s, "MB")
		multiplier = MB
	case strings.HasSuffix(s, "KB"):
		numStr = strings.TrimSuffix(s, "KB")
		multiplier = KB
	case strings.HasSuffix(s, "B"):
		numStr = strings.TrimSuffix(s, "B")
	default:
		numStr = s
	}

	numStr = strings.TrimSpace(numStr)
	num, err := strconv.ParseFloat(numStr, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSize, numStr)
	}

	if num < 0 {
		return 0, fmt.Errorf("%w: %v", ErrNegativeSize, num)
	}

	return uint64(num * float64(multiplier)), nil
}
