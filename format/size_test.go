package format

import (
	"errors"
	"strconv"
	"strings"
	"testing"
)

func TestHumanSize(t *testing.T) {
	tests := []struct {
		name     string
		bytes    uint64
		expected string
	}{
		{"Zero", 0, "0 B"},
		{"Bytes", 100, "100 B"},
		{"MaxBytes", 1023, "1023 B"},
		{"OneKB", 1024, "1.0 KB"},
		{"FractionalKB", 1536, "1.5 KB"},
		{"TenKB", 10240, "10.0 KB"},
		{"OneMB", 1024 * 1024, "1.0 MB"},
		{"HundredMB", 1024 * 1024 * 100, "100.0 MB"},
		{"OneGB", 1024 * 1024 * 1024, "1.0 GB"},
		{"FractionalGB", 1024*1024*1024*2 + 1024*1024*512, "2.5 GB"},
		{"OneTB", 1024 * 1024 * 1024 * 1024, "1.00 TB"},
		{"TwoTB", 1024 * 1024 * 1024 * 1024 * 2, "2.00 TB"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := HumanSize(tc.bytes)
			if result != tc.expected {
				t.Errorf("HumanSize(%d) = %q, expected %q", tc.bytes, result, tc.expected)
			}
		})
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected uint64
	}{
		{"RawBytes", "100", 100},
		{"ByteSuffix", "100B", 100},
		{"LowercaseByteSuffix", "100b", 100},
		{"OneKB", "1KB", 1024},
		{"LowercaseKB", "1kb", 1024},
		{"MixedCaseKB", "1Kb", 1024},
		{"TenKB", "10KB", 10240},
		{"OneMB", "1MB", 1024 * 1024},
		{"HundredMB", "100MB", 100 * 1024 * 1024},
		{"FractionalMB", "1.5MB", uint64(1.5 * 1024 * 1024)},
		{"OneGB", "1GB", 1024 * 1024 * 1024},
		{"FractionalGB", "1.5GB", 1610612736},
		{"OneTB", "1TB", 1024 * 1024 * 1024 * 1024},
		{"SurroundingWhitespace", "  100MB  ", 100 * 1024 * 1024},
		{"InnerWhitespace", " 1 GB", 1024 * 1024 * 1024},
		{"Zero", "0", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := ParseSize(tc.input)
			if err != nil {
				t.Fatalf("ParseSize(%q) returned error: %v", tc.input, err)
			}
			if result != tc.expected {
				t.Errorf("ParseSize(%q) = %d, expected %d", tc.input, result, tc.expected)
			}
		})
	}
}

func TestParseSizeErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected error
	}{
		{"Empty", "", ErrEmptySize},
		{"OnlyWhitespace", "   ", ErrEmptySize},
		{"NotANumber", "abc", ErrInvalidSize},
		{"SuffixOnly", "MB", ErrInvalidSize},
		{"Negative", "-100MB", ErrNegativeSize},
		{"NegativeBytes", "-1", ErrNegativeSize},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseSize(tc.input)
			if err == nil {
				t.Fatalf("ParseSize(%q) succeeded, expected error", tc.input)
			}
			if !errors.Is(err, tc.expected) {
				t.Errorf("ParseSize(%q) error = %v, expected %v", tc.input, err, tc.expected)
			}
		})
	}
}

// ParseSize and HumanSize share the same multiplier ladder, so integer
// unit values survive a parse regardless of casing or padding.
func TestParseSizeLadderCompatibility(t *testing.T) {
	units := []struct {
		suffix     string
		multiplier uint64
	}{
		{"KB", KB},
		{"MB", MB},
		{"GB", GB},
		{"TB", TB},
	}

	for _, u := range units {
		t.Run(u.suffix, func(t *testing.T) {
			for _, n := range []uint64{1, 3, 42} {
				input := "  " + strconv.FormatUint(n, 10) + strings.ToLower(u.suffix) + " "
				result, err := ParseSize(input)
				if err != nil {
					t.Fatalf("ParseSize(%q) returned error: %v", input, err)
				}
				if result != n*u.multiplier {
					t.Errorf("ParseSize(%q) = %d, expected %d", input, result, n*u.multiplier)
				}
			}
		})
	}
}
