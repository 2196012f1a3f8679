package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/albertocavalcante/pintui/format"
)

func executeFormat(t *testing.T, args ...string) (string, error) {
	t.Helper()
	ResetGlobalState()

	var out bytes.Buffer
	FormatCmd.SetOut(&out)
	FormatCmd.SetErr(&out)
	FormatCmd.SetArgs(args)

	err := FormatCmd.Execute()
	return out.String(), err
}

func TestFormatSize(t *testing.T) {
	testCases := []struct {
		name     string
		arg      string
		expected string
	}{
		{
			name:     "formats plain byte count",
			arg:      "52428800",
			expected: "50.0 MB\n",
		},
		{
			name:     "formats zero",
			arg:      "0",
			expected: "0 B\n",
		},
		{
			name:     "parses human-readable size",
			arg:      "1.5GB",
			expected: "1610612736\n",
		},
		{
			name:     "parses bare unit suffix",
			arg:      "512KB",
			expected: "524288\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			output, err := executeFormat(t, "size", tc.arg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if output != tc.expected {
				t.Errorf("expected output %q, got %q", tc.expected, output)
			}
		})
	}
}

func TestFormatSizeParseFlag(t *testing.T) {
	output, err := executeFormat(t, "size", "1024", "--parse")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if expected := "1024\n"; output != expected {
		t.Errorf("expected output %q, got %q", expected, output)
	}
}

func TestFormatSizeInvalid(t *testing.T) {
	_, err := executeFormat(t, "size", "abcGB")
	if err == nil {
		t.Fatal("expected error for unparseable size, got nil")
	}
	if !errors.Is(err, format.ErrInvalidSize) {
		t.Errorf("expected ErrInvalidSize in chain, got %v", err)
	}
}

func TestFormatDuration(t *testing.T) {
	testCases := []struct {
		name     string
		arg      string
		expected string
	}{
		{
			name:     "sub-second",
			arg:      "450",
			expected: "450ms\n",
		},
		{
			name:     "seconds with tenths",
			arg:      "2500",
			expected: "2.5s\n",
		},
		{
			name:     "minutes and seconds",
			arg:      "90000",
			expected: "1m 30s\n",
		},
		{
			name:     "hours and minutes",
			arg:      "3720000",
			expected: "1h 2m\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			output, err := executeFormat(t, "duration", tc.arg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if output != tc.expected {
				t.Errorf("expected output %q, got %q", tc.expected, output)
			}
		})
	}
}

func TestFormatDurationRejectsNegative(t *testing.T) {
	if _, err := executeFormat(t, "duration", "-5"); err == nil {
		t.Error("expected error for negative milliseconds, got nil")
	}
}

func TestFormatCount(t *testing.T) {
	output, err := executeFormat(t, "count", "1234567")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if expected := "1,234,567\n"; output != expected {
		t.Errorf("expected output %q, got %q", expected, output)
	}
}

func TestFormatCountRejectsNonNumeric(t *testing.T) {
	if _, err := executeFormat(t, "count", "12x"); err == nil {
		t.Error("expected error for non-numeric count, got nil")
	}
}

func TestFormatTruncate(t *testing.T) {
	output, err := executeFormat(t, "truncate", "/home/user/projects/app/main.go", "--width", "15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if expected := ".../app/main.go\n"; output != expected {
		t.Errorf("expected output %q, got %q", expected, output)
	}
}

func TestFormatTruncateShortPathUnchanged(t *testing.T) {
	output, err := executeFormat(t, "truncate", "main.go", "--width", "40")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if expected := "main.go\n"; output != expected {
		t.Errorf("expected output %q, got %q", expected, output)
	}
}
