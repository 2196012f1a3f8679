package format

import "testing"

func TestWidth(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"Empty", "", 0},
		{"ASCII", "abc", 3},
		{"Spaces", "a b", 3},
		{"CJK", "名前", 4},
		{"MixedASCIIAndCJK", "External日本", 12},
		{"Fullwidth", "ＡＢ", 4},
		{"CombiningMark", "é", 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := Width(tc.input)
			if result != tc.expected {
				t.Errorf("Width(%q) = %d, expected %d", tc.input, result, tc.expected)
			}
		})
	}
}
