package layout

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/albertocavalcante/pintui/format"
)

func plainColors(t *testing.T) {
	t.Helper()
	original := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = original })
}

func TestKvGroupRender(t *testing.T) {
	plainColors(t)

	g := NewKvGroup()
	g.Add("Local Cellar", "/opt/homebrew/Cellar")
	g.Add("External Cellar", "/Volumes/T9/homebrew/Cellar")

	var buf bytes.Buffer
	g.Render(&buf)

	expected := "  Local Cellar   : /opt/homebrew/Cellar\n" +
		"  External Cellar: /Volumes/T9/homebrew/Cellar\n"
	if buf.String() != expected {
		t.Errorf("Render produced:\n%q\nexpected:\n%q", buf.String(), expected)
	}
}

func TestKvGroupRenderEmpty(t *testing.T) {
	g := NewKvGroup()

	var buf bytes.Buffer
	g.Render(&buf)

	if buf.Len() != 0 {
		t.Errorf("empty group rendered %q, expected no output", buf.String())
	}
}

func TestKvGroupPreservesOrderAndDuplicates(t *testing.T) {
	plainColors(t)

	g := NewKvGroup()
	g.Add("Key", "first")
	g.Add("Key", "second")
	g.Add("Another", "third")

	var buf bytes.Buffer
	g.Render(&buf)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("rendered %d lines, expected 3", len(lines))
	}
	for i, want := range []string{"first", "second", "third"} {
		if !strings.HasSuffix(lines[i], want) {
			t.Errorf("line %d = %q, expected value %q", i, lines[i], want)
		}
	}
}

func TestKvGroupMaxKeyWidth(t *testing.T) {
	tests := []struct {
		name     string
		keys     []string
		expected int
	}{
		{"Empty", nil, 0},
		{"ASCII", []string{"A", "Medium Key", "A Very Long Key Name"}, 20},
		{"CJK", []string{"名前", "バージョン", "OS"}, 10},
		{"Mixed", []string{"Local Cellar", "External日本"}, 12},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewKvGroup()
			for _, k := range tc.keys {
				g.Add(k, "value")
			}
			if w := g.maxKeyWidth(); w != tc.expected {
				t.Errorf("maxKeyWidth() = %d, expected %d", w, tc.expected)
			}
		})
	}
}

func TestKvGroupWideKeysAlignWithNarrowKeys(t *testing.T) {
	plainColors(t)

	// "日本" is 2 runes but 4 display columns; "Host" is 4 runes and
	// 4 columns. Both value columns must start at the same offset.
	g := NewKvGroup()
	g.Add("日本", "wide")
	g.Add("Host", "narrow")

	var buf bytes.Buffer
	g.Render(&buf)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	wideColon := strings.Index(lines[0], ":")
	narrowColon := strings.Index(lines[1], ":")

	// Byte offsets differ (CJK runes are 3 bytes each), so compare the
	// display width of everything before the colon.
	wideWidth := format.Width(lines[0][:wideColon])
	narrowWidth := format.Width(lines[1][:narrowColon])
	if wideWidth != narrowWidth {
		t.Errorf("key columns misaligned: %d vs %d display columns", wideWidth, narrowWidth)
	}
}
