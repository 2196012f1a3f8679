package layout

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/albertocavalcante/pintui/format"
)

type kvPair struct {
	key   string
	value string
}

// KvGroup is a group of key-value pairs printed with aligned keys.
//
// Pairs are accumulated with Add so the widest key can be measured,
// then every pair renders as "<key padded to that width>: <value>" in
// insertion order. Duplicate keys are kept. A KvGroup is not safe for
// concurrent use.
type KvGroup struct {
	pairs []kvPair
}

// NewKvGroup creates an empty key-value group.
func NewKvGroup() *KvGroup {
	return &KvGroup{}
}

// Add appends a key-value pair to the group.
func (g *KvGroup) Add(key, value string) {
	g.pairs = append(g.pairs, kvPair{key: key, value: value})
}

// Render writes all pairs to w with aligned keys.
//
// Keys are right-padded with spaces to the display width of the
// widest key, dimmed to match the KV printer, and followed by a colon
// and the value. The block has a 2-space indent. An empty group
// writes nothing.
func (g *KvGroup) Render(w io.Writer) {
	if len(g.pairs) == 0 {
		return
	}

	maxWidth := g.maxKeyWidth()

	for _, p := range g.pairs {
		padded := p.key
		if pad := maxWidth - format.Width(p.key); pad > 0 {
			padded += strings.Repeat(" ", pad)
		}
		fmt.Fprintf(w, "  %s: %s\n", keyStyle.Sprint(padded), p.value)
	}
}

// Print renders the group to stdout.
func (g *KvGroup) Print() {
	g.Render(os.Stdout)
}

// maxKeyWidth returns the display width of the widest key, or 0 for
// an empty group.
func (g *KvGroup) maxKeyWidth() int {
	max := 0
	for _, p := range g.pairs {
		if w := format.Width(p.key); w > max {
			max = w
		}
	}
	return max
}
