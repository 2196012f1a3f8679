package checklist

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	titleStyle  = color.New(color.Bold)
	detailStyle = color.New(color.Faint)
)

type groupItem struct {
	icon   string
	label  string
	detail string
}

// Group accumulates checklist items under a bold section title.
//
// Items are added with Item and ItemPlain, then rendered once. A
// group with zero items renders nothing, including no title. A Group
// is not safe for concurrent use.
type Group struct {
	title string
	items []groupItem
}

// NewGroup creates an empty group with the given title.
func NewGroup(title string) *Group {
	return &Group{title: title}
}

// Item adds an entry with an icon, a label, and an optional detail.
//
// The icon is printed as given — typically one of the icons package
// convenience functions. The detail is printed dimmed after the
// label; pass an empty string to omit it.
func (g *Group) Item(icon, label, detail string) {
	g.items = append(g.items, groupItem{icon: icon, label: label, detail: detail})
}

// ItemPlain adds a plain text entry with no icon or detail. Use for
// supplementary notes or summary lines within a group.
func (g *Group) ItemPlain(label string) {
	g.items = append(g.items, groupItem{label: label})
}

// Len returns the number of accumulated items.
func (g *Group) Len() int {
	return len(g.items)
}

// Render writes the title and all items to w, followed by a blank
// line for spacing between groups. The title gets a 2-space indent
// and items a 4-space indent. An empty group writes nothing.
func (g *Group) Render(w io.Writer) {
	if len(g.items) == 0 {
		return
	}

	fmt.Fprintf(w, "  %s\n", titleStyle.Sprint(g.title))

	for _, item := range g.items {
		switch {
		case item.icon == "" && item.detail == "":
			fmt.Fprintf(w, "    %s\n", item.label)
		case item.detail == "":
			fmt.Fprintf(w, "    %s %s\n", item.icon, item.label)
		default:
			fmt.Fprintf(w, "    %s %s  %s\n", item.icon, item.label, detailStyle.Sprint(item.detail))
		}
	}

	fmt.Fprintln(w)
}

// Print renders the group to stdout.
func (g *Group) Print() {
	g.Render(os.Stdout)
}
