// Package layout arranges text into aligned structures for terminal
// output: column tables, key-value groups, and the standard header,
// section and step printers.
//
// # Alignment
//
// All padding is computed from display width (format.Width), never
// byte or rune count, so columns line up even when cells mix ASCII
// with CJK or other wide glyphs. No box-drawing characters are used —
// just a 2-space indent and clean spacing. Callers handle their own
// cell coloring.
//
// # Table
//
// Rows are collected first, then rendered once:
//
//	t := layout.NewTable()
//	t.AddRow("Package", "Status", "Size")
//	t.AddRow("git", "installed", "3.2 MB")
//	t.AddRow("neovim", "missing")
//	t.Print()
//
// Columns auto-size to their widest cell. To pin columns, pass a
// width specification:
//
//	t := layout.NewAlignedTable(layout.Fixed(20), layout.Fixed(12), layout.Auto())
//
// # Key-Value Group
//
// Aligned pairs with a consistent key column:
//
//	g := layout.NewKvGroup()
//	g.Add("Version", "1.0.0")
//	g.Add("Config", "~/.config/app.toml")
//	g.Print()
//
// Both builders render nothing at all when empty, and both have a
// Render(io.Writer) form for callers that don't write to stdout.
package layout
