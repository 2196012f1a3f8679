package layout

import (
	"io"
	"os"
	"strings"

	"github.com/albertocavalcante/pintui/format"
)

const (
	// tableIndent is prepended to every rendered row.
	tableIndent = "  "
	// columnGap separates adjacent columns.
	columnGap = "  "
)

// ColumnWidth specifies how one table column is sized: automatically
// from content, or pinned to a fixed display width. The zero value is
// Auto, so an unspecified column always auto-sizes.
type ColumnWidth struct {
	pinned bool
	width  int
}

// Auto returns a column specification that sizes the column to its
// widest cell.
func Auto() ColumnWidth {
	return ColumnWidth{}
}

// Fixed returns a column specification pinned to the given display
// width. Content wider than the pin is printed as-is, pushing later
// columns out of alignment; content narrower is padded. A Fixed(0)
// column really is zero columns wide.
func Fixed(width int) ColumnWidth {
	return ColumnWidth{pinned: true, width: width}
}

// Table is a column-aligned table for terminal output.
//
// Rows are accumulated with AddRow and rendered once with Render or
// Print. Rows may have different lengths; missing trailing cells
// render as empty. A Table is not safe for concurrent use.
type Table struct {
	columns []ColumnWidth
	rows    [][]string
}

// NewTable creates a table in which every column auto-sizes to its
// content.
func NewTable() *Table {
	return &Table{}
}

// NewAlignedTable creates a table with an explicit width for each
// listed column. Columns beyond those listed auto-size.
func NewAlignedTable(columns ...ColumnWidth) *Table {
	return &Table{columns: columns}
}

// AddRow appends a row of cells. Each argument becomes one column
// value.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(cells))
	copy(row, cells)
	t.rows = append(t.rows, row)
}

// Render writes all rows to w with consistent column alignment.
//
// Each row gets a 2-space indent and a 2-space gap between columns.
// Cells are left-aligned and padded to the resolved column width by
// display width; trailing whitespace is trimmed from every line. A
// table with no rows writes nothing.
func (t *Table) Render(w io.Writer) {
	if len(t.rows) == 0 {
		return
	}

	widths := t.resolveWidths()

	for _, row := range t.rows {
		var line strings.Builder
		line.WriteString(tableIndent)

		for i, width := range widths {
			var cell string
			if i < len(row) {
				cell = row[i]
			}
			line.WriteString(cell)

			// Last column: no trailing padding.
			if i < len(widths)-1 {
				if pad := width - format.Width(cell); pad > 0 {
					line.WriteString(strings.Repeat(" ", pad))
				}
				line.WriteString(columnGap)
			}
		}

		io.WriteString(w, strings.TrimRight(line.String(), " \t")+"\n")
	}
}

// Print renders the table to stdout.
func (t *Table) Print() {
	t.Render(os.Stdout)
}

// resolveWidths computes the effective display width of every column:
// the widest cell per column, overridden by any pinned specification.
func (t *Table) resolveWidths() []int {
	widths := make([]int, t.maxColumns())

	for _, row := range t.rows {
		for i, cell := range row {
			if w := format.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	for i, col := range t.columns {
		if i < len(widths) && col.pinned {
			widths[i] = col.width
		}
	}

	return widths
}

// maxColumns returns the column count used for layout: the maximum
// row length across all rows.
func (t *Table) maxColumns() int {
	max := 0
	for _, row := range t.rows {
		if len(row) > max {
			max = len(row)
		}
	}
	return max
}
