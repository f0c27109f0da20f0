package colfmt

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Line is one rendered row: its cells joined by a spacer.
type Line struct {
	Cells  []Cell
	Spacer string
}

// Width returns the rendered width of the line including spacers.
func (l Line) Width() int {
	n := 0
	for _, c := range l.Cells {
		n += c.Len()
	}
	if len(l.Cells) > 1 {
		n += (len(l.Cells) - 1) * runewidth.StringWidth(l.Spacer)
	}
	return n
}

// String joins the rendered cells with the spacer and strips trailing
// whitespace.
func (l Line) String() string {
	parts := make([]string, len(l.Cells))
	for i, c := range l.Cells {
		parts[i] = c.String()
	}
	return strings.TrimRight(strings.Join(parts, l.Spacer), " \t")
}

// Frame is a grid of cells laid out in columns of uniform width.
// Columns are padded with empty cells to the same length.
type Frame struct {
	columns [][]Cell
	widths  []int
	spacer  string
}

// NewFrame builds a frame from column-major values.
func NewFrame(columns [][]string, spacer string) *Frame {
	numRows := 0
	for _, col := range columns {
		numRows = max(numRows, len(col))
	}
	cache := make(cellCache)
	f := &Frame{
		columns: make([][]Cell, len(columns)),
		widths:  make([]int, len(columns)),
		spacer:  spacer,
	}
	for i, col := range columns {
		cells := make([]Cell, numRows)
		for j := range cells {
			text := ""
			if j < len(col) {
				text = col[j]
			}
			cells[j] = cache.get(text)
			f.widths[i] = max(f.widths[i], cells[j].Len())
		}
		f.columns[i] = cells
	}
	return f
}

// cellCache maps text to its cell for the duration of one frame build.
type cellCache map[string]Cell

func (c cellCache) get(text string) Cell {
	if cell, ok := c[text]; ok {
		return cell
	}
	cell := NewCell(text)
	c[text] = cell
	return cell
}

// Spacer returns the string placed between columns.
func (f *Frame) Spacer() string { return f.spacer }

// NumColumns returns the number of columns.
func (f *Frame) NumColumns() int { return len(f.columns) }

// NumRows returns the number of logical rows.
func (f *Frame) NumRows() int {
	if len(f.columns) == 0 {
		return 0
	}
	return len(f.columns[0])
}

// Widths returns a copy of the current column widths.
func (f *Frame) Widths() []int {
	out := make([]int, len(f.widths))
	copy(out, f.widths)
	return out
}

// Width returns the total line width: every column width plus the
// spacers between them.
func (f *Frame) Width() int {
	return totalWidth(f.widths, runewidth.StringWidth(f.spacer))
}

// Column returns the text of column i.
func (f *Frame) Column(i int) []string {
	out := make([]string, len(f.columns[i]))
	for j, c := range f.columns[i] {
		out[j] = c.Text
	}
	return out
}

// SetWidths overrides column widths. A zero or negative entry keeps the
// current width of that column; surplus entries are ignored.
func (f *Frame) SetWidths(widths []int) {
	for i, w := range widths {
		if i < len(f.widths) && w > 0 {
			f.widths[i] = w
		}
	}
}

// Align sets the justification of every cell.
func (f *Frame) Align(a Alignment) {
	for i := range f.columns {
		f.AlignColumn(i, a)
	}
}

// AlignColumn sets the justification of every cell in column i.
func (f *Frame) AlignColumn(i int, a Alignment) {
	if i < 0 || i >= len(f.columns) {
		return
	}
	for j := range f.columns[i] {
		f.columns[i][j].Justify = a
	}
}

// ShrinkTo reduces column widths until the frame fits into target or
// every column is one character wide. Cells wider than their column are
// wrapped when the frame is rendered.
func (f *Frame) ShrinkTo(target int) {
	overflow := f.Width() - target
	if overflow <= 0 {
		return
	}
	f.widths = shrinkWidths(f.widths, overflow)
}

// shrinkWidths removes up to overflow columns from widths. Each pass walks
// the columns left to right and narrows a column that is wider than its
// right neighbor (the last column is compared against a floor of one)
// down to that neighbor's width at most. Passes repeat until the overflow
// is gone or no column is wider than one.
func shrinkWidths(widths []int, overflow int) []int {
	out := make([]int, len(widths))
	copy(out, widths)
	for overflow > 0 && anyWiderThan(out, 1) {
		for i := range out {
			next := 1
			if i+1 < len(out) {
				next = out[i+1]
			}
			if out[i] <= next {
				continue
			}
			cut := min(overflow, out[i]-next)
			out[i] -= cut
			overflow -= cut
			if overflow == 0 {
				break
			}
		}
	}
	return out
}

func anyWiderThan(widths []int, n int) bool {
	for _, w := range widths {
		if w > n {
			return true
		}
	}
	return false
}

func totalWidth(widths []int, spacerWidth int) int {
	n := 0
	for _, w := range widths {
		n += w
	}
	if len(widths) > 1 {
		n += (len(widths) - 1) * spacerWidth
	}
	return n
}

// Rows returns the rendered physical lines of each logical row. A row
// holding a cell wider than its column is wrapped into several stacked
// lines; every cell of that row is split into the same number of lines.
func (f *Frame) Rows() [][]Line {
	rows := make([][]Line, f.NumRows())
	for j := range rows {
		cells := make([]Cell, len(f.columns))
		for i, col := range f.columns {
			cells[i] = col[j]
			cells[i].Width = f.widths[i]
		}
		rows[j] = f.wrapRow(cells)
	}
	return rows
}

func (f *Frame) wrapRow(cells []Cell) []Line {
	overflow := false
	for _, c := range cells {
		if c.TextWidth() > c.Width {
			overflow = true
			break
		}
	}
	if !overflow {
		return []Line{{Cells: cells, Spacer: f.spacer}}
	}
	wrapped := make([][]Cell, len(cells))
	for i, c := range cells {
		wrapped[i] = c.Split(c.Width)
	}
	lines := make([]Line, maxLines(wrapped))
	for n := range lines {
		parts := make([]Cell, len(cells))
		for i, c := range cells {
			if n < len(wrapped[i]) {
				parts[i] = wrapped[i][n]
			} else {
				parts[i] = Cell{Width: c.Width, Justify: c.Justify}
			}
		}
		lines[n] = Line{Cells: parts, Spacer: f.spacer}
	}
	return lines
}

func maxLines(wrapped [][]Cell) int {
	n := 1
	for _, lines := range wrapped {
		n = max(n, len(lines))
	}
	return n
}

// Lines returns every physical line of the frame in order.
func (f *Frame) Lines() []Line {
	var lines []Line
	for _, row := range f.Rows() {
		lines = append(lines, row...)
	}
	return lines
}

// String renders the frame. Lines are joined with newlines and carry no
// trailing whitespace; there is no final newline.
func (f *Frame) String() string {
	return joinLines(f.Lines())
}

func joinLines(lines []Line) string {
	parts := make([]string, len(lines))
	for i, l := range lines {
		parts[i] = l.String()
	}
	return strings.Join(parts, "\n")
}
