package colfmt

import "slices"

// Model is a table-shaped collection of columns with optional headings
// and a default alignment. A Model is never modified after construction;
// methods that change it return a new Model.
type Model struct {
	columns  []Column
	headings []string
	align    Alignment
}

// New returns a model over pre-built columns. Headings apply to columns
// without a heading of their own; surplus headings are ignored. The
// default alignment applies to columns whose alignment is [AlignAuto];
// when it is [AlignAuto] too, each such column is detected from its data.
func New(columns []Column, headings []string, align Alignment) *Model {
	cols := make([]Column, len(columns))
	for i, c := range columns {
		cols[i] = c.clone()
	}
	return &Model{columns: cols, headings: slices.Clone(headings), align: align}
}

// FromColumns returns a model over column-major data. No transposition
// takes place.
func FromColumns(columns [][]string, headings []string, align Alignment) *Model {
	cols := make([]Column, len(columns))
	for i, data := range columns {
		cols[i] = Column{Data: data}
	}
	return New(cols, headings, align)
}

// FromRows returns a model over row-major data. When headers is true the
// first row becomes the headings. The remaining rows are transposed into
// columns, short rows padded with empty strings to the longest row.
func FromRows(rows [][]string, headers bool, align Alignment) *Model {
	if len(rows) == 0 {
		return New(nil, nil, align)
	}
	var headings []string
	if headers {
		headings = rows[0]
		rows = rows[1:]
	}
	if len(rows) == 0 {
		return FromColumns(make([][]string, len(headings)), headings, align)
	}
	numCols := 0
	for _, row := range rows {
		numCols = max(numCols, len(row))
	}
	columns := make([][]string, numCols)
	for i := range columns {
		columns[i] = make([]string, len(rows))
		for j, row := range rows {
			if i < len(row) {
				columns[i][j] = row[i]
			}
		}
	}
	return FromColumns(columns, headings, align)
}

// Align returns the model's default alignment.
func (m *Model) Align() Alignment { return m.align }

// Headings returns a copy of the model-level headings.
func (m *Model) Headings() []string { return slices.Clone(m.headings) }

// NumColumns returns the number of columns.
func (m *Model) NumColumns() int { return len(m.columns) }

// NumRows returns the length of the longest column.
func (m *Model) NumRows() int {
	n := 0
	for _, c := range m.columns {
		n = max(n, len(c.Data))
	}
	return n
}

// Columns returns the materialized columns: each has its heading filled
// from the model headings and a concrete alignment taken from the column,
// the model default or detection, in that order. The stored columns are
// never modified, so repeated calls return equal results.
func (m *Model) Columns() []Column {
	out := make([]Column, len(m.columns))
	for i, c := range m.columns {
		c = c.clone()
		if c.Heading == "" && i < len(m.headings) {
			c.Heading = m.headings[i]
		}
		if c.Align.IsAuto() {
			c.Align = m.align.Resolve(c.Data)
		}
		out[i] = c
	}
	return out
}

// Rows returns the data in row-major order, padding short columns with
// empty strings.
func (m *Model) Rows() [][]string {
	rows := make([][]string, m.NumRows())
	for i := range rows {
		rows[i] = make([]string, len(m.columns))
		for j, c := range m.columns {
			rows[i][j] = c.At(i)
		}
	}
	return rows
}

// WithAlignments returns a new model where column i takes aligns[i].
// Columns past the end of aligns keep their materialized alignment. An
// [AlignAuto] entry makes that column detect its alignment from its data.
func (m *Model) WithAlignments(aligns []Alignment) *Model {
	columns := m.Columns()
	for i := range columns {
		if i < len(aligns) {
			columns[i].Align = aligns[i]
		}
	}
	return New(columns, m.headings, AlignAuto)
}
