package colfmt

import (
	"strings"
)

// DefaultSpacer separates columns unless configured otherwise.
const DefaultSpacer = "  "

// Renderer turns a model into text.
type Renderer interface {
	Render(m *Model) string
}

// Screen renders a model as aligned columns.
//
// ShowHeading emits a heading row when any column has a heading, and
// ShowSeparator follows it with a rule of dashes sized to each column.
// A positive Width shrinks the columns to fit, wrapping cells that no
// longer fit. HeadingStyle, when set, is applied to each finished heading
// line, so escape codes never affect width calculations.
type Screen struct {
	Spacer        string
	ShowHeading   bool
	ShowSeparator bool
	Width         int
	HeadingStyle  func(string) string
}

// NewScreen returns a renderer for data rows only.
func NewScreen() Screen {
	return Screen{Spacer: DefaultSpacer}
}

// NewTable returns a renderer with a heading row and separator.
func NewTable() Screen {
	return Screen{Spacer: DefaultSpacer, ShowHeading: true, ShowSeparator: true}
}

// Render returns the formatted model. Lines carry no trailing whitespace
// and there is no final newline.
func (s Screen) Render(m *Model) string {
	columns := m.Columns()
	if len(columns) == 0 {
		return ""
	}
	heading := s.ShowHeading && hasHeadings(columns)
	frame := modelFrame(columns, heading, s.Spacer)
	if s.Width > 0 {
		frame.ShrinkTo(s.Width)
	}

	rows := frame.Rows()
	var lines []string
	if heading {
		for _, l := range rows[0] {
			text := l.String()
			if s.HeadingStyle != nil {
				text = s.HeadingStyle(text)
			}
			lines = append(lines, text)
		}
		if s.ShowSeparator {
			lines = append(lines, separator(frame.Widths(), s.Spacer))
		}
		rows = rows[1:]
	}
	for _, row := range rows {
		for _, l := range row {
			lines = append(lines, l.String())
		}
	}
	return strings.Join(lines, "\n")
}

// modelFrame lays out materialized columns, with the headings as the
// first row when heading is true.
func modelFrame(columns []Column, heading bool, spacer string) *Frame {
	data := make([][]string, len(columns))
	widths := make([]int, len(columns))
	numRows := 0
	for _, c := range columns {
		numRows = max(numRows, len(c.Data))
	}
	for i, c := range columns {
		col := make([]string, 0, numRows+1)
		if heading {
			col = append(col, c.Heading)
		}
		for j := range numRows {
			col = append(col, c.At(j))
		}
		data[i] = col
		widths[i] = c.Width
	}
	frame := NewFrame(data, spacer)
	frame.SetWidths(widths)
	for i, c := range columns {
		frame.AlignColumn(i, c.Align)
	}
	return frame
}

func hasHeadings(columns []Column) bool {
	for _, c := range columns {
		if c.Heading != "" {
			return true
		}
	}
	return false
}

func separator(widths []int, spacer string) string {
	parts := make([]string, len(widths))
	for i, width := range widths {
		parts[i] = strings.Repeat("-", width)
	}
	return strings.TrimRight(strings.Join(parts, spacer), " \t")
}
