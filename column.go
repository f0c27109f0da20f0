package colfmt

import (
	"slices"

	"github.com/mattn/go-runewidth"
)

// Column is an ordered sequence of values sharing one alignment and width.
//
// An empty Heading means the column has no heading, a zero Width means the
// width is computed from the content, and [AlignAuto] means the alignment
// is detected from Data when the column is part of a [Model].
type Column struct {
	Data    []string
	Heading string
	Width   int
	Align   Alignment
}

// Len returns the width needed for the column: the explicit Width when
// set, otherwise the widest of the data and the heading.
func (c Column) Len() int {
	if c.Width > 0 {
		return c.Width
	}
	n := runewidth.StringWidth(c.Heading)
	for _, item := range c.Data {
		n = max(n, runewidth.StringWidth(item))
	}
	return n
}

// Template returns a function padding a value to the column width. The
// override is used when it is concrete, then the column's own alignment,
// then left alignment. Values wider than the column are returned as is.
func (c Column) Template(override Alignment) func(string) string {
	align := AlignLeft
	switch {
	case !override.IsAuto():
		align = override
	case !c.Align.IsAuto():
		align = c.Align
	}
	width := c.Len()
	return func(s string) string { return alignCell(s, width, align) }
}

// At returns the value at row i, or "" past the end of the data.
func (c Column) At(i int) string {
	if i < len(c.Data) {
		return c.Data[i]
	}
	return ""
}

func (c Column) clone() Column {
	c.Data = slices.Clone(c.Data)
	if c.Data == nil {
		c.Data = []string{}
	}
	return c
}
