package colfmt

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Cell is a single renderable value. Width is the minimum rendering width;
// a cell never renders narrower than its text.
type Cell struct {
	Text    string
	Width   int
	Justify Alignment
}

// NewCell returns a cell whose width is the display width of text.
func NewCell(text string) Cell {
	return Cell{Text: text, Width: runewidth.StringWidth(text)}
}

// TextWidth returns the display width of the cell's text.
func (c Cell) TextWidth() int { return runewidth.StringWidth(c.Text) }

// Len returns the rendering width of the cell.
func (c Cell) Len() int { return max(c.Width, c.TextWidth()) }

// String returns the text padded to Width according to Justify.
func (c Cell) String() string { return alignCell(c.Text, c.Width, c.Justify) }

// Split cuts the cell's text into chunks of at most size display columns.
// A size of zero or less uses the cell's Width, or its text width when no
// Width has been assigned. Each chunk keeps the cell's Width and Justify.
func (c Cell) Split(size int) []Cell {
	if size <= 0 {
		size = c.Width
	}
	if size <= 0 {
		size = c.TextWidth()
	}
	chunks := wrapCell(c.Text, size)
	cells := make([]Cell, len(chunks))
	for i, chunk := range chunks {
		cells[i] = Cell{Text: chunk, Width: c.Width, Justify: c.Justify}
	}
	return cells
}

func wrapCell(s string, width int) []string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return []string{s}
	}
	var lines []string
	for len(s) > 0 {
		line := runewidth.Truncate(s, width, "")
		if line == "" {
			// A rune wider than the chunk still has to go somewhere.
			line = string([]rune(s)[0])
		}
		lines = append(lines, line)
		s = s[len(line):]
	}
	return lines
}

func alignCell(s string, width int, align Alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
