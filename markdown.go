package colfmt

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Markdown renders a model as a GitHub-flavored Markdown table. Columns
// without a heading get an empty heading cell, and the alignment row uses
// each column's materialized alignment.
type Markdown struct{}

// Render returns the Markdown table without a final newline.
func (Markdown) Render(m *Model) string {
	columns := m.Columns()
	if len(columns) == 0 {
		return ""
	}

	// Minimum width 3 leaves room for alignment markers.
	widths := make([]int, len(columns))
	aligns := make([]Alignment, len(columns))
	header := make([]string, len(columns))
	for i, c := range columns {
		aligns[i] = c.Align
		header[i] = escapeMarkdown(c.Heading)
		widths[i] = max(c.Len(), runewidth.StringWidth(header[i]), 3)
		for _, item := range c.Data {
			widths[i] = max(widths[i], runewidth.StringWidth(escapeMarkdown(item)))
		}
	}

	lines := []string{markdownRow(header, widths, aligns)}

	sep := make([]string, len(columns))
	for i, width := range widths {
		switch aligns[i] {
		case AlignRight:
			sep[i] = strings.Repeat("-", width-1) + ":"
		case AlignCenter:
			sep[i] = ":" + strings.Repeat("-", width-2) + ":"
		default:
			sep[i] = strings.Repeat("-", width)
		}
	}
	lines = append(lines, fmt.Sprintf("| %s |", strings.Join(sep, " | ")))

	for i := range m.NumRows() {
		cells := make([]string, len(columns))
		for j, c := range columns {
			cells[j] = escapeMarkdown(c.At(i))
		}
		lines = append(lines, markdownRow(cells, widths, aligns))
	}
	return strings.Join(lines, "\n")
}

func markdownRow(cells []string, widths []int, aligns []Alignment) string {
	padded := make([]string, len(widths))
	for i, width := range widths {
		padded[i] = alignCell(cells[i], width, aligns[i])
	}
	return fmt.Sprintf("| %s |", strings.Join(padded, " | "))
}

func escapeMarkdown(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
