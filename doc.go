// Package colfmt formats text values into aligned columns for terminal
// display.
//
// There are two ways in. Tabular data goes through a [Model], built with
// [FromRows], [FromColumns] or [New], and is rendered by a [Renderer]:
//
//	m := colfmt.FromRows(rows, true, colfmt.AlignAuto)
//	fmt.Println(colfmt.NewTable().Render(m))
//
// Flat lists go through [Columnize], which searches for the largest number
// of columns that fits the line width:
//
//	frame, err := colfmt.Columnize(names, colfmt.DefaultOptions())
//	fmt.Println(frame)
//
// # Alignment
//
// [AlignAuto] is the zero [Alignment]. A column left on auto is aligned by
// [Detect] when it is rendered: mostly numeric columns are right aligned,
// columns of at least three short values of one width (3 to 8 characters)
// are centered, everything else is left aligned. Use [ParseAlignment] and
// [ParseAlignments] to read alignments from user input.
//
// # Layout
//
// A [Frame] holds cells in columns of uniform width. [Frame.ShrinkTo]
// narrows columns that are wider than their right neighbor until the frame
// fits a target width; cells that no longer fit are wrapped onto stacked
// lines of the same row. Widths are display widths, so wide and combining
// runes are measured as a terminal shows them.
//
// The target width is never read from the terminal here. Callers resolve
// it once and pass it in through [Options] or [Env].
//
// # Input
//
// [ReadCSV], [ReadLines], [ReadColumns], [ReadPairs] and [ReadDir] are
// small helpers for turning streams into values. [Prepare] selects,
// filters, de-duplicates and sorts values before layout.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrUnknownAlignment] - unrecognized alignment token
//   - [ErrInvalidWidth] - negative or zero line width
//   - [ErrInvalidIndex] - field index out of range for a value
//   - [ErrInvalidPattern] - malformed wildcard pattern
//   - [ErrNotMapping] - YAML input is not a mapping
package colfmt
