package colfmt

import (
	"fmt"
	"strings"
)

// DefaultWidth is the line width used when neither an explicit width nor a
// terminal width is known.
const DefaultWidth = 80

// Env describes the output environment. It is resolved once by the caller
// and passed down; the layout code never inspects the terminal itself.
type Env struct {
	TerminalWidth int
}

// Options configures [Columnize] and [ColumnizePairs].
type Options struct {
	// Spacer separates columns. See [Spaces] for a run of blanks.
	Spacer string

	// Width is the target line width. Zero falls back to
	// Env.TerminalWidth, then to [DefaultWidth].
	Width int
	Env   Env

	// Vertical places values under each other before starting a new
	// column. Otherwise values are placed side by side.
	Vertical bool

	// Align justifies every cell. [AlignAuto] detects the alignment of
	// each column from its values.
	Align Alignment

	Prepare PrepareOptions
}

// DefaultOptions returns vertical, left-aligned options with the default
// spacer.
func DefaultOptions() Options {
	return Options{Spacer: DefaultSpacer, Vertical: true, Align: AlignLeft}
}

// Validate rejects option values the layout cannot use.
func (o Options) Validate() error {
	if o.Width < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWidth, o.Width)
	}
	if o.Env.TerminalWidth < 0 {
		return fmt.Errorf("%w: terminal width %d", ErrInvalidWidth, o.Env.TerminalWidth)
	}
	return nil
}

// LineWidth returns the effective target width.
func (o Options) LineWidth() int {
	switch {
	case o.Width > 0:
		return o.Width
	case o.Env.TerminalWidth > 0:
		return o.Env.TerminalWidth
	default:
		return DefaultWidth
	}
}

func (o Options) builder() Builder {
	return Builder{Spacer: o.Spacer, Width: o.LineWidth(), Vertical: o.Vertical}
}

// Spaces returns a spacer of n blanks.
func Spaces(n int) string {
	return strings.Repeat(" ", max(n, 0))
}

// Columnize prepares values and lays them out in as many columns as fit
// the line width. Printing the returned frame gives the columnized text.
func Columnize(values []string, opts Options) (*Frame, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	values, err := Prepare(values, opts.Prepare)
	if err != nil {
		return nil, err
	}
	frame := opts.builder().Build(values)
	alignFrame(frame, opts.Align)
	return frame, nil
}

// ColumnizePairs prepares key-value pairs and lays them out in two
// columns (vertical) or two rows (horizontal), shrunk to the line width.
func ColumnizePairs(pairs []KeyValue, opts Options) (*Frame, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	pairs, err := PreparePairs(pairs, opts.Prepare)
	if err != nil {
		return nil, err
	}
	frame := opts.builder().BuildPairs(pairs)
	alignFrame(frame, opts.Align)
	return frame, nil
}

// ColumnizeListers columnizes the concatenated lists of items.
func ColumnizeListers[T Lister](items []T, opts Options) (*Frame, error) {
	var all []string
	for _, item := range items {
		all = append(all, item.List()...)
	}
	return Columnize(all, opts)
}

// ColumnizeMappables columnizes the concatenated pairs of items.
func ColumnizeMappables[T Mappable](items []T, opts Options) (*Frame, error) {
	var all []KeyValue
	for _, item := range items {
		all = append(all, item.Pairs()...)
	}
	return ColumnizePairs(all, opts)
}

func alignFrame(f *Frame, a Alignment) {
	if !a.IsAuto() {
		f.Align(a)
		return
	}
	for i := range f.NumColumns() {
		f.AlignColumn(i, Detect(f.Column(i)))
	}
}
