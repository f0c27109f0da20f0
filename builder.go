package colfmt

// Builder lays out flat lists of values as frames that fit a line width.
type Builder struct {
	Spacer   string
	Width    int
	Vertical bool
}

// Build returns the frame with the most columns whose width does not
// exceed b.Width. Vertical builders fill each column top to bottom before
// moving to the next; horizontal builders fill each row left to right.
// When no column count fits, the values are laid out one per line,
// regardless of their width.
func (b Builder) Build(values []string) *Frame {
	for n := min(b.Width, len(values)); n > 0; {
		columns := chunk(values, n, b.Vertical)
		frame := NewFrame(columns, b.Spacer)
		if frame.Width() <= b.Width {
			return frame
		}
		// Fewer columns than requested can come back from a vertical
		// chunk, so fall back from what was realized.
		n = len(columns) - 1
	}
	return NewFrame([][]string{values}, b.Spacer)
}

// BuildPairs lays out key-value pairs. Vertical builders put one pair on
// each line; horizontal builders put all keys on the first line and all
// values on the second. The two-row or two-column shape is fixed, so the
// frame is shrunk to b.Width instead of being re-chunked.
func (b Builder) BuildPairs(pairs []KeyValue) *Frame {
	var columns [][]string
	if b.Vertical {
		columns = [][]string{Keys(pairs), Values(pairs)}
	} else {
		columns = make([][]string, len(pairs))
		for i, kv := range pairs {
			columns[i] = []string{kv.Key, kv.Value}
		}
	}
	frame := NewFrame(columns, b.Spacer)
	if b.Width > 0 {
		frame.ShrinkTo(b.Width)
	}
	return frame
}

// chunk distributes values over n columns. Vertically, each column holds
// ceil(len/n) consecutive values, so the result may have fewer than n
// columns. Horizontally, column j holds every n-th value starting at j.
func chunk(values []string, n int, vertical bool) [][]string {
	if len(values) == 0 || n <= 0 {
		return nil
	}
	n = min(n, len(values))
	if vertical {
		numRows := (len(values) + n - 1) / n
		columns := make([][]string, 0, n)
		for start := 0; start < len(values); start += numRows {
			columns = append(columns, values[start:min(start+numRows, len(values))])
		}
		return columns
	}
	columns := make([][]string, n)
	for i, v := range values {
		columns[i%n] = append(columns[i%n], v)
	}
	return columns
}
