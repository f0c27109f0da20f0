package colfmt

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnknownAlignment = errors.New("unknown alignment")
	ErrInvalidWidth     = errors.New("invalid width")
	ErrInvalidIndex     = errors.New("invalid field index")
	ErrInvalidPattern   = errors.New("invalid pattern")
)

// Alignment controls column text alignment.
//
// The zero value, [AlignAuto], is not "no alignment": it means the
// alignment is detected from the column's data when it is rendered.
type Alignment int

const (
	AlignAuto Alignment = iota
	AlignLeft
	AlignRight
	AlignCenter
)

var alignTokens = map[string]Alignment{
	"left":   AlignLeft,
	"l":      AlignLeft,
	"<":      AlignLeft,
	"right":  AlignRight,
	"r":      AlignRight,
	">":      AlignRight,
	"center": AlignCenter,
	"centre": AlignCenter,
	"c":      AlignCenter,
	"^":      AlignCenter,
	"auto":   AlignAuto,
	"a":      AlignAuto,
}

// String returns the alignment name.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	case AlignCenter:
		return "center"
	case AlignAuto:
		return "auto"
	default:
		return fmt.Sprintf("Alignment(%d)", int(a))
	}
}

// IsAuto reports whether a is the auto-detect sentinel.
func (a Alignment) IsAuto() bool { return a == AlignAuto }

// Resolve returns a when it is a concrete alignment, otherwise the
// alignment detected from data.
func (a Alignment) Resolve(data []string) Alignment {
	if a.IsAuto() {
		return Detect(data)
	}
	return a
}

// ParseAlignment parses a single alignment token. Recognized tokens are
// left, l, <, right, r, >, center, centre, c, ^, auto and a, in any case.
func ParseAlignment(token string) (Alignment, error) {
	if a, ok := alignTokens[strings.ToLower(strings.TrimSpace(token))]; ok {
		return a, nil
	}
	return AlignAuto, fmt.Errorf("%w: %q", ErrUnknownAlignment, token)
}

// ParseAlignments parses a comma-separated alignment list into exactly
// numCols entries. A single token applies to every column, a short list is
// extended with its last entry and a long one is truncated.
func ParseAlignments(arg string, numCols int) ([]Alignment, error) {
	var aligns []Alignment
	for part := range strings.SplitSeq(arg, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		a, err := ParseAlignment(part)
		if err != nil {
			return nil, err
		}
		aligns = append(aligns, a)
	}
	out := make([]Alignment, numCols)
	if len(aligns) == 0 {
		for i := range out {
			out[i] = AlignLeft
		}
		return out, nil
	}
	for i := range out {
		if i < len(aligns) {
			out[i] = aligns[i]
		} else {
			out[i] = aligns[len(aligns)-1]
		}
	}
	return out, nil
}

// ValidateWidth rejects non-positive line widths.
func ValidateWidth(width int) error {
	if width <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWidth, width)
	}
	return nil
}

// --- Input Interfaces ---

// Lister provides a flat list of strings. Used by [ColumnizeListers].
type Lister interface {
	List() []string
}

// Mappable provides key-value pairs. Used by [ColumnizeMappables].
type Mappable interface {
	Pairs() []KeyValue
}

// KeyValue is a single key-value pair.
type KeyValue struct {
	Key   string
	Value string
}

// Keys returns the keys of pairs in order.
func Keys(pairs []KeyValue) []string {
	out := make([]string, len(pairs))
	for i, kv := range pairs {
		out[i] = kv.Key
	}
	return out
}

// Values returns the values of pairs in order.
func Values(pairs []KeyValue) []string {
	out := make([]string, len(pairs))
	for i, kv := range pairs {
		out[i] = kv.Value
	}
	return out
}
