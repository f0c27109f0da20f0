package colfmt

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Bounds for centering columns of uniform width.
const (
	centerMinWidth = 3
	centerMaxWidth = 8
	centerMinItems = 3
)

var numericPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// IsNumeric reports whether s is an integer or floating-point literal
// with an optional sign and exponent. Surrounding whitespace is ignored;
// an empty or blank string is not numeric.
func IsNumeric(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	return numericPattern.MatchString(s)
}

// Detect suggests an alignment for a column of values.
//
// A column where more than half of the items are numeric is right
// aligned. A column of at least three non-numeric items that all share
// the same width between 3 and 8 is centered. Everything else, including
// an empty column, is left aligned.
func Detect(items []string) Alignment {
	if len(items) == 0 {
		return AlignLeft
	}
	numeric := 0
	for _, item := range items {
		if IsNumeric(item) {
			numeric++
		}
	}
	if numeric*2 > len(items) {
		return AlignRight
	}
	if numeric > 0 || len(items) < centerMinItems {
		return AlignLeft
	}
	width := runewidth.StringWidth(items[0])
	if width < centerMinWidth || width > centerMaxWidth {
		return AlignLeft
	}
	for _, item := range items[1:] {
		if runewidth.StringWidth(item) != width {
			return AlignLeft
		}
	}
	return AlignCenter
}
