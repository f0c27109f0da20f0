package colfmt

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// PrepareOptions selects and orders values before they are laid out.
type PrepareOptions struct {
	// Field, when set, splits each value at whitespace and keeps only the
	// part at that index. Negative indexes count from the end.
	Field *int

	// Pattern keeps only values matching a shell-style wildcard pattern
	// ("*" and "?"), compared case-insensitively against the whole value.
	// For pairs the pattern is matched against keys.
	Pattern string

	// Unique drops repeated values, keeping the first occurrence.
	// Ignored for pairs, whose keys are unique already.
	Unique bool

	// Sort orders values using the collation rules of Locale.
	// Pairs are sorted by key.
	Sort   bool
	Locale language.Tag
}

// Prepare applies opts to values and returns a new slice.
func Prepare(values []string, opts PrepareOptions) ([]string, error) {
	out := slices.Clone(values)
	if opts.Field != nil {
		var err error
		if out, err = selectField(out, *opts.Field); err != nil {
			return nil, err
		}
	}
	if opts.Pattern != "" {
		re, err := compileGlob(opts.Pattern)
		if err != nil {
			return nil, err
		}
		out = slices.DeleteFunc(out, func(s string) bool { return !re.MatchString(s) })
	}
	if opts.Unique {
		out = unique(out)
	}
	if opts.Sort {
		c := collate.New(opts.Locale)
		slices.SortStableFunc(out, c.CompareString)
	}
	return out, nil
}

// PreparePairs applies the pattern and sort options of opts to pairs.
func PreparePairs(pairs []KeyValue, opts PrepareOptions) ([]KeyValue, error) {
	out := slices.Clone(pairs)
	if opts.Pattern != "" {
		re, err := compileGlob(opts.Pattern)
		if err != nil {
			return nil, err
		}
		out = slices.DeleteFunc(out, func(kv KeyValue) bool { return !re.MatchString(kv.Key) })
	}
	if opts.Sort {
		c := collate.New(opts.Locale)
		slices.SortStableFunc(out, func(a, b KeyValue) int { return c.CompareString(a.Key, b.Key) })
	}
	return out, nil
}

func selectField(values []string, index int) ([]string, error) {
	out := make([]string, len(values))
	for i, v := range values {
		fields := strings.Fields(v)
		idx := index
		if idx < 0 {
			idx += len(fields)
		}
		if idx < 0 || idx >= len(fields) {
			return nil, fmt.Errorf("%w: %d for %q", ErrInvalidIndex, index, v)
		}
		out[i] = fields[idx]
	}
	return out, nil
}

func unique(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := values[:0]
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// compileGlob translates a wildcard pattern into an anchored,
// case-insensitive regular expression. Brackets enclose a character set,
// negated by a leading "!"; an unclosed bracket is literal.
func compileGlob(pattern string) (*regexp.Regexp, error) {
	var sb strings.Builder
	sb.WriteString("(?is)^")
	runes := []rune(pattern)
	for i := 0; i < len(runes); i++ {
		switch r := runes[i]; r {
		case '*':
			sb.WriteString(".*")
		case '?':
			sb.WriteString(".")
		case '[':
			end := slices.Index(runes[i+1:], ']')
			if end < 0 {
				sb.WriteString(`\[`)
				continue
			}
			set := runes[i+1 : i+1+end]
			sb.WriteString("[")
			if len(set) > 0 && set[0] == '!' {
				sb.WriteString("^")
				set = set[1:]
			}
			sb.WriteString(strings.ReplaceAll(string(set), `\`, `\\`))
			sb.WriteString("]")
			i += end + 1
		default:
			sb.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	sb.WriteString("$")
	re, err := regexp.Compile(sb.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, pattern, err)
	}
	return re, nil
}
