package colfmt

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// ReadCSV reads delimited rows from r. Rows may have different lengths.
func ReadCSV(r io.Reader, delimiter rune) ([][]string, error) {
	cr := csv.NewReader(r)
	if delimiter != 0 {
		cr.Comma = delimiter
	}
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	return cr.ReadAll()
}

// LineOptions controls which lines [ReadLines] keeps.
type LineOptions struct {
	SkipEmpty    bool
	SkipComments bool
}

// ReadLines reads lines from r with trailing whitespace removed. Comment
// lines start with "#".
func ReadLines(r io.Reader, opts LineOptions) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		if opts.SkipEmpty && line == "" {
			continue
		}
		if opts.SkipComments && strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines, sc.Err()
}

// ReadColumns reads one column per non-empty line of r, splitting each
// line on delimiter.
func ReadColumns(r io.Reader, delimiter string) ([][]string, error) {
	lines, err := ReadLines(r, LineOptions{SkipEmpty: true})
	if err != nil {
		return nil, err
	}
	columns := make([][]string, len(lines))
	for i, line := range lines {
		if delimiter == "" {
			columns[i] = []string{line}
			continue
		}
		columns[i] = strings.Split(line, delimiter)
	}
	return columns, nil
}

// ReadDir returns the sorted entry names of the directory at path, or the
// path itself when it is not a directory.
func ReadDir(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{filepath.Base(path)}, nil
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	slices.Sort(names)
	return names, nil
}
