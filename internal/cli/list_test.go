package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/bjaus/colfmt"
)

const fruitLines = "apple\nbanana\ncherry\ndate\nelderberry\n"

func TestList(t *testing.T) {
	tests := map[string]struct {
		stdin string
		args  []string
		want  string
	}{
		"vertical":     {stdin: fruitLines, args: []string{"-w", "20"}, want: "apple   date\nbanana  elderberry\ncherry\n"},
		"horizontal":   {stdin: "a\nb\nc\nd\ne\n", args: []string{"--horizontal", "-w", "5", "-s", " "}, want: "a b c\nd e\n"},
		"one line":     {stdin: fruitLines, args: []string{"-w", "80"}, want: "apple  banana  cherry  date  elderberry\n"},
		"right":        {stdin: "1\n22\n333\n4444\n", args: []string{"-w", "6", "--align", "right"}, want: "   1\n  22\n 333\n4444\n"},
		"skips noise":  {stdin: "# comment\n\na\n  \nb\n", args: []string{"-w", "80"}, want: "a  b\n"},
		"field":        {stdin: "1 x\n2 y\n", args: []string{"-w", "80", "-f", "1"}, want: "x  y\n"},
		"last field":   {stdin: "1 x\n2 y z\n", args: []string{"-w", "80", "-f", "-1"}, want: "x  z\n"},
		"pattern":      {stdin: fruitLines, args: []string{"-w", "80", "-p", "*an*"}, want: "banana\n"},
		"unique sort":  {stdin: "pear\nfig\npear\napple\n", args: []string{"-w", "80", "-u", "--sort", "--locale", "C"}, want: "apple  fig  pear\n"},
		"locale sort":  {stdin: "öl\nzebra\napa\n", args: []string{"-w", "80", "--sort", "--locale", "sv_SE.UTF-8"}, want: "apa  zebra  öl\n"},
		"yaml":         {stdin: "name: colfmt\nversion: 1.0\n", args: []string{"--yaml", "-w", "80"}, want: "name     colfmt\nversion  1.0\n"},
		"yaml rows":    {stdin: "name: colfmt\nversion: 1.0\n", args: []string{"--yaml", "--horizontal", "-w", "80"}, want: "name    version\ncolfmt  1.0\n"},
		"empty":        {stdin: "", args: []string{"-w", "80"}, want: ""},
		"escaped tab":  {stdin: "a\nb\n", args: []string{"-w", "80", "-s", `\t`}, want: "a\tb\n"},
		"narrow value": {stdin: "abcdefghij\nklmnop\n", args: []string{"-w", "5"}, want: "abcdefghij\nklmnop\n"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			out, err := run(t, tc.stdin, append([]string{"list"}, tc.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestListDir(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"c.go", "a.go", "b.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}
	out, err := run(t, "", "list", "--dir", "-w", "80", "-p", "*.go", dir)
	require.NoError(t, err)
	assert.Equal(t, "a.go  c.go\n", out)

	_, err = run(t, "", "list", "--dir", filepath.Join(dir, "missing"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestListErrors(t *testing.T) {
	tests := map[string]struct {
		stdin  string
		args   []string
		target error
	}{
		"bad align":   {args: []string{"--align", "diagonal"}, target: colfmt.ErrUnknownAlignment},
		"bad width":   {stdin: "a\n", args: []string{"--width=-1"}, target: colfmt.ErrInvalidWidth},
		"bad field":   {stdin: "one\n", args: []string{"-f", "3"}, target: colfmt.ErrInvalidIndex},
		"bad pattern": {stdin: "a\n", args: []string{"-p", "[z-a]"}, target: colfmt.ErrInvalidPattern},
		"not mapping": {stdin: "- a\n", args: []string{"--yaml"}, target: colfmt.ErrNotMapping},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := run(t, tc.stdin, append([]string{"list"}, tc.args...)...)
			require.ErrorIs(t, err, tc.target)
		})
	}
}

func TestListConfig(t *testing.T) {
	cfg := writeFile(t, "colfmt.yaml", "spacer: \" \"\nalign: right\nlist:\n  horizontal: true\n  align: left\n")
	out, err := run(t, "a\nb\nc\nd\ne\n", "list", "--config", cfg, "-w", "5")
	require.NoError(t, err)
	assert.Equal(t, "a b c\nd e\n", out)
}

func TestResolveLocale(t *testing.T) {
	tests := map[string]struct {
		name string
		env  map[string]string
		want language.Tag
	}{
		"explicit":      {name: "sv", want: language.Swedish},
		"posix form":    {name: "de_DE.UTF-8@euro", want: language.MustParse("de-DE")},
		"c locale":      {name: "C", want: language.Und},
		"posix":         {name: "POSIX.UTF-8", want: language.Und},
		"invalid":       {name: "not a locale!", want: language.Und},
		"lang":          {env: map[string]string{"LANG": "fr_FR.UTF-8"}, want: language.MustParse("fr-FR")},
		"lc_all first":  {env: map[string]string{"LC_ALL": "sv_SE", "LANG": "fr_FR"}, want: language.MustParse("sv-SE")},
		"lc_collate":    {env: map[string]string{"LC_COLLATE": "da_DK", "LANG": "fr_FR"}, want: language.MustParse("da-DK")},
		"nothing":       {want: language.Und},
		"flag wins env": {name: "en", env: map[string]string{"LC_ALL": "sv_SE"}, want: language.English},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			for _, v := range []string{"LC_ALL", "LC_COLLATE", "LANG"} {
				t.Setenv(v, tc.env[v])
			}
			assert.Equal(t, tc.want, resolveLocale(tc.name))
		})
	}
}
