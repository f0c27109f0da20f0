package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigNone(t *testing.T) {
	t.Setenv(ConfigEnvVar, "")
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, "colfmt.yaml", `spacer: " | "
delimiter: ";"
width: 60
align: auto
header: true
separator: false
log_level: debug
list:
  horizontal: true
  sort: true
  unique: false
  locale: sv
  align: right
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Spacer)
	assert.Equal(t, " | ", *cfg.Spacer)
	assert.Equal(t, ";", *cfg.Delimiter)
	assert.Equal(t, 60, *cfg.Width)
	assert.Equal(t, "auto", *cfg.Align)
	assert.True(t, *cfg.Header)
	assert.False(t, *cfg.Separator)
	assert.Equal(t, "debug", *cfg.LogLevel)
	assert.True(t, *cfg.List.Horizontal)
	assert.True(t, *cfg.List.Sort)
	assert.False(t, *cfg.List.Unique)
	assert.Equal(t, "sv", *cfg.List.Locale)
	assert.Equal(t, "right", *cfg.List.Align)
}

func TestLoadConfigFromEnv(t *testing.T) {
	path := writeFile(t, "colfmt.yaml", "width: 42\n")
	t.Setenv(ConfigEnvVar, path)
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.NotNil(t, cfg.Width)
	assert.Equal(t, 42, *cfg.Width)
	assert.Nil(t, cfg.Spacer)
}

func TestLoadConfigEmptyFile(t *testing.T) {
	cfg, err := LoadConfig(writeFile(t, "colfmt.yaml", ""))
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadConfig(writeFile(t, "colfmt.yaml", "colour: true\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "colour")

	_, err = LoadConfig(writeFile(t, "colfmt.yaml", "width: wide\n"))
	require.Error(t, err)
}

func newTestFlags() (*pflag.FlagSet, *rootOptions) {
	opts := &rootOptions{}
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.StringVarP(&opts.spacer, "spacer", "s", "  ", "")
	fs.StringVar(&opts.align, "align", "left", "")
	fs.BoolVar(&opts.header, "header", false, "")
	fs.BoolVar(&opts.noSep, "no-sep", false, "")
	fs.IntVarP(&opts.width, "width", "w", 0, "")
	return fs, opts
}

func TestConfigApply(t *testing.T) {
	fs, opts := newTestFlags()
	require.NoError(t, fs.Parse([]string{"--align", "right"}))

	spacer, align, header, sep, width := " | ", "center", true, false, 30
	cfg := Config{Spacer: &spacer, Align: &align, Header: &header, Separator: &sep, Width: &width}
	require.NoError(t, cfg.apply(fs))

	assert.Equal(t, " | ", opts.spacer)
	assert.Equal(t, "right", opts.align, "flag given on the command line wins")
	assert.True(t, opts.header)
	assert.True(t, opts.noSep)
	assert.Equal(t, 30, opts.width)
}

func TestConfigApplyUnsetKeepsDefaults(t *testing.T) {
	fs, opts := newTestFlags()
	require.NoError(t, fs.Parse(nil))
	require.NoError(t, Config{}.apply(fs))
	assert.Equal(t, "  ", opts.spacer)
	assert.Equal(t, "left", opts.align)
	assert.False(t, opts.noSep)
}

func TestConfigApplyListPrefersListAlign(t *testing.T) {
	var align, locale string
	var sorted bool
	fs := pflag.NewFlagSet("list", pflag.ContinueOnError)
	fs.StringVar(&align, "align", "left", "")
	fs.StringVar(&locale, "locale", "", "")
	fs.BoolVar(&sorted, "sort", false, "")
	require.NoError(t, fs.Parse(nil))

	top, listAlign, sv, sort := "right", "center", "sv", true
	cfg := Config{Align: &top, List: ListConfig{Align: &listAlign, Locale: &sv, Sort: &sort}}
	require.NoError(t, cfg.applyList(fs))
	assert.Equal(t, "center", align)
	assert.Equal(t, "sv", locale)
	assert.True(t, sorted)

	cfg.List.Align = nil
	fs.Lookup("align").Changed = false
	require.NoError(t, cfg.applyList(fs))
	assert.Equal(t, "right", align)
}

func TestSetDefaultBadValue(t *testing.T) {
	fs, _ := newTestFlags()
	bad := "many"
	err := setDefault(fs, "width", &bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config width")
}
