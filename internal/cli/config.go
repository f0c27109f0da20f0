package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// ConfigEnvVar names the environment variable holding a config file path.
const ConfigEnvVar = "COLFMT_CONFIG"

// Config holds defaults read from a YAML file. Nil fields are unset and
// leave the built-in default alone; flags given on the command line win
// over both.
type Config struct {
	Spacer    *string    `yaml:"spacer"`
	Delimiter *string    `yaml:"delimiter"`
	Width     *int       `yaml:"width"`
	Align     *string    `yaml:"align"`
	Header    *bool      `yaml:"header"`
	Separator *bool      `yaml:"separator"`
	LogLevel  *string    `yaml:"log_level"`
	List      ListConfig `yaml:"list"`
}

// ListConfig holds defaults for the list command.
type ListConfig struct {
	Horizontal *bool   `yaml:"horizontal"`
	Sort       *bool   `yaml:"sort"`
	Unique     *bool   `yaml:"unique"`
	Locale     *string `yaml:"locale"`
	Align      *string `yaml:"align"`
}

// LoadConfig reads the config file at path. An empty path falls back to
// $COLFMT_CONFIG; when neither is set the zero Config is returned.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		path = os.Getenv(ConfigEnvVar)
	}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, nil
}

// setDefault assigns the config value to a flag the user did not set.
func setDefault[T any](fs *pflag.FlagSet, name string, value *T) error {
	if value == nil {
		return nil
	}
	f := fs.Lookup(name)
	if f == nil || f.Changed {
		return nil
	}
	if err := f.Value.Set(fmt.Sprint(*value)); err != nil {
		return fmt.Errorf("config %s: %w", name, err)
	}
	return nil
}

// apply copies config values into the flags of fs that were not given on
// the command line.
func (c Config) apply(fs *pflag.FlagSet) error {
	return errors.Join(
		setDefault(fs, "spacer", c.Spacer),
		setDefault(fs, "delimiter", c.Delimiter),
		setDefault(fs, "width", c.Width),
		setDefault(fs, "align", c.Align),
		setDefault(fs, "header", c.Header),
		setDefault(fs, "no-sep", negate(c.Separator)),
		setDefault(fs, "log-level", c.LogLevel),
	)
}

// applyList is apply for the list command, whose align and sort flags
// have list-specific config keys.
func (c Config) applyList(fs *pflag.FlagSet) error {
	align := c.List.Align
	if align == nil {
		align = c.Align
	}
	return errors.Join(
		setDefault(fs, "spacer", c.Spacer),
		setDefault(fs, "width", c.Width),
		setDefault(fs, "align", align),
		setDefault(fs, "log-level", c.LogLevel),
		setDefault(fs, "horizontal", c.List.Horizontal),
		setDefault(fs, "sort", c.List.Sort),
		setDefault(fs, "unique", c.List.Unique),
		setDefault(fs, "locale", c.List.Locale),
	)
}

func negate(b *bool) *bool {
	if b == nil {
		return nil
	}
	v := !*b
	return &v
}
