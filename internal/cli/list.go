package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/bjaus/colfmt"
	"github.com/bjaus/colfmt/internal/logger"
)

type listOptions struct {
	horizontal bool
	width      int
	spacer     string
	align      string
	field      int
	pattern    string
	unique     bool
	sort       bool
	locale     string
	yaml       bool
	dir        bool
}

func newListCommand(root *rootOptions) *cobra.Command {
	opts := &listOptions{}
	cmd := &cobra.Command{
		Use:   "list [files...]",
		Short: "Columnize a flat list of values to fit the line width",
		Long: "Columnize one value per input line (or a YAML mapping with --yaml, or directory\n" +
			"entries with --dir) into as many columns as fit the line width.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, opts, args)
		},
	}
	f := cmd.Flags()
	f.BoolVar(&opts.horizontal, "horizontal", false, "place values side by side instead of under each other")
	f.IntVarP(&opts.width, "width", "w", 0, "line width (default: terminal width, $COLUMNS or 80)")
	f.StringVarP(&opts.spacer, "spacer", "s", colfmt.DefaultSpacer, "string placed between columns")
	f.StringVar(&opts.align, "align", "left", "alignment of the values: left, right, center or auto")
	f.IntVarP(&opts.field, "field", "f", 0, "split lines at whitespace and use only this field (negative counts from the end)")
	f.StringVarP(&opts.pattern, "pattern", "p", "", "keep only values matching a wildcard pattern (* and ?)")
	f.BoolVarP(&opts.unique, "unique", "u", false, "drop repeated values")
	f.BoolVar(&opts.sort, "sort", false, "sort values with the collation rules of --locale")
	f.StringVar(&opts.locale, "locale", "", "locale for --sort (default from $LC_ALL, $LC_COLLATE or $LANG)")
	f.BoolVar(&opts.yaml, "yaml", false, "read a YAML mapping and lay out its key-value pairs")
	f.BoolVar(&opts.dir, "dir", false, "columnize the entries of the named directories")
	return cmd
}

func runList(cmd *cobra.Command, opts *listOptions, args []string) error {
	log := logger.FromContext(cmd.Context())
	align, err := colfmt.ParseAlignment(opts.align)
	if err != nil {
		return err
	}
	term := detectTerminal(cmd.OutOrStdout())
	copts := colfmt.DefaultOptions()
	copts.Spacer = unescape(opts.spacer)
	copts.Width = opts.width
	copts.Env = term.env
	copts.Vertical = !opts.horizontal
	copts.Align = align
	copts.Prepare = colfmt.PrepareOptions{
		Pattern: opts.pattern,
		Unique:  opts.unique,
		Sort:    opts.sort,
		Locale:  resolveLocale(opts.locale),
	}
	if cmd.Flags().Changed("field") {
		field := opts.field
		copts.Prepare.Field = &field
	}

	var frame *colfmt.Frame
	switch {
	case opts.yaml:
		var pairs []colfmt.KeyValue
		err = readInputs(cmd, args, func(r io.Reader) error {
			ps, err := colfmt.ReadPairs(r)
			pairs = append(pairs, ps...)
			return err
		})
		if err != nil {
			return err
		}
		log.V(1).Info("pairs read", "count", len(pairs), "width", copts.LineWidth())
		frame, err = colfmt.ColumnizePairs(pairs, copts)
	default:
		var values []string
		values, err = listValues(cmd, opts, args)
		if err != nil {
			return err
		}
		log.V(1).Info("values read", "count", len(values), "width", copts.LineWidth())
		frame, err = colfmt.Columnize(values, copts)
	}
	if err != nil {
		return err
	}
	log.V(1).Info("frame built", "columns", frame.NumColumns(), "rows", frame.NumRows(), "frameWidth", frame.Width())
	return writeText(cmd.OutOrStdout(), frame.String())
}

func listValues(cmd *cobra.Command, opts *listOptions, args []string) ([]string, error) {
	if opts.dir {
		if len(args) == 0 {
			args = []string{"."}
		}
		var names []string
		for _, path := range args {
			ns, err := colfmt.ReadDir(path)
			if err != nil {
				return nil, fmt.Errorf("read input: %w", err)
			}
			names = append(names, ns...)
		}
		return names, nil
	}
	var values []string
	err := readInputs(cmd, args, func(r io.Reader) error {
		lines, err := colfmt.ReadLines(r, colfmt.LineOptions{SkipEmpty: true, SkipComments: true})
		values = append(values, lines...)
		return err
	})
	return values, err
}

// resolveLocale parses name, falling back to the POSIX locale variables.
// Unknown names yield the root locale.
func resolveLocale(name string) language.Tag {
	if name == "" {
		for _, v := range []string{"LC_ALL", "LC_COLLATE", "LANG"} {
			if name = os.Getenv(v); name != "" {
				break
			}
		}
	}
	// POSIX names look like de_DE.UTF-8@euro.
	name, _, _ = strings.Cut(name, ".")
	name, _, _ = strings.Cut(name, "@")
	if name == "" || name == "C" || name == "POSIX" {
		return language.Und
	}
	tag, err := language.Parse(strings.ReplaceAll(name, "_", "-"))
	if err != nil {
		return language.Und
	}
	return tag
}
