// Package cli implements the colfmt command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/bjaus/colfmt"
	"github.com/bjaus/colfmt/internal/logger"
	"github.com/bjaus/colfmt/internal/settings"
)

// ErrInvalidDelimiter is returned when a CSV delimiter is not one character.
var ErrInvalidDelimiter = errors.New("invalid delimiter")

type rootOptions struct {
	delimiter  string
	spacer     string
	columns    bool
	align      string
	header     bool
	noSep      bool
	width      int
	markdown   bool
	color      bool
	demo       bool
	configFile string
	logLevel   string
}

// Execute runs the colfmt command with the process arguments.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// NewRootCommand returns the colfmt command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   settings.BinaryName + " [files...]",
		Short: "Format 2D data into aligned columns",
		Long: "Format CSV or plain-text data into aligned columns. Each input line is a row\n" +
			"unless --columns is given. Reads standard input when no files are named.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setup(cmd, opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.demo {
				return writeDemo(cmd.OutOrStdout())
			}
			return runTable(cmd, opts, args)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configFile, "config", "", "YAML file with default settings (default $"+ConfigEnvVar+")")
	pf.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	f := cmd.Flags()
	f.StringVarP(&opts.delimiter, "delimiter", "d", ",", "field delimiter of the input")
	f.StringVarP(&opts.spacer, "spacer", "s", colfmt.DefaultSpacer, "string placed between columns")
	f.BoolVar(&opts.columns, "columns", false, "treat each input line as a column")
	f.StringVar(&opts.align, "align", "left", "alignment for all columns or a comma-separated list: left, right, center, auto (or <, >, ^, a)")
	f.BoolVar(&opts.header, "header", false, "treat the first row as headings and render a table")
	f.BoolVar(&opts.noSep, "no-sep", false, "omit the separator below the headings")
	f.IntVarP(&opts.width, "width", "w", 0, "shrink columns to this line width (default: terminal width when writing to a terminal)")
	f.BoolVar(&opts.markdown, "markdown", false, "render a Markdown table")
	f.BoolVar(&opts.color, "color", false, "highlight headings when writing to a terminal")
	f.BoolVar(&opts.demo, "demo", false, "print the built-in demonstration")

	cmd.AddCommand(newListCommand(opts), newDemoCommand(), newVersionCommand())
	return cmd
}

// setup merges the config file into unset flags and attaches a logger to
// the command context.
func setup(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := LoadConfig(opts.configFile)
	if err != nil {
		return err
	}
	if cmd.Name() == "list" {
		err = cfg.applyList(cmd.Flags())
	} else {
		err = cfg.apply(cmd.Flags())
	}
	if err != nil {
		return err
	}
	level, err := logger.ParseLevel(opts.logLevel)
	if err != nil {
		return err
	}
	lgr := logger.WithValues(logger.Get(level), logger.CommandKey, cmd.Name())
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logger.WithLogger(ctx, lgr))
	return nil
}

func runTable(cmd *cobra.Command, opts *rootOptions, files []string) error {
	log := logger.FromContext(cmd.Context())
	if opts.width < 0 {
		return fmt.Errorf("%w: %d", colfmt.ErrInvalidWidth, opts.width)
	}

	var model *colfmt.Model
	if opts.columns {
		var columns [][]string
		err := readInputs(cmd, files, func(r io.Reader) error {
			cols, err := colfmt.ReadColumns(r, unescape(opts.delimiter))
			columns = append(columns, cols...)
			return err
		})
		if err != nil {
			return err
		}
		var headings []string
		if opts.header {
			columns, headings = splitHeadings(columns)
		}
		model = colfmt.FromColumns(columns, headings, colfmt.AlignAuto)
	} else {
		delim, err := csvDelimiter(opts.delimiter)
		if err != nil {
			return err
		}
		var rows [][]string
		err = readInputs(cmd, files, func(r io.Reader) error {
			rs, err := colfmt.ReadCSV(r, delim)
			rows = append(rows, rs...)
			return err
		})
		if err != nil {
			return err
		}
		model = colfmt.FromRows(rows, opts.header, colfmt.AlignAuto)
	}

	aligns, err := colfmt.ParseAlignments(opts.align, model.NumColumns())
	if err != nil {
		return err
	}
	model = model.WithAlignments(aligns)
	log.V(1).Info("model built", "columns", model.NumColumns(), "rows", model.NumRows())

	term := detectTerminal(cmd.OutOrStdout())
	var renderer colfmt.Renderer
	switch {
	case opts.markdown:
		renderer = colfmt.Markdown{}
	default:
		screen := colfmt.NewScreen()
		if opts.header {
			screen = colfmt.NewTable()
			screen.ShowSeparator = !opts.noSep
		}
		screen.Spacer = unescape(opts.spacer)
		screen.Width = opts.width
		if screen.Width == 0 && term.tty {
			screen.Width = term.env.TerminalWidth
		}
		screen.HeadingStyle = headingStyle(opts.color, term)
		log.V(1).Info("rendering", "width", screen.Width, "heading", screen.ShowHeading)
		renderer = screen
	}
	return writeText(cmd.OutOrStdout(), renderer.Render(model))
}

// splitHeadings takes the first value of every column as its heading.
func splitHeadings(columns [][]string) ([][]string, []string) {
	headings := make([]string, len(columns))
	data := make([][]string, len(columns))
	for i, col := range columns {
		if len(col) > 0 {
			headings[i] = col[0]
			data[i] = col[1:]
		}
	}
	return data, headings
}

// readInputs calls fn with each named file, or with standard input when
// there are none. "-" names standard input.
func readInputs(cmd *cobra.Command, files []string, fn func(io.Reader) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, name := range files {
		if err := readInput(cmd, name, fn); err != nil {
			return fmt.Errorf("read input: %w", err)
		}
	}
	return nil
}

func readInput(cmd *cobra.Command, name string, fn func(io.Reader) error) error {
	if name == "-" {
		return fn(cmd.InOrStdin())
	}
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	if err := fn(f); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func csvDelimiter(s string) (rune, error) {
	s = unescape(s)
	r, size := utf8.DecodeRuneInString(s)
	if s == "" || size != len(s) || r == '"' || r == '\n' || r == '\r' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDelimiter, s)
	}
	return r, nil
}

// unescape turns the escapes \t, \n and \\ typed on a command line into
// the characters they name.
func unescape(s string) string {
	return strings.NewReplacer(`\t`, "\t", `\n`, "\n", `\\`, `\`).Replace(s)
}

func writeText(w io.Writer, text string) error {
	if text == "" {
		return nil
	}
	_, err := fmt.Fprintln(w, text)
	return err
}
