package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bjaus/colfmt"
	"github.com/bjaus/colfmt/internal/settings"
)

func newDemoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print the built-in demonstration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeDemo(cmd.OutOrStdout())
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v := settings.VersionInformation
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s (commit %s, built %s)\n",
				settings.BinaryName, v.BuildVersion, v.Commit, v.BuildTime)
			return err
		},
	}
}

type demoSection struct {
	title  string
	render func() string
}

var demoRows = [][]string{
	{"Name", "Age", "City"},
	{"Alice", "25", "New York"},
	{"Bob", "30", "San Francisco"},
	{"Charlie", "35", "Chicago"},
}

var demoSections = []demoSection{
	{"From rows", func() string {
		return colfmt.NewScreen().Render(colfmt.FromRows(demoRows, false, colfmt.AlignAuto))
	}},
	{"With headings", func() string {
		return colfmt.NewTable().Render(colfmt.FromRows(demoRows, true, colfmt.AlignAuto))
	}},
	{"Auto alignment", func() string {
		m := colfmt.FromRows([][]string{
			{"Product", "Price", "Quantity", "Code"},
			{"Widget", "12.99", "150", "W001"},
			{"Gadget", "5.25", "75", "G002"},
			{"Tool", "25.00", "200", "T003"},
		}, true, colfmt.AlignAuto)
		var sb strings.Builder
		sb.WriteString(colfmt.NewTable().Render(m))
		for _, c := range m.Columns() {
			fmt.Fprintf(&sb, "\n%s -> %s", c.Heading, c.Align)
		}
		return sb.String()
	}},
	{"Alignment override", func() string {
		m := colfmt.FromRows([][]string{
			{"Item", "Price", "Description"},
			{"Apple", "1.25", "Fresh red apples"},
			{"Banana", "0.75", "Ripe yellow bananas"},
			{"Orange", "1.50", "Sweet navel oranges"},
		}, true, colfmt.AlignAuto)
		m = m.WithAlignments([]colfmt.Alignment{colfmt.AlignCenter, colfmt.AlignRight, colfmt.AlignLeft})
		return colfmt.NewTable().Render(m)
	}},
	{"Custom spacer", func() string {
		t := colfmt.NewTable()
		t.Spacer = " | "
		return t.Render(colfmt.FromRows(demoRows, true, colfmt.AlignAuto))
	}},
	{"Shrunk to 24 columns", func() string {
		t := colfmt.NewTable()
		t.Width = 24
		return t.Render(colfmt.FromRows(demoRows, true, colfmt.AlignAuto))
	}},
	{"Markdown", func() string {
		return colfmt.Markdown{}.Render(colfmt.FromRows(demoRows, true, colfmt.AlignAuto))
	}},
	{"List to 20 columns", func() string {
		opts := colfmt.DefaultOptions()
		opts.Width = 20
		frame, err := colfmt.Columnize([]string{"apple", "banana", "cherry", "date", "elderberry"}, opts)
		if err != nil {
			return err.Error()
		}
		return frame.String()
	}},
}

func writeDemo(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%s Demo\n", settings.BinaryName); err != nil {
		return err
	}
	for _, s := range demoSections {
		if _, err := fmt.Fprintf(w, "\n=== %s ===\n%s\n", s.title, s.render()); err != nil {
			return err
		}
	}
	return nil
}
