package cli

import (
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/bjaus/colfmt"
)

// Overridable in tests.
var (
	termIsTerminal = term.IsTerminal
	termGetSize    = term.GetSize
)

// terminalInfo describes the output stream, resolved once per command.
type terminalInfo struct {
	env colfmt.Env
	tty bool
}

// detectTerminal inspects out. The width comes from the terminal when out
// is one, else from $COLUMNS; zero means unknown.
func detectTerminal(out io.Writer) terminalInfo {
	var info terminalInfo
	if f, ok := out.(*os.File); ok && termIsTerminal(int(f.Fd())) {
		info.tty = true
		if w, _, err := termGetSize(int(f.Fd())); err == nil && w > 0 {
			info.env.TerminalWidth = w
		}
	}
	if info.env.TerminalWidth == 0 {
		if n, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && n > 0 {
			info.env.TerminalWidth = n
		}
	}
	return info
}

// headingStyle returns the style applied to table headings, or nil when
// color is off or out is not a terminal.
func headingStyle(color bool, info terminalInfo) func(string) string {
	if !color || !info.tty {
		return nil
	}
	style := lipgloss.NewStyle().Bold(true)
	return func(s string) string { return style.Render(s) }
}
