package termui

import (
	"os"
	"strconv"
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/term"
)

const ellipsis = "…"

// DefaultWidth is used when no terminal width can be detected.
const DefaultWidth = 80

// Wrap word-wraps text to width columns and indents every line by pad
// spaces. ANSI sequences do not count towards the width.
func Wrap(text string, width int, pad uint) string {
	limit := width - int(pad)
	if limit < 20 {
		limit = 20
	}
	wrapped := wordwrap.String(text, limit)
	if pad == 0 {
		return wrapped
	}
	return indent.String(wrapped, pad)
}

// Truncate shortens text to at most limit printable columns, ending in an
// ellipsis when cut. ANSI sequences are kept intact and wide runes count
// double.
func Truncate(text string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if ansi.PrintableRuneWidth(text) <= limit {
		return text
	}
	return truncate.StringWithTail(text, uint(limit), ellipsis)
}

// Pad right-pads text with spaces to width printable columns.
func Pad(text string, width int) string {
	n := ansi.PrintableRuneWidth(text)
	if n >= width {
		return text
	}
	return text + strings.Repeat(" ", width-n)
}

// TerminalWidth reports the width of f when it is a terminal, then falls
// back to $COLUMNS and finally to fallback.
func TerminalWidth(f *os.File, fallback int) int {
	if f != nil {
		fd := int(f.Fd())
		if term.IsTerminal(fd) {
			if w, _, err := term.GetSize(fd); err == nil && w > 0 {
				return w
			}
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
