package display

import (
	"os"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// DefaultWidth is used when the output is not a terminal.
const DefaultWidth = 80

// TerminalWidth returns the column count of f, or DefaultWidth when f is not
// a terminal.
func TerminalWidth(f *os.File) int {
	if f == nil {
		return DefaultWidth
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return DefaultWidth
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return DefaultWidth
	}
	return w
}

// Wrap breaks text into lines no wider than width columns. Each input line is
// wrapped on its own and its continuation lines are indented to match its
// leading spaces.
func Wrap(text string, width int) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		indent := len(line) - len(strings.TrimLeft(line, " "))
		out = append(out, WrapLine(line, width, indent)...)
	}
	return strings.Join(out, "\n")
}

// WrapLine breaks a single line at spaces so that no piece is wider than
// width. Continuation lines start with indent spaces. Words longer than a
// whole line are split.
func WrapLine(line string, width, indent int) []string {
	if width <= indent+1 || runewidth.StringWidth(line) <= width {
		return []string{line}
	}

	pad := strings.Repeat(" ", indent)
	var out []string
	for runewidth.StringWidth(line) > width {
		cut := breakPoint(line, width, indent)
		out = append(out, strings.TrimRight(line[:cut], " "))

		rest := strings.TrimLeft(line[cut:], " ")
		if rest == "" {
			return out
		}
		line = pad + rest
	}
	return append(out, line)
}

// breakPoint returns the byte offset at which line is split: the last space
// that keeps the head within width, or the last rune that fits.
func breakPoint(line string, width, indent int) int {
	cols, space, fit := 0, -1, 0
	for i, r := range line {
		rw := runewidth.RuneWidth(r)
		if cols+rw > width {
			break
		}
		cols += rw
		if r == ' ' && i > indent {
			space = i
		}
		fit = i + utf8.RuneLen(r)
	}
	if space > 0 {
		return space
	}
	if fit <= indent {
		_, size := utf8.DecodeRuneInString(line[indent:])
		return indent + size
	}
	return fit
}
