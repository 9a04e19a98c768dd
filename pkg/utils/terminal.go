package utils

import (
	"os"

	"golang.org/x/term"
)

// TerminalWidth reports the column width of f. ok is false when f is not an
// interactive terminal or its size cannot be read.
func TerminalWidth(f *os.File) (columns int, ok bool) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0, false
	}

	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return 0, false
	}
	return width, true
}
