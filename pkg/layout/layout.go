// Package layout arranges a sorted draw for printing.
//
// Without a known terminal width every number goes on its own line, which
// keeps output stable for pipes and scripts. With a width, numbers are packed
// into rows that fill roughly 60% of the terminal, capped at MaxPerLine.
package layout

import (
	"math"
	"strings"
)

const (
	// MaxPerLine caps row density on very wide terminals.
	MaxPerLine = 25

	fillRatio = 0.6
)

// ItemsPerLine returns how many digits-wide numbers go on one row of a
// terminal columns wide. The result is always in [1, MaxPerLine]; an unknown
// width or a negative digit count yields 1.
func ItemsPerLine(columns, digits int) int {
	if columns <= 0 || digits < 0 {
		return 1
	}
	fit := float64(columns) / float64(digits+1)
	n := int(math.Ceil(fit * fillRatio))
	return min(max(n, 1), MaxPerLine)
}

// Rows splits numbers into consecutive rows of at most perLine entries.
func Rows(numbers []string, perLine int) [][]string {
	perLine = max(perLine, 1)

	rows := make([][]string, 0, (len(numbers)+perLine-1)/perLine)
	for start := 0; start < len(numbers); start += perLine {
		end := min(start+perLine, len(numbers))
		rows = append(rows, numbers[start:end])
	}
	return rows
}

// Format renders numbers for output. A columns value of zero or less means
// the terminal width is unknown and yields one number per line. The result
// has no trailing newline.
func Format(numbers []string, digits, columns int) string {
	if columns <= 0 {
		return strings.Join(numbers, "\n")
	}

	var b strings.Builder
	for i, row := range Rows(numbers, ItemsPerLine(columns, digits)) {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(strings.Join(row, " "))
	}
	return b.String()
}
