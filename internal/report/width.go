package report

import (
	"os"

	"golang.org/x/term"
)

const (
	defaultTermWidth = 80
	minBarWidth      = 10
	maxBarWidth      = 50
)

// TermWidth returns the width of stdout, or 80 when it is not a terminal.
func TermWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultTermWidth
	}
	return w
}

// BarWidth picks the heatmap bar column width for a terminal of the given
// width, leaving room for the other columns.
func BarWidth(termWidth int) int {
	available := termWidth - 50
	return max(minBarWidth, min(maxBarWidth, available))
}
