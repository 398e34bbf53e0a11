// Package report renders generated lecture data as terminal tables for the
// CLI commands.
package report

import (
	"github.com/fatih/color"

	"github.com/abhisek/edusense/internal/severity"
)

// Color variables for console output.
var (
	HighColor  = color.New(color.FgRed, color.Bold)
	MildColor  = color.New(color.FgYellow)
	ClearColor = color.New(color.FgGreen)
)

func bandColor(b severity.Band) *color.Color {
	switch b {
	case severity.BandHigh:
		return HighColor
	case severity.BandMild:
		return MildColor
	default:
		return ClearColor
	}
}

// LevelLabel returns the coloured short label for a confusion level.
func LevelLabel(level float64) string {
	b := severity.Classify(level)
	return bandColor(b).Sprint(b.Short())
}

// ShareLabel returns the coloured short label for a cohort percentage.
func ShareLabel(pct int) string {
	b := severity.ClassifyShare(pct)
	return bandColor(b).Sprint(b.Short())
}
