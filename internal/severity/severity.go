// Package severity maps confusion values to the three display bands shared by
// the gauge, the timeline and both dashboards.
package severity

import (
	"image/color"

	"github.com/abhisek/edusense/internal/ui/theme"
)

// Band is a coarse confusion classification.
type Band int

const (
	BandClear Band = iota
	BandMild
	BandHigh
)

// Level thresholds for individual confusion readings.
const (
	MildThreshold = 30
	HighThreshold = 60
)

// Share thresholds for cohort percentages.
const (
	ShareMildAbove = 30
	ShareHighAbove = 50
)

// AllBands returns the bands from least to most confused.
func AllBands() []Band {
	return []Band{BandClear, BandMild, BandHigh}
}

// Classify maps a confusion level to a band: <30 clear, <60 mild, else high.
func Classify(level float64) Band {
	switch {
	case level < MildThreshold:
		return BandClear
	case level < HighThreshold:
		return BandMild
	default:
		return BandHigh
	}
}

// ClassifyShare maps a cohort percentage (heatmap bars, roster averages) to a
// band: >50 high, >30 mild, else clear.
func ClassifyShare(pct int) Band {
	switch {
	case pct > ShareHighAbove:
		return BandHigh
	case pct > ShareMildAbove:
		return BandMild
	default:
		return BandClear
	}
}

// Label returns the long description shown under the gauge.
func (b Band) Label() string {
	switch b {
	case BandClear:
		return "Clear Understanding"
	case BandMild:
		return "Mild Confusion"
	case BandHigh:
		return "High Confusion"
	default:
		return "Unknown"
	}
}

// Short returns the one-word legend label.
func (b Band) Short() string {
	switch b {
	case BandClear:
		return "Clear"
	case BandMild:
		return "Mild"
	case BandHigh:
		return "High"
	default:
		return "?"
	}
}

// Color returns the theme color for the band.
func (b Band) Color() color.Color {
	switch b {
	case BandClear:
		return theme.Success
	case BandMild:
		return theme.Warning
	case BandHigh:
		return theme.Error
	default:
		return theme.Text
	}
}

func (b Band) String() string {
	return b.Short()
}
