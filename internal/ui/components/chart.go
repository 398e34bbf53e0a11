package components

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/edusense/internal/ui/theme"
)

// Compress reduces values to at most width columns, keeping the maximum of
// each group so peaks survive.
func Compress(values []float64, width int) []float64 {
	if width <= 0 || len(values) <= width {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, width)
	for i := range out {
		lo := i * len(values) / width
		hi := (i + 1) * len(values) / width
		if hi <= lo {
			hi = lo + 1
		}
		m := values[lo]
		for _, v := range values[lo:hi] {
			m = max(m, v)
		}
		out[i] = m
	}
	return out
}

// Chart is a column chart of values in [0,100]. Each value is drawn
// ColumnWidth cells wide.
type Chart struct {
	Values      []float64
	Height      int
	ColumnWidth int
	// Cursor is the highlighted column, or -1 for none.
	Cursor int
	// Markers flags columns that get a marker under the axis.
	Markers map[int]bool
	ColorFor func(v float64) color.Color
}

// ColumnHeight returns how many rows value v fills.
func (c Chart) ColumnHeight(v float64) int {
	h := int(v*float64(c.Height)/100 + 0.5)
	return max(0, min(c.Height, h))
}

// View renders the chart followed by an axis row and a marker row.
func (c Chart) View() string {
	cw := max(1, c.ColumnWidth)
	colorFor := c.ColorFor
	if colorFor == nil {
		colorFor = func(float64) color.Color { return theme.Primary }
	}

	var b strings.Builder
	for row := c.Height; row >= 1; row-- {
		for i, v := range c.Values {
			cell := strings.Repeat(" ", cw)
			if c.ColumnHeight(v) >= row {
				cell = lipgloss.NewStyle().Foreground(colorFor(v)).Render(strings.Repeat("█", cw))
			}
			if i == c.Cursor && cell == strings.Repeat(" ", cw) {
				cell = lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("┊", cw))
			}
			b.WriteString(cell)
		}
		b.WriteString("\n")
	}

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", len(c.Values)*cw)))
	b.WriteString("\n")

	for i := range c.Values {
		switch {
		case i == c.Cursor:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(pad("▲", cw)))
		case c.Markers[i]:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(pad("◆", cw)))
		default:
			b.WriteString(strings.Repeat(" ", cw))
		}
	}
	return b.String()
}

func pad(s string, width int) string {
	if width <= 1 {
		return s
	}
	return s + strings.Repeat(" ", width-1)
}
