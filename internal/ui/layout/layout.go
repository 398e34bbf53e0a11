package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/edusense/internal/ui/theme"
)

// The dashboard needs room for the timeline chart and five peak cards.
const (
	MinWidth  = 80
	MinHeight = 30
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// ContentHeight returns the rows left for screen content once the rendered
// header and footer are placed.
func ContentHeight(totalHeight int, header, footer string) int {
	return max(0, totalHeight-lipgloss.Height(header)-lipgloss.Height(footer))
}

// RenderMinSizeMessage renders the "terminal too small" message.
func RenderMinSizeMessage(width, height int) string {
	msg := lipgloss.NewStyle().Foreground(theme.Text).Align(lipgloss.Center).Render(fmt.Sprintf(
		"EduSense needs a larger terminal\n\nMinimum %d x %d, current %d x %d",
		MinWidth, MinHeight, width, height,
	))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}

// RenderHeader renders the application header bar: the product name and
// title on the left, status (the demo badge) on the right.
func RenderHeader(title, status string, width int) string {
	brand := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("◉ EduSense")

	left := brand + "   " + lipgloss.NewStyle().Foreground(theme.Text).Render(title)

	// Inner width excludes the border and the one-cell padding on each side.
	inner := max(0, width-4)
	gap := max(1, inner-lipgloss.Width(left)-lipgloss.Width(status))

	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(left + strings.Repeat(" ", gap) + status)
}

// DemoBadge renders the header badge for demo or live mode.
func DemoBadge(demo bool) string {
	if demo {
		return theme.Badge.Render("DEMO")
	}
	return theme.BadgeMuted.Render("LIVE")
}

var (
	keyStyle  = lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
)

// RenderFooter renders the footer with key hints.
func RenderFooter(hints []KeyHint, width int) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, keyStyle.Render(h.Key)+" "+descStyle.Render(h.Description))
	}

	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(strings.Join(parts, "  ·  "))
}

// RenderFrame stacks header, content and footer, padding the content to fill
// the remaining height.
func RenderFrame(header, content, footer string, width, height int) string {
	body := lipgloss.NewStyle().
		Width(width).
		Height(ContentHeight(height, header, footer)).
		MaxHeight(ContentHeight(height, header, footer)).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
