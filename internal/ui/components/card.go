package components

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/edusense/internal/ui/theme"
)

// Card wraps body in a rounded border with an optional title line. The
// border is highlighted when focused.
func Card(title, body string, width int, focused bool) string {
	style := theme.Card
	if focused {
		style = theme.CardSelected
	}
	content := body
	if title != "" {
		content = theme.Title.Render(title) + "\n" + body
	}
	return style.Width(max(width-2, 4)).Render(content)
}

// StatCard renders a small labelled metric.
func StatCard(label, value, note string, width int) string {
	body := theme.Subtitle.Render(label) + "\n" +
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(value)
	if note != "" {
		body += "\n" + theme.Hint.Render(note)
	}
	return theme.Card.Width(max(width-2, 4)).Render(body)
}

// Dot renders a coloured status dot.
func Dot(c color.Color) string {
	return lipgloss.NewStyle().Foreground(c).Render("●")
}
