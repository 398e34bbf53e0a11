package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/edusense/internal/ui/theme"
)

// Toast is a transient notification.
type Toast struct {
	ID     int
	Title  string
	Body   string
	Action string
}

// View renders the toast at most width cells wide.
func (t Toast) View(width int) string {
	content := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(t.Title)
	if t.Body != "" {
		content += "\n" + lipgloss.NewStyle().Foreground(theme.Text).Render(t.Body)
	}
	if t.Action != "" {
		content += "\n" + theme.Hint.Render(t.Action)
	}
	w := min(width, 60)
	return theme.Toast.Width(max(w-2, 10)).Render(content)
}
