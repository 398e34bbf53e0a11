package settings

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/edusense/internal/ui/theme"
)

const privacyNotice = "No video is ever recorded or transmitted. Only anonymized behavioral patterns are analyzed locally."

func (s *Screen) View(width, height int) string {
	lines := strings.Split(strings.TrimRight(s.menu.View(), "\n"), "\n")

	footer := []string{""}
	if s.adding {
		footer = append(footer, "  Tag: "+s.input.View())
	}
	footer = append(footer, lipgloss.NewStyle().Foreground(theme.TextDim).Width(max(width-4, 20)).Render("  🔒 "+privacyNotice))

	visible := max(height-len(footer)-1, 3)
	start := 0
	if s.menu.Selected >= visible {
		start = s.menu.Selected - visible + 1
	}
	end := min(len(lines), start+visible)

	return lipgloss.NewStyle().Padding(1, 2, 0).Render(
		strings.Join(lines[start:end], "\n") + "\n" + strings.Join(footer, "\n"),
	)
}
