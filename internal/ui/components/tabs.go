package components

import (
	"strings"

	"github.com/abhisek/edusense/internal/ui/theme"
)

// Tabs renders a tab strip with the active tab highlighted.
func Tabs(labels []string, active int) string {
	parts := make([]string, len(labels))
	for i, l := range labels {
		if i == active {
			parts[i] = theme.TabActive.Render(l)
		} else {
			parts[i] = theme.TabInactive.Render(l)
		}
	}
	return strings.Join(parts, "  │  ")
}
