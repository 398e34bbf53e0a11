package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/edusense/internal/ui/theme"
)

// MultiChoice is a multiple-choice selector. Choosing an option records it;
// correctness is shown only after Reveal.
type MultiChoice struct {
	Question     string
	Options      []string
	CorrectIndex int
	Selected     int
	ChosenIndex  int
	Revealed     bool
}

// NewMultiChoice creates a new multiple-choice component.
func NewMultiChoice(question string, options []string, correctIndex int) MultiChoice {
	return MultiChoice{
		Question:     question,
		Options:      options,
		CorrectIndex: correctIndex,
		ChosenIndex:  -1,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Revealed {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter", "space":
		m.ChosenIndex = m.Selected
	}

	return m, nil
}

// Reveal locks the component and marks the correct option.
func (m *MultiChoice) Reveal() {
	m.Revealed = true
}

// Answer returns the chosen option text, or "" when nothing is chosen.
func (m MultiChoice) Answer() string {
	if m.ChosenIndex < 0 || m.ChosenIndex >= len(m.Options) {
		return ""
	}
	return m.Options[m.ChosenIndex]
}

// View renders the multiple-choice component. focused controls whether the
// cursor is drawn.
func (m MultiChoice) View(focused bool) string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(m.Question) + "\n"

	for i, opt := range m.Options {
		prefix := "  "
		if focused && i == m.Selected && !m.Revealed {
			prefix = "▸ "
		}
		mark := "( )"
		if i == m.ChosenIndex {
			mark = "(•)"
		}

		line := fmt.Sprintf("%s%s %c) %s", prefix, mark, 'A'+rune(i), opt)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case m.Revealed && i == m.CorrectIndex:
			style = theme.Correct
			line += "  ✓"
		case m.Revealed && i == m.ChosenIndex:
			style = theme.Incorrect
		case m.Revealed:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == m.ChosenIndex:
			style = theme.Selected
		case focused && i == m.Selected:
			style = lipgloss.NewStyle().Foreground(theme.Primary)
		}
		s += style.Render(line) + "\n"
	}

	return s
}

// IsCorrect returns true if the chosen option is the correct one.
func (m MultiChoice) IsCorrect() bool {
	return m.ChosenIndex >= 0 && m.ChosenIndex == m.CorrectIndex
}
