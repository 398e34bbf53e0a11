package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/edusense/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// FocusMsg tells a screen whether its view is the one on display. Screens
// that run timers stop them when they lose focus.
type FocusMsg struct {
	Focused bool
}

// CapturesInput is an optional interface for screens that are editing text
// and need every key, including the global view shortcuts.
type CapturesInput interface {
	CapturingInput() bool
}

// DemoMsg announces a change of demo mode. Playback only advances on its
// own while demo mode is on.
type DemoMsg struct {
	Enabled bool
}
