package student

import "github.com/abhisek/edusense/internal/resources"

// tickMsg advances playback. Ticks from an older generation are dropped.
type tickMsg struct {
	gen int
}

// toastExpiredMsg removes the toast with the given id.
type toastExpiredMsg struct {
	id int
}

// feedbackMsg carries the student's verdict from the assistant panel.
type feedbackMsg struct {
	feedback resources.Feedback
}
