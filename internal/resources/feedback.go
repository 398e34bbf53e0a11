package resources

// Feedback is the student's verdict on the assistant's material.
type Feedback string

const (
	FeedbackHelpful    Feedback = "helpful"
	FeedbackConfused   Feedback = "confused"
	FeedbackIrrelevant Feedback = "irrelevant"
)

// AllFeedback returns every feedback tag in display order.
func AllFeedback() []Feedback {
	return []Feedback{FeedbackHelpful, FeedbackConfused, FeedbackIrrelevant}
}

// ParseFeedback maps a tag back to its Feedback value.
func ParseFeedback(s string) (Feedback, bool) {
	for _, f := range AllFeedback() {
		if string(f) == s {
			return f, true
		}
	}
	return "", false
}

// Label returns the button text.
func (f Feedback) Label() string {
	switch f {
	case FeedbackHelpful:
		return "This helped"
	case FeedbackConfused:
		return "Still confused"
	case FeedbackIrrelevant:
		return "Not relevant"
	default:
		return string(f)
	}
}

// Key returns the shortcut that submits this feedback.
func (f Feedback) Key() string {
	switch f {
	case FeedbackHelpful:
		return "h"
	case FeedbackConfused:
		return "c"
	case FeedbackIrrelevant:
		return "i"
	default:
		return ""
	}
}

// Message is the toast shown after the feedback is recorded.
func (f Feedback) Message() string {
	switch f {
	case FeedbackHelpful:
		return "Great! We'll continue providing similar resources."
	case FeedbackConfused:
		return "We'll generate additional explanations for you."
	case FeedbackIrrelevant:
		return "We'll adjust our recommendations."
	default:
		return ""
	}
}

// FeedbackTitle heads every feedback toast.
const FeedbackTitle = "Thank you for your feedback!"
