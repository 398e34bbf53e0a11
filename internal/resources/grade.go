package resources

import "strings"

// Grade reports whether answer is correct for q. Multiple choice answers must
// match the correct option exactly. Short answers pass when they mention every
// keyword, ignoring case.
func Grade(q Question, answer string) bool {
	switch q.Kind {
	case KindMCQ:
		return answer == q.CorrectAnswer
	case KindShort:
		a := strings.ToLower(strings.TrimSpace(answer))
		if a == "" {
			return false
		}
		if len(q.Keywords) == 0 {
			return a == strings.ToLower(strings.TrimSpace(q.CorrectAnswer))
		}
		for _, kw := range q.Keywords {
			if !strings.Contains(a, strings.ToLower(kw)) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Quiz tracks a student's answers for one content payload.
type Quiz struct {
	Questions []Question
	Answers   map[string]string
	Checked   bool
}

// NewQuiz starts an unanswered quiz.
func NewQuiz(questions []Question) *Quiz {
	return &Quiz{Questions: questions, Answers: make(map[string]string)}
}

// Answer records an answer. Answers are locked once the quiz is checked.
func (q *Quiz) Answer(id, answer string) {
	if q.Checked {
		return
	}
	q.Answers[id] = answer
}

// Check locks the quiz and returns the number of correct answers.
func (q *Quiz) Check() int {
	q.Checked = true
	return q.Score()
}

// Score counts correct answers so far.
func (q *Quiz) Score() int {
	n := 0
	for _, question := range q.Questions {
		if Grade(question, q.Answers[question.ID]) {
			n++
		}
	}
	return n
}

// Result reports whether the question was answered correctly. The second
// value is false until the quiz has been checked.
func (q *Quiz) Result(id string) (correct bool, checked bool) {
	if !q.Checked {
		return false, false
	}
	for _, question := range q.Questions {
		if question.ID == id {
			return Grade(question, q.Answers[id]), true
		}
	}
	return false, true
}
