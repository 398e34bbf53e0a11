package assistant

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/edusense/internal/resources"
	"github.com/abhisek/edusense/internal/router"
)

func key(s string) tea.KeyPressMsg {
	switch s {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

func typeText(a *Assistant, s string) {
	for _, r := range s {
		if r == ' ' {
			a.Update(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
			continue
		}
		a.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func loaded(t *testing.T) *Assistant {
	t.Helper()
	a := New(Options{Topic: "Backpropagation Algorithm", Timestamp: 350})
	a.Update(loadedMsg{id: a.id})
	if a.Loading() {
		t.Fatal("expected loading to finish")
	}
	return a
}

func TestLoadingPhase(t *testing.T) {
	a := New(Options{Topic: "Activation Functions", Timestamp: 1550})
	if cmd := a.Init(); cmd == nil {
		t.Fatal("expected Init to schedule the loading timer")
	}
	if !a.Loading() {
		t.Fatal("expected panel to start loading")
	}
	if !strings.Contains(a.View(100, 30), "Generating personalized resources") {
		t.Error("expected loading message in view")
	}

	a.Update(loadedMsg{id: a.id + 1000})
	if !a.Loading() {
		t.Error("expected a stale loaded message to be ignored")
	}

	// Tabs do not move while loading.
	a.Update(key("right"))
	a.Update(loadedMsg{id: a.id})
	if a.ActiveTab() != TabExplanation {
		t.Errorf("expected explanation tab, got %v", a.ActiveTab())
	}
}

func TestTabSwitching(t *testing.T) {
	a := loaded(t)

	a.Update(key("right"))
	if a.ActiveTab() != TabPractice {
		t.Errorf("expected practice, got %s", a.ActiveTab().Label())
	}
	a.Update(key("left"))
	a.Update(key("left"))
	if a.ActiveTab() != TabResources {
		t.Errorf("expected wrap to resources, got %s", a.ActiveTab().Label())
	}
	if !strings.Contains(a.View(100, 40), "match") {
		t.Error("expected resources tab to show relevance")
	}
}

func TestCodeTabRun(t *testing.T) {
	a := loaded(t)
	a.Update(key("right"))
	a.Update(key("right"))
	if a.ActiveTab() != TabCode {
		t.Fatalf("expected code tab, got %s", a.ActiveTab().Label())
	}
	if strings.Contains(a.View(100, 40), "Predictions") {
		t.Error("expected output hidden before running")
	}
	a.Update(key("r"))
	if !strings.Contains(a.View(100, 40), "Predictions") {
		t.Error("expected output after running")
	}
}

func TestQuizFlow(t *testing.T) {
	a := loaded(t)
	a.Update(key("right"))

	// Question 1: pick the correct option.
	q1 := a.items[0]
	correct := indexOf(q1.question.Options, q1.question.CorrectAnswer)
	for i := 0; i < correct; i++ {
		a.Update(key("down"))
	}
	a.Update(key("enter"))
	if a.quiz.Answers[q1.question.ID] != q1.question.CorrectAnswer {
		t.Fatalf("expected answer %q recorded, got %q", q1.question.CorrectAnswer, a.quiz.Answers[q1.question.ID])
	}

	// Move to the short answer question and type.
	shortIdx := -1
	for i, item := range a.items {
		if item.question.Kind == resources.KindShort {
			shortIdx = i
		}
	}
	if shortIdx < 0 {
		t.Fatal("expected a short answer question")
	}
	for a.focus < shortIdx {
		a.Update(key("]"))
	}
	a.Update(key("enter"))
	if !a.CapturingInput() {
		t.Fatal("expected typing mode")
	}
	typeText(a, "the gradient of each weight")
	a.Update(key("enter"))
	if a.CapturingInput() {
		t.Fatal("expected typing to stop on enter")
	}

	// Check answers.
	for a.focus < len(a.items) {
		a.Update(key("]"))
	}
	a.Update(key("enter"))
	if !a.quiz.Checked {
		t.Fatal("expected quiz checked")
	}
	if ok, checked := a.quiz.Result(q1.question.ID); !ok || !checked {
		t.Error("expected question 1 correct")
	}
	if ok, _ := a.quiz.Result(a.items[shortIdx].question.ID); !ok {
		t.Error("expected short answer with keywords to be correct")
	}
	if !strings.Contains(a.View(100, 60), "Great attempt!") {
		t.Error("expected result message")
	}
}

func TestFeedbackClosesPanel(t *testing.T) {
	var got resources.Feedback
	a := New(Options{
		Topic: "Loss Functions",
		OnFeedback: func(f resources.Feedback) tea.Cmd {
			got = f
			return nil
		},
	})

	_, cmd := a.Update(key("c"))
	if cmd == nil {
		t.Fatal("expected a close command")
	}
	if got != resources.FeedbackConfused {
		t.Errorf("expected confused feedback, got %q", got)
	}
}

func TestFeedbackButtons(t *testing.T) {
	a := loaded(t)
	if _, cmd := a.Update(key("x")); cmd != nil {
		t.Error("expected unbound key to do nothing")
	}

	out := a.View(100, 40)
	for _, f := range resources.AllFeedback() {
		if !strings.Contains(out, "["+f.Key()+"] "+f.Label()) {
			t.Errorf("expected feedback button for %s", f)
		}
	}

	_, cmd := a.Update(key("h"))
	if cmd == nil {
		t.Fatal("expected helpful to close the panel")
	}
}

func TestEscCloses(t *testing.T) {
	a := loaded(t)
	_, cmd := a.Update(key("esc"))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}
