// Package assistant implements the adaptive learning panel opened from a
// confusion peak: explanation, practice quiz, code example and resources.
package assistant

import (
	"sync/atomic"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/edusense/internal/logger"
	"github.com/abhisek/edusense/internal/resources"
	"github.com/abhisek/edusense/internal/router"
	"github.com/abhisek/edusense/internal/screen"
	"github.com/abhisek/edusense/internal/ui/components"
	"github.com/abhisek/edusense/internal/ui/layout"
)

// LoadingDelay is how long the panel pretends to generate resources.
const LoadingDelay = 1500 * time.Millisecond

// Tab is a content tab of the panel.
type Tab int

const (
	TabExplanation Tab = iota
	TabPractice
	TabCode
	TabResources
)

// AllTabs returns the tabs in display order.
func AllTabs() []Tab {
	return []Tab{TabExplanation, TabPractice, TabCode, TabResources}
}

// Label returns the tab title.
func (t Tab) Label() string {
	switch t {
	case TabExplanation:
		return "Explanation"
	case TabPractice:
		return "Practice"
	case TabCode:
		return "Code"
	case TabResources:
		return "Resources"
	default:
		return "Unknown"
	}
}

var lastID atomic.Int64

// loadedMsg ends the loading phase of the panel with the matching id.
type loadedMsg struct {
	id int64
}

// Options configures the panel.
type Options struct {
	Topic     string
	Timestamp int
	Content   *resources.Content
	// OnFeedback runs after the panel closes with the student's feedback.
	OnFeedback func(resources.Feedback) tea.Cmd
}

// quizItem pairs a question with the widget that collects its answer.
type quizItem struct {
	question resources.Question
	choice   components.MultiChoice
	input    components.TextInput
}

// Assistant implements screen.Screen for the learning panel.
type Assistant struct {
	id      int64
	opts    Options
	loading bool
	spin    spinner.Model
	tab     Tab

	quiz   *resources.Quiz
	items  []quizItem
	focus  int // index into items; len(items) is the check button
	typing bool

	codeRan bool
	scroll  int

	// feedback holds one button per feedback key; pressing one closes the
	// panel.
	feedback []components.Button
}

var _ screen.Screen = (*Assistant)(nil)
var _ screen.KeyHintProvider = (*Assistant)(nil)
var _ screen.CapturesInput = (*Assistant)(nil)

// New creates the panel. A nil content uses the built-in material.
func New(opts Options) *Assistant {
	if opts.Content == nil {
		opts.Content = resources.Builtin()
	}
	a := &Assistant{
		id:      lastID.Add(1),
		opts:    opts,
		loading: true,
		spin:    spinner.New(spinner.WithSpinner(spinner.Dot)),
		quiz:    resources.NewQuiz(opts.Content.Questions),
	}
	for _, f := range resources.AllFeedback() {
		a.feedback = append(a.feedback, components.NewButton(f.Key(), f.Label(), func() tea.Cmd {
			return a.sendFeedback(f)
		}))
	}
	for _, q := range opts.Content.Questions {
		item := quizItem{question: q}
		switch q.Kind {
		case resources.KindMCQ:
			item.choice = components.NewMultiChoice(q.Prompt, q.Options, indexOf(q.Options, q.CorrectAnswer))
		case resources.KindShort:
			item.input = components.NewTextInput("Type your answer...", 200)
		}
		a.items = append(a.items, item)
	}
	return a
}

func (a *Assistant) Init() tea.Cmd {
	id := a.id
	logger.Debug("assistant opened for %q at %ds", a.opts.Topic, a.opts.Timestamp)
	return tea.Batch(
		a.spin.Tick,
		tea.Tick(LoadingDelay, func(time.Time) tea.Msg { return loadedMsg{id: id} }),
	)
}

func (a *Assistant) Title() string {
	return "Adaptive Learning Assistant"
}

// Loading reports whether the panel is still in its loading phase.
func (a *Assistant) Loading() bool {
	return a.loading
}

// ActiveTab returns the selected tab.
func (a *Assistant) ActiveTab() Tab {
	return a.tab
}

// CapturingInput reports whether a short answer is being typed.
func (a *Assistant) CapturingInput() bool {
	return a.typing
}

func (a *Assistant) KeyHints() []layout.KeyHint {
	if a.loading {
		return []layout.KeyHint{{Key: "Esc", Description: "Close"}}
	}
	if a.typing {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Done"},
			{Key: "Esc", Description: "Done"},
		}
	}
	hints := []layout.KeyHint{{Key: "←→", Description: "Tab"}}
	switch a.tab {
	case TabPractice:
		hints = append(hints,
			layout.KeyHint{Key: "[ ]", Description: "Question"},
			layout.KeyHint{Key: "Enter", Description: "Select"},
		)
	case TabExplanation:
		hints = append(hints, layout.KeyHint{Key: "↑↓", Description: "Scroll"})
	case TabCode:
		hints = append(hints, layout.KeyHint{Key: "R", Description: "Run code"})
	}
	for _, f := range resources.AllFeedback() {
		hints = append(hints, layout.KeyHint{Key: f.Key(), Description: f.Label()})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Close"})
}

func (a *Assistant) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		if msg.id == a.id {
			a.loading = false
		}
		return a, nil

	case spinner.TickMsg:
		if !a.loading {
			return a, nil
		}
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	if a.typing {
		return a, a.updateInput(msg)
	}
	return a, nil
}

func (a *Assistant) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if a.typing {
		switch msg.String() {
		case "enter", "esc":
			a.stopTyping()
			return a, nil
		}
		return a, a.updateInput(msg)
	}

	if msg.String() == "esc" {
		return a, a.close()
	}
	for i := range a.feedback {
		var cmd tea.Cmd
		if a.feedback[i], cmd = a.feedback[i].Update(msg); cmd != nil {
			return a, cmd
		}
	}
	if a.loading {
		return a, nil
	}

	switch msg.String() {
	case "left":
		a.switchTab(-1)
		return a, nil
	case "right":
		a.switchTab(1)
		return a, nil
	}

	switch a.tab {
	case TabExplanation:
		switch msg.String() {
		case "up", "k":
			a.scroll = max(0, a.scroll-1)
		case "down", "j":
			a.scroll = min(a.scroll+1, max(0, len(a.opts.Content.ExplanationLines())-1))
		}
	case TabPractice:
		return a, a.handlePracticeKey(msg)
	case TabCode:
		if msg.String() == "r" {
			a.codeRan = true
		}
	case TabResources:
	}
	return a, nil
}

func (a *Assistant) handlePracticeKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "[":
		a.focus = max(0, a.focus-1)
		return nil
	case "]":
		a.focus = min(len(a.items), a.focus+1)
		return nil
	}

	if a.focus == len(a.items) {
		if msg.String() == "enter" || msg.String() == "space" {
			a.checkAnswers()
		}
		return nil
	}

	item := &a.items[a.focus]
	switch item.question.Kind {
	case resources.KindMCQ:
		var cmd tea.Cmd
		item.choice, cmd = item.choice.Update(msg)
		a.quiz.Answer(item.question.ID, item.choice.Answer())
		return cmd
	case resources.KindShort:
		if msg.String() == "enter" && !a.quiz.Checked {
			a.typing = true
			return item.input.Focus()
		}
	}
	return nil
}

func (a *Assistant) updateInput(msg tea.Msg) tea.Cmd {
	if a.focus >= len(a.items) {
		return nil
	}
	item := &a.items[a.focus]
	var cmd tea.Cmd
	item.input, cmd = item.input.Update(msg)
	a.quiz.Answer(item.question.ID, item.input.Value())
	return cmd
}

func (a *Assistant) stopTyping() {
	a.typing = false
	if a.focus < len(a.items) {
		a.items[a.focus].input.Blur()
	}
}

func (a *Assistant) switchTab(delta int) {
	tabs := AllTabs()
	a.tab = tabs[(int(a.tab)+delta+len(tabs))%len(tabs)]
}

// checkAnswers grades the quiz and reveals the results. Answers are locked
// afterwards.
func (a *Assistant) checkAnswers() {
	if a.quiz.Checked {
		return
	}
	score := a.quiz.Check()
	for i := range a.items {
		item := &a.items[i]
		switch item.question.Kind {
		case resources.KindMCQ:
			item.choice.Reveal()
		case resources.KindShort:
			correct, _ := a.quiz.Result(item.question.ID)
			item.input.Submit(correct)
		}
	}
	logger.Info("quiz checked: %d/%d correct", score, len(a.items))
}

func (a *Assistant) sendFeedback(f resources.Feedback) tea.Cmd {
	logger.Info("assistant feedback %s for %q", f, a.opts.Topic)
	if a.opts.OnFeedback == nil {
		return a.close()
	}
	return tea.Sequence(a.close(), a.opts.OnFeedback(f))
}

func (a *Assistant) close() tea.Cmd {
	return func() tea.Msg { return router.PopScreenMsg{} }
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}
