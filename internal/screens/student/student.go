// Package student implements the student dashboard: simulated lecture
// playback with a live confusion gauge, the session timeline and peak
// notifications that lead into the learning assistant.
package student

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/edusense/internal/logger"
	"github.com/abhisek/edusense/internal/playback"
	"github.com/abhisek/edusense/internal/resources"
	"github.com/abhisek/edusense/internal/router"
	"github.com/abhisek/edusense/internal/screen"
	"github.com/abhisek/edusense/internal/screens/assistant"
	"github.com/abhisek/edusense/internal/session"
	"github.com/abhisek/edusense/internal/settings"
	"github.com/abhisek/edusense/internal/signals"
	"github.com/abhisek/edusense/internal/ui/components"
	"github.com/abhisek/edusense/internal/ui/layout"
)

const (
	// SeekStep is how far ←/→ move playback.
	SeekStep = 60

	helpToastTTL     = 8 * time.Second
	feedbackToastTTL = 4 * time.Second
	maxToasts        = 2
)

// Options configures the dashboard.
type Options struct {
	Session  *session.Session
	Settings *settings.Settings
	// Notify is the configuration-level switch; the settings toggle must
	// also be on for notifications to fire.
	Notify       bool
	Proximity    int
	Threshold    float64
	Step         int
	TickInterval time.Duration
	Demo         bool
}

// toast is a visible notification. helpPeak is set for "Help Available"
// toasts, which can open the assistant.
type toast struct {
	components.Toast
	helpPeak *signals.Peak
}

// Student implements screen.Screen for the student dashboard.
type Student struct {
	sess     *session.Session
	settings *settings.Settings
	notify   bool
	interval time.Duration

	clock    playback.Clock
	notifier *playback.Notifier

	demo    bool
	focused bool
	gen     int

	// selected is the highlighted peak card, -1 for none.
	selected int
	toasts   []toast
	nextID   int
}

var _ screen.Screen = (*Student)(nil)
var _ screen.KeyHintProvider = (*Student)(nil)

// New creates the dashboard. The screen starts focused and playing.
func New(opts Options) *Student {
	n := playback.NewNotifier()
	if opts.Proximity > 0 {
		n.Proximity = opts.Proximity
	}
	if opts.Threshold > 0 {
		n.Threshold = opts.Threshold
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = playback.TickInterval
	}
	if opts.Settings == nil {
		def := settings.Defaults()
		opts.Settings = &def
	}
	return &Student{
		sess:     opts.Session,
		settings: opts.Settings,
		notify:   opts.Notify,
		interval: opts.TickInterval,
		clock:    playback.NewClock(opts.Step),
		notifier: n,
		demo:     opts.Demo,
		focused:  true,
		selected: -1,
	}
}

func (s *Student) Init() tea.Cmd {
	return s.reschedule()
}

func (s *Student) Title() string {
	return "Student Dashboard"
}

// Time returns the playback position in seconds.
func (s *Student) Time() int {
	return s.clock.Time
}

// Playing reports whether playback is running.
func (s *Student) Playing() bool {
	return s.clock.Playing
}

// PeaksDetected returns how many distinct peaks have notified.
func (s *Student) PeaksDetected() int {
	return s.notifier.Count()
}

// Current returns the timeline point at the playback position.
func (s *Student) Current() signals.DataPoint {
	return s.sess.PointAt(s.clock.Time)
}

func (s *Student) KeyHints() []layout.KeyHint {
	play := "Pause"
	if !s.clock.Playing {
		play = "Play"
	}
	hints := []layout.KeyHint{
		{Key: "Space", Description: play},
		{Key: "←→", Description: "Seek"},
		{Key: "[ ]", Description: "Peaks"},
		{Key: "Enter", Description: "Resources"},
	}
	if s.helpToast() != nil {
		hints = append(hints, layout.KeyHint{Key: "V", Description: "View help"})
	}
	return append(hints,
		layout.KeyHint{Key: "1-3", Description: "Views"},
		layout.KeyHint{Key: "Ctrl+C", Description: "Quit"},
	)
}

func (s *Student) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return s, s.handleTick(msg)

	case screen.FocusMsg:
		s.focused = msg.Focused
		return s, s.reschedule()

	case screen.DemoMsg:
		s.demo = msg.Enabled
		return s, s.reschedule()

	case toastExpiredMsg:
		s.removeToast(msg.id)
		return s, nil

	case feedbackMsg:
		return s, s.pushToast(toast{Toast: components.Toast{
			Title: resources.FeedbackTitle,
			Body:  msg.feedback.Message(),
		}}, feedbackToastTTL)

	case tea.KeyMsg:
		return s, s.handleKey(msg)
	}
	return s, nil
}

// ticking reports whether playback should advance on its own.
func (s *Student) ticking() bool {
	return s.demo && s.focused && s.clock.Playing
}

// reschedule starts a new tick generation, which orphans any pending tick,
// and schedules the first tick of it when playback should run.
func (s *Student) reschedule() tea.Cmd {
	s.gen++
	if !s.ticking() {
		return nil
	}
	return s.scheduleTick()
}

func (s *Student) scheduleTick() tea.Cmd {
	gen := s.gen
	return tea.Tick(s.interval, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

func (s *Student) handleTick(msg tickMsg) tea.Cmd {
	if msg.gen != s.gen || !s.ticking() {
		return nil
	}
	s.clock.Tick()
	return tea.Batch(s.scheduleTick(), s.checkNotification())
}

func (s *Student) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "space":
		s.clock.Toggle()
		logger.Debug("playback playing=%v at %s", s.clock.Playing, signals.FormatTimestamp(s.clock.Time))
		return s.reschedule()
	case "left":
		s.clock.Seek(s.clock.Time - SeekStep)
		return s.checkNotification()
	case "right":
		s.clock.Seek(s.clock.Time + SeekStep)
		return s.checkNotification()
	case "[":
		return s.selectPeak(-1)
	case "]":
		return s.selectPeak(1)
	case "enter":
		topic, at := s.assistantTarget()
		s.dismissHelp(at)
		return s.openAssistant(topic, at)
	case "v":
		if t := s.helpToast(); t != nil {
			p := *t.helpPeak
			s.selected = s.sess.PeakIndex(p.Timestamp)
			s.removeToast(t.ID)
			return s.openAssistant(p.Topic, p.Timestamp)
		}
	}
	return nil
}

// selectPeak moves the peak selection by delta, wrapping, and seeks to the
// newly selected peak.
func (s *Student) selectPeak(delta int) tea.Cmd {
	n := len(s.sess.Peaks)
	if n == 0 {
		return nil
	}
	if s.selected < 0 {
		if delta > 0 {
			s.selected = 0
		} else {
			s.selected = n - 1
		}
	} else {
		s.selected = (s.selected + delta + n) % n
	}
	s.clock.Seek(s.sess.Peaks[s.selected].Timestamp)
	return s.checkNotification()
}

// assistantTarget picks the topic and time the assistant opens on: the
// selected peak, a peak near the playback position, or the current topic.
func (s *Student) assistantTarget() (string, int) {
	if s.selected >= 0 {
		p := s.sess.Peaks[s.selected]
		return p.Topic, p.Timestamp
	}
	if p, ok := signals.PeakNear(s.sess.Peaks, s.clock.Time, signals.PeakSelectTolerance); ok {
		return p.Topic, p.Timestamp
	}
	return s.Current().Topic, s.clock.Time
}

func (s *Student) openAssistant(topic string, timestamp int) tea.Cmd {
	panel := assistant.New(assistant.Options{
		Topic:     topic,
		Timestamp: timestamp,
		Content:   s.sess.Content,
		OnFeedback: func(f resources.Feedback) tea.Cmd {
			return func() tea.Msg { return feedbackMsg{feedback: f} }
		},
	})
	return func() tea.Msg { return router.PushScreenMsg{Screen: panel} }
}

// checkNotification raises a "Help Available" toast when playback is near an
// unnotified peak and confusion is high enough.
func (s *Student) checkNotification() tea.Cmd {
	s.notifier.Enabled = s.notify && s.settings.Notifications
	cur := s.Current()
	p, ok := s.notifier.Check(s.clock.Time, cur.ConfusionLevel, s.sess.Peaks)
	if !ok {
		return nil
	}
	logger.Info("confusion peak %q at %s (level %.0f)", p.Topic, signals.FormatTimestamp(p.Timestamp), cur.ConfusionLevel)
	return s.pushToast(toast{
		Toast: components.Toast{
			Title:  "Help Available",
			Body:   fmt.Sprintf("We detected confusion with %q. Resources are ready!", p.Topic),
			Action: "[v] View",
		},
		helpPeak: &p,
	}, helpToastTTL)
}

func (s *Student) pushToast(t toast, ttl time.Duration) tea.Cmd {
	s.nextID++
	t.ID = s.nextID
	s.toasts = append(s.toasts, t)
	if len(s.toasts) > maxToasts {
		s.toasts = s.toasts[len(s.toasts)-maxToasts:]
	}
	id := t.ID
	return tea.Tick(ttl, func(time.Time) tea.Msg { return toastExpiredMsg{id: id} })
}

func (s *Student) removeToast(id int) {
	for i, t := range s.toasts {
		if t.ID == id {
			s.toasts = append(s.toasts[:i], s.toasts[i+1:]...)
			return
		}
	}
}

// dismissHelp removes the help toast for the peak at timestamp, which is
// answered once the assistant opens on it.
func (s *Student) dismissHelp(timestamp int) {
	for _, t := range s.toasts {
		if t.helpPeak != nil && t.helpPeak.Timestamp == timestamp {
			s.removeToast(t.ID)
			return
		}
	}
}

// helpToast returns the newest visible help toast.
func (s *Student) helpToast() *toast {
	for i := len(s.toasts) - 1; i >= 0; i-- {
		if s.toasts[i].helpPeak != nil {
			return &s.toasts[i]
		}
	}
	return nil
}
