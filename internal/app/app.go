// Package app wires the EduSense views into the root Bubble Tea model.
package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/edusense/internal/config"
	"github.com/abhisek/edusense/internal/logger"
	"github.com/abhisek/edusense/internal/router"
	"github.com/abhisek/edusense/internal/screen"
	"github.com/abhisek/edusense/internal/screens/instructor"
	settingsscreen "github.com/abhisek/edusense/internal/screens/settings"
	"github.com/abhisek/edusense/internal/screens/student"
	"github.com/abhisek/edusense/internal/session"
	"github.com/abhisek/edusense/internal/settings"
	"github.com/abhisek/edusense/internal/ui/components"
	"github.com/abhisek/edusense/internal/ui/layout"
)

// View is one of the top-level dashboards.
type View int

const (
	ViewStudent View = iota
	ViewInstructor
	ViewSettings
)

// AllViews returns the views in tab order.
func AllViews() []View {
	return []View{ViewStudent, ViewInstructor, ViewSettings}
}

// Label returns the tab caption.
func (v View) Label() string {
	switch v {
	case ViewStudent:
		return "Student"
	case ViewInstructor:
		return "Instructor"
	case ViewSettings:
		return "Settings"
	default:
		return "Unknown"
	}
}

// viewForKey maps the number keys to views.
func viewForKey(k string) (View, bool) {
	switch k {
	case "1":
		return ViewStudent, true
	case "2":
		return ViewInstructor, true
	case "3":
		return ViewSettings, true
	}
	return 0, false
}

// Options configures the app.
type Options struct {
	Config  *config.Config
	Session *session.Session
}

// AppModel is the root Bubble Tea model. Each view keeps its own screen
// stack so switching views preserves their state.
type AppModel struct {
	routers  map[View]*router.Router
	view     View
	demo     bool
	settings *settings.Settings
	course   *settings.Course
	width    int
	height   int
}

// newAppModel creates the model with the student view active.
func newAppModel(opts Options) AppModel {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	values := cfg.Settings
	course := settings.DefaultCourse()

	stu := student.New(student.Options{
		Session:      opts.Session,
		Settings:     &values,
		Notify:       cfg.Notifications.Enabled,
		Proximity:    cfg.Notifications.ProximitySeconds,
		Threshold:    cfg.Notifications.Threshold,
		Step:         cfg.Demo.StepSeconds,
		TickInterval: cfg.Demo.TickInterval,
		Demo:         cfg.Demo.Enabled,
	})

	return AppModel{
		routers: map[View]*router.Router{
			ViewStudent:    router.New(stu),
			ViewInstructor: router.New(instructor.New(opts.Session)),
			ViewSettings:   router.New(settingsscreen.New(&values, &course, true)),
		},
		view:     ViewStudent,
		demo:     cfg.Demo.Enabled,
		settings: &values,
		course:   &course,
	}
}

func (m AppModel) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.routers))
	for _, v := range AllViews() {
		if active := m.routers[v].Active(); active != nil {
			cmds = append(cmds, active.Init())
		}
	}
	return tea.Batch(cmds...)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case router.PushScreenMsg, router.PopScreenMsg, router.ReplaceScreenMsg:
		return m, m.active().Update(msg)
	}

	// Timers and other async results go to every screen of every view,
	// covered ones included; screens drop messages that are not theirs.
	return m, m.broadcast(msg)
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	r := m.active()
	if c, ok := r.Active().(screen.CapturesInput); ok && c.CapturingInput() {
		return m, r.Update(msg)
	}

	if v, ok := viewForKey(msg.String()); ok {
		return m.switchView(v)
	}

	switch msg.String() {
	case "tab":
		views := AllViews()
		return m.switchView(views[(int(m.view)+1)%len(views)])
	case "d":
		m.demo = !m.demo
		logger.Info("demo mode %v", m.demo)
		cmds := make([]tea.Cmd, 0, len(m.routers))
		for _, v := range AllViews() {
			cmds = append(cmds, m.routers[v].Broadcast(screen.DemoMsg{Enabled: m.demo}))
		}
		return m, tea.Batch(cmds...)
	case "esc":
		if r.Depth() > 1 {
			return m, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}

	return m, r.Update(msg)
}

func (m AppModel) switchView(v View) (tea.Model, tea.Cmd) {
	if v == m.view {
		return m, nil
	}
	blur := m.active().Update(screen.FocusMsg{Focused: false})
	m.view = v
	focus := m.active().Update(screen.FocusMsg{Focused: true})
	logger.Debug("switched to %s view", v.Label())
	return m, tea.Batch(blur, focus)
}

func (m AppModel) broadcast(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.routers))
	for _, v := range AllViews() {
		cmds = append(cmds, m.routers[v].Broadcast(msg))
	}
	return tea.Batch(cmds...)
}

func (m AppModel) active() *router.Router {
	return m.routers[m.view]
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current window size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	r := m.active()
	labels := make([]string, 0, len(AllViews()))
	for _, view := range AllViews() {
		labels = append(labels, fmt.Sprintf("%d %s", int(view)+1, view.Label()))
	}
	title := components.Tabs(labels, int(m.view))
	if r.Depth() > 1 {
		title += "  ›  " + r.Active().Title()
	}

	header := layout.RenderHeader(title, layout.DemoBadge(m.demo), m.width)

	var footerHints []layout.KeyHint
	if hp, ok := r.Active().(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else {
		footerHints = []layout.KeyHint{
			{Key: "1-3", Description: "Views"},
			{Key: "D", Description: "Demo"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	content := r.View(m.width, layout.ContentHeight(m.height, header, footer))
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
