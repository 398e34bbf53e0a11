// Package settings implements the privacy, detection and course
// configuration screen.
package settings

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/edusense/internal/logger"
	"github.com/abhisek/edusense/internal/screen"
	cfg "github.com/abhisek/edusense/internal/settings"
	"github.com/abhisek/edusense/internal/ui/components"
	"github.com/abhisek/edusense/internal/ui/layout"
	"github.com/abhisek/edusense/internal/ui/theme"
)

type rowKind int

const (
	rowHeading rowKind = iota
	rowToggle
	rowSensitivity
	rowFile
	rowTag
	rowAddTag
)

// row is one menu line. field is set for toggles, index for files and tags.
type row struct {
	kind  rowKind
	label string
	field cfg.Field
	index int
}

// Screen implements screen.Screen for the settings view.
type Screen struct {
	values     *cfg.Settings
	course     *cfg.Course
	instructor bool

	rows   []row
	menu   components.Menu
	input  components.TextInput
	adding bool
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.CapturesInput = (*Screen)(nil)

// New creates the settings screen. values and course are shared with the
// rest of the app and edited in place. Course configuration is shown only
// when instructor is true.
func New(values *cfg.Settings, course *cfg.Course, instructor bool) *Screen {
	s := &Screen{
		values:     values,
		course:     course,
		instructor: instructor,
		input:      components.NewTextInput("New topic tag...", 40),
	}
	s.rebuild(-1)
	return s
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Settings"
}

// CapturingInput reports whether a tag is being typed.
func (s *Screen) CapturingInput() bool {
	return s.adding
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.adding {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Add"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Toggle"},
	}
	switch s.current().kind {
	case rowSensitivity:
		hints = append(hints, layout.KeyHint{Key: "←→", Description: "Adjust"})
	case rowFile, rowTag:
		hints = append(hints, layout.KeyHint{Key: "X", Description: "Remove"})
	}
	return append(hints,
		layout.KeyHint{Key: "1-3", Description: "Views"},
		layout.KeyHint{Key: "Ctrl+C", Description: "Quit"},
	)
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.adding {
		return s, s.updateAdding(msg)
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	cur := s.current()
	switch kmsg.String() {
	case "left", "-":
		if cur.kind == rowSensitivity {
			s.values.AdjustSensitivity(-cfg.SensitivityStep)
			s.rebuild(s.menu.Selected)
			return s, nil
		}
	case "right", "+", "=":
		if cur.kind == rowSensitivity {
			s.values.AdjustSensitivity(cfg.SensitivityStep)
			s.rebuild(s.menu.Selected)
			return s, nil
		}
	case "x", "delete", "backspace":
		if cur.kind == rowFile || cur.kind == rowTag {
			s.remove(cur)
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	// Actions edit the shared values; refresh the labels they feed.
	s.rebuild(s.menu.Selected)
	return s, cmd
}

func (s *Screen) updateAdding(msg tea.Msg) tea.Cmd {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter":
			if s.course.AddTag(s.input.Value()) {
				logger.Info("added topic tag %q", strings.TrimSpace(s.input.Value()))
			}
			s.stopAdding()
			return nil
		case "esc":
			s.stopAdding()
			return nil
		}
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

func (s *Screen) stopAdding() {
	s.adding = false
	s.input.Reset()
	s.input.Blur()
	s.rebuild(s.menu.Selected)
}

func (s *Screen) remove(r row) {
	switch r.kind {
	case rowFile:
		s.course.RemoveFile(r.index)
	case rowTag:
		s.course.RemoveTag(r.index)
	}
	s.rebuild(s.menu.Selected)
}

func (s *Screen) current() row {
	if s.menu.Selected >= 0 && s.menu.Selected < len(s.rows) {
		return s.rows[s.menu.Selected]
	}
	return row{kind: rowHeading}
}

// rebuild regenerates the rows from the current values and restores the
// cursor to selected, or the nearest selectable row.
func (s *Screen) rebuild(selected int) {
	s.rows = s.buildRows()
	items := make([]components.MenuItem, len(s.rows))
	for i, r := range s.rows {
		items[i] = s.menuItem(r)
	}
	s.menu = components.NewMenu(items)
	if selected < 0 {
		return
	}
	selected = min(selected, len(items)-1)
	for i := selected; i >= 0; i-- {
		if !items[i].Disabled {
			s.menu.Selected = i
			return
		}
	}
}

func (s *Screen) buildRows() []row {
	rows := []row{
		{kind: rowHeading, label: "Privacy Controls"},
		{kind: rowToggle, field: cfg.FieldIndividualMode},
		{kind: rowToggle, field: cfg.FieldWebcam},
		{kind: rowToggle, field: cfg.FieldDataSharing},
		{kind: rowHeading, label: "Detection Settings"},
		{kind: rowSensitivity},
		{kind: rowToggle, field: cfg.FieldFacialExpression},
		{kind: rowToggle, field: cfg.FieldGazeTracking},
		{kind: rowToggle, field: cfg.FieldHeadPose},
		{kind: rowToggle, field: cfg.FieldNotifications},
	}
	if !s.instructor {
		return rows
	}
	rows = append(rows, row{kind: rowHeading, label: "Course Configuration"})
	for i, f := range s.course.Files {
		rows = append(rows, row{kind: rowFile, label: f, index: i})
	}
	for i, t := range s.course.Tags {
		rows = append(rows, row{kind: rowTag, label: t, index: i})
	}
	return append(rows, row{kind: rowAddTag, label: "+ Add Tag"})
}

func (s *Screen) menuItem(r row) components.MenuItem {
	switch r.kind {
	case rowHeading:
		return components.MenuItem{Label: "── " + r.label + " ──", Disabled: true}
	case rowToggle:
		field := r.field
		return components.MenuItem{
			Label:  switchMark(s.values.Get(field)) + " " + field.Label(),
			Detail: s.values.Describe(field),
			Action: func() tea.Cmd {
				v := s.values.Toggle(field)
				logger.Info("setting %q = %v", field.Label(), v)
				return nil
			},
		}
	case rowSensitivity:
		return components.MenuItem{
			Label:  "Confusion Sensitivity " + slider(s.values.Sensitivity, 20),
			Detail: fmt.Sprintf("%d (%s)", s.values.Sensitivity, s.values.SensitivityLabel()),
		}
	case rowFile:
		return components.MenuItem{Label: "📄 " + r.label, Detail: "x to remove"}
	case rowTag:
		return components.MenuItem{Label: "# " + r.label, Detail: "x to remove"}
	case rowAddTag:
		return components.MenuItem{
			Label: r.label,
			Action: func() tea.Cmd {
				s.adding = true
				return s.input.Focus()
			},
		}
	default:
		return components.MenuItem{Label: r.label, Disabled: true}
	}
}

func switchMark(on bool) string {
	if on {
		return "[on] "
	}
	return "[off]"
}

func slider(value, width int) string {
	filled := value * width / cfg.MaxSensitivity
	return lipgloss.NewStyle().Foreground(theme.Primary).Render(strings.Repeat("━", filled)) +
		"●" + lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", width-filled))
}
