// Package instructor implements the class-wide dashboard: overview stats,
// the confusion heatmap with hotspot details and the student engagement list.
package instructor

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/edusense/internal/cohort"
	"github.com/abhisek/edusense/internal/logger"
	"github.com/abhisek/edusense/internal/screen"
	"github.com/abhisek/edusense/internal/session"
	"github.com/abhisek/edusense/internal/signals"
	"github.com/abhisek/edusense/internal/ui/layout"
)

// Pane is the dashboard area that receives enter.
type Pane int

const (
	PaneHeatmap Pane = iota
	PaneRoster
)

// Instructor implements screen.Screen for the instructor dashboard.
type Instructor struct {
	sess *session.Session

	pane    Pane
	bucket  int
	hotspot *signals.Peak
	notice  string

	sortKey  cohort.SortKey
	row      int
	expanded cohort.Expanded
}

var _ screen.Screen = (*Instructor)(nil)
var _ screen.KeyHintProvider = (*Instructor)(nil)

// New creates the dashboard over sess.
func New(sess *session.Session) *Instructor {
	return &Instructor{
		sess:     sess,
		sortKey:  cohort.ByConfusion,
		expanded: cohort.Expanded{},
	}
}

func (s *Instructor) Init() tea.Cmd {
	return nil
}

func (s *Instructor) Title() string {
	return "Instructor Dashboard"
}

// Rows returns the visible engagement rows in display order.
func (s *Instructor) Rows() []signals.StudentRecord {
	return cohort.Top(s.sess.Roster, s.sortKey, cohort.VisibleRows)
}

// Hotspot returns the peak whose details are open.
func (s *Instructor) Hotspot() (signals.Peak, bool) {
	if s.hotspot == nil {
		return signals.Peak{}, false
	}
	return *s.hotspot, true
}

func (s *Instructor) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "←→", Description: "Heatmap"},
		{Key: "↑↓", Description: "Students"},
		{Key: "Enter", Description: "Details"},
		{Key: "S", Description: s.sortKey.Next().DisplayName()},
	}
	if s.hotspot != nil {
		hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Close details"})
	}
	return append(hints,
		layout.KeyHint{Key: "1-3", Description: "Views"},
		layout.KeyHint{Key: "Ctrl+C", Description: "Quit"},
	)
}

func (s *Instructor) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "left", "h":
		s.pane = PaneHeatmap
		s.bucket = max(0, s.bucket-1)
	case "right", "l":
		s.pane = PaneHeatmap
		s.bucket = min(len(s.sess.Heatmap)-1, s.bucket+1)
	case "up", "k":
		s.pane = PaneRoster
		s.row = max(0, s.row-1)
	case "down", "j":
		s.pane = PaneRoster
		s.row = min(len(s.Rows())-1, s.row+1)
	case "s":
		s.sortKey = s.sortKey.Next()
		s.row = 0
	case "esc":
		s.hotspot = nil
		s.notice = ""
	case "enter", "space":
		s.activate()
	}
	return s, nil
}

func (s *Instructor) activate() {
	switch s.pane {
	case PaneHeatmap:
		if s.bucket >= len(s.sess.Heatmap) {
			return
		}
		b := s.sess.Heatmap[s.bucket]
		if p, ok := signals.PeakNear(s.sess.Peaks, b.Time, signals.PeakSelectTolerance); ok {
			s.hotspot = &p
			s.notice = ""
			logger.Debug("hotspot details for %q", p.Topic)
			return
		}
		s.hotspot = nil
		s.notice = "No confusion hotspot near " + signals.FormatTimestamp(b.Time)
	case PaneRoster:
		rows := s.Rows()
		if s.row < len(rows) {
			s.expanded.Toggle(rows[s.row].ID)
		}
	}
}
