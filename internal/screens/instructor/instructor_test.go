package instructor

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/edusense/internal/cohort"
	"github.com/abhisek/edusense/internal/session"
	"github.com/abhisek/edusense/internal/signals"
)

func newTestInstructor() *Instructor {
	return New(session.New(signals.NewSeeded(7), nil))
}

func press(s *Instructor, k string) {
	var msg tea.KeyPressMsg
	switch k {
	case "left":
		msg = tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		msg = tea.KeyPressMsg{Code: tea.KeyRight}
	case "up":
		msg = tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		msg = tea.KeyPressMsg{Code: tea.KeyDown}
	case "enter":
		msg = tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		msg = tea.KeyPressMsg{Code: tea.KeyEscape}
	default:
		msg = tea.KeyPressMsg{Code: []rune(k)[0], Text: k}
	}
	s.Update(msg)
}

func TestRowsSortedAndCapped(t *testing.T) {
	s := newTestInstructor()

	rows := s.Rows()
	if len(rows) != cohort.VisibleRows {
		t.Fatalf("expected %d rows, got %d", cohort.VisibleRows, len(rows))
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].AvgConfusion > rows[i-1].AvgConfusion {
			t.Errorf("row %d not sorted by confusion", i)
		}
	}

	press(s, "s")
	rows = s.Rows()
	for i := 1; i < len(rows); i++ {
		if rows[i].ConfusionFrequency > rows[i-1].ConfusionFrequency {
			t.Errorf("row %d not sorted by frequency", i)
		}
	}
	press(s, "s")
	if s.sortKey != cohort.ByConfusion {
		t.Errorf("expected sort to toggle back, got %s", s.sortKey)
	}
}

func TestHotspotDetails(t *testing.T) {
	s := newTestInstructor()

	// Bucket 15 is t=1500, 50s from the 1550 peak.
	for i := 0; i < 15; i++ {
		press(s, "right")
	}
	press(s, "enter")

	p, ok := s.Hotspot()
	if !ok {
		t.Fatal("expected hotspot details to open")
	}
	if p.Timestamp != 1550 || p.Topic != "Activation Functions" {
		t.Errorf("unexpected hotspot %+v", p)
	}
	if !strings.Contains(s.View(120, 50), "Confusion Hotspot Details") {
		t.Error("expected details panel in view")
	}

	press(s, "esc")
	if _, ok := s.Hotspot(); ok {
		t.Error("expected esc to close details")
	}
}

func TestHotspotNoneNearBucket(t *testing.T) {
	s := newTestInstructor()

	// Bucket 0 is t=0; the nearest peak is 350s away.
	press(s, "enter")
	if _, ok := s.Hotspot(); ok {
		t.Error("expected no hotspot near 00:00")
	}
	if !strings.Contains(s.View(120, 50), "No confusion hotspot near 00:00") {
		t.Error("expected notice in view")
	}
}

func TestHeatmapCursorBounds(t *testing.T) {
	s := newTestInstructor()

	press(s, "left")
	if s.bucket != 0 {
		t.Errorf("expected cursor clamped at 0, got %d", s.bucket)
	}
	for i := 0; i < 50; i++ {
		press(s, "right")
	}
	if s.bucket != signals.HeatmapBuckets-1 {
		t.Errorf("expected cursor clamped at %d, got %d", signals.HeatmapBuckets-1, s.bucket)
	}
}

func TestExpandStudent(t *testing.T) {
	s := newTestInstructor()

	press(s, "down")
	press(s, "enter")

	id := s.Rows()[1].ID
	if !s.expanded[id] {
		t.Fatal("expected second row expanded")
	}
	if !strings.Contains(s.View(120, 60), "Challenging Topics") {
		t.Error("expected challenging topics in view")
	}

	press(s, "enter")
	if s.expanded[id] {
		t.Error("expected second row collapsed")
	}
}

func TestView(t *testing.T) {
	s := newTestInstructor()
	out := s.View(120, 40)
	for _, want := range []string{
		"Students Monitored",
		"Avg. Confusion",
		"Confusion Hotspots",
		"Class Confusion Heatmap",
		"Student Engagement",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}
