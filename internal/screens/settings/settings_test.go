package settings

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	cfg "github.com/abhisek/edusense/internal/settings"
)

func newTestScreen(instructor bool) (*Screen, *cfg.Settings, *cfg.Course) {
	values := cfg.Defaults()
	course := cfg.DefaultCourse()
	return New(&values, &course, instructor), &values, &course
}

func press(s *Screen, k string) {
	var msg tea.KeyPressMsg
	switch k {
	case "up":
		msg = tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		msg = tea.KeyPressMsg{Code: tea.KeyDown}
	case "left":
		msg = tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		msg = tea.KeyPressMsg{Code: tea.KeyRight}
	case "enter":
		msg = tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		msg = tea.KeyPressMsg{Code: tea.KeyEscape}
	case " ":
		msg = tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	default:
		msg = tea.KeyPressMsg{Code: []rune(k)[0], Text: k}
	}
	s.Update(msg)
}

// moveTo selects the first row of kind.
func moveTo(t *testing.T, s *Screen, kind rowKind) {
	t.Helper()
	for i := 0; i < len(s.rows); i++ {
		if s.current().kind == kind {
			return
		}
		press(s, "down")
	}
	t.Fatalf("row kind %d not reachable", kind)
}

func TestStartsOnFirstSwitch(t *testing.T) {
	s, _, _ := newTestScreen(false)
	cur := s.current()
	if cur.kind != rowToggle || cur.field != cfg.FieldIndividualMode {
		t.Errorf("expected processing mode selected, got %+v", cur)
	}
}

func TestToggleSwitch(t *testing.T) {
	s, values, _ := newTestScreen(false)

	press(s, "enter")
	if values.IndividualMode {
		t.Error("expected individual mode toggled off")
	}
	if !strings.Contains(s.View(100, 40), "Class Analytics Mode") {
		t.Error("expected description to follow the switch")
	}

	press(s, "down")
	press(s, "enter")
	if values.Webcam {
		t.Error("expected webcam toggled off")
	}
}

func TestNotificationsSwitch(t *testing.T) {
	s, values, _ := newTestScreen(false)
	for s.current().field != cfg.FieldNotifications {
		press(s, "down")
	}
	press(s, "enter")
	if values.Notifications {
		t.Error("expected notifications off")
	}
}

func TestSensitivity(t *testing.T) {
	s, values, _ := newTestScreen(false)
	moveTo(t, s, rowSensitivity)

	press(s, "right")
	press(s, "right")
	if values.Sensitivity != 60 {
		t.Errorf("expected 60, got %d", values.Sensitivity)
	}
	for i := 0; i < 30; i++ {
		press(s, "-")
	}
	if values.Sensitivity != 0 {
		t.Errorf("expected clamp at 0, got %d", values.Sensitivity)
	}
	if !strings.Contains(s.View(100, 40), "0 (Low)") {
		t.Error("expected slider label in view")
	}
}

func TestCourseHiddenForStudents(t *testing.T) {
	s, _, _ := newTestScreen(false)
	if strings.Contains(s.View(100, 60), "Course Configuration") {
		t.Error("expected course configuration hidden")
	}
}

func TestRemoveTag(t *testing.T) {
	s, _, course := newTestScreen(true)
	moveTo(t, s, rowTag)

	first := course.Tags[0]
	press(s, "x")
	if len(course.Tags) != 5 {
		t.Fatalf("expected 5 tags, got %d", len(course.Tags))
	}
	if course.Tags[0] == first {
		t.Errorf("expected %q removed", first)
	}
	if s.current().kind != rowTag {
		t.Errorf("expected cursor to stay on a tag row, got %+v", s.current())
	}
}

func TestRemoveFile(t *testing.T) {
	s, _, course := newTestScreen(true)
	moveTo(t, s, rowFile)

	press(s, "x")
	if len(course.Files) != 1 || course.Files[0] != "Neural_Networks_Transcript.srt" {
		t.Errorf("unexpected files %v", course.Files)
	}
}

func TestAddTag(t *testing.T) {
	s, _, course := newTestScreen(true)
	moveTo(t, s, rowAddTag)

	press(s, "enter")
	if !s.CapturingInput() {
		t.Fatal("expected tag input to capture keys")
	}
	for _, r := range "Dropout" {
		press(s, string(r))
	}
	press(s, "enter")

	if s.CapturingInput() {
		t.Error("expected input closed")
	}
	if course.Tags[len(course.Tags)-1] != "Dropout" {
		t.Errorf("expected Dropout appended, got %v", course.Tags)
	}
}

func TestAddTagCancel(t *testing.T) {
	s, _, course := newTestScreen(true)
	moveTo(t, s, rowAddTag)

	press(s, "enter")
	press(s, "a")
	press(s, "esc")
	if s.CapturingInput() {
		t.Error("expected esc to cancel")
	}
	if len(course.Tags) != 6 {
		t.Errorf("expected tags unchanged, got %v", course.Tags)
	}
}
