package instructor

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/edusense/internal/severity"
	"github.com/abhisek/edusense/internal/signals"
	"github.com/abhisek/edusense/internal/ui/components"
	"github.com/abhisek/edusense/internal/ui/theme"
)

var (
	textStyle = lipgloss.NewStyle().Foreground(theme.Text)
	dimStyle  = lipgloss.NewStyle().Foreground(theme.TextDim)
)

const heatmapHeight = 6

func (s *Instructor) View(width, height int) string {
	width = max(width, 40)
	parts := []string{s.renderOverview(width), s.renderHeatmap(width)}
	if d := s.renderDetails(width); d != "" {
		parts = append(parts, d)
	}
	used := 0
	for _, p := range parts {
		used += lipgloss.Height(p)
	}
	parts = append(parts, s.renderRoster(width, height-used))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (s *Instructor) renderOverview(width int) string {
	ov := s.sess.Overview
	w := width / 4
	return lipgloss.JoinHorizontal(lipgloss.Top,
		components.StatCard("Students Monitored", fmt.Sprint(ov.TotalStudents), "", w),
		components.StatCard("Avg. Confusion", fmt.Sprintf("%d%%", ov.AverageConfusion), "", w),
		components.StatCard("Confusion Hotspots", fmt.Sprint(ov.Hotspots), "", w),
		components.StatCard("Peak Confusion", ov.MostConfusingTimestamp, ov.MostConfusingTopic, width-3*w),
	)
}

func (s *Instructor) renderHeatmap(width int) string {
	values := make([]float64, len(s.sess.Heatmap))
	for i, b := range s.sess.Heatmap {
		values[i] = float64(b.PercentageConfused)
	}
	colWidth := max(1, min(3, (width-8)/max(len(values), 1)))
	cursor := -1
	if s.pane == PaneHeatmap || s.hotspot != nil {
		cursor = s.bucket
	}
	chart := components.Chart{
		Values:      values,
		Height:      heatmapHeight,
		ColumnWidth: colWidth,
		Cursor:      cursor,
		ColorFor: func(v float64) color.Color {
			return severity.ClassifyShare(int(v)).Color()
		},
	}

	var selected string
	if s.bucket < len(s.sess.Heatmap) {
		b := s.sess.Heatmap[s.bucket]
		band := severity.ClassifyShare(b.PercentageConfused)
		selected = textStyle.Render(signals.FormatTimestamp(b.Time)+"  "+b.Topic+"  ") +
			lipgloss.NewStyle().Foreground(band.Color()).Bold(true).Render(fmt.Sprintf("%d%% confused", b.PercentageConfused))
	}
	legend := strings.Join([]string{
		components.Dot(severity.BandClear.Color()) + dimStyle.Render(" 0-30% (Low)"),
		components.Dot(severity.BandMild.Color()) + dimStyle.Render(" 31-50% (Medium)"),
		components.Dot(severity.BandHigh.Color()) + dimStyle.Render(" 51-100% (High)"),
	}, "   ")

	body := dimStyle.Render("Aggregated confusion levels across all students over time") + "\n" +
		chart.View() + "\n" + selected + "\n" + legend
	if s.notice != "" {
		body += "\n" + dimStyle.Render(s.notice)
	}
	return components.Card("Class Confusion Heatmap", body, width, s.pane == PaneHeatmap)
}

func (s *Instructor) renderDetails(width int) string {
	if s.hotspot == nil {
		return ""
	}
	p := s.hotspot
	field := func(label, value string) string {
		return dimStyle.Render(label+": ") + textStyle.Bold(true).Render(value)
	}
	level := lipgloss.NewStyle().Foreground(severity.Classify(float64(p.Level)).Color()).Bold(true).
		Render(fmt.Sprintf("%d%%", p.Level))
	body := strings.Join([]string{
		field("Timestamp", signals.FormatTimestamp(p.Timestamp)),
		field("Duration", fmt.Sprintf("%ds", p.Duration)),
		field("Topic", p.Topic),
		dimStyle.Render("Peak Level: ") + level,
	}, "   ")
	return components.Card("Confusion Hotspot Details", body, width, true)
}

func (s *Instructor) renderRoster(width, height int) string {
	rows := s.Rows()
	var lines []string
	cursorLine := 0
	for i, st := range rows {
		focused := s.pane == PaneRoster && i == s.row
		if i == s.row {
			cursorLine = len(lines)
		}
		lines = append(lines, s.renderStudent(st, focused, width-6))
		if s.expanded[st.ID] {
			lines = append(lines, dimStyle.Render("      Challenging Topics: ")+
				textStyle.Render(strings.Join(st.ChallengingTopics, ", ")))
		}
	}

	header := dimStyle.Render("No video feeds stored - only behavioral analytics") + "   " +
		theme.Selected.Render(s.sortKey.DisplayName())

	// Keep the cursor row inside the space left by the panels above.
	visible := max(height-4, 3)
	start := 0
	if cursorLine >= visible {
		start = cursorLine - visible + 1
	}
	end := min(len(lines), start+visible)

	body := header + "\n" + strings.Join(lines[start:end], "\n")
	return components.Card("Student Engagement", body, width, s.pane == PaneRoster)
}

func (s *Instructor) renderStudent(st signals.StudentRecord, focused bool, width int) string {
	band := severity.ClassifyShare(st.AvgConfusion)
	prefix := "  "
	nameStyle := textStyle
	if focused {
		prefix = "▸ "
		nameStyle = theme.Selected
	}
	toggle := "▾"
	if s.expanded[st.ID] {
		toggle = "▴"
	}
	left := prefix + nameStyle.Render(st.AnonymizedName) + "  " +
		dimStyle.Render(fmt.Sprintf("%d confusion events", st.ConfusionFrequency))
	right := lipgloss.NewStyle().Foreground(band.Color()).Bold(true).Render(fmt.Sprintf("%3d%%", st.AvgConfusion)) +
		" " + dimStyle.Render(toggle)
	gap := max(1, width-lipgloss.Width(left)-lipgloss.Width(right))
	return left + strings.Repeat(" ", gap) + right
}
