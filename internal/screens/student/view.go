package student

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/edusense/internal/playback"
	"github.com/abhisek/edusense/internal/session"
	"github.com/abhisek/edusense/internal/severity"
	"github.com/abhisek/edusense/internal/signals"
	"github.com/abhisek/edusense/internal/ui/components"
	"github.com/abhisek/edusense/internal/ui/theme"
)

var (
	textStyle = lipgloss.NewStyle().Foreground(theme.Text)
	dimStyle  = lipgloss.NewStyle().Foreground(theme.TextDim)
)

// chartOverhead is the card border, title, axis and marker rows around the
// timeline chart.
const chartOverhead = 5

func (s *Student) View(width, height int) string {
	width = max(width, 40)
	leftWidth := width * 3 / 5
	rightWidth := width - leftWidth

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		s.renderPlayer(leftWidth),
		s.renderGauge(rightWidth),
	)
	stats := s.renderStats(width)
	peaks := s.renderPeakCards(width)
	toasts := s.renderToasts(width)

	used := lipgloss.Height(top) + lipgloss.Height(stats) + lipgloss.Height(peaks)
	if toasts != "" {
		used += lipgloss.Height(toasts)
	}
	chartHeight := max(3, min(8, height-used-chartOverhead))
	timeline := s.renderTimeline(width, chartHeight)

	parts := []string{top, stats, timeline, peaks}
	if toasts != "" {
		parts = append(parts, toasts)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (s *Student) renderPlayer(width int) string {
	state := "▶ Playing"
	if !s.clock.Playing {
		state = "⏸ Paused"
	}
	badges := []string{textStyle.Bold(true).Render(state)}
	if s.demo {
		badges = append(badges, theme.Badge.Render("Demo Mode"))
	}
	badges = append(badges, theme.BadgeMuted.Render("Processing Locally"))
	if s.settings.Webcam {
		feed := "Live Feed"
		if s.demo {
			feed = "Demo Mode"
		}
		badges = append(badges, dimStyle.Render("webcam: "+feed))
	}

	clock := fmt.Sprintf("%s / %s",
		signals.FormatTimestamp(s.clock.Time),
		signals.FormatTimestamp(playback.Duration))
	barWidth := max(width-lipgloss.Width(clock)-12, 10)
	bar := components.NewProgressBar("", s.clock.Progress(), false, barWidth).View()

	body := dimStyle.Render("Introduction to Deep Learning - Week 3") + "\n" +
		strings.Join(badges, "  ") + "\n\n" +
		bar + "  " + textStyle.Render(clock)
	return components.Card("Neural Networks Lecture", body, width, false)
}

func (s *Student) renderGauge(width int) string {
	cur := s.Current()
	band := severity.Classify(cur.ConfusionLevel)
	pct := fmt.Sprintf("%.0f%%", cur.ConfusionLevel)

	label := dimStyle.Render("Current Confusion Level")
	gap := max(1, width-6-lipgloss.Width(label)-len(pct))
	head := label + strings.Repeat(" ", gap) + lipgloss.NewStyle().Foreground(band.Color()).Bold(true).Render(pct)

	bar := components.NewProgressBar("", cur.ConfusionLevel/100, false, max(width-6, 10)).
		WithFill(band.Color()).View()

	behaviors := dimStyle.Render("No confusion behaviors detected")
	if len(cur.Behaviors) > 0 {
		labels := make([]string, len(cur.Behaviors))
		for i, b := range cur.Behaviors {
			labels[i] = b.Label()
		}
		behaviors = dimStyle.Render("Detected: ") + textStyle.Render(strings.Join(labels, ", "))
	}

	body := head + "\n" + bar + "\n" +
		components.Dot(band.Color()) + " " + lipgloss.NewStyle().Foreground(band.Color()).Render(band.Label()) + "\n" +
		lipgloss.NewStyle().Width(max(width-6, 10)).Render(behaviors)
	return components.Card("Real-time Analysis", body, width, false)
}

func (s *Student) renderStats(width int) string {
	stat := func(label, value string) string {
		return dimStyle.Render(label+": ") + textStyle.Bold(true).Render(value)
	}
	line := "  " + strings.Join([]string{
		stat("Session Time", signals.FormatTimestamp(s.clock.Time)),
		stat("Peaks Detected", fmt.Sprint(s.notifier.Count())),
		stat("Current Topic", s.Current().Topic),
	}, dimStyle.Render("   │   "))
	if s.selected >= 0 {
		line += "   " + theme.Selected.Render("[Enter] View Learning Resources")
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(line)
}

func (s *Student) renderTimeline(width, chartHeight int) string {
	points := s.sess.ChartPoints()
	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.ConfusionLevel
	}

	inner := max(width-8, 10)
	cols := components.Compress(values, inner)
	column := func(t int) int {
		idx := min(max(t/session.ChartSampleEvery, 0), len(values)-1)
		if len(values) <= inner {
			return idx
		}
		return idx * len(cols) / len(values)
	}

	markers := make(map[int]bool, len(s.sess.Peaks))
	for _, p := range s.sess.Peaks {
		markers[column(p.Timestamp)] = true
	}

	chart := components.Chart{
		Values:      cols,
		Height:      chartHeight,
		ColumnWidth: 1,
		Cursor:      column(s.clock.Time),
		Markers:     markers,
		ColorFor: func(v float64) color.Color {
			return severity.Classify(v).Color()
		},
	}

	legend := make([]string, 0, len(severity.AllBands()))
	for _, b := range severity.AllBands() {
		legend = append(legend, components.Dot(b.Color())+" "+dimStyle.Render(b.Short()))
	}
	title := "Confusion Timeline  " + strings.Join(legend, "  ")
	return components.Card(title, chart.View(), width, false)
}

func (s *Student) renderPeakCards(width int) string {
	n := len(s.sess.Peaks)
	if n == 0 {
		return ""
	}
	cardWidth := width / n
	cards := make([]string, n)
	for i, p := range s.sess.Peaks {
		band := severity.Classify(float64(p.Level))
		ts := dimStyle.Render(signals.FormatTimestamp(p.Timestamp))
		level := lipgloss.NewStyle().Foreground(band.Color()).Bold(true).Render(fmt.Sprintf("%d%%", p.Level))
		gap := max(1, cardWidth-6-lipgloss.Width(ts)-lipgloss.Width(level))
		topic := textStyle.MaxWidth(max(cardWidth-6, 4)).Render(p.Topic)
		body := ts + strings.Repeat(" ", gap) + level + "\n" + topic
		cards[i] = components.Card("", body, cardWidth, i == s.selected)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (s *Student) renderToasts(width int) string {
	if len(s.toasts) == 0 {
		return ""
	}
	views := make([]string, len(s.toasts))
	for i, t := range s.toasts {
		views[i] = t.View(width / len(s.toasts))
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Right, lipgloss.JoinHorizontal(lipgloss.Top, views...))
}
