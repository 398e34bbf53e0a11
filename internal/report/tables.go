package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/abhisek/edusense/internal/cohort"
	"github.com/abhisek/edusense/internal/signals"
)

func render(w io.Writer, headers []string, data [][]string, align tw.Align) error {
	table := tablewriter.NewWriter(w)
	table.Header(headers)
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = align
	})
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

func behaviorLabels(bs []signals.Behavior) string {
	if len(bs) == 0 {
		return "-"
	}
	labels := make([]string, len(bs))
	for i, b := range bs {
		labels[i] = b.Label()
	}
	return strings.Join(labels, ", ")
}

// Timeline writes the timeline sampled every `every` seconds.
func Timeline(w io.Writer, points []signals.DataPoint, every int) error {
	sampled := signals.Sample(points, every/signals.TimelineStep)
	data := make([][]string, 0, len(sampled))
	for _, p := range sampled {
		data = append(data, []string{
			signals.FormatTimestamp(p.Timestamp),
			fmt.Sprintf("%.0f%%", p.ConfusionLevel),
			LevelLabel(p.ConfusionLevel),
			p.Topic,
			behaviorLabels(p.Behaviors),
		})
	}
	return render(w, []string{"Time", "Confusion", "Level", "Topic", "Behaviors"}, data, tw.AlignLeft)
}

// Peaks writes the confusion peaks.
func Peaks(w io.Writer, peaks []signals.Peak) error {
	data := make([][]string, 0, len(peaks))
	for i, p := range peaks {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			signals.FormatTimestamp(p.Timestamp),
			fmt.Sprintf("%d%%", p.Level),
			LevelLabel(float64(p.Level)),
			p.Topic,
		})
	}
	return render(w, []string{"#", "Time", "Level", "Severity", "Topic"}, data, tw.AlignLeft)
}

// Bar draws pct as a horizontal bar of the given width.
func Bar(pct, width int) string {
	filled := max(0, min(width, pct*width/100))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// Heatmap writes the cohort heatmap with a bar per bucket.
func Heatmap(w io.Writer, buckets []signals.HeatmapBucket, barWidth int) error {
	data := make([][]string, 0, len(buckets))
	for _, b := range buckets {
		data = append(data, []string{
			signals.FormatTimestamp(b.Time),
			fmt.Sprintf("%d%%", b.PercentageConfused),
			ShareLabel(b.PercentageConfused),
			Bar(b.PercentageConfused, barWidth),
			b.Topic,
		})
	}
	return render(w, []string{"Time", "Confused", "Level", "Share", "Topic"}, data, tw.AlignLeft)
}

// Roster writes up to limit students ordered by key. A limit of zero or less
// writes everyone.
func Roster(w io.Writer, roster []signals.StudentRecord, key cohort.SortKey, limit int) error {
	if limit <= 0 {
		limit = len(roster)
	}
	rows := cohort.Top(roster, key, limit)
	data := make([][]string, 0, len(rows))
	for i, s := range rows {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			s.AnonymizedName,
			fmt.Sprintf("%d%%", s.AvgConfusion),
			ShareLabel(s.AvgConfusion),
			strconv.Itoa(s.ConfusionFrequency),
			strings.Join(s.ChallengingTopics, ", "),
		})
	}
	return render(w, []string{"Rank", "Student", "Avg", "Level", "Episodes", "Challenging Topics"}, data, tw.AlignLeft)
}

// Overview writes the class summary as a two-column table.
func Overview(w io.Writer, ov signals.ClassOverview) error {
	data := [][]string{
		{"Total Students", strconv.Itoa(ov.TotalStudents)},
		{"Average Confusion", fmt.Sprintf("%d%%", ov.AverageConfusion)},
		{"Confusion Hotspots", strconv.Itoa(ov.Hotspots)},
		{"Most Confusing", fmt.Sprintf("%s (%s)", ov.MostConfusingTopic, ov.MostConfusingTimestamp)},
		{"Peak Bucket", fmt.Sprintf("%s %d%%", signals.FormatTimestamp(ov.PeakBucket.Time), ov.PeakBucket.PercentageConfused)},
	}
	return render(w, []string{"Metric", "Value"}, data, tw.AlignLeft)
}
