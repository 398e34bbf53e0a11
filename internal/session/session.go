// Package session bundles everything generated for one dashboard run so the
// student and instructor views read the same numbers.
package session

import (
	"github.com/google/uuid"

	"github.com/abhisek/edusense/internal/resources"
	"github.com/abhisek/edusense/internal/signals"
)

// ChartSampleEvery is the sampling interval, in seconds, of the student
// timeline chart.
const ChartSampleEvery = 30

// Session is one generated lecture session. It is immutable once built.
type Session struct {
	ID       string
	Timeline []signals.DataPoint
	Peaks    []signals.Peak
	Heatmap  []signals.HeatmapBucket
	Roster   []signals.StudentRecord
	Overview signals.ClassOverview
	Content  *resources.Content
}

// New generates a session from g. Datasets are drawn in a fixed order so a
// seeded generator always yields the same session.
func New(g *signals.Generator, content *resources.Content) *Session {
	if content == nil {
		content = resources.Builtin()
	}
	timeline := g.Timeline()
	heatmap := g.Heatmap()
	roster := g.Roster()
	peaks := signals.Peaks()

	return &Session{
		ID:       uuid.NewString(),
		Timeline: timeline,
		Peaks:    peaks,
		Heatmap:  heatmap,
		Roster:   roster,
		Overview: signals.Overview(roster, heatmap, peaks),
		Content:  content,
	}
}

// PointAt returns the timeline point shown at playback time t.
func (s *Session) PointAt(t int) signals.DataPoint {
	return signals.PointAt(s.Timeline, t)
}

// ChartPoints returns the timeline sampled for the chart.
func (s *Session) ChartPoints() []signals.DataPoint {
	return signals.Sample(s.Timeline, ChartSampleEvery/signals.TimelineStep)
}

// PeakIndex returns the index of the peak at timestamp, or -1.
func (s *Session) PeakIndex(timestamp int) int {
	for i, p := range s.Peaks {
		if p.Timestamp == timestamp {
			return i
		}
	}
	return -1
}
