package signals

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPeaks(t *testing.T) {
	want := []Peak{
		{Timestamp: 350, Level: 62, Topic: "Backpropagation Algorithm", Duration: 100},
		{Timestamp: 850, Level: 78, Topic: "Gradient Descent Optimization", Duration: 100},
		{Timestamp: 1550, Level: 85, Topic: "Activation Functions", Duration: 100},
		{Timestamp: 2250, Level: 58, Topic: "Loss Functions", Duration: 100},
		{Timestamp: 2850, Level: 72, Topic: "Regularization Techniques", Duration: 100},
	}
	assert.Equal(t, want, Peaks())

	// Callers get their own copy.
	p := Peaks()
	p[0].Level = 0
	assert.Equal(t, 62, Peaks()[0].Level)
}

func TestPeaksAlignWithWindows(t *testing.T) {
	for _, p := range Peaks() {
		w, ok := WindowAt(p.Timestamp)
		assert.True(t, ok, "peak %d has no window", p.Timestamp)
		assert.Equal(t, p.Duration, w.End-w.Start)
	}
}

func TestPointNear(t *testing.T) {
	points := NewSeeded(9).Timeline()

	p, ok := PointNear(points, 125, PointTolerance)
	assert.True(t, ok)
	assert.Equal(t, 120, p.Timestamp)

	p, ok = PointNear(points, 128, PointTolerance)
	assert.True(t, ok)
	assert.Equal(t, 130, p.Timestamp, "nearest point wins")

	_, ok = PointNear(points, 5000, PointTolerance)
	assert.False(t, ok)

	_, ok = PointNear(nil, 0, PointTolerance)
	assert.False(t, ok)
}

func TestPointAt_Fallback(t *testing.T) {
	p := PointAt(nil, 300)
	assert.Equal(t, 300, p.Timestamp)
	assert.Equal(t, 20.0, p.ConfusionLevel)
	assert.Equal(t, "Introduction", p.Topic)
	assert.Empty(t, p.Behaviors)
}

func TestPeakNear(t *testing.T) {
	peaks := Peaks()

	tests := []struct {
		name      string
		t         int
		tolerance int
		wantTS    int
		wantOK    bool
	}{
		{"exact", 850, PeakSelectTolerance, 850, true},
		{"within select window", 760, PeakSelectTolerance, 850, true},
		{"edge excluded", 750, PeakSelectTolerance, 0, false},
		{"proximity", 1510, PeakProximityTolerance, 1550, true},
		{"proximity miss", 1500, PeakProximityTolerance, 0, false},
		{"nothing nearby", 0, PeakSelectTolerance, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := PeakNear(peaks, tt.t, tt.tolerance)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantTS, p.Timestamp)
		})
	}
}

func TestSample(t *testing.T) {
	points := NewSeeded(1).Timeline()
	sampled := Sample(points, 3)
	assert.Len(t, sampled, 121)
	assert.Equal(t, 0, sampled[0].Timestamp)
	assert.Equal(t, 30, sampled[1].Timestamp)
	assert.Equal(t, 3600, sampled[len(sampled)-1].Timestamp)

	assert.Equal(t, points, Sample(points, 1))
}

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "00:00"},
		{9, "00:09"},
		{125, "02:05"},
		{600, "10:00"},
		{3600, "60:00"},
		{3605, "60:05"},
		{-5, "00:00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatTimestamp(tt.seconds), "FormatTimestamp(%d)", tt.seconds)
	}
}

func TestOverview(t *testing.T) {
	roster := []StudentRecord{
		{ID: "a", AvgConfusion: 20},
		{ID: "b", AvgConfusion: 31},
	}
	heatmap := []HeatmapBucket{
		{Time: 0, PercentageConfused: 12},
		{Time: 1500, PercentageConfused: 80},
		{Time: 1600, PercentageConfused: 70},
	}
	ov := Overview(roster, heatmap, Peaks())

	assert.Equal(t, 2, ov.TotalStudents)
	assert.Equal(t, 26, ov.AverageConfusion)
	assert.Equal(t, 5, ov.Hotspots)
	assert.Equal(t, "Activation Functions", ov.MostConfusingTopic)
	assert.Equal(t, "25:50", ov.MostConfusingTimestamp)
	assert.Equal(t, 1500, ov.PeakBucket.Time)
}

func TestOverview_Empty(t *testing.T) {
	ov := Overview(nil, nil, nil)
	assert.Zero(t, ov.TotalStudents)
	assert.Zero(t, ov.AverageConfusion)
	assert.Empty(t, ov.MostConfusingTopic)
}
