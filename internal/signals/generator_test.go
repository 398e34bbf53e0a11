package signals

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeline_Shape(t *testing.T) {
	points := NewSeeded(1).Timeline()
	require.Len(t, points, 361)

	seen := make(map[int]int)
	for i, p := range points {
		assert.Equal(t, i*TimelineStep, p.Timestamp)
		assert.GreaterOrEqual(t, p.ConfusionLevel, 0.0)
		assert.LessOrEqual(t, p.ConfusionLevel, 100.0)
		seen[p.Timestamp]++
	}
	for ts := 0; ts <= LectureDuration; ts += TimelineStep {
		assert.Equal(t, 1, seen[ts], "timestamp %d", ts)
	}
}

func TestTimeline_WindowRanges(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		for _, p := range NewSeeded(seed).Timeline() {
			r := timelineBase
			if w, ok := WindowAt(p.Timestamp); ok {
				r = w.Timeline
			}
			if p.ConfusionLevel < r.Min || p.ConfusionLevel >= r.Max {
				t.Fatalf("seed %d t=%d: level %.2f outside [%v,%v)", seed, p.Timestamp, p.ConfusionLevel, r.Min, r.Max)
			}
		}
	}
}

func TestTimeline_ActivationFunctionsWindow(t *testing.T) {
	points := NewSeeded(7).Timeline()
	for _, p := range points {
		if p.Timestamp >= 1500 && p.Timestamp <= 1600 {
			assert.GreaterOrEqual(t, p.ConfusionLevel, 75.0)
			assert.Less(t, p.ConfusionLevel, 95.0)
		}
		if _, ok := WindowAt(p.Timestamp); !ok {
			assert.GreaterOrEqual(t, p.ConfusionLevel, 15.0)
			assert.Less(t, p.ConfusionLevel, 25.0)
		}
	}
}

func TestTimeline_BehaviorsArePrefix(t *testing.T) {
	all := AllBehaviors()
	for seed := uint64(0); seed < 10; seed++ {
		for _, p := range NewSeeded(seed).Timeline() {
			if p.ConfusionLevel <= 40 {
				assert.Empty(t, p.Behaviors)
				continue
			}
			n := min(int(math.Floor(p.ConfusionLevel/20)), len(all))
			assert.Equal(t, all[:n], p.Behaviors, "t=%d level=%.2f", p.Timestamp, p.ConfusionLevel)
		}
	}
}

func TestTimeline_Topics(t *testing.T) {
	for _, p := range NewSeeded(3).Timeline() {
		assert.Equal(t, TimelineTopics[(p.Timestamp/600)%6], p.Topic)
	}
	assert.Equal(t, "Introduction to Neural Networks", TimelineTopic(3600))
}

func TestTimeline_DifferentSeedsDiffer(t *testing.T) {
	a := NewSeeded(1).Timeline()
	b := NewSeeded(2).Timeline()
	assert.NotEqual(t, a, b)

	c := NewSeeded(1).Timeline()
	assert.Equal(t, a, c)
}

func TestBehaviorsFor(t *testing.T) {
	tests := []struct {
		level float64
		want  int
	}{
		{0, 0},
		{39.9, 0},
		{40, 0},
		{40.1, 2},
		{59.9, 2},
		{60, 3},
		{85, 4},
		{100, 5},
	}
	for _, tt := range tests {
		got := BehaviorsFor(tt.level)
		if len(got) != tt.want {
			t.Errorf("BehaviorsFor(%.1f) = %d behaviors, want %d", tt.level, len(got), tt.want)
		}
	}
}

func TestHeatmap(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		buckets := NewSeeded(seed).Heatmap()
		require.Len(t, buckets, 36)
		for i, b := range buckets {
			assert.Equal(t, i*100, b.Time)
			assert.GreaterOrEqual(t, b.PercentageConfused, 0)
			assert.LessOrEqual(t, b.PercentageConfused, 100)

			r := heatmapBase
			if w, ok := WindowAt(b.Time); ok {
				r = w.Heatmap
			}
			assert.GreaterOrEqual(t, float64(b.PercentageConfused), math.Round(r.Min))
			assert.LessOrEqual(t, float64(b.PercentageConfused), math.Round(r.Max))
		}
	}
}

func TestHeatmapPhase(t *testing.T) {
	tests := []struct {
		t    int
		want string
	}{
		{0, "Introduction"},
		{599, "Introduction"},
		{600, "Backpropagation"},
		{1200, "Gradient Descent"},
		{1800, "Activation Functions"},
		{2400, "Loss Functions"},
		{3000, "Regularization"},
		{3500, "Regularization"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HeatmapPhase(tt.t), "t=%d", tt.t)
	}
}

func TestRoster(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		roster := NewSeeded(seed).Roster()
		require.Len(t, roster, 25)

		for i, s := range roster {
			assert.Equal(t, "student-"+strconv.Itoa(i+1), s.ID)
			assert.Equal(t, "Student #"+strconv.Itoa(i+1), s.AnonymizedName)
			assert.GreaterOrEqual(t, s.AvgConfusion, 20)
			assert.Less(t, s.AvgConfusion, 60)
			assert.GreaterOrEqual(t, s.ConfusionFrequency, 2)
			assert.Less(t, s.ConfusionFrequency, 10)

			require.GreaterOrEqual(t, len(s.ChallengingTopics), 1)
			require.LessOrEqual(t, len(s.ChallengingTopics), 3)
			uniq := make(map[string]bool)
			for _, topic := range s.ChallengingTopics {
				assert.Contains(t, RosterTopics[:], topic)
				assert.False(t, uniq[topic], "duplicate topic %q", topic)
				uniq[topic] = true
			}
		}
	}
}

func TestRoster_FreshEachCall(t *testing.T) {
	g := NewSeeded(42)
	a := g.Roster()
	b := g.Roster()
	assert.NotEqual(t, a, b)
}

func TestRoster_DoesNotMutateTopicPool(t *testing.T) {
	before := RosterTopics
	NewSeeded(5).Roster()
	assert.Equal(t, before, RosterTopics)
}
