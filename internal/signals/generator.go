// Package signals generates the synthetic confusion analytics shown by the
// dashboards: a per-lecture timeline, peak annotations, a class heatmap and a
// student roster.
package signals

import (
	"fmt"
	"math"
	"math/rand/v2"
)

const (
	// LectureDuration is the length of the simulated lecture in seconds.
	LectureDuration = 3600

	// TimelineStep is the spacing between timeline samples in seconds.
	TimelineStep = 10

	// HeatmapStep is the width of a heatmap bucket in seconds.
	HeatmapStep = 100

	// HeatmapBuckets is the number of heatmap buckets (0..3500).
	HeatmapBuckets = 36

	// RosterSize is the number of synthetic students per roster.
	RosterSize = 25

	topicPeriod      = 600
	behaviorMinLevel = 40
	behaviorBand     = 20
)

// Generator produces synthetic datasets from an injected random source.
// Shapes are fixed; values depend only on the source.
type Generator struct {
	rng *rand.Rand
}

// New creates a Generator that draws from rng.
func New(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// NewSeeded creates a deterministic Generator.
func NewSeeded(seed uint64) *Generator {
	return New(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// NewRandom creates a Generator seeded from the runtime's entropy.
func NewRandom() *Generator {
	return New(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

func (g *Generator) uniform(r Range) float64 {
	return r.Min + g.rng.Float64()*(r.Max-r.Min)
}

// Timeline returns 361 samples at 0,10,...,3600.
func (g *Generator) Timeline() []DataPoint {
	points := make([]DataPoint, 0, LectureDuration/TimelineStep+1)
	for t := 0; t <= LectureDuration; t += TimelineStep {
		level := g.uniform(timelineBase)
		if w, ok := WindowAt(t); ok {
			level = g.uniform(w.Timeline)
		}
		level = clamp(level, 0, 100)

		points = append(points, DataPoint{
			Timestamp:      t,
			ConfusionLevel: level,
			Topic:          TimelineTopic(t),
			Behaviors:      BehaviorsFor(level),
		})
	}
	return points
}

// Heatmap returns one bucket per 100 seconds from 0 to 3500.
func (g *Generator) Heatmap() []HeatmapBucket {
	buckets := make([]HeatmapBucket, 0, HeatmapBuckets)
	for i := 0; i < HeatmapBuckets; i++ {
		t := i * HeatmapStep
		pct := g.uniform(heatmapBase)
		if w, ok := WindowAt(t); ok {
			pct = g.uniform(w.Heatmap)
		}
		buckets = append(buckets, HeatmapBucket{
			Time:               t,
			PercentageConfused: int(math.Min(100, math.Round(pct))),
			Topic:              HeatmapPhase(t),
		})
	}
	return buckets
}

// Roster returns 25 fresh student records. Two calls never share state.
func (g *Generator) Roster() []StudentRecord {
	students := make([]StudentRecord, 0, RosterSize)
	for i := 1; i <= RosterSize; i++ {
		avg := int(math.Round(20 + g.rng.Float64()*40))
		freq := int(math.Round(2 + g.rng.Float64()*8))

		students = append(students, StudentRecord{
			ID:                 fmt.Sprintf("student-%d", i),
			AnonymizedName:     fmt.Sprintf("Student #%d", i),
			AvgConfusion:       min(avg, 59),
			ConfusionFrequency: min(freq, 9),
			ChallengingTopics:  g.challengingTopics(),
		})
	}
	return students
}

func (g *Generator) challengingTopics() []string {
	pool := RosterTopics
	g.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	n := 1 + g.rng.IntN(3)
	out := make([]string, n)
	copy(out, pool[:n])
	return out
}

// TimelineTopic returns the lecture topic at t.
func TimelineTopic(t int) string {
	return TimelineTopics[(t/topicPeriod)%len(TimelineTopics)]
}

// HeatmapPhase returns the heatmap phase name at t.
func HeatmapPhase(t int) string {
	idx := t / topicPeriod
	if idx >= len(HeatmapPhases) {
		idx = len(HeatmapPhases) - 1
	}
	if idx < 0 {
		idx = 0
	}
	return HeatmapPhases[idx]
}

// BehaviorsFor returns the behaviors detected at a confusion level: nothing at
// or below 40, otherwise the first floor(level/20) behaviors in fixed order.
func BehaviorsFor(level float64) []Behavior {
	if level <= behaviorMinLevel {
		return []Behavior{}
	}
	all := AllBehaviors()
	n := min(int(level/behaviorBand), len(all))
	return all[:n]
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
