// Package playback simulates lecture playback: a tick-driven clock and the
// one-shot confusion notifications raised as playback passes each peak.
package playback

import (
	"time"

	"github.com/abhisek/edusense/internal/signals"
)

const (
	// Duration is the lecture length in simulated seconds.
	Duration = signals.LectureDuration

	// Step is how far one tick advances simulated time.
	Step = 10

	// TickInterval is the real time between ticks.
	TickInterval = 2 * time.Second
)

// Clock is a simulated playback position. It is a tick counter, not a mapping
// of wall-clock time: each tick moves Step seconds regardless of drift.
type Clock struct {
	Time    int
	Playing bool
	step    int
}

// NewClock returns a playing clock at 0. A non-positive step uses Step.
func NewClock(step int) Clock {
	if step <= 0 {
		step = Step
	}
	return Clock{Playing: true, step: step}
}

// StepSize returns the seconds advanced per tick.
func (c Clock) StepSize() int {
	if c.step <= 0 {
		return Step
	}
	return c.step
}

// Tick advances a playing clock by one step, wrapping to 0 once it passes the
// end of the lecture. It reports whether time moved.
func (c *Clock) Tick() bool {
	if !c.Playing {
		return false
	}
	next := c.Time + c.StepSize()
	if next > Duration {
		next = 0
	}
	c.Time = next
	return true
}

// Toggle flips between playing and paused.
func (c *Clock) Toggle() {
	c.Playing = !c.Playing
}

// Seek moves to t, clamped to the lecture bounds.
func (c *Clock) Seek(t int) {
	c.Time = max(0, min(t, Duration))
}

// Progress returns the fraction of the lecture played, 0.0-1.0.
func (c Clock) Progress() float64 {
	return float64(c.Time) / float64(Duration)
}
