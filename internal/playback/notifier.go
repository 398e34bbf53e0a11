package playback

import "github.com/abhisek/edusense/internal/signals"

const (
	// DefaultProximity is how close (in seconds) playback must be to a peak.
	DefaultProximity = signals.PeakProximityTolerance

	// DefaultThreshold is the confusion level a notification requires.
	DefaultThreshold = 60.0
)

// Notifier raises at most one notification per peak for a session.
type Notifier struct {
	Proximity int
	Threshold float64
	Enabled   bool

	fired map[int]bool
	order []int
}

// NewNotifier creates an enabled notifier with default proximity and threshold.
func NewNotifier() *Notifier {
	return &Notifier{
		Proximity: DefaultProximity,
		Threshold: DefaultThreshold,
		Enabled:   true,
		fired:     make(map[int]bool),
	}
}

// Check looks for a peak near t that has not fired yet. It fires, and records
// the peak, only when level exceeds the threshold.
func (n *Notifier) Check(t int, level float64, peaks []signals.Peak) (signals.Peak, bool) {
	if !n.Enabled {
		return signals.Peak{}, false
	}

	for _, p := range peaks {
		if n.fired[p.Timestamp] || abs(p.Timestamp-t) >= n.Proximity {
			continue
		}
		if level <= n.Threshold {
			return signals.Peak{}, false
		}
		if n.fired == nil {
			n.fired = make(map[int]bool)
		}
		n.fired[p.Timestamp] = true
		n.order = append(n.order, p.Timestamp)
		return p, true
	}
	return signals.Peak{}, false
}

// Fired reports whether the peak at timestamp has already notified.
func (n *Notifier) Fired(timestamp int) bool {
	return n.fired[timestamp]
}

// Count returns the number of distinct peaks that have notified.
func (n *Notifier) Count() int {
	return len(n.order)
}

// History returns fired peak timestamps in firing order.
func (n *Notifier) History() []int {
	out := make([]int, len(n.order))
	copy(out, n.order)
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
