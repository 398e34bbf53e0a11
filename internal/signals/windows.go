package signals

// Range is a half-open interval [Min, Max) sampled uniformly.
type Range struct {
	Min float64
	Max float64
}

// Window is a canonical confusion hotspot. The timeline, the heatmap and the
// peak list are all derived from the same windows so they always line up.
type Window struct {
	Start     int // inclusive
	End       int // inclusive
	Timeline  Range
	Heatmap   Range
	PeakLevel int
	PeakTopic string
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t int) bool {
	return t >= w.Start && t <= w.End
}

// Peak returns the peak annotation for the window.
func (w Window) Peak() Peak {
	return Peak{
		Timestamp: (w.Start + w.End) / 2,
		Level:     w.PeakLevel,
		Topic:     w.PeakTopic,
		Duration:  w.End - w.Start,
	}
}

var (
	timelineBase = Range{Min: 15, Max: 25}
	heatmapBase  = Range{Min: 10, Max: 25}
)

var windows = [5]Window{
	{Start: 300, End: 400, Timeline: Range{45, 65}, Heatmap: Range{35, 50}, PeakLevel: 62, PeakTopic: "Backpropagation Algorithm"},
	{Start: 800, End: 900, Timeline: Range{65, 90}, Heatmap: Range{55, 75}, PeakLevel: 78, PeakTopic: "Gradient Descent Optimization"},
	{Start: 1500, End: 1600, Timeline: Range{75, 95}, Heatmap: Range{65, 85}, PeakLevel: 85, PeakTopic: "Activation Functions"},
	{Start: 2200, End: 2300, Timeline: Range{55, 70}, Heatmap: Range{40, 55}, PeakLevel: 58, PeakTopic: "Loss Functions"},
	{Start: 2800, End: 2900, Timeline: Range{70, 90}, Heatmap: Range{50, 65}, PeakLevel: 72, PeakTopic: "Regularization Techniques"},
}

// Windows returns the canonical hotspot windows in time order.
func Windows() []Window {
	out := make([]Window, len(windows))
	copy(out, windows[:])
	return out
}

// WindowAt returns the window containing t, if any.
func WindowAt(t int) (Window, bool) {
	for _, w := range windows {
		if w.Contains(t) {
			return w, true
		}
	}
	return Window{}, false
}

// Peaks returns the five confusion peaks, one per window.
func Peaks() []Peak {
	out := make([]Peak, 0, len(windows))
	for _, w := range windows {
		out = append(out, w.Peak())
	}
	return out
}
