package signals

// Tolerances used when matching a time against timeline points and peaks.
const (
	PointTolerance         = 15
	PeakSelectTolerance    = 100
	PeakProximityTolerance = 50
)

// PointNear returns the point closest to t, provided it lies strictly within
// tolerance seconds. Ties go to the earlier point.
func PointNear(points []DataPoint, t, tolerance int) (DataPoint, bool) {
	best, bestDist := -1, tolerance
	for i, p := range points {
		if d := abs(p.Timestamp - t); d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return DataPoint{}, false
	}
	return points[best], true
}

// FallbackPoint is what views display when no point matches.
func FallbackPoint() DataPoint {
	return DataPoint{
		ConfusionLevel: 20,
		Topic:          "Introduction",
		Behaviors:      []Behavior{},
	}
}

// PointAt returns the point near t or the fallback.
func PointAt(points []DataPoint, t int) DataPoint {
	if p, ok := PointNear(points, t, PointTolerance); ok {
		return p
	}
	fb := FallbackPoint()
	fb.Timestamp = t
	return fb
}

// PeakNear returns the peak closest to t within tolerance seconds.
func PeakNear(peaks []Peak, t, tolerance int) (Peak, bool) {
	best, bestDist := -1, tolerance
	for i, p := range peaks {
		if d := abs(p.Timestamp - t); d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return Peak{}, false
	}
	return peaks[best], true
}

// Sample keeps every nth point, starting with the first.
func Sample(points []DataPoint, every int) []DataPoint {
	if every <= 1 {
		return points
	}
	out := make([]DataPoint, 0, len(points)/every+1)
	for i := 0; i < len(points); i += every {
		out = append(out, points[i])
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
