package signals

import "math"

// ClassOverview summarizes a cohort for the instructor dashboard.
type ClassOverview struct {
	TotalStudents          int           `json:"totalStudents"`
	AverageConfusion       int           `json:"averageConfusion"`
	Hotspots               int           `json:"hotspots"`
	MostConfusingTopic     string        `json:"mostConfusingTopic"`
	MostConfusingTimestamp string        `json:"mostConfusingTimestamp"`
	PeakBucket             HeatmapBucket `json:"peakBucket"`
}

// Overview derives the class summary from generated data.
func Overview(roster []StudentRecord, heatmap []HeatmapBucket, peaks []Peak) ClassOverview {
	ov := ClassOverview{
		TotalStudents: len(roster),
		Hotspots:      len(peaks),
	}

	if len(roster) > 0 {
		var sum int
		for _, s := range roster {
			sum += s.AvgConfusion
		}
		ov.AverageConfusion = int(math.Round(float64(sum) / float64(len(roster))))
	}

	var top *Peak
	for i := range peaks {
		if top == nil || peaks[i].Level > top.Level {
			top = &peaks[i]
		}
	}
	if top != nil {
		ov.MostConfusingTopic = top.Topic
		ov.MostConfusingTimestamp = FormatTimestamp(top.Timestamp)
	}

	for i, b := range heatmap {
		if i == 0 || b.PercentageConfused > ov.PeakBucket.PercentageConfused {
			ov.PeakBucket = b
		}
	}
	return ov
}
