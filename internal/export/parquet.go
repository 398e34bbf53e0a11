package export

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/parquet-go/parquet-go"
)

// TimelineRow is the Parquet layout of a timeline point.
type TimelineRow struct {
	RunID          string  `parquet:"run_id,snappy"`
	Timestamp      int32   `parquet:"timestamp,snappy"`
	ConfusionLevel float64 `parquet:"confusion_level,snappy"`
	Topic          string  `parquet:"topic,snappy"`
	Behaviors      string  `parquet:"behaviors,snappy"`
}

// PeakRow is the Parquet layout of a confusion peak.
type PeakRow struct {
	RunID     string `parquet:"run_id,snappy"`
	Timestamp int32  `parquet:"timestamp,snappy"`
	Level     int32  `parquet:"level,snappy"`
	Topic     string `parquet:"topic,snappy"`
	Duration  int32  `parquet:"duration,snappy"`
}

// HeatmapRow is the Parquet layout of a heatmap bucket.
type HeatmapRow struct {
	RunID              string `parquet:"run_id,snappy"`
	Time               int32  `parquet:"time,snappy"`
	PercentageConfused int32  `parquet:"percentage_confused,snappy"`
	Topic              string `parquet:"topic,snappy"`
}

// StudentRow is the Parquet layout of a roster entry.
type StudentRow struct {
	RunID              string    `parquet:"run_id,snappy"`
	GeneratedAt        time.Time `parquet:"generated_at,snappy"`
	ID                 string    `parquet:"id,snappy"`
	AnonymizedName     string    `parquet:"anonymized_name,snappy"`
	AvgConfusion       int32     `parquet:"avg_confusion,snappy"`
	ConfusionFrequency int32     `parquet:"confusion_frequency,snappy"`
	ChallengingTopics  string    `parquet:"challenging_topics,snappy"`
}

// writeParquet writes rows to a Parquet file using struct schema inference.
func writeParquet[T any](rows []T, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	if _, err := writer.Write(rows); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return file.Close()
}

func writeParquetDir(ds *Dataset, dir string) ([]string, error) {
	if err := ensureDir(dir); err != nil {
		return nil, err
	}

	timeline := make([]TimelineRow, len(ds.Timeline))
	for i, p := range ds.Timeline {
		behaviors := make([]string, len(p.Behaviors))
		for j, b := range p.Behaviors {
			behaviors[j] = string(b)
		}
		timeline[i] = TimelineRow{
			RunID:          ds.RunID,
			Timestamp:      int32(p.Timestamp),
			ConfusionLevel: p.ConfusionLevel,
			Topic:          p.Topic,
			Behaviors:      strings.Join(behaviors, ";"),
		}
	}

	peaks := make([]PeakRow, len(ds.Peaks))
	for i, p := range ds.Peaks {
		peaks[i] = PeakRow{
			RunID:     ds.RunID,
			Timestamp: int32(p.Timestamp),
			Level:     int32(p.Level),
			Topic:     p.Topic,
			Duration:  int32(p.Duration),
		}
	}

	heatmap := make([]HeatmapRow, len(ds.Heatmap))
	for i, b := range ds.Heatmap {
		heatmap[i] = HeatmapRow{
			RunID:              ds.RunID,
			Time:               int32(b.Time),
			PercentageConfused: int32(b.PercentageConfused),
			Topic:              b.Topic,
		}
	}

	students := make([]StudentRow, len(ds.Roster))
	for i, s := range ds.Roster {
		students[i] = StudentRow{
			RunID:              ds.RunID,
			GeneratedAt:        ds.GeneratedAt,
			ID:                 s.ID,
			AnonymizedName:     s.AnonymizedName,
			AvgConfusion:       int32(s.AvgConfusion),
			ConfusionFrequency: int32(s.ConfusionFrequency),
			ChallengingTopics:  strings.Join(s.ChallengingTopics, ";"),
		}
	}

	files := []string{
		tablePath(dir, "timeline", FormatParquet),
		tablePath(dir, "peaks", FormatParquet),
		tablePath(dir, "heatmap", FormatParquet),
		tablePath(dir, "roster", FormatParquet),
	}
	if err := writeParquet(timeline, files[0]); err != nil {
		return nil, err
	}
	if err := writeParquet(peaks, files[1]); err != nil {
		return nil, err
	}
	if err := writeParquet(heatmap, files[2]); err != nil {
		return nil, err
	}
	if err := writeParquet(students, files[3]); err != nil {
		return nil, err
	}
	return files, nil
}
