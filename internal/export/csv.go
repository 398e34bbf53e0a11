package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/abhisek/edusense/internal/signals"
)

// writeCSVWithHeader creates a CSV writer, writes the header and then the
// rows produced by writeRows.
func writeCSVWithHeader(w io.Writer, header []string, writeRows func(*csv.Writer) error) error {
	csvWriter := csv.NewWriter(w)

	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	if err := writeRows(csvWriter); err != nil {
		return err
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

// WriteTimelineCSV writes one row per timeline point. Behaviors are joined
// with ';'.
func WriteTimelineCSV(w io.Writer, points []signals.DataPoint) error {
	header := []string{"timestamp", "time", "confusion_level", "topic", "behaviors"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, p := range points {
			behaviors := make([]string, len(p.Behaviors))
			for i, b := range p.Behaviors {
				behaviors[i] = string(b)
			}
			row := []string{
				strconv.Itoa(p.Timestamp),
				signals.FormatTimestamp(p.Timestamp),
				strconv.FormatFloat(p.ConfusionLevel, 'f', 2, 64),
				p.Topic,
				strings.Join(behaviors, ";"),
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	})
}

// WritePeaksCSV writes one row per confusion peak.
func WritePeaksCSV(w io.Writer, peaks []signals.Peak) error {
	header := []string{"timestamp", "time", "level", "topic", "duration"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, p := range peaks {
			row := []string{
				strconv.Itoa(p.Timestamp),
				signals.FormatTimestamp(p.Timestamp),
				strconv.Itoa(p.Level),
				p.Topic,
				strconv.Itoa(p.Duration),
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	})
}

// WriteHeatmapCSV writes one row per heatmap bucket.
func WriteHeatmapCSV(w io.Writer, buckets []signals.HeatmapBucket) error {
	header := []string{"time", "percentage_confused", "topic"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, b := range buckets {
			row := []string{strconv.Itoa(b.Time), strconv.Itoa(b.PercentageConfused), b.Topic}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	})
}

// WriteRosterCSV writes one row per student. Topics are joined with ';'.
func WriteRosterCSV(w io.Writer, roster []signals.StudentRecord) error {
	header := []string{"id", "anonymized_name", "avg_confusion", "confusion_frequency", "challenging_topics"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, s := range roster {
			row := []string{
				s.ID,
				s.AnonymizedName,
				strconv.Itoa(s.AvgConfusion),
				strconv.Itoa(s.ConfusionFrequency),
				strings.Join(s.ChallengingTopics, ";"),
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	})
}

func writeCSVDir(ds *Dataset, dir string) ([]string, error) {
	if err := ensureDir(dir); err != nil {
		return nil, err
	}

	tables := []struct {
		name  string
		write func(io.Writer) error
	}{
		{"timeline", func(w io.Writer) error { return WriteTimelineCSV(w, ds.Timeline) }},
		{"peaks", func(w io.Writer) error { return WritePeaksCSV(w, ds.Peaks) }},
		{"heatmap", func(w io.Writer) error { return WriteHeatmapCSV(w, ds.Heatmap) }},
		{"roster", func(w io.Writer) error { return WriteRosterCSV(w, ds.Roster) }},
	}

	files := make([]string, 0, len(tables))
	for _, tbl := range tables {
		path := tablePath(dir, tbl.name, FormatCSV)
		if err := writeFile(path, tbl.write); err != nil {
			return nil, err
		}
		files = append(files, path)
	}
	return files, nil
}

func writeFile(path string, write func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := write(file); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}
