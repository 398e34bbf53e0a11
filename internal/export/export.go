// Package export writes a generated lecture session to disk as JSON, CSV,
// Parquet or SQLite.
package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/edusense/internal/logger"
	"github.com/abhisek/edusense/internal/signals"
	"github.com/abhisek/edusense/internal/store"
)

// Format selects the export encoding.
type Format string

const (
	FormatJSON    Format = "json"
	FormatCSV     Format = "csv"
	FormatParquet Format = "parquet"
	FormatSQLite  Format = "sqlite"
)

// ErrUnknownFormat is returned for format names outside AllFormats.
var ErrUnknownFormat = errors.New("unknown export format")

// AllFormats returns the supported formats.
func AllFormats() []Format {
	return []Format{FormatJSON, FormatCSV, FormatParquet, FormatSQLite}
}

// ParseFormat maps a name to a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AllFormats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Dataset is one generated session with its identifiers.
type Dataset struct {
	RunID       string                  `json:"runId"`
	SessionID   string                  `json:"sessionId"`
	Seed        uint64                  `json:"seed"`
	GeneratedAt time.Time               `json:"generatedAt"`
	Overview    signals.ClassOverview   `json:"overview"`
	Timeline    []signals.DataPoint     `json:"timeline"`
	Peaks       []signals.Peak          `json:"peaks"`
	Heatmap     []signals.HeatmapBucket `json:"heatmap"`
	Roster      []signals.StudentRecord `json:"roster"`
}

// NewDataset draws a full session from g. An empty sessionID gets a fresh
// UUID.
func NewDataset(g *signals.Generator, seed uint64, sessionID string) *Dataset {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	ds := &Dataset{
		RunID:       uuid.NewString(),
		SessionID:   sessionID,
		Seed:        seed,
		GeneratedAt: time.Now().UTC(),
		Timeline:    g.Timeline(),
		Peaks:       signals.Peaks(),
		Heatmap:     g.Heatmap(),
		Roster:      g.Roster(),
	}
	ds.Overview = signals.Overview(ds.Roster, ds.Heatmap, ds.Peaks)
	return ds
}

// Write encodes ds in format at dst and returns the files it created. JSON
// and SQLite write a single file at dst. CSV and Parquet treat dst as a
// directory and write one file per table.
func Write(ctx context.Context, ds *Dataset, format Format, dst string) ([]string, error) {
	var (
		files []string
		err   error
	)
	switch format {
	case FormatJSON:
		err = writeJSONFile(ds, dst)
		files = []string{dst}
	case FormatCSV:
		files, err = writeCSVDir(ds, dst)
	case FormatParquet:
		files, err = writeParquetDir(ds, dst)
	case FormatSQLite:
		err = writeSQLite(ctx, ds, dst)
		files = []string{dst}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("export %s: %w", format, err)
	}
	logger.Info("exported run %s as %s to %s (%d files)", ds.RunID, format, dst, len(files))
	return files, nil
}

// DefaultPath returns the conventional output location for format.
func DefaultPath(format Format) string {
	switch format {
	case FormatJSON:
		return "edusense-session.json"
	case FormatSQLite:
		return "edusense.db"
	default:
		return "edusense-" + string(format)
	}
}

func writeSQLite(ctx context.Context, ds *Dataset, path string) error {
	if err := store.EnsureDir(path); err != nil {
		return fmt.Errorf("create dir: %w", err)
	}
	s, err := store.Open(path)
	if err != nil {
		return err
	}
	defer s.Close()

	return s.RunRepo().Save(ctx, &store.Run{
		ID:          ds.RunID,
		SessionID:   ds.SessionID,
		Seed:        ds.Seed,
		GeneratedAt: ds.GeneratedAt,
		Timeline:    ds.Timeline,
		Peaks:       ds.Peaks,
		Heatmap:     ds.Heatmap,
		Roster:      ds.Roster,
	})
}

func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create dir %s: %w", dir, err)
	}
	return nil
}

func tablePath(dir, table string, format Format) string {
	return filepath.Join(dir, table+"."+string(format))
}
