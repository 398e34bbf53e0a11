package export

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/edusense/internal/signals"
	"github.com/abhisek/edusense/internal/store"
)

func testDataset() *Dataset {
	return NewDataset(signals.NewSeeded(11), 11, "session-fixed")
}

func TestParseFormat(t *testing.T) {
	for _, f := range AllFormats() {
		got, err := ParseFormat(" " + string(f) + " ")
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	got, err := ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, got)

	_, err = ParseFormat("xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestNewDataset(t *testing.T) {
	ds := testDataset()

	assert.NotEmpty(t, ds.RunID)
	assert.Equal(t, "session-fixed", ds.SessionID)
	assert.Len(t, ds.Timeline, 361)
	assert.Len(t, ds.Peaks, 5)
	assert.Len(t, ds.Heatmap, 36)
	assert.Len(t, ds.Roster, 25)
	assert.Equal(t, 25, ds.Overview.TotalStudents)
	assert.Equal(t, 5, ds.Overview.Hotspots)

	other := NewDataset(signals.NewSeeded(11), 11, "")
	assert.NotEqual(t, ds.RunID, other.RunID)
	assert.NotEmpty(t, other.SessionID)
}

func TestWrite_JSON(t *testing.T) {
	ds := testDataset()
	path := filepath.Join(t.TempDir(), "out", "session.json")

	files, err := Write(context.Background(), ds, FormatJSON, path)
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded Dataset
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, ds.RunID, decoded.RunID)
	assert.Equal(t, ds.Peaks, decoded.Peaks)
	assert.Len(t, decoded.Timeline, 361)
	assert.Contains(t, string(raw), `"percentageConfused"`)
}

func TestWrite_CSV(t *testing.T) {
	ds := testDataset()
	dir := filepath.Join(t.TempDir(), "csv")

	files, err := Write(context.Background(), ds, FormatCSV, dir)
	require.NoError(t, err)
	require.Len(t, files, 4)

	want := map[string]int{
		"timeline.csv": 362,
		"peaks.csv":    6,
		"heatmap.csv":  37,
		"roster.csv":   26,
	}
	for name, rows := range want {
		f, err := os.Open(filepath.Join(dir, name))
		require.NoError(t, err, name)
		records, err := csv.NewReader(f).ReadAll()
		f.Close()
		require.NoError(t, err, name)
		assert.Len(t, records, rows, name)
	}
}

func TestWritePeaksCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePeaksCSV(&buf, signals.Peaks()[:1]))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"timestamp", "time", "level", "topic", "duration"}, records[0])
	assert.Equal(t, "05:50", records[1][1])
}

func TestWrite_Parquet(t *testing.T) {
	ds := testDataset()
	dir := filepath.Join(t.TempDir(), "pq")

	files, err := Write(context.Background(), ds, FormatParquet, dir)
	require.NoError(t, err)
	require.Len(t, files, 4)

	for _, f := range files {
		raw, err := os.ReadFile(f)
		require.NoError(t, err)
		require.Greater(t, len(raw), 8)
		assert.Equal(t, "PAR1", string(raw[:4]), f)
		assert.Equal(t, "PAR1", string(raw[len(raw)-4:]), f)
	}
}

func TestWrite_SQLite(t *testing.T) {
	ds := testDataset()
	path := filepath.Join(t.TempDir(), "edusense.db")

	_, err := Write(context.Background(), ds, FormatSQLite, path)
	require.NoError(t, err)

	// A second run appends to the same database.
	_, err = Write(context.Background(), testDataset(), FormatSQLite, path)
	require.NoError(t, err)

	s, err := store.Open(path)
	require.NoError(t, err)
	defer s.Close()

	n, err := s.RunRepo().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	var sessionID string
	err = s.DB().QueryRow("SELECT session_id FROM runs WHERE id = ?", ds.RunID).Scan(&sessionID)
	require.NoError(t, err)
	assert.Equal(t, "session-fixed", sessionID)

	err = s.DB().QueryRow("SELECT session_id FROM runs WHERE id = ?", "missing").Scan(&sessionID)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestWrite_UnknownFormat(t *testing.T) {
	_, err := Write(context.Background(), testDataset(), Format("xml"), t.TempDir())
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestDefaultPath(t *testing.T) {
	assert.Equal(t, "edusense-session.json", DefaultPath(FormatJSON))
	assert.Equal(t, "edusense.db", DefaultPath(FormatSQLite))
	assert.Equal(t, "edusense-csv", DefaultPath(FormatCSV))
}
