package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/abhisek/edusense/internal/signals"
)

// Run is one generated lecture session. Seed is stored as decimal text
// because SQLite integers are signed 64-bit.
type Run struct {
	ID          string
	SessionID   string
	Seed        uint64
	GeneratedAt time.Time
	Timeline    []signals.DataPoint
	Peaks       []signals.Peak
	Heatmap     []signals.HeatmapBucket
	Roster      []signals.StudentRecord
}

// RunRepo persists generated sessions.
type RunRepo interface {
	// Save writes the run and all of its rows in one transaction.
	Save(ctx context.Context, run *Run) error

	// Count returns the number of stored runs.
	Count(ctx context.Context) (int, error)
}

type runRepo struct {
	db *sql.DB
}

func (r *runRepo) Save(ctx context.Context, run *Run) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (id, session_id, seed, generated_at) VALUES (?, ?, ?, ?)`,
		run.ID, run.SessionID, strconv.FormatUint(run.Seed, 10), run.GeneratedAt.UTC(),
	); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, p := range run.Timeline {
		behaviors, err := json.Marshal(p.Behaviors)
		if err != nil {
			return fmt.Errorf("encode behaviors: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO timeline_points (run_id, timestamp, confusion_level, topic, behaviors) VALUES (?, ?, ?, ?, ?)`,
			run.ID, p.Timestamp, p.ConfusionLevel, p.Topic, string(behaviors),
		); err != nil {
			return fmt.Errorf("insert timeline point %d: %w", p.Timestamp, err)
		}
	}

	for _, p := range run.Peaks {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO peaks (run_id, timestamp, level, topic, duration) VALUES (?, ?, ?, ?, ?)`,
			run.ID, p.Timestamp, p.Level, p.Topic, p.Duration,
		); err != nil {
			return fmt.Errorf("insert peak %d: %w", p.Timestamp, err)
		}
	}

	for _, b := range run.Heatmap {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO heatmap_buckets (run_id, time, percentage_confused, topic) VALUES (?, ?, ?, ?)`,
			run.ID, b.Time, b.PercentageConfused, b.Topic,
		); err != nil {
			return fmt.Errorf("insert heatmap bucket %d: %w", b.Time, err)
		}
	}

	for _, s := range run.Roster {
		topics, err := json.Marshal(s.ChallengingTopics)
		if err != nil {
			return fmt.Errorf("encode topics: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO students (run_id, id, anonymized_name, avg_confusion, confusion_frequency, challenging_topics) VALUES (?, ?, ?, ?, ?, ?)`,
			run.ID, s.ID, s.AnonymizedName, s.AvgConfusion, s.ConfusionFrequency, string(topics),
		); err != nil {
			return fmt.Errorf("insert student %s: %w", s.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *runRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM runs`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count runs: %w", err)
	}
	return n, nil
}
