// Package store writes generated lecture sessions to a SQLite database.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store wraps the SQLite connection and provides access to repositories.
type Store struct {
	db *sql.DB
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and creates the schema.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// RunRepo returns a RunRepo backed by this store.
func (s *Store) RunRepo() RunRepo {
	return &runRepo{db: s.db}
}

// applyPragmas configures SQLite for single-writer use.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS runs (
		id           TEXT PRIMARY KEY,
		session_id   TEXT NOT NULL,
		seed         TEXT NOT NULL,
		generated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS timeline_points (
		run_id          TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		timestamp       INTEGER NOT NULL,
		confusion_level REAL NOT NULL,
		topic           TEXT NOT NULL,
		behaviors       TEXT NOT NULL,
		PRIMARY KEY (run_id, timestamp)
	)`,
	`CREATE TABLE IF NOT EXISTS peaks (
		run_id    TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		timestamp INTEGER NOT NULL,
		level     INTEGER NOT NULL,
		topic     TEXT NOT NULL,
		duration  INTEGER NOT NULL,
		PRIMARY KEY (run_id, timestamp)
	)`,
	`CREATE TABLE IF NOT EXISTS heatmap_buckets (
		run_id              TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		time                INTEGER NOT NULL,
		percentage_confused INTEGER NOT NULL,
		topic               TEXT NOT NULL,
		PRIMARY KEY (run_id, time)
	)`,
	`CREATE TABLE IF NOT EXISTS students (
		run_id              TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		id                  TEXT NOT NULL,
		anonymized_name     TEXT NOT NULL,
		avg_confusion       INTEGER NOT NULL,
		confusion_frequency INTEGER NOT NULL,
		challenging_topics  TEXT NOT NULL,
		PRIMARY KEY (run_id, id)
	)`,
}

func migrate(db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
