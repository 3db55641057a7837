// Package store persists report runs to a SQLite database. The tree
// itself is never stored; only the derived directory rows are.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/ponyo877/dush/report"
)

// ErrNotFound is returned when a requested run does not exist.
var ErrNotFound = errors.New("not found")

type Store struct {
	db *sql.DB
}

// Run summarizes one saved report.
type Run struct {
	ID        string
	CreatedAt time.Time
	Entries   int
}

// Open opens (and if needed initializes) the database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	s := &Store{db: db}
	if err := s.init(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) init() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id         TEXT PRIMARY KEY,
			created_at TIMESTAMP NOT NULL
		);
		CREATE TABLE IF NOT EXISTS entries (
			run_id TEXT NOT NULL REFERENCES runs(id),
			path   TEXT NOT NULL,
			total  INTEGER NOT NULL,
			files  INTEGER NOT NULL
		);`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	return nil
}

// SaveReport writes one run and all of its entries atomically.
func (s *Store) SaveReport(r report.Report) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("INSERT INTO runs (id, created_at) VALUES (?, ?)", r.ID, r.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert run %s: %w", r.ID, err)
	}
	for _, e := range r.Entries {
		query := "INSERT INTO entries (run_id, path, total, files) VALUES (?, ?, ?, ?)"
		if _, err := tx.Exec(query, r.ID, e.Path, e.Total, e.Files); err != nil {
			return fmt.Errorf("failed to insert entry '%s': %w", e.Path, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit report: %w", err)
	}
	return nil
}

// ListRuns returns every saved run, newest first.
func (s *Store) ListRuns() ([]Run, error) {
	query := `
		SELECT r.id, r.created_at, COUNT(e.run_id)
		FROM runs r LEFT JOIN entries e ON e.run_id = r.id
		GROUP BY r.id ORDER BY r.id DESC`
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var results []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.CreatedAt, &run.Entries); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		results = append(results, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over runs: %w", err)
	}
	return results, nil
}

// GetRun loads one saved report by ULID.
func (s *Store) GetRun(id string) (report.Report, error) {
	var r report.Report
	query := "SELECT id, created_at FROM runs WHERE id = ?"
	if err := s.db.QueryRow(query, id).Scan(&r.ID, &r.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return report.Report{}, ErrNotFound
		}
		return report.Report{}, fmt.Errorf("failed to query run %s: %w", id, err)
	}

	rows, err := s.db.Query("SELECT path, total, files FROM entries WHERE run_id = ?", id)
	if err != nil {
		return report.Report{}, fmt.Errorf("failed to query entries for %s: %w", id, err)
	}
	defer rows.Close()

	for rows.Next() {
		var e report.Entry
		if err := rows.Scan(&e.Path, &e.Total, &e.Files); err != nil {
			return report.Report{}, fmt.Errorf("failed to scan entry: %w", err)
		}
		r.Entries = append(r.Entries, e)
	}
	if err := rows.Err(); err != nil {
		return report.Report{}, fmt.Errorf("error iterating over entries for %s: %w", id, err)
	}
	return r, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
