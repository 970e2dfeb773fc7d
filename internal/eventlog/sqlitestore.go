package eventlog

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Mavwarf/iconset/internal/paths"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore opens (or creates) a SQLite database at path and creates
// the runs table.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), paths.DirPerm); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite pragma: %w", err)
	}

	ddl := `
CREATE TABLE IF NOT EXISTS runs (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    timestamp   TEXT    NOT NULL,
    svg         TEXT    NOT NULL DEFAULT '',
    backend     TEXT    NOT NULL DEFAULT '',
    outcome     TEXT    NOT NULL,
    files       INTEGER NOT NULL DEFAULT 0,
    duration_ms INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_runs_timestamp ON runs(timestamp DESC);
`
	if _, err := db.Exec(ddl); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite schema: %w", err)
	}

	return &SQLiteStore{db: db, path: path}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Log(e Entry) error {
	ts := e.Time
	if ts.IsZero() {
		ts = time.Now()
	}
	_, err := s.db.Exec(
		`INSERT INTO runs (timestamp, svg, backend, outcome, files, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		ts.Format(time.RFC3339), e.SVG, e.Backend, string(e.Outcome), e.Files, e.Duration.Milliseconds(),
	)
	return err
}

func (s *SQLiteStore) Entries(limit int) ([]Entry, error) {
	query := `SELECT timestamp, svg, backend, outcome, files, duration_ms
		FROM runs ORDER BY id DESC`
	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var tsStr, svg, backend, outcome string
		var files int
		var ms int64
		if err := rows.Scan(&tsStr, &svg, &backend, &outcome, &files, &ms); err != nil {
			return nil, err
		}
		ts, err := time.Parse(time.RFC3339, tsStr)
		if err != nil {
			continue
		}
		entries = append(entries, Entry{
			Time:     ts,
			SVG:      svg,
			Backend:  backend,
			Outcome:  Outcome(outcome),
			Files:    files,
			Duration: time.Duration(ms) * time.Millisecond,
		})
	}
	return entries, rows.Err()
}

func (s *SQLiteStore) Clean(days int) (int, error) {
	cutoff := DayCutoff(days).Format(time.RFC3339)
	res, err := s.db.Exec(`DELETE FROM runs WHERE timestamp < ?`, cutoff)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}

func (s *SQLiteStore) Clear() error {
	_, err := s.db.Exec(`DELETE FROM runs`)
	return err
}

func (s *SQLiteStore) Path() string {
	return s.path
}

// Record opens the store at path, logs e and closes it again.
// Best-effort: errors are printed to stderr and otherwise ignored.
func Record(path string, e Entry) {
	s, err := NewSQLiteStore(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "eventlog: %v\n", err)
		return
	}
	defer s.Close()
	if err := s.Log(e); err != nil {
		fmt.Fprintf(os.Stderr, "eventlog: %v\n", err)
	}
}
