// Package storage persists an optional record of generation runs so that
// `makemock history` can show what was generated, from which header, and
// when. Recording is opt-in from the CLI; the generator itself never
// touches the store.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// HistoryDir is the directory created under the working directory to hold
// the history database.
const HistoryDir = ".makemock"

// Run is one recorded invocation of the generator.
type Run struct {
	ID          string
	Input       string
	TargetClass string
	Methods     int
	CreatedAt   time.Time
}

// HistoryStore records generation runs in a local SQLite database.
type HistoryStore struct {
	db *sql.DB
}

// OpenHistory opens (creating if needed) the history database under
// baseDir/.makemock/history.db.
func OpenHistory(baseDir string) (*HistoryStore, error) {
	dbPath := filepath.Join(baseDir, HistoryDir, "history.db")

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, err
	}

	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=10000", dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// Single connection avoids write locks between concurrent commands.
	db.SetMaxOpenConns(1)

	store := &HistoryStore{db: db}
	if err := store.createTables(); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func (s *HistoryStore) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		input TEXT,
		target_class TEXT,
		methods INTEGER,
		created_at INTEGER
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// RecordRun stores one generation run and returns its short id.
func (s *HistoryStore) RecordRun(input, targetClass string, methods int) (string, error) {
	id := uuid.New().String()[:8]
	_, err := s.db.Exec(`
		INSERT INTO runs (id, input, target_class, methods, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, id, input, targetClass, methods, time.Now().Unix())
	if err != nil {
		return "", err
	}
	return id, nil
}

// RecentRuns returns up to limit runs, most recent first.
func (s *HistoryStore) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(`
		SELECT id, input, target_class, methods, created_at
		FROM runs
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var createdAt int64
		if err := rows.Scan(&run.ID, &run.Input, &run.TargetClass, &run.Methods, &createdAt); err != nil {
			return nil, err
		}
		run.CreatedAt = time.Unix(createdAt, 0)
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Close closes the underlying database.
func (s *HistoryStore) Close() error {
	return s.db.Close()
}
