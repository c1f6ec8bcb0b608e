// Package journal persists menu generation attempts in SQLite.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/Ngamdu/Meditouch/internal/domain/menu"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS generations (
	id          TEXT PRIMARY KEY,
	subject     TEXT NOT NULL,
	outcome     TEXT NOT NULL,
	detail      TEXT NOT NULL DEFAULT '',
	duration_ms INTEGER NOT NULL,
	created_at  INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_generations_created_at ON generations(created_at);
`

// Store handles reading and writing journal entries.
type Store struct {
	mu sync.Mutex
	db *sql.DB
}

// Open opens (and creates when missing) the journal database at path.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
			return nil, fmt.Errorf("failed to create journal directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}
	// A single connection keeps :memory: databases alive and serializes writers.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate journal: %w", err)
	}
	return &Store{db: db}, nil
}

// Append writes one entry.
func (s *Store) Append(ctx context.Context, entry menu.JournalEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO generations (id, subject, outcome, detail, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		entry.ID,
		entry.Subject,
		entry.Outcome,
		entry.Detail,
		entry.Duration.Milliseconds(),
		entry.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to append journal entry: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]menu.JournalEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, subject, outcome, detail, duration_ms, created_at
		 FROM generations
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []menu.JournalEntry
	for rows.Next() {
		var (
			entry      menu.JournalEntry
			durationMS int64
			createdMS  int64
		)
		if err := rows.Scan(&entry.ID, &entry.Subject, &entry.Outcome, &entry.Detail, &durationMS, &createdMS); err != nil {
			return nil, err
		}
		entry.Duration = time.Duration(durationMS) * time.Millisecond
		entry.CreatedAt = time.UnixMilli(createdMS).UTC()
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
