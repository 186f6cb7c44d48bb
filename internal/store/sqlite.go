package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/klingon-assistant/klingon"
	_ "modernc.org/sqlite"
)

// ErrNotOpen is returned by SQLite methods called before Open.
var ErrNotOpen = errors.New("store: database not opened")

// SQLite stores dictionary records in a SQLite database.
type SQLite struct {
	db   *sql.DB
	path string
}

// NewSQLite returns an unopened store.
func NewSQLite() *SQLite {
	return &SQLite{}
}

// Open opens the database at path. Use ":memory:" for an in-memory database.
func (s *SQLite) Open(path string) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// Every connection to ":memory:" is a separate database.
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping sqlite database: %w", err)
	}
	s.db = db
	s.path = path
	return nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Path returns the path the store was opened with.
func (s *SQLite) Path() string { return s.path }

// Lookup implements klingon.Store.
func (s *SQLite) Lookup(ctx context.Context, name string) ([]klingon.Record, error) {
	if s.db == nil {
		return nil, ErrNotOpen
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, entry_name, part_of_speech, definition, components, notes, search_tags, source
		 FROM entries WHERE entry_name = ? ORDER BY id`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	var records []klingon.Record
	for rows.Next() {
		var r klingon.Record
		if err := rows.Scan(&r.ID, &r.EntryName, &r.PartOfSpeech, &r.Definition,
			&r.Components, &r.Notes, &r.SearchTags, &r.Source); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Insert adds records in a single transaction. Records with a non-zero ID
// keep it; the others are numbered by the database.
func (s *SQLite) Insert(ctx context.Context, records ...klingon.Record) error {
	if s.db == nil {
		return ErrNotOpen
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO entries (id, entry_name, part_of_speech, definition, components, notes, search_tags, source)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		var id any
		if r.ID != 0 {
			id = r.ID
		}
		if _, err := stmt.ExecContext(ctx, id, r.EntryName, r.PartOfSpeech, r.Definition,
			r.Components, r.Notes, r.SearchTags, r.Source); err != nil {
			return fmt.Errorf("failed to insert %q: %w", r.EntryName, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// Count returns the number of stored records.
func (s *SQLite) Count(ctx context.Context) (int, error) {
	if s.db == nil {
		return 0, ErrNotOpen
	}
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM entries`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count entries: %w", err)
	}
	return n, nil
}
