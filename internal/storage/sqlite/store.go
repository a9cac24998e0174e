package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const (
	// DefaultPath is the NDC records database the comments table is added to.
	DefaultPath = "merged_ndc_all_records.sqlite"

	// CommentsTable is the table managed by this package.
	CommentsTable = "comments"
)

var (
	// ErrConnection marks failures opening or reaching the database file.
	ErrConnection = errors.New("sqlite connection")
	// ErrSchema marks failures executing schema DDL.
	ErrSchema = errors.New("sqlite schema")
)

// Store wraps a SQLite DB connection.
type Store struct {
	path string
	db   *sql.DB
}

// Open creates (if needed) and opens the SQLite database.
func Open(path string) (*Store, error) {
	if path == "" {
		path = DefaultPath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("%w: ensure data dir: %w", ErrConnection, err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrConnection, path, err)
	}
	// sql.Open is lazy; reading the schema version forces the header check.
	var version int
	if err := db.QueryRow(`PRAGMA schema_version;`).Scan(&version); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: read %s: %w", ErrConnection, path, err)
	}
	return &Store{path: path, db: db}, nil
}

// Path returns the path backing the store.
func (s *Store) Path() string {
	return s.path
}

// Close closes the DB.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// EnsureCommentsTable creates the comments table if it is missing and commits.
func (s *Store) EnsureCommentsTable(ctx context.Context) error {
	if err := s.execTx(ctx, commentsSchemaSQL); err != nil {
		return fmt.Errorf("%w: create %s: %w", ErrSchema, CommentsTable, err)
	}
	return nil
}

// DropCommentsTable removes the comments table.
func (s *Store) DropCommentsTable(ctx context.Context) error {
	if err := s.execTx(ctx, `DROP TABLE IF EXISTS comments;`); err != nil {
		return fmt.Errorf("%w: drop %s: %w", ErrSchema, CommentsTable, err)
	}
	return nil
}

// TableExists reports whether the catalog lists a table with the given name.
func (s *Store) TableExists(ctx context.Context, name string) (bool, error) {
	var found string
	err := s.db.QueryRowContext(ctx,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?;`, name,
	).Scan(&found)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("query sqlite_master: %w", err)
	}
	return true, nil
}

// execTx runs stmt in its own transaction, retrying while another process
// holds the write lock.
func (s *Store) execTx(ctx context.Context, stmt string) error {
	const (
		maxAttempts = 5
		delay       = 200 * time.Millisecond
	)
	var err error
	for i := 0; i < maxAttempts; i++ {
		if err = s.execOnce(ctx, stmt); err == nil || !isLocked(err) {
			return err
		}
		if i == maxAttempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	return fmt.Errorf("database is locked after retries: %w", err)
}

func (s *Store) execOnce(ctx context.Context, stmt string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, stmt); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

func isLocked(err error) bool {
	return strings.Contains(err.Error(), "database is locked")
}

const commentsSchemaSQL = `
CREATE TABLE IF NOT EXISTS comments (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	normalizedNDC TEXT,
	gpiCode TEXT,
	scope TEXT NOT NULL CHECK(scope IN ('ndc', 'gpi')),
	comment TEXT NOT NULL,
	author TEXT NOT NULL,
	createdAt DATETIME DEFAULT CURRENT_TIMESTAMP
);
`
