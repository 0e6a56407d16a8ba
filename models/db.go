package models

import (
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// ErrNotFound is returned when a title or chapter does not exist in the catalog.
var ErrNotFound = errors.New("not found")

// querier is satisfied by both *sql.DB and *sql.Tx so the same catalog
// operations can run standalone or inside a scan transaction.
type querier interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

// Store is the catalog of titles and chapters, backed by SQLite.
type Store struct {
	db *sql.DB
	q  querier
}

// Initialize opens (or creates) the catalog database in dataDirectory
// and ensures the schema exists.
func Initialize(dataDirectory string) (*Store, error) {
	databasePath := filepath.Join(dataDirectory, "comicvault.db")

	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(1000)&_pragma=foreign_keys(1)", databasePath))
	if err != nil {
		return nil, err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db, q: db}, nil
}

// NewStore wraps an existing database handle. Used by tests and by
// transactional scopes.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db, q: db}
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// WithTx runs fn against a transaction-scoped view of the store. The
// transaction commits only when fn returns nil; any error rolls the
// whole batch back and leaves the catalog untouched.
func (s *Store) WithTx(fn func(tx *Store) error) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	if err := fn(&Store{db: s.db, q: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}
	return tx.Commit()
}

func migrate(db *sql.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS titles (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			author TEXT NOT NULL,
			path TEXT NOT NULL,
			created_at INTEGER NOT NULL,
			updated_at INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS chapters (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title_id INTEGER NOT NULL REFERENCES titles(id) ON DELETE CASCADE,
			number INTEGER NOT NULL,
			name TEXT NOT NULL,
			file TEXT NOT NULL,
			page_count INTEGER NOT NULL,
			is_archive INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_chapters_title_number ON chapters (title_id, number)`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}
