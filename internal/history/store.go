// internal/history/store.go
package history

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/adrg/xdg"
	_ "github.com/mattn/go-sqlite3"
)

// DefaultLimit is the number of entries kept when no limit is configured
const DefaultLimit = 500

const selectColumns = `SELECT id, question, completion, sql_query, created_at, duration_ms, status, error_message FROM history`

// Store manages submission history persistence
type Store struct {
	db    *sql.DB
	limit int
}

// NewStore opens the history database under the XDG data dir
func NewStore(limit int) (*Store, error) {
	dbPath, err := xdg.DataFile("quill/history.db")
	if err != nil {
		return nil, err
	}
	return Open(dbPath, limit)
}

// Open opens (or creates) a history database at path. ":memory:" is accepted.
func Open(path string, limit int) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	// One connection: in-memory databases are per connection
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			question TEXT NOT NULL,
			completion TEXT NOT NULL DEFAULT '',
			sql_query TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			status TEXT NOT NULL,
			error_message TEXT NOT NULL DEFAULT ''
		);
		CREATE INDEX IF NOT EXISTS idx_history_created_at ON history(created_at);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create history table: %w", err)
	}

	if limit <= 0 {
		limit = DefaultLimit
	}
	store := &Store{db: db, limit: limit}
	if err := store.cleanup(); err != nil {
		db.Close()
		return nil, fmt.Errorf("prune history: %w", err)
	}
	return store, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// Add inserts a new submission into history and prunes past the limit
func (s *Store) Add(entry *Entry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	entry.CreatedAt = entry.CreatedAt.UTC()

	res, err := s.db.Exec(`
		INSERT INTO history (question, completion, sql_query, created_at, duration_ms, status, error_message)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		entry.Question,
		entry.Completion,
		entry.SQL,
		entry.CreatedAt,
		entry.DurationMs,
		entry.Status,
		entry.ErrorMessage,
	)
	if err != nil {
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	entry.ID = id

	return s.enforceLimit()
}

// enforceLimit keeps only the most recent entries
func (s *Store) enforceLimit() error {
	_, err := s.db.Exec(`
		DELETE FROM history
		WHERE id NOT IN (
			SELECT id FROM history
			ORDER BY created_at DESC, id DESC
			LIMIT ?
		)
	`, s.limit)
	return err
}

// List returns paginated history entries, newest first
func (s *Store) List(limit, offset int) ([]Entry, error) {
	rows, err := s.db.Query(selectColumns+`
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Search finds history entries whose question or SQL contains substr
func (s *Store) Search(substr string, limit int) ([]Entry, error) {
	pattern := "%" + substr + "%"
	rows, err := s.db.Query(selectColumns+`
		WHERE question LIKE ? OR sql_query LIKE ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, pattern, pattern, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (Entry, error) {
	var e Entry
	err := row.Scan(&e.ID, &e.Question, &e.Completion, &e.SQL, &e.CreatedAt,
		&e.DurationMs, &e.Status, &e.ErrorMessage)
	return e, err
}

// scanEntries scans rows into an Entry slice
func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// GetByID retrieves a single entry. A missing ID returns nil, nil.
func (s *Store) GetByID(id int64) (*Entry, error) {
	e, err := scanEntry(s.db.QueryRow(selectColumns+` WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Delete removes a history entry by ID
func (s *Store) Delete(id int64) error {
	_, err := s.db.Exec("DELETE FROM history WHERE id = ?", id)
	return err
}

// cleanup removes history entries older than 90 days
func (s *Store) cleanup() error {
	_, err := s.db.Exec(`DELETE FROM history WHERE created_at < ?`,
		time.Now().UTC().AddDate(0, 0, -90))
	return err
}

// Count returns the total number of history entries
func (s *Store) Count() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM history`).Scan(&count)
	return count, err
}
