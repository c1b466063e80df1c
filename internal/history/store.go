// Package history persists executed statements to a SQLite store so they
// survive across sessions.
package history

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/sqlpen/sqlpen/internal/log"
)

// ErrNotFound is returned when no entry matches a lookup.
var ErrNotFound = errors.New("history: entry not found")

// Entry is one executed statement.
type Entry struct {
	ID         int64
	GUID       string
	Statement  string
	Database   string // path of the database it ran against
	RowCount   int64
	DurationMs int64
	Err        string // empty on success
	ExecutedAt time.Time
}

// Succeeded reports whether the statement ran without error.
func (e Entry) Succeeded() bool {
	return e.Err == ""
}

const schema = `
CREATE TABLE IF NOT EXISTS history (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	guid TEXT NOT NULL UNIQUE,
	statement TEXT NOT NULL,
	database TEXT NOT NULL DEFAULT '',
	row_count INTEGER NOT NULL DEFAULT 0,
	duration_ms INTEGER NOT NULL DEFAULT 0,
	error TEXT NOT NULL DEFAULT '',
	executed_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_history_executed_at ON history(executed_at DESC);
`

// entryColumns is the list of columns to select for history queries.
const entryColumns = `id, guid, statement, database, row_count, duration_ms, error, executed_at`

// Store is a SQLite-backed history repository.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the history store at path. Parent
// directories are created with 0700 permissions.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}
	db, err := sql.Open("sqlite3", "file:"+path)
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initializing history schema: %w", err)
	}
	log.Info(log.CatHistory, "History store ready", "path", path)
	return &Store{db: db}, nil
}

// OpenInMemory creates a throwaway store, used in tests and when no config
// directory is writable.
func OpenInMemory() (*Store, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record persists an entry. A zero GUID and ExecutedAt are filled in; the
// assigned row ID is written back to the entry.
func (s *Store) Record(entry *Entry) error {
	if entry.GUID == "" {
		entry.GUID = uuid.NewString()
	}
	if entry.ExecutedAt.IsZero() {
		entry.ExecutedAt = time.Now()
	}

	result, err := s.db.Exec(
		`INSERT INTO history (guid, statement, database, row_count, duration_ms, error, executed_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.GUID, entry.Statement, entry.Database,
		entry.RowCount, entry.DurationMs, entry.Err, entry.ExecutedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert history entry: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}
	entry.ID = id
	log.Debug(log.CatHistory, "Recorded statement", "guid", entry.GUID, "rows", entry.RowCount)
	return nil
}

// scanEntry scans a row into an Entry.
func scanEntry(scanner interface{ Scan(...any) error }) (Entry, error) {
	var entry Entry
	var executedAt int64
	err := scanner.Scan(
		&entry.ID, &entry.GUID, &entry.Statement, &entry.Database,
		&entry.RowCount, &entry.DurationMs, &entry.Err, &executedAt,
	)
	if err != nil {
		return Entry{}, err
	}
	entry.ExecutedAt = time.Unix(executedAt, 0)
	return entry, nil
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT `+entryColumns+` FROM history ORDER BY executed_at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return collectEntries(rows)
}

// Search returns up to limit entries whose statement contains the term,
// newest first.
func (s *Store) Search(term string, limit int) ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT `+entryColumns+` FROM history
		 WHERE statement LIKE '%' || ? || '%'
		 ORDER BY executed_at DESC, id DESC LIMIT ?`,
		term, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return collectEntries(rows)
}

// FindByGUID retrieves a single entry.
func (s *Store) FindByGUID(guid string) (Entry, error) {
	row := s.db.QueryRow(`SELECT `+entryColumns+` FROM history WHERE guid = ?`, guid)
	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, ErrNotFound
	}
	if err != nil {
		return Entry{}, fmt.Errorf("failed to find history entry: %w", err)
	}
	return entry, nil
}

// Prune deletes all but the newest keep entries.
func (s *Store) Prune(keep int) error {
	_, err := s.db.Exec(
		`DELETE FROM history WHERE id NOT IN (
			SELECT id FROM history ORDER BY executed_at DESC, id DESC LIMIT ?
		)`,
		keep,
	)
	if err != nil {
		return fmt.Errorf("failed to prune history: %w", err)
	}
	return nil
}

// Clear removes every entry.
func (s *Store) Clear() error {
	_, err := s.db.Exec(`DELETE FROM history`)
	if err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

func collectEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating history rows: %w", err)
	}
	return entries, nil
}
