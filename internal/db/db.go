// Package db provides SQLite connection management and statement execution
// for sqlpen.
package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/sqlpen/sqlpen/internal/log"
)

// Conn wraps a SQLite database connection.
type Conn struct {
	db     *sql.DB
	path   string
	schema *SchemaCache
}

// Options controls how a database is opened.
type Options struct {
	// ReadOnly opens the database with mode=ro, refusing all writes.
	ReadOnly bool
}

// Open connects to the SQLite database at path.
func Open(path string, opts Options) (*Conn, error) {
	dsn := "file:" + path
	if opts.ReadOnly {
		dsn += "?mode=ro"
	}
	log.Debug(log.CatDB, "Opening database", "path", path, "readonly", opts.ReadOnly)
	sqlDB, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.ErrorErr(log.CatDB, "Failed to open database", err, "path", path)
		return nil, fmt.Errorf("opening database %s: %w", path, err)
	}
	// Verify connection works
	if err := sqlDB.Ping(); err != nil {
		log.ErrorErr(log.CatDB, "Failed to ping database", err, "path", path)
		_ = sqlDB.Close()
		return nil, fmt.Errorf("pinging database %s: %w", path, err)
	}
	log.Info(log.CatDB, "Connected to database", "path", path)

	c := &Conn{db: sqlDB, path: path}
	c.schema = newSchemaCache(c)
	return c, nil
}

// OpenInMemory creates a fresh in-memory database, used when sqlpen starts
// without a database argument.
func OpenInMemory() (*Conn, error) {
	sqlDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening in-memory database: %w", err)
	}
	c := &Conn{db: sqlDB, path: ":memory:"}
	c.schema = newSchemaCache(c)
	return c, nil
}

// Close closes the database connection.
func (c *Conn) Close() error {
	return c.db.Close()
}

// Path returns the database file path, or ":memory:".
func (c *Conn) Path() string {
	return c.path
}

// DB returns the underlying database connection.
func (c *Conn) DB() *sql.DB {
	return c.db
}

// Schema returns the cached schema introspection layer.
func (c *Conn) Schema() *SchemaCache {
	return c.schema
}

// Ping verifies the connection is still usable.
func (c *Conn) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}
