package db

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/sqlpen/sqlpen/internal/log"
)

const (
	schemaTTL             = 5 * time.Minute
	schemaCleanupInterval = 15 * time.Minute

	tablesKey       = "tables"
	columnsKeyBase  = "columns:"
	tableCountsBase = "rowcount:"
)

// SchemaCache serves schema introspection queries through an expiring
// in-memory cache. Mutating statements and watcher events invalidate it;
// entries otherwise expire on their own so an external writer can never go
// unnoticed for long.
type SchemaCache struct {
	conn  *Conn
	cache *gocache.Cache
}

func newSchemaCache(conn *Conn) *SchemaCache {
	return &SchemaCache{
		conn:  conn,
		cache: gocache.New(schemaTTL, schemaCleanupInterval),
	}
}

// Column describes one column of a table.
type Column struct {
	Name       string
	Type       string
	NotNull    bool
	PrimaryKey bool
}

// Tables returns the user table names, sorted by name.
func (s *SchemaCache) Tables(ctx context.Context) ([]string, error) {
	if v, ok := s.cache.Get(tablesKey); ok {
		if tables, ok := v.([]string); ok {
			log.Debug(log.CatDB, "Schema cache hit", "key", tablesKey)
			return tables, nil
		}
	}

	rows, err := s.conn.db.QueryContext(ctx,
		`SELECT name FROM sqlite_master
		 WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
		 ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing tables: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning table name: %w", err)
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	s.cache.Set(tablesKey, tables, schemaTTL)
	return tables, nil
}

// Columns returns the columns of a table via pragma table_info.
func (s *SchemaCache) Columns(ctx context.Context, table string) ([]Column, error) {
	key := columnsKeyBase + table
	if v, ok := s.cache.Get(key); ok {
		if cols, ok := v.([]Column); ok {
			log.Debug(log.CatDB, "Schema cache hit", "key", key)
			return cols, nil
		}
	}

	rows, err := s.conn.db.QueryContext(ctx,
		`SELECT name, type, "notnull", pk FROM pragma_table_info(?)`, table)
	if err != nil {
		return nil, fmt.Errorf("describing table %s: %w", table, err)
	}
	defer func() { _ = rows.Close() }()

	var cols []Column
	for rows.Next() {
		var col Column
		var notNull, pk int
		if err := rows.Scan(&col.Name, &col.Type, &notNull, &pk); err != nil {
			return nil, fmt.Errorf("scanning column info: %w", err)
		}
		col.NotNull = notNull != 0
		col.PrimaryKey = pk != 0
		cols = append(cols, col)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	s.cache.Set(key, cols, schemaTTL)
	return cols, nil
}

// RowCount returns the number of rows in a table.
func (s *SchemaCache) RowCount(ctx context.Context, table string) (int64, error) {
	key := tableCountsBase + table
	if v, ok := s.cache.Get(key); ok {
		if n, ok := v.(int64); ok {
			return n, nil
		}
	}

	var n int64
	// Table names cannot be bound as parameters.
	q := fmt.Sprintf(`SELECT count(*) FROM "%s"`, table)
	if err := s.conn.db.QueryRowContext(ctx, q).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting rows in %s: %w", table, err)
	}

	s.cache.Set(key, n, schemaTTL)
	return n, nil
}

// Invalidate flushes every cached entry. Called after mutating statements
// and on watcher change events.
func (s *SchemaCache) Invalidate() {
	log.Debug(log.CatDB, "Schema cache flushed")
	s.cache.Flush()
}
