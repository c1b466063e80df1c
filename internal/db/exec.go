package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sqlpen/sqlpen/internal/log"
	"github.com/sqlpen/sqlpen/internal/sqltext"
)

// Result holds the outcome of one executed statement. For row-returning
// statements Columns and Rows are populated; for mutations RowsAffected is.
type Result struct {
	Kind         sqltext.StatementKind
	Columns      []string
	Rows         [][]string
	RowsAffected int64
	Duration     time.Duration
}

// Empty reports whether the result carries no rows.
func (r *Result) Empty() bool {
	return len(r.Rows) == 0
}

// ErrEmptyStatement is returned when the input contains no statement.
var ErrEmptyStatement = fmt.Errorf("db: empty statement")

// maxRows caps how many rows a single query loads into memory. Interactive
// browsing never needs more; LIMIT is the user's tool for precision.
const maxRows = 10_000

// Execute runs one SQL statement. Row-returning statements (per
// sqltext.Classify) go through Query and have every value rendered to a
// display string; everything else goes through Exec.
func (c *Conn) Execute(ctx context.Context, statement string) (*Result, error) {
	kind := sqltext.Classify(statement)
	if kind == sqltext.KindEmpty {
		return nil, ErrEmptyStatement
	}

	log.Debug(log.CatDB, "Executing statement", "kind", kind, "sql", statement)
	start := time.Now()

	if kind == sqltext.KindExec {
		res, err := c.db.ExecContext(ctx, statement)
		if err != nil {
			log.ErrorErr(log.CatDB, "Exec failed", err)
			return nil, err
		}
		affected, _ := res.RowsAffected()
		c.schema.Invalidate()
		return &Result{
			Kind:         kind,
			RowsAffected: affected,
			Duration:     time.Since(start),
		}, nil
	}

	rows, err := c.db.QueryContext(ctx, statement)
	if err != nil {
		log.ErrorErr(log.CatDB, "Query failed", err)
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	result, err := scanRows(rows)
	if err != nil {
		return nil, err
	}
	result.Kind = kind
	result.Duration = time.Since(start)
	log.Debug(log.CatDB, "Query complete", "rows", len(result.Rows), "duration", result.Duration)
	return result, nil
}

// scanRows reads every row into display strings. Column types are not
// consulted; SQLite's dynamic typing makes the driver's native Go values
// the only reliable source.
func scanRows(rows *sql.Rows) (*Result, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("reading columns: %w", err)
	}

	result := &Result{Columns: cols}
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			log.ErrorErr(log.CatDB, "Scan failed", err)
			return nil, fmt.Errorf("scanning row: %w", err)
		}

		row := make([]string, len(cols))
		for i, v := range values {
			row[i] = renderValue(v)
		}
		result.Rows = append(result.Rows, row)

		if len(result.Rows) >= maxRows {
			log.Warn(log.CatDB, "Result truncated", "max", maxRows)
			break
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}
	return result, nil
}

// renderValue converts a driver value to its display string.
func renderValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(val)
	case string:
		return val
	case int64:
		return fmt.Sprintf("%d", val)
	case float64:
		return fmt.Sprintf("%g", val)
	case bool:
		if val {
			return "1"
		}
		return "0"
	case time.Time:
		return val.Format(time.RFC3339)
	default:
		return fmt.Sprintf("%v", val)
	}
}
