package testutil

import (
	"database/sql"
	"testing"
)

// SeedShop installs the schema and a small standard dataset: three users
// and four orders.
func SeedShop(t *testing.T, db *sql.DB) {
	t.Helper()
	ApplySchema(t, db)
	NewBuilder(t, db).
		WithUser("ada", WithEmail("ada@example.com"), WithAge(36)).
		WithUser("grace", WithEmail("grace@example.com"), WithAge(45)).
		WithUser("linus").
		WithOrder("ada", "keyboard", 129.99).
		WithOrder("ada", "monitor", 449.00).
		WithOrder("grace", "compiler", 0).
		WithOrder("linus", "kernel", 1.00).
		Build()
}
