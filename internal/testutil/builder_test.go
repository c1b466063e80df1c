package testutil

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuilder_InsertsUsersAndOrders(t *testing.T) {
	db := NewTestDB(t)

	NewBuilder(t, db).
		WithUser("ada", WithEmail("ada@example.com"), WithAge(36)).
		WithUser("grace").
		WithOrder("ada", "keyboard", 129.99).
		Build()

	var users int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&users))
	require.Equal(t, 2, users)

	var item string
	var amount float64
	err := db.QueryRow(`
		SELECT o.item, o.amount FROM orders o
		JOIN users u ON u.id = o.user_id
		WHERE u.name = 'ada'
	`).Scan(&item, &amount)
	require.NoError(t, err)
	require.Equal(t, "keyboard", item)
	require.InDelta(t, 129.99, amount, 0.001)
}

func TestBuilder_NullableFieldsStayNull(t *testing.T) {
	db := NewTestDB(t)

	NewBuilder(t, db).WithUser("linus").Build()

	var email, age any
	require.NoError(t, db.QueryRow(`SELECT email, age FROM users WHERE name = 'linus'`).Scan(&email, &age))
	require.Nil(t, email)
	require.Nil(t, age)
}

func TestSeedShop(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	SeedShop(t, db)

	var users, orders int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&users))
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM orders`).Scan(&orders))
	require.Equal(t, 3, users)
	require.Equal(t, 4, orders)
}
