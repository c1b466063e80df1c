package testutil

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
)

// userData holds data for a user row to be inserted.
type userData struct {
	name  string
	email string
	age   *int
}

// orderData holds data for an order row, referencing its user by name.
type orderData struct {
	userName string
	item     string
	amount   float64
}

// UserOption configures an inserted user.
type UserOption func(*userData)

// WithEmail sets the user's email.
func WithEmail(email string) UserOption {
	return func(u *userData) { u.email = email }
}

// WithAge sets the user's age.
func WithAge(age int) UserOption {
	return func(u *userData) { u.age = &age }
}

// Builder accumulates test data and inserts it in the correct order.
type Builder struct {
	t      *testing.T
	db     *sql.DB
	users  []userData
	orders []orderData
}

// NewBuilder creates a builder for the given test database.
func NewBuilder(t *testing.T, db *sql.DB) *Builder {
	t.Helper()
	return &Builder{t: t, db: db}
}

// WithUser adds a user with optional configuration.
func (b *Builder) WithUser(name string, opts ...UserOption) *Builder {
	user := userData{name: name}
	for _, opt := range opts {
		opt(&user)
	}
	b.users = append(b.users, user)
	return b
}

// WithOrder adds an order for a user previously added with WithUser.
func (b *Builder) WithOrder(userName, item string, amount float64) *Builder {
	b.orders = append(b.orders, orderData{userName, item, amount})
	return b
}

// Build inserts all accumulated data. Users go first so orders can resolve
// their foreign keys.
func (b *Builder) Build() {
	b.t.Helper()

	ids := make(map[string]int64, len(b.users))
	for _, user := range b.users {
		var email, age any
		if user.email != "" {
			email = user.email
		}
		if user.age != nil {
			age = *user.age
		}
		res, err := b.db.Exec(
			`INSERT INTO users (name, email, age) VALUES (?, ?, ?)`,
			user.name, email, age,
		)
		require.NoError(b.t, err)
		id, err := res.LastInsertId()
		require.NoError(b.t, err)
		ids[user.name] = id
	}

	for _, order := range b.orders {
		id, ok := ids[order.userName]
		require.True(b.t, ok, "order references unknown user %q", order.userName)
		_, err := b.db.Exec(
			`INSERT INTO orders (user_id, item, amount) VALUES (?, ?, ?)`,
			id, order.item, order.amount,
		)
		require.NoError(b.t, err)
	}
}
