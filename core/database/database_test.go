package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect(t *testing.T) {
	t.Run("Invalid Connection", func(t *testing.T) {
		cfg := Config{
			Driver:         DriverMySQL,
			Host:           "localhost",
			Port:           9999, // Unused port
			User:           "root",
			Password:       "wrongpassword",
			Name:           "books",
			TimeoutSeconds: 1,
		}

		db, err := Connect(cfg)
		assert.Error(t, err)
		assert.Nil(t, db)
	})

	t.Run("Unsupported Driver", func(t *testing.T) {
		db, err := Connect(Config{Driver: "oracle"})
		assert.EqualError(t, err, "unsupported database driver: oracle")
		assert.Nil(t, db)
	})

	t.Run("SQLite In Memory", func(t *testing.T) {
		db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
		require.NoError(t, err)
		require.NotNil(t, db)

		// The single pooled connection keeps the in-memory schema alive.
		require.NoError(t, db.Exec("CREATE TABLE probe (id INTEGER PRIMARY KEY)").Error)
		assert.True(t, db.Migrator().HasTable("probe"))
	})
}

func TestConnect_SQLiteEnforcesForeignKeys(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	var enabled int
	require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&enabled).Error)
	assert.Equal(t, 1, enabled)

	require.NoError(t, db.Exec("CREATE TABLE books (id INTEGER PRIMARY KEY)").Error)
	require.NoError(t, db.Exec("CREATE TABLE book_authors (book_id INTEGER NOT NULL REFERENCES books(id), author_id INTEGER NOT NULL)").Error)
	require.NoError(t, db.Exec("INSERT INTO books (id) VALUES (1)").Error)

	assert.NoError(t, db.Exec("INSERT INTO book_authors (book_id, author_id) VALUES (1, 1)").Error)
	assert.Error(t, db.Exec("INSERT INTO book_authors (book_id, author_id) VALUES (99, 1)").Error)
}

func TestSQLiteDSN(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Memory", ":memory:", ":memory:?_foreign_keys=on"},
		{"File", "books.db", "books.db?_foreign_keys=on"},
		{"Existing Query", "file:books.db?cache=shared", "file:books.db?cache=shared&_foreign_keys=on"},
		{"Explicit Setting", "books.db?_foreign_keys=off", "books.db?_foreign_keys=off"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sqliteDSN(tt.in))
		})
	}
}
