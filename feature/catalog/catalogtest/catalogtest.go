// Package catalogtest builds seeded in-memory catalogs for tests.
package catalogtest

import (
	"context"
	"testing"

	"book-manager/core/database"
	"book-manager/feature/catalog"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// NewStore returns a migrated, empty in-memory catalog.
func NewStore(t testing.TB) *catalog.Store {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	if err != nil {
		t.Fatalf("Failed to open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	store := catalog.NewStore(db)
	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	return store
}

// NewSeededStore returns an in-memory catalog holding the demo data.
func NewSeededStore(t testing.TB) *catalog.Store {
	t.Helper()

	store := NewStore(t)
	if err := catalog.Seed(context.Background(), store); err != nil {
		t.Fatalf("Failed to seed: %v", err)
	}
	return store
}

// WithoutForeignKeys runs fn with sqlite foreign key enforcement switched off,
// so tests can leave rows pointing at missing entities.
func WithoutForeignKeys(t testing.TB, db *gorm.DB, fn func(db *gorm.DB)) {
	t.Helper()

	if err := db.Exec("PRAGMA foreign_keys = OFF").Error; err != nil {
		t.Fatalf("Failed to disable foreign keys: %v", err)
	}
	defer func() {
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			t.Fatalf("Failed to enable foreign keys: %v", err)
		}
	}()
	fn(db)
}

// NewMockDB creates a mock GORM DB on the MySQL dialector.
func NewMockDB(t testing.TB) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}
