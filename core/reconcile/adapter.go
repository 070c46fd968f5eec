package reconcile

import (
	"context"

	"gorm.io/gorm"
)

// Adapter defines how one side of a many-to-many relation is loaded.
// Each adapter fixes the owner entity (e.g., an author) and the counterpart
// universe (e.g., all books).
type Adapter interface {
	// Name returns the unique name of this relation (e.g., "author_books").
	Name() string

	// OwnerExists reports whether the owner entity exists.
	OwnerExists(ctx context.Context, db *gorm.DB, owner string) (bool, error)

	// LoadUniverse returns the keys of every candidate counterpart in a stable order.
	LoadUniverse(ctx context.Context, db *gorm.DB) ([]string, error)

	// LoadCurrent returns the counterpart keys currently linked to the owner.
	LoadCurrent(ctx context.Context, db *gorm.DB, owner string) (map[string]struct{}, error)
}

// Mutator persists link changes. Adapters that can write implement it.
type Mutator interface {
	// Link inserts join records between owner and each key.
	Link(ctx context.Context, db *gorm.DB, owner string, keys []string) error

	// Unlink removes the join records between owner and each key.
	Unlink(ctx context.Context, db *gorm.DB, owner string, keys []string) error
}
