package links

import (
	"context"
	"fmt"
	"strconv"

	"book-manager/core/reconcile"
	"book-manager/feature/catalog/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Adapter implements reconcile.Adapter and reconcile.Mutator over book_authors.
type Adapter struct {
	profile Profile
}

// NewAdapter creates an adapter for one direction of the relation.
func NewAdapter(profile Profile) *Adapter {
	return &Adapter{profile: profile}
}

// Spec wraps the adapter in a reconcile spec.
func (a *Adapter) Spec() *reconcile.Spec {
	return &reconcile.Spec{Adapter: a}
}

// Profile returns the relation profile.
func (a *Adapter) Profile() Profile {
	return a.profile
}

// Name returns the relation name.
func (a *Adapter) Name() string {
	return a.profile.Name
}

// OwnerExists reports whether the owner row exists.
func (a *Adapter) OwnerExists(ctx context.Context, db *gorm.DB, owner string) (bool, error) {
	id, err := parseKey(owner)
	if err != nil {
		return false, nil
	}
	var count int64
	if err := db.WithContext(ctx).Table(a.profile.OwnerTable).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// LoadUniverse returns every counterpart id, ascending.
func (a *Adapter) LoadUniverse(ctx context.Context, db *gorm.DB) ([]string, error) {
	var ids []uint
	if err := db.WithContext(ctx).Table(a.profile.CounterpartTable).Order("id").Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return formatKeys(ids), nil
}

// LoadCurrent returns the counterpart ids linked to owner.
func (a *Adapter) LoadCurrent(ctx context.Context, db *gorm.DB, owner string) (map[string]struct{}, error) {
	id, err := parseKey(owner)
	if err != nil {
		return nil, fmt.Errorf("invalid owner key %q: %w", owner, err)
	}
	var ids []uint
	err = db.WithContext(ctx).Table(JoinTable).
		Where(a.profile.OwnerColumn+" = ?", id).
		Pluck(a.profile.CounterpartColumn, &ids).Error
	if err != nil {
		return nil, err
	}
	current := make(map[string]struct{}, len(ids))
	for _, key := range formatKeys(ids) {
		current[key] = struct{}{}
	}
	return current, nil
}

// Link inserts one join record per key in a single batch.
func (a *Adapter) Link(ctx context.Context, db *gorm.DB, owner string, keys []string) error {
	records, err := a.Records(owner, keys)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}
	return db.WithContext(ctx).Omit(clause.Associations).Create(&records).Error
}

// Unlink removes the join records between owner and keys in one statement.
func (a *Adapter) Unlink(ctx context.Context, db *gorm.DB, owner string, keys []string) error {
	ownerID, err := parseKey(owner)
	if err != nil {
		return fmt.Errorf("invalid owner key %q: %w", owner, err)
	}
	ids, err := parseKeys(keys)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}
	return db.WithContext(ctx).
		Where(a.profile.OwnerColumn+" = ?", ownerID).
		Where(a.profile.CounterpartColumn+" IN ?", ids).
		Delete(&models.BookAuthor{}).Error
}

// Records builds the join records between owner and keys for this direction.
func (a *Adapter) Records(owner string, keys []string) ([]models.BookAuthor, error) {
	ownerID, err := parseKey(owner)
	if err != nil {
		return nil, fmt.Errorf("invalid owner key %q: %w", owner, err)
	}
	ids, err := parseKeys(keys)
	if err != nil {
		return nil, err
	}

	records := make([]models.BookAuthor, 0, len(ids))
	for _, id := range ids {
		if a.profile.OwnerColumn == "author_id" {
			records = append(records, models.BookAuthor{AuthorID: ownerID, BookID: id})
		} else {
			records = append(records, models.BookAuthor{BookID: ownerID, AuthorID: id})
		}
	}
	return records, nil
}

func parseKey(key string) (uint, error) {
	n, err := strconv.ParseUint(key, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(n), nil
}

func parseKeys(keys []string) ([]uint, error) {
	ids := make([]uint, 0, len(keys))
	for _, key := range keys {
		id, err := parseKey(key)
		if err != nil {
			return nil, fmt.Errorf("invalid key %q: %w", key, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func formatKeys(ids []uint) []string {
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = strconv.FormatUint(uint64(id), 10)
	}
	return keys
}
