package catalog

import (
	"context"
	"fmt"
	"time"

	"book-manager/feature/catalog/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DemoPublishers, DemoAuthors, DemoBooks and DemoLinks are the seed catalog.
var (
	DemoPublishers = []models.Publisher{
		{ID: 1, PublisherName: "Allen & Unwin"},
		{ID: 2, PublisherName: "Chilton Books"},
		{ID: 3, PublisherName: "T. Egerton"},
	}
	DemoAuthors = []models.Author{
		{ID: 1, FirstName: "J.R.R.", LastName: "Tolkien"},
		{ID: 2, FirstName: "Frank", LastName: "Herbert"},
		{ID: 3, FirstName: "Jane", LastName: "Austen"},
	}
	DemoBooks = []models.Book{
		{ID: 1, Title: "The Hobbit", PublishingDate: date(1937, time.September, 21), Category: models.CategoryFantasy, PublisherID: 1},
		{ID: 2, Title: "Dune", PublishingDate: date(1965, time.August, 1), Category: models.CategoryFiction, PublisherID: 2},
		{ID: 3, Title: "Pride and Prejudice", PublishingDate: date(1813, time.January, 28), Category: models.CategoryRomance, PublisherID: 3},
	}
	DemoLinks = []models.BookAuthor{
		{BookID: 1, AuthorID: 1},
		{BookID: 2, AuthorID: 2},
		{BookID: 3, AuthorID: 3},
	}
)

// Seed inserts the demo catalog. Rows that already exist are left untouched.
func Seed(ctx context.Context, s *Store) error {
	return s.Transaction(ctx, func(tx *Store) error {
		db := tx.db.Clauses(clause.OnConflict{DoNothing: true}).Omit(clause.Associations).Session(&gorm.Session{})

		publishers := append([]models.Publisher(nil), DemoPublishers...)
		authors := append([]models.Author(nil), DemoAuthors...)
		books := append([]models.Book(nil), DemoBooks...)
		links := append([]models.BookAuthor(nil), DemoLinks...)

		if err := db.Create(&publishers).Error; err != nil {
			return fmt.Errorf("failed to seed publishers: %w", err)
		}
		if err := db.Create(&authors).Error; err != nil {
			return fmt.Errorf("failed to seed authors: %w", err)
		}
		if err := db.Create(&books).Error; err != nil {
			return fmt.Errorf("failed to seed books: %w", err)
		}
		if err := db.Create(&links).Error; err != nil {
			return fmt.Errorf("failed to seed links: %w", err)
		}
		return nil
	})
}
