package checks

import (
	"context"
	"fmt"

	"book-manager/feature/catalog/models"

	"gorm.io/gorm"
)

// OrphanLink is a book_authors row whose book or author no longer exists.
type OrphanLink struct {
	BookID   uint   `json:"book_id"`
	AuthorID uint   `json:"author_id"`
	Missing  string `json:"missing"` // "book" or "author"
}

// LinkReport is the result of the relationship check.
type LinkReport struct {
	OrphanedLinks         []OrphanLink `json:"orphaned_links"`
	BooksWithoutPublisher []uint       `json:"books_without_publisher"`
	Status                string       `json:"status"` // "ok", "error"
}

// CheckLinks finds join rows pointing at deleted entities and books whose publisher is gone.
func CheckLinks(ctx context.Context, db *gorm.DB) (*LinkReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	db = db.WithContext(ctx)

	report := &LinkReport{
		OrphanedLinks:         []OrphanLink{},
		BooksWithoutPublisher: []uint{},
		Status:                "ok",
	}

	for _, side := range []struct{ table, column, name string }{
		{"books", "book_id", "book"},
		{"authors", "author_id", "author"},
	} {
		var rows []OrphanLink
		err := db.Table("book_authors AS ba").
			Select("ba.book_id, ba.author_id").
			Joins(fmt.Sprintf("LEFT JOIN %s t ON t.id = ba.%s", side.table, side.column)).
			Where("t.id IS NULL").
			Order("ba.book_id, ba.author_id").
			Scan(&rows).Error
		if err != nil {
			return nil, fmt.Errorf("failed to find links without %s: %w", side.name, err)
		}
		for _, row := range rows {
			row.Missing = side.name
			report.OrphanedLinks = append(report.OrphanedLinks, row)
		}
	}

	err := db.Table("books AS b").
		Joins("LEFT JOIN publishers p ON p.id = b.publisher_id").
		Where("p.id IS NULL").
		Order("b.id").
		Pluck("b.id", &report.BooksWithoutPublisher).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find books without publisher: %w", err)
	}

	if len(report.OrphanedLinks) > 0 || len(report.BooksWithoutPublisher) > 0 {
		report.Status = "error"
	}
	return report, nil
}

// FixLinks deletes the orphaned join rows in one transaction.
// Books without a publisher need a human decision and are left alone.
func FixLinks(ctx context.Context, db *gorm.DB, orphans []OrphanLink) (int64, error) {
	var removed int64
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, o := range orphans {
			result := tx.Where("book_id = ? AND author_id = ?", o.BookID, o.AuthorID).Delete(&models.BookAuthor{})
			if result.Error != nil {
				return fmt.Errorf("failed to remove link %d/%d: %w", o.BookID, o.AuthorID, result.Error)
			}
			removed += result.RowsAffected
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}
