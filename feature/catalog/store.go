package catalog

import (
	"context"
	"errors"
	"fmt"

	"book-manager/feature/catalog/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store handles all catalog database operations.
type Store struct {
	db *gorm.DB
}

// NewStore creates a new catalog store.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB returns the underlying connection.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Migrate creates or updates the catalog tables.
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate catalog schema: %w", err)
	}
	return nil
}

// Transaction runs fn with a store bound to a single transaction.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

func notFound(err error, what string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %d: %w", what, id, ErrNotFound)
	}
	return fmt.Errorf("failed to load %s %d: %w", what, id, err)
}

// ListAuthors returns every author with their books, ordered by last then first name.
func (s *Store) ListAuthors(ctx context.Context) ([]models.Author, error) {
	var authors []models.Author
	err := s.db.WithContext(ctx).
		Preload("BookAuthors.Book").
		Order("last_name, first_name, id").
		Find(&authors).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}
	return authors, nil
}

// GetAuthor returns one author with their books.
func (s *Store) GetAuthor(ctx context.Context, id uint) (*models.Author, error) {
	var author models.Author
	err := s.db.WithContext(ctx).
		Preload("BookAuthors.Book.Publisher").
		First(&author, id).Error
	if err != nil {
		return nil, notFound(err, "author", id)
	}
	return &author, nil
}

// CreateAuthor inserts a new author.
func (s *Store) CreateAuthor(ctx context.Context, author *models.Author) error {
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(author).Error; err != nil {
		return fmt.Errorf("failed to create author: %w", err)
	}
	return nil
}

// UpdateAuthor saves the author's own columns. Links are left to the reconciler.
func (s *Store) UpdateAuthor(ctx context.Context, author *models.Author) error {
	result := s.db.WithContext(ctx).Model(&models.Author{ID: author.ID}).
		Select("first_name", "last_name").
		Updates(map[string]any{"first_name": author.FirstName, "last_name": author.LastName})
	if result.Error != nil {
		return fmt.Errorf("failed to update author %d: %w", author.ID, result.Error)
	}
	return nil
}

// DeleteAuthor removes an author and its join records.
func (s *Store) DeleteAuthor(ctx context.Context, id uint) error {
	return s.Transaction(ctx, func(tx *Store) error {
		if _, err := tx.GetAuthor(ctx, id); err != nil {
			return err
		}
		if err := tx.db.Where("author_id = ?", id).Delete(&models.BookAuthor{}).Error; err != nil {
			return fmt.Errorf("failed to unlink author %d: %w", id, err)
		}
		if err := tx.db.Delete(&models.Author{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete author %d: %w", id, err)
		}
		return nil
	})
}

// ListBooks returns every book with its publisher and authors, ordered by title.
func (s *Store) ListBooks(ctx context.Context) ([]models.Book, error) {
	var books []models.Book
	err := s.db.WithContext(ctx).
		Preload("Publisher").
		Preload("BookAuthors.Author").
		Order("title, id").
		Find(&books).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	return books, nil
}

// GetBook returns one book with its authors, its publisher and the publisher's books.
func (s *Store) GetBook(ctx context.Context, id uint) (*models.Book, error) {
	var book models.Book
	err := s.db.WithContext(ctx).
		Preload("BookAuthors.Author").
		Preload("Publisher.Books").
		First(&book, id).Error
	if err != nil {
		return nil, notFound(err, "book", id)
	}
	return &book, nil
}

// CreateBook inserts a new book after checking its publisher exists.
func (s *Store) CreateBook(ctx context.Context, book *models.Book) error {
	if err := s.requirePublisher(ctx, book.PublisherID); err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(book).Error; err != nil {
		return fmt.Errorf("failed to create book: %w", err)
	}
	return nil
}

// UpdateBook saves the book's own columns. Links are left to the reconciler.
func (s *Store) UpdateBook(ctx context.Context, book *models.Book) error {
	if err := s.requirePublisher(ctx, book.PublisherID); err != nil {
		return err
	}
	result := s.db.WithContext(ctx).Model(&models.Book{ID: book.ID}).
		Select("title", "publishing_date", "category", "publisher_id").
		Updates(map[string]any{
			"title":           book.Title,
			"publishing_date": book.PublishingDate,
			"category":        book.Category,
			"publisher_id":    book.PublisherID,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update book %d: %w", book.ID, result.Error)
	}
	return nil
}

// DeleteBook removes a book and its join records.
func (s *Store) DeleteBook(ctx context.Context, id uint) error {
	return s.Transaction(ctx, func(tx *Store) error {
		var count int64
		if err := tx.db.Model(&models.Book{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to look up book %d: %w", id, err)
		}
		if count == 0 {
			return fmt.Errorf("book %d: %w", id, ErrNotFound)
		}
		if err := tx.db.Where("book_id = ?", id).Delete(&models.BookAuthor{}).Error; err != nil {
			return fmt.Errorf("failed to unlink book %d: %w", id, err)
		}
		if err := tx.db.Delete(&models.Book{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete book %d: %w", id, err)
		}
		return nil
	})
}

// ListPublishers returns every publisher with its books, ordered by name.
func (s *Store) ListPublishers(ctx context.Context) ([]models.Publisher, error) {
	var publishers []models.Publisher
	err := s.db.WithContext(ctx).
		Preload("Books", func(db *gorm.DB) *gorm.DB { return db.Order("title") }).
		Order("publisher_name, id").
		Find(&publishers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list publishers: %w", err)
	}
	return publishers, nil
}

// GetPublisher returns one publisher with its books.
func (s *Store) GetPublisher(ctx context.Context, id uint) (*models.Publisher, error) {
	var publisher models.Publisher
	err := s.db.WithContext(ctx).
		Preload("Books", func(db *gorm.DB) *gorm.DB { return db.Order("title") }).
		First(&publisher, id).Error
	if err != nil {
		return nil, notFound(err, "publisher", id)
	}
	return &publisher, nil
}

// CreatePublisher inserts a new publisher.
func (s *Store) CreatePublisher(ctx context.Context, publisher *models.Publisher) error {
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(publisher).Error; err != nil {
		return fmt.Errorf("failed to create publisher: %w", err)
	}
	return nil
}

// UpdatePublisher saves the publisher's name.
func (s *Store) UpdatePublisher(ctx context.Context, publisher *models.Publisher) error {
	result := s.db.WithContext(ctx).Model(&models.Publisher{ID: publisher.ID}).
		Update("publisher_name", publisher.PublisherName)
	if result.Error != nil {
		return fmt.Errorf("failed to update publisher %d: %w", publisher.ID, result.Error)
	}
	return nil
}

// DeletePublisher removes a publisher that owns no books.
func (s *Store) DeletePublisher(ctx context.Context, id uint) error {
	return s.Transaction(ctx, func(tx *Store) error {
		publisher, err := tx.GetPublisher(ctx, id)
		if err != nil {
			return err
		}
		if len(publisher.Books) > 0 {
			return fmt.Errorf("publisher %d owns %d books: %w", id, len(publisher.Books), ErrPublisherInUse)
		}
		if err := tx.db.Delete(&models.Publisher{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete publisher %d: %w", id, err)
		}
		return nil
	})
}

func (s *Store) requirePublisher(ctx context.Context, id uint) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Publisher{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to look up publisher %d: %w", id, err)
	}
	if count == 0 {
		return fmt.Errorf("publisher %d: %w", id, ErrUnknownPublisher)
	}
	return nil
}
