package books

import (
	"context"
	"fmt"

	"book-manager/core/reconcile"
	"book-manager/feature/catalog"
	"book-manager/feature/catalog/links"
	"book-manager/feature/catalog/models"

	"go.uber.org/zap"
)

// Service handles book pages and the book side of author links.
type Service struct {
	store  *catalog.Store
	links  *links.Adapter
	logger *zap.Logger
}

// NewService creates a new book service.
func NewService(store *catalog.Store, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		links:  links.NewAdapter(links.BookAuthors()),
		logger: logger,
	}
}

// Index lists every book. A non-zero selectedID also lists that book's authors.
func (s *Service) Index(ctx context.Context, selectedID uint) (*models.BookIndexData, error) {
	books, err := s.store.ListBooks(ctx)
	if err != nil {
		return nil, err
	}

	data := &models.BookIndexData{Books: books}
	if selectedID == 0 {
		return data, nil
	}

	for _, book := range books {
		if book.ID == selectedID {
			data.SelectedID = selectedID
			data.Authors = book.Authors()
			return data, nil
		}
	}
	return nil, fmt.Errorf("book %d: %w", selectedID, catalog.ErrNotFound)
}

// Get returns one book with its authors and publisher.
func (s *Service) Get(ctx context.Context, id uint) (*models.Book, error) {
	return s.store.GetBook(ctx, id)
}

// CreateForm returns an empty form with the publisher list.
func (s *Service) CreateForm(ctx context.Context, input models.BookInput, errs models.Errors) (*models.BookForm, error) {
	publishers, err := s.store.ListPublishers(ctx)
	if err != nil {
		return nil, err
	}

	form := &models.BookForm{Publishers: publishers, Categories: models.Categories(), Errors: errs}
	input.Apply(&form.Book)
	return form, nil
}

// Create validates and inserts a new book.
func (s *Service) Create(ctx context.Context, input models.BookInput) (*models.Book, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var book models.Book
	input.Apply(&book)
	if err := s.store.CreateBook(ctx, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

// EditForm loads a book with one checkbox per author and the publisher list.
func (s *Service) EditForm(ctx context.Context, id uint) (*models.BookForm, error) {
	book, err := s.store.GetBook(ctx, id)
	if err != nil {
		return nil, err
	}
	authors, err := s.store.ListAuthors(ctx)
	if err != nil {
		return nil, err
	}
	publishers, err := s.store.ListPublishers(ctx)
	if err != nil {
		return nil, err
	}

	return &models.BookForm{
		Book:       *book,
		Authors:    links.AuthorCheckBoxes(book, authors),
		Publishers: publishers,
		Categories: models.Categories(),
	}, nil
}

// Update saves the book's columns and reconciles its authors against sel
// in one transaction. It returns the reloaded book and the applied plan.
func (s *Service) Update(ctx context.Context, id uint, input models.BookInput, sel reconcile.Selection) (*models.Book, *reconcile.ReconcilePlan, error) {
	if err := input.Validate(); err != nil {
		return nil, nil, err
	}

	var plan *reconcile.ReconcilePlan
	err := s.store.Transaction(ctx, func(tx *catalog.Store) error {
		book, err := tx.GetBook(ctx, id)
		if err != nil {
			return err
		}
		input.Apply(book)
		if err := tx.UpdateBook(ctx, book); err != nil {
			return err
		}

		plan, _, err = reconcile.ReconcileAndApply(ctx, s.links.Spec(), tx.DB(), book.Key(), sel, reconcile.ReconcileOptions{Confirmed: true})
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	s.logger.Debug("Book authors reconciled",
		zap.Uint("book_id", id),
		zap.Int("linked", plan.Summary.LinkActions),
		zap.Int("unlinked", plan.Summary.UnlinkActions),
		zap.Int("ignored", plan.Summary.Ignored),
	)

	book, err := s.store.GetBook(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return book, plan, nil
}

// RetryForm rebuilds an edit form after a failed update, keeping the
// submitted fields and checkbox state.
func (s *Service) RetryForm(ctx context.Context, id uint, input models.BookInput, sel reconcile.Selection, errs models.Errors) (*models.BookForm, error) {
	form, err := s.EditForm(ctx, id)
	if err != nil {
		return nil, err
	}

	input.Apply(&form.Book)
	selected := sel.Set()
	for i := range form.Authors {
		_, form.Authors[i].Checked = selected[models.Author{ID: form.Authors[i].ID}.Key()]
	}
	form.Errors = errs
	return form, nil
}

// Delete removes a book and its author links.
func (s *Service) Delete(ctx context.Context, id uint) error {
	return s.store.DeleteBook(ctx, id)
}
