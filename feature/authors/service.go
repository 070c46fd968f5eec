package authors

import (
	"context"
	"fmt"

	"book-manager/core/reconcile"
	"book-manager/feature/catalog"
	"book-manager/feature/catalog/links"
	"book-manager/feature/catalog/models"

	"go.uber.org/zap"
)

// Service handles author pages and the author side of book links.
type Service struct {
	store  *catalog.Store
	links  *links.Adapter
	logger *zap.Logger
}

// NewService creates a new author service.
func NewService(store *catalog.Store, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		links:  links.NewAdapter(links.AuthorBooks()),
		logger: logger,
	}
}

// Index lists every author. A non-zero selectedID also lists that author's books.
func (s *Service) Index(ctx context.Context, selectedID uint) (*models.AuthorIndexData, error) {
	authors, err := s.store.ListAuthors(ctx)
	if err != nil {
		return nil, err
	}

	data := &models.AuthorIndexData{Authors: authors}
	if selectedID == 0 {
		return data, nil
	}

	for _, author := range authors {
		if author.ID == selectedID {
			data.SelectedID = selectedID
			data.Books = author.Books()
			return data, nil
		}
	}
	return nil, fmt.Errorf("author %d: %w", selectedID, catalog.ErrNotFound)
}

// Get returns one author with their books.
func (s *Service) Get(ctx context.Context, id uint) (*models.Author, error) {
	return s.store.GetAuthor(ctx, id)
}

// Create validates and inserts a new author.
func (s *Service) Create(ctx context.Context, input models.AuthorInput) (*models.Author, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var author models.Author
	input.Apply(&author)
	if err := s.store.CreateAuthor(ctx, &author); err != nil {
		return nil, err
	}
	return &author, nil
}

// EditForm loads an author with one checkbox per book.
func (s *Service) EditForm(ctx context.Context, id uint) (*models.AuthorForm, error) {
	author, err := s.store.GetAuthor(ctx, id)
	if err != nil {
		return nil, err
	}
	books, err := s.store.ListBooks(ctx)
	if err != nil {
		return nil, err
	}
	return &models.AuthorForm{Author: *author, Books: links.BookCheckBoxes(author, books)}, nil
}

// Update saves the author's names and reconciles their books against sel
// in one transaction. It returns the reloaded author and the applied plan.
func (s *Service) Update(ctx context.Context, id uint, input models.AuthorInput, sel reconcile.Selection) (*models.Author, *reconcile.ReconcilePlan, error) {
	if err := input.Validate(); err != nil {
		return nil, nil, err
	}

	var plan *reconcile.ReconcilePlan
	err := s.store.Transaction(ctx, func(tx *catalog.Store) error {
		author, err := tx.GetAuthor(ctx, id)
		if err != nil {
			return err
		}
		input.Apply(author)
		if err := tx.UpdateAuthor(ctx, author); err != nil {
			return err
		}

		plan, _, err = reconcile.ReconcileAndApply(ctx, s.links.Spec(), tx.DB(), author.Key(), sel, reconcile.ReconcileOptions{Confirmed: true})
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	s.logger.Debug("Author books reconciled",
		zap.Uint("author_id", id),
		zap.Int("linked", plan.Summary.LinkActions),
		zap.Int("unlinked", plan.Summary.UnlinkActions),
		zap.Int("ignored", plan.Summary.Ignored),
	)

	author, err := s.store.GetAuthor(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return author, plan, nil
}

// RetryForm rebuilds an edit form after a failed update, keeping the
// submitted names and checkbox state.
func (s *Service) RetryForm(ctx context.Context, id uint, input models.AuthorInput, sel reconcile.Selection, errs models.Errors) (*models.AuthorForm, error) {
	author, err := s.store.GetAuthor(ctx, id)
	if err != nil {
		return nil, err
	}
	books, err := s.store.ListBooks(ctx)
	if err != nil {
		return nil, err
	}

	input.Apply(author)
	selected := sel.Set()
	boxes := links.BookCheckBoxes(&models.Author{}, books)
	for i := range boxes {
		_, boxes[i].Checked = selected[models.Book{ID: boxes[i].ID}.Key()]
	}
	return &models.AuthorForm{Author: *author, Books: boxes, Errors: errs}, nil
}

// Delete removes an author and their links.
func (s *Service) Delete(ctx context.Context, id uint) error {
	return s.store.DeleteAuthor(ctx, id)
}
