package publishers

import (
	"context"
	"fmt"

	"book-manager/feature/catalog"
	"book-manager/feature/catalog/models"

	"go.uber.org/zap"
)

// Service handles publisher pages.
type Service struct {
	store  *catalog.Store
	logger *zap.Logger
}

// NewService creates a new publisher service.
func NewService(store *catalog.Store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Index lists every publisher. A non-zero selectedID also lists that publisher's books.
func (s *Service) Index(ctx context.Context, selectedID uint) (*models.PublisherIndexData, error) {
	publishers, err := s.store.ListPublishers(ctx)
	if err != nil {
		return nil, err
	}

	data := &models.PublisherIndexData{Publishers: publishers}
	if selectedID == 0 {
		return data, nil
	}

	for _, publisher := range publishers {
		if publisher.ID == selectedID {
			data.SelectedID = selectedID
			data.Books = publisher.Books
			return data, nil
		}
	}
	return nil, fmt.Errorf("publisher %d: %w", selectedID, catalog.ErrNotFound)
}

// Get returns one publisher with its books.
func (s *Service) Get(ctx context.Context, id uint) (*models.Publisher, error) {
	return s.store.GetPublisher(ctx, id)
}

// Create validates and inserts a new publisher.
func (s *Service) Create(ctx context.Context, input models.PublisherInput) (*models.Publisher, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var publisher models.Publisher
	input.Apply(&publisher)
	if err := s.store.CreatePublisher(ctx, &publisher); err != nil {
		return nil, err
	}
	return &publisher, nil
}

// Update validates and saves the publisher's name.
func (s *Service) Update(ctx context.Context, id uint, input models.PublisherInput) (*models.Publisher, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	err := s.store.Transaction(ctx, func(tx *catalog.Store) error {
		publisher, err := tx.GetPublisher(ctx, id)
		if err != nil {
			return err
		}
		input.Apply(publisher)
		return tx.UpdatePublisher(ctx, publisher)
	})
	if err != nil {
		return nil, err
	}
	return s.store.GetPublisher(ctx, id)
}

// Delete removes a publisher. Publishers that still own books are kept.
func (s *Service) Delete(ctx context.Context, id uint) error {
	return s.store.DeletePublisher(ctx, id)
}
