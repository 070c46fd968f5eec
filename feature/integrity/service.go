package integrity

import (
	"context"
	"errors"

	"book-manager/core/storage"
	"book-manager/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrStorageDisabled is returned by storage checks when no object store is configured.
var ErrStorageDisabled = errors.New("object storage is disabled")

// Service handles integrity checks.
type Service struct {
	db     *gorm.DB
	client storage.Client
	bucket string
	region string
	logger *zap.Logger
}

// NewService creates a new integrity service. client may be nil when storage is disabled.
func NewService(db *gorm.DB, client storage.Client, cfg storage.Config, logger *zap.Logger) *Service {
	return &Service{
		db:     db,
		client: client,
		bucket: cfg.Bucket,
		region: cfg.Region,
		logger: logger,
	}
}

// CheckSchema compares the catalog tables with the models.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db)
}

// CheckLinks finds dangling relationships.
func (s *Service) CheckLinks(ctx context.Context) (*checks.LinkReport, error) {
	return checks.CheckLinks(ctx, s.db)
}

// FixLinks removes the orphaned join rows of a report.
func (s *Service) FixLinks(ctx context.Context, report *checks.LinkReport) (int64, error) {
	return checks.FixLinks(ctx, s.db, report.OrphanedLinks)
}

// CheckStorage verifies the export bucket layout.
func (s *Service) CheckStorage(ctx context.Context) (*checks.StorageReport, error) {
	if s.client == nil {
		return nil, ErrStorageDisabled
	}
	return checks.CheckStorage(ctx, s.client, s.bucket)
}

// FixStorage creates what the storage report found missing.
func (s *Service) FixStorage(ctx context.Context, report *checks.StorageReport) error {
	if s.client == nil {
		return ErrStorageDisabled
	}
	return checks.FixStorage(ctx, s.client, report, s.region, s.logger)
}
