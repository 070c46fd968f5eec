package export

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
	"time"

	"book-manager/core/storage"
	"book-manager/feature/catalog"
	"book-manager/feature/catalog/models"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Prefix is the folder holding snapshots in the bucket.
const Prefix = "exports/"

// ErrInvalidName is returned for snapshot names outside the export folder.
var ErrInvalidName = errors.New("invalid snapshot name")

// Snapshot is the full catalog as flat rows.
type Snapshot struct {
	GeneratedAt time.Time           `json:"generated_at"`
	Publishers  []models.Publisher  `json:"publishers"`
	Authors     []models.Author     `json:"authors"`
	Books       []models.Book       `json:"books"`
	Links       []models.BookAuthor `json:"links"`
}

// Info describes one stored snapshot.
type Info struct {
	Name         string    `json:"name"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}

// Service writes and lists catalog snapshots.
type Service struct {
	store  *catalog.Store
	client storage.Client
	bucket string
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a new export service.
func NewService(store *catalog.Store, client storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		client: client,
		bucket: bucket,
		logger: logger,
		now:    time.Now,
	}
}

// Build reads the whole catalog in one transaction.
func (s *Service) Build(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{GeneratedAt: s.now().UTC()}

	err := s.store.Transaction(ctx, func(tx *catalog.Store) error {
		db := tx.DB()
		if err := db.Order("id").Find(&snap.Publishers).Error; err != nil {
			return fmt.Errorf("failed to read publishers: %w", err)
		}
		if err := db.Order("id").Find(&snap.Authors).Error; err != nil {
			return fmt.Errorf("failed to read authors: %w", err)
		}
		if err := db.Order("id").Find(&snap.Books).Error; err != nil {
			return fmt.Errorf("failed to read books: %w", err)
		}
		if err := db.Order("book_id, author_id").Find(&snap.Links).Error; err != nil {
			return fmt.Errorf("failed to read links: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// Export builds a snapshot and uploads it as JSON.
func (s *Service) Export(ctx context.Context) (*Info, error) {
	snap, err := s.Build(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}

	name := Prefix + "catalog-" + snap.GeneratedAt.Format("20060102T150405Z") + ".json"
	_, err = s.client.PutObject(ctx, s.bucket, name, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload %s: %w", name, err)
	}

	s.logger.Info("Catalog exported",
		zap.String("object", name),
		zap.Int("books", len(snap.Books)),
		zap.Int("authors", len(snap.Authors)),
		zap.Int("links", len(snap.Links)),
	)
	return &Info{Name: path.Base(name), Size: int64(len(data)), LastModified: snap.GeneratedAt}, nil
}

// List returns the stored snapshots, newest first.
func (s *Service) List(ctx context.Context) ([]Info, error) {
	infos := []Info{}
	opts := minio.ListObjectsOptions{Prefix: Prefix, Recursive: true}
	for obj := range s.client.ListObjects(ctx, s.bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list snapshots: %w", obj.Err)
		}
		if !strings.HasSuffix(obj.Key, ".json") {
			continue
		}
		infos = append(infos, Info{Name: path.Base(obj.Key), Size: obj.Size, LastModified: obj.LastModified})
	}

	sort.Slice(infos, func(i, j int) bool { return infos[i].Name > infos[j].Name })
	return infos, nil
}

// Open streams one stored snapshot. The caller closes the reader.
func (s *Service) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if name == "" || name != path.Base(name) || !strings.HasSuffix(name, ".json") {
		return nil, fmt.Errorf("%q: %w", name, ErrInvalidName)
	}
	return s.client.GetObject(ctx, s.bucket, Prefix+name, minio.GetObjectOptions{})
}
