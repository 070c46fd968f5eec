package integrity

import (
	"context"
	"testing"

	"book-manager/core/storage"
	"book-manager/core/storage/mocks"
	"book-manager/feature/catalog/catalogtest"
	"book-manager/feature/catalog/models"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func TestService_Links(t *testing.T) {
	store := catalogtest.NewSeededStore(t)
	svc := NewService(store.DB(), nil, storage.Config{}, zap.NewNop())
	ctx := context.Background()

	catalogtest.WithoutForeignKeys(t, store.DB(), func(db *gorm.DB) {
		require.NoError(t, db.Create(&models.BookAuthor{BookID: 1, AuthorID: 77}).Error)
	})

	report, err := svc.CheckLinks(ctx)
	require.NoError(t, err)
	require.Len(t, report.OrphanedLinks, 1)

	removed, err := svc.FixLinks(ctx, report)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)
}

func TestService_StorageDisabled(t *testing.T) {
	svc := NewService(nil, nil, storage.Config{}, zap.NewNop())

	_, err := svc.CheckStorage(context.Background())
	assert.ErrorIs(t, err, ErrStorageDisabled)
	assert.ErrorIs(t, svc.FixStorage(context.Background(), nil), ErrStorageDisabled)
}

func TestService_Storage(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "catalog").Return(true, nil)
	ch := make(chan minio.ObjectInfo)
	close(ch)
	client.On("ListObjects", mock.Anything, "catalog", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))
	client.On("PutObject", mock.Anything, "catalog", "exports/", mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, nil)

	svc := NewService(nil, client, storage.Config{Bucket: "catalog"}, zap.NewNop())

	report, err := svc.CheckStorage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"exports"}, report.Missing)

	require.NoError(t, svc.FixStorage(context.Background(), report))
	client.AssertExpectations(t)
}
