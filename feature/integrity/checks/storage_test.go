package checks

import (
	"context"
	"errors"
	"testing"

	"book-manager/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func listing(keys ...string) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(keys))
	for _, k := range keys {
		ch <- minio.ObjectInfo{Key: k}
	}
	close(ch)
	return ch
}

func TestCheckStorage(t *testing.T) {
	t.Run("Bucket Missing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "catalog").Return(false, nil)

		report, err := CheckStorage(context.Background(), client, "catalog")
		require.NoError(t, err)
		assert.False(t, report.BucketExists)
		assert.Equal(t, []string{"exports"}, report.Missing)
		assert.False(t, report.OK())
	})

	t.Run("Folder Missing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "catalog").Return(true, nil)
		client.On("ListObjects", mock.Anything, "catalog", mock.MatchedBy(func(o minio.ListObjectsOptions) bool {
			return o.Prefix == "exports/"
		})).Return(listing())

		report, err := CheckStorage(context.Background(), client, "catalog")
		require.NoError(t, err)
		assert.Equal(t, []string{"exports"}, report.Missing)
	})

	t.Run("All Present", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "catalog").Return(true, nil)
		client.On("ListObjects", mock.Anything, "catalog", mock.Anything).Return(listing("exports/catalog-1.json"))

		report, err := CheckStorage(context.Background(), client, "catalog")
		require.NoError(t, err)
		assert.True(t, report.OK())
	})

	t.Run("Error", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "catalog").Return(false, errors.New("dial tcp"))

		_, err := CheckStorage(context.Background(), client, "catalog")
		assert.ErrorContains(t, err, "dial tcp")
	})
}

func TestFixStorage(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "catalog").Return(false, nil)
	client.On("MakeBucket", mock.Anything, "catalog", minio.MakeBucketOptions{Region: "eu"}).Return(nil)
	client.On("PutObject", mock.Anything, "catalog", "exports/", mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, nil)

	report := &StorageReport{Bucket: "catalog", Missing: []string{"exports"}}
	require.NoError(t, FixStorage(context.Background(), client, report, "eu", zap.NewNop()))
	client.AssertExpectations(t)
}

func TestFixStorage_PutFails(t *testing.T) {
	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, "catalog", "exports/", mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, errors.New("denied"))

	report := &StorageReport{Bucket: "catalog", BucketExists: true, Missing: []string{"exports"}}
	err := FixStorage(context.Background(), client, report, "", zap.NewNop())
	assert.EqualError(t, err, "failed to create folder exports: denied")
}
