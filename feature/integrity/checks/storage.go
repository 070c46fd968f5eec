package checks

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"book-manager/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// RequiredFolders lists the prefixes the catalog writes to in the bucket.
var RequiredFolders = []string{"exports"}

// StorageReport is the result of the object storage check.
type StorageReport struct {
	Bucket       string   `json:"bucket"`
	BucketExists bool     `json:"bucket_exists"`
	Missing      []string `json:"missing"`
}

// OK reports whether nothing needs fixing.
func (r *StorageReport) OK() bool {
	return r.BucketExists && len(r.Missing) == 0
}

// CheckStorage reports whether the bucket and its folders exist.
func CheckStorage(ctx context.Context, client storage.Client, bucket string) (*StorageReport, error) {
	report := &StorageReport{Bucket: bucket, Missing: []string{}}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	report.BucketExists = exists
	if !exists {
		report.Missing = append(report.Missing, RequiredFolders...)
		return report, nil
	}

	for _, folder := range RequiredFolders {
		opts := minio.ListObjectsOptions{
			Prefix:  folderKey(folder),
			MaxKeys: 1,
		}

		found := false
		for range client.ListObjects(ctx, bucket, opts) {
			found = true
			break
		}
		if !found {
			report.Missing = append(report.Missing, folder)
		}
	}
	return report, nil
}

// FixStorage creates the bucket if needed and a marker object for each missing folder.
func FixStorage(ctx context.Context, client storage.Client, report *StorageReport, region string, logger *zap.Logger) error {
	if !report.BucketExists {
		if err := storage.EnsureBucket(ctx, client, report.Bucket, region); err != nil {
			return err
		}
		logger.Info("Created bucket", zap.String("bucket", report.Bucket))
	}

	for _, folder := range report.Missing {
		_, err := client.PutObject(ctx, report.Bucket, folderKey(folder), bytes.NewReader(nil), 0, minio.PutObjectOptions{})
		if err != nil {
			logger.Error("Failed to create folder", zap.String("folder", folder), zap.Error(err))
			return fmt.Errorf("failed to create folder %s: %w", folder, err)
		}
		logger.Info("Created missing folder", zap.String("folder", folder))
	}
	return nil
}

func folderKey(folder string) string {
	if strings.HasSuffix(folder, "/") {
		return folder
	}
	return folder + "/"
}
