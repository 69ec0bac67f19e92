package config

import (
	"strings"

	"github.com/ferdian3456/jobboard/internal/storage"

	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

const (
	StorageDriverMinIO = "minio"
	StorageDriverS3    = "s3"
)

// NewBlobStore builds the BlobStore selected by STORAGE_DRIVER.
func NewBlobStore(config *koanf.Koanf, log *zap.Logger) storage.BlobStore {
	driver := strings.ToLower(config.String("STORAGE_DRIVER"))

	switch driver {
	case "", StorageDriverMinIO:
		client := NewMinIO(config, log)
		buckets := storage.Buckets{storage.VisibilityPublic: config.String("MINIO_PUBLIC_BUCKET")}
		return storage.NewMinIOStore(client, buckets, minioBaseURL(config))
	case StorageDriverS3:
		client := NewS3Client(config, log)
		buckets := storage.Buckets{storage.VisibilityPublic: config.String("S3_PUBLIC_BUCKET")}
		return storage.NewS3Store(client, buckets, s3BaseURL(config))
	default:
		log.Fatal("unknown storage driver", zap.String("driver", driver))
		return nil
	}
}
