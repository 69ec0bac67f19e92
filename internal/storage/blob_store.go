package storage

import (
	"context"
	"fmt"
	"path"
	"strings"
)

type Visibility string

const (
	VisibilityPublic Visibility = "public"
)

// BlobStore is a bucket-backed key/value store for uploaded files. Deleting a
// key that does not exist is not an error.
type BlobStore interface {
	Delete(ctx context.Context, visibility Visibility, keys ...string) error
	StoreAs(ctx context.Context, visibility Visibility, namespace string, filename string, data []byte, contentType string) (string, error)
	Put(ctx context.Context, visibility Visibility, key string, data []byte, contentType string) error
	URL(visibility Visibility, key string) string
}

const publicCacheControl = "public, max-age=31536000, immutable"

// Buckets maps each visibility onto a bucket name.
type Buckets map[Visibility]string

func (b Buckets) resolve(visibility Visibility) (string, error) {
	bucket, ok := b[visibility]
	if !ok || bucket == "" {
		return "", fmt.Errorf("no bucket configured for %q visibility", visibility)
	}

	return bucket, nil
}

func objectKey(namespace string, filename string) string {
	return path.Join(namespace, filename)
}

func objectURL(baseURL string, bucket string, key string) string {
	return strings.TrimRight(baseURL, "/") + "/" + bucket + "/" + strings.TrimLeft(key, "/")
}
