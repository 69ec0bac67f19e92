package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
)

type MinIOStore struct {
	DBObject *minio.Client
	Buckets  Buckets
	BaseURL  string
}

func NewMinIOStore(client *minio.Client, buckets Buckets, baseURL string) *MinIOStore {
	return &MinIOStore{
		DBObject: client,
		Buckets:  buckets,
		BaseURL:  baseURL,
	}
}

func (store *MinIOStore) Delete(ctx context.Context, visibility Visibility, keys ...string) error {
	bucket, err := store.Buckets.resolve(visibility)
	if err != nil {
		return err
	}

	for _, key := range keys {
		err = store.DBObject.RemoveObject(ctx, bucket, key, minio.RemoveObjectOptions{})
		if err != nil && minio.ToErrorResponse(err).Code != "NoSuchKey" {
			return fmt.Errorf("remove object %s: %w", key, err)
		}
	}

	return nil
}

func (store *MinIOStore) StoreAs(ctx context.Context, visibility Visibility, namespace string, filename string, data []byte, contentType string) (string, error) {
	key := objectKey(namespace, filename)

	err := store.Put(ctx, visibility, key, data, contentType)
	if err != nil {
		return "", err
	}

	return key, nil
}

func (store *MinIOStore) Put(ctx context.Context, visibility Visibility, key string, data []byte, contentType string) error {
	bucket, err := store.Buckets.resolve(visibility)
	if err != nil {
		return err
	}

	_, err = store.DBObject.PutObject(ctx, bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{
			ContentType:  contentType,
			CacheControl: publicCacheControl,
		})
	if err != nil {
		return fmt.Errorf("put object %s: %w", key, err)
	}

	return nil
}

func (store *MinIOStore) URL(visibility Visibility, key string) string {
	return objectURL(store.BaseURL, store.Buckets[visibility], key)
}
