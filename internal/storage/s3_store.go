package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// S3API is the subset of the S3 client the store calls.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type S3Store struct {
	Client  S3API
	Buckets Buckets
	BaseURL string
}

func NewS3Store(client S3API, buckets Buckets, baseURL string) *S3Store {
	return &S3Store{
		Client:  client,
		Buckets: buckets,
		BaseURL: baseURL,
	}
}

func (store *S3Store) Delete(ctx context.Context, visibility Visibility, keys ...string) error {
	bucket, err := store.Buckets.resolve(visibility)
	if err != nil {
		return err
	}

	for _, key := range keys {
		_, err = store.Client.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(bucket),
			Key:    aws.String(key),
		})
		if err != nil && !isNoSuchKey(err) {
			return fmt.Errorf("delete object %s: %w", key, err)
		}
	}

	return nil
}

func (store *S3Store) StoreAs(ctx context.Context, visibility Visibility, namespace string, filename string, data []byte, contentType string) (string, error) {
	key := objectKey(namespace, filename)

	err := store.Put(ctx, visibility, key, data, contentType)
	if err != nil {
		return "", err
	}

	return key, nil
}

func (store *S3Store) Put(ctx context.Context, visibility Visibility, key string, data []byte, contentType string) error {
	bucket, err := store.Buckets.resolve(visibility)
	if err != nil {
		return err
	}

	_, err = store.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType),
		CacheControl:  aws.String(publicCacheControl),
	})
	if err != nil {
		return fmt.Errorf("put object %s: %w", key, err)
	}

	return nil
}

func (store *S3Store) URL(visibility Visibility, key string) string {
	return objectURL(store.BaseURL, store.Buckets[visibility], key)
}

func isNoSuchKey(err error) bool {
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return true
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode() == "NoSuchKey" || apiErr.ErrorCode() == "NotFound"
	}

	return false
}
