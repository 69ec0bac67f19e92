package config

import (
	"context"
	"fmt"

	"github.com/knadh/koanf/v2"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

const publicReadPolicy = `{
	"Version": "2012-10-17",
	"Statement": [{
		"Effect": "Allow",
		"Principal": {"AWS": ["*"]},
		"Action": ["s3:GetObject"],
		"Resource": ["arn:aws:s3:::%s/*"]
	}]
}`

func NewMinIO(config *koanf.Koanf, log *zap.Logger) *minio.Client {
	minioClient, err := minio.New(config.String("MINIO_URL"), &minio.Options{
		Creds:  credentials.NewStaticV4(config.String("MINIO_USER"), config.String("MINIO_PASSWORD"), ""),
		Secure: !config.Bool("MINIO_HTTP"),
	})
	if err != nil {
		log.Fatal("failed to initialize minio client", zap.Error(err))
	}

	bucketName := config.String("MINIO_PUBLIC_BUCKET")
	ctx := context.Background()

	err = minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{
		Region: config.String("MINIO_LOCATION"),
	})
	if err != nil {
		exists, errBucketExists := minioClient.BucketExists(ctx, bucketName)
		if errBucketExists == nil && exists {
			log.Info("minio bucket already exists", zap.String("bucket", bucketName))
		} else {
			log.Fatal("failed to create minio bucket", zap.String("bucket", bucketName), zap.Error(err))
		}
	} else {
		log.Info("successfully created minio bucket", zap.String("bucket", bucketName))
	}

	err = minioClient.SetBucketPolicy(ctx, bucketName, fmt.Sprintf(publicReadPolicy, bucketName))
	if err != nil {
		log.Warn("failed to set public read policy on minio bucket", zap.String("bucket", bucketName), zap.Error(err))
	}

	return minioClient
}

func minioBaseURL(config *koanf.Koanf) string {
	if config.String("PUBLIC_BASE_URL") != "" {
		return config.String("PUBLIC_BASE_URL")
	}

	scheme := "https"
	if config.Bool("MINIO_HTTP") {
		scheme = "http"
	}

	return scheme + "://" + config.String("MINIO_URL")
}
