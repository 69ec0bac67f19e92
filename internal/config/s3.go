package config

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

func NewS3Client(config *koanf.Koanf, log *zap.Logger) *s3.Client {
	ctx := context.Background()

	options := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(config.String("S3_REGION")),
	}
	if config.String("S3_ACCESS_KEY") != "" {
		options = append(options, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(config.String("S3_ACCESS_KEY"), config.String("S3_SECRET_KEY"), ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, options...)
	if err != nil {
		log.Fatal("failed to load aws config", zap.Error(err))
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = config.Bool("S3_USE_PATH_STYLE")
		if endpoint := config.String("S3_ENDPOINT"); endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})

	bucketName := config.String("S3_PUBLIC_BUCKET")
	_, err = client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(bucketName)})
	if err != nil {
		log.Warn("s3 bucket is not reachable", zap.String("bucket", bucketName), zap.Error(err))
	}

	return client
}

func s3BaseURL(config *koanf.Koanf) string {
	if config.String("PUBLIC_BASE_URL") != "" {
		return config.String("PUBLIC_BASE_URL")
	}

	if config.String("S3_ENDPOINT") != "" {
		return config.String("S3_ENDPOINT")
	}

	return "https://s3." + config.String("S3_REGION") + ".amazonaws.com"
}
