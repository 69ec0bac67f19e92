package testutil

import (
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/ferdian3456/jobboard/internal/config"
	"github.com/ferdian3456/jobboard/internal/exception"
	"github.com/ferdian3456/jobboard/internal/imaging"
	"github.com/ferdian3456/jobboard/internal/observability"
	"github.com/ferdian3456/jobboard/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/knadh/koanf/v2"
	"github.com/minio/minio-go/v7"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const TestBucket = "jobboard-test"

type TestApp struct {
	App     *fiber.App
	DB      *pgxpool.Pool
	DBCache *redis.Client
	MinIO   *minio.Client
	Config  *koanf.Koanf
}

func (testApp *TestApp) Close() {
	testApp.DB.Close()
	_ = testApp.DBCache.Close()
}

// SetupTestApp wires the full application against the containers in infra.
func SetupTestApp(t *testing.T, infra *TestInfra) *TestApp {
	t.Log("Setting up test application...")

	smtpHost, smtpPortStr, _ := strings.Cut(infra.MailhogSMTP, ":")
	smtpPort, err := strconv.Atoi(smtpPortStr)
	require.NoError(t, err)

	testConfig := koanf.New(".")
	values := map[string]interface{}{
		"POSTGRES_URL":                  infra.PgURL,
		"REDIS_URL":                     infra.RedisURL,
		"JWT_SECRET_KEY":                "test-secret-key-for-jwt-token-generation",
		"STORAGE_DRIVER":                config.StorageDriverMinIO,
		"MINIO_URL":                     infra.MinioURL,
		"MINIO_USER":                    "minioadmin",
		"MINIO_PASSWORD":                "minioadmin",
		"MINIO_PUBLIC_BUCKET":           TestBucket,
		"MINIO_HTTP":                    true,
		"IMAGE_CODEC":                   imaging.CodecDraw,
		"PROFILE_PICTURE_DEFER_CLEANUP": true,
		"AUTH_RATE_LIMIT":               1000,
		"SMTP_HOST":                     smtpHost,
		"SMTP_PORT":                     smtpPort,
		"SENDER_NAME":                   "Job Board Test",
		"SENDER_EMAIL":                  "noreply@jobboard.test",
		"SENDER_PASSWORD":               "",
	}
	for key, value := range values {
		require.NoError(t, testConfig.Set(key, value))
	}

	log := zap.NewNop()

	dbPool, err := pgxpool.New(context.Background(), infra.PgURL)
	require.NoError(t, err, "failed to connect to test db")

	redisClient := config.NewRedisClient(testConfig, log)
	minioClient := config.NewMinIO(testConfig, log)

	registry := prometheus.NewRegistry()

	app := fiber.New(fiber.Config{
		AppName:               "jobboard-test",
		DisableStartupMessage: true,
		DisableKeepalive:      true,
		BodyLimit:             4 * 1024 * 1024,
		ErrorHandler:          exception.ErrorHandler,
	})
	app.Use(exception.Recovery(log))

	config.Server(&config.ServerConfig{
		Router:    app,
		DB:        dbPool,
		DBCache:   redisClient,
		Log:       log,
		Config:    testConfig,
		BlobStore: storage.NewMinIOStore(minioClient, storage.Buckets{storage.VisibilityPublic: TestBucket}, "http://"+infra.MinioURL),
		Codec:     imaging.NewDrawCodec(),
		Mailer:    config.NewMailer(testConfig),
		Metrics:   observability.NewMetrics(registry),
		Gatherer:  registry,
	})

	return &TestApp{
		App:     app,
		DB:      dbPool,
		DBCache: redisClient,
		MinIO:   minioClient,
		Config:  testConfig,
	}
}
