package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"
)

type TestInfra struct {
	Postgres *postgres.PostgresContainer
	Redis    *redis.RedisContainer
	MinIO    testcontainers.Container
	MailHog  testcontainers.Container

	PgURL       string
	RedisURL    string
	MinioURL    string
	MailhogURL  string
	MailhogSMTP string
}

func StartInfra(ctx context.Context, t *testing.T) (*TestInfra, error) {
	t.Log("Starting test infrastructure...")

	infra := &TestInfra{}

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("jobboard_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
		),
	)
	if err != nil {
		return infra, fmt.Errorf("failed to start postgres: %w", err)
	}
	infra.Postgres = pgContainer

	infra.PgURL, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return infra, fmt.Errorf("failed to get postgres connection string: %w", err)
	}
	t.Logf("PostgreSQL started at: %s", infra.PgURL)

	redisContainer, err := redis.Run(ctx,
		"redis:7-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Ready to accept connections"),
		),
	)
	if err != nil {
		return infra, fmt.Errorf("failed to start redis: %w", err)
	}
	infra.Redis = redisContainer

	infra.RedisURL, err = hostPort(ctx, redisContainer, "6379")
	if err != nil {
		return infra, fmt.Errorf("failed to get redis address: %w", err)
	}
	t.Logf("Redis started at: %s", infra.RedisURL)

	minioContainer, err := testcontainers.GenericContainer(ctx,
		testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image: "minio/minio:latest",
				Cmd:   []string{"server", "/data"},
				Env: map[string]string{
					"MINIO_ROOT_USER":     "minioadmin",
					"MINIO_ROOT_PASSWORD": "minioadmin",
				},
				ExposedPorts: []string{"9000/tcp"},
				WaitingFor:   wait.ForHTTP("/minio/health/live").WithPort("9000/tcp"),
			},
			Started: true,
		},
	)
	if err != nil {
		return infra, fmt.Errorf("failed to start minio: %w", err)
	}
	infra.MinIO = minioContainer

	infra.MinioURL, err = hostPort(ctx, minioContainer, "9000")
	if err != nil {
		return infra, fmt.Errorf("failed to get minio address: %w", err)
	}
	t.Logf("MinIO started at: %s", infra.MinioURL)

	mailhogContainer, err := testcontainers.GenericContainer(ctx,
		testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "mailhog/mailhog:latest",
				ExposedPorts: []string{"1025/tcp", "8025/tcp"},
				WaitingFor:   wait.ForListeningPort("1025/tcp"),
			},
			Started: true,
		},
	)
	if err != nil {
		return infra, fmt.Errorf("failed to start mailhog: %w", err)
	}
	infra.MailHog = mailhogContainer

	mailhogAPI, err := hostPort(ctx, mailhogContainer, "8025")
	if err != nil {
		return infra, fmt.Errorf("failed to get mailhog API address: %w", err)
	}
	infra.MailhogURL = "http://" + mailhogAPI

	infra.MailhogSMTP, err = hostPort(ctx, mailhogContainer, "1025")
	if err != nil {
		return infra, fmt.Errorf("failed to get mailhog SMTP address: %w", err)
	}
	t.Logf("MailHog started at: %s (API), %s (SMTP)", infra.MailhogURL, infra.MailhogSMTP)

	return infra, nil
}

func hostPort(ctx context.Context, container testcontainers.Container, port nat.Port) (string, error) {
	host, err := container.Host(ctx)
	if err != nil {
		return "", err
	}

	mapped, err := container.MappedPort(ctx, port)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s:%s", host, mapped.Port()), nil
}

func (infra *TestInfra) Terminate(ctx context.Context, t *testing.T) {
	t.Log("Terminating test infrastructure...")

	containers := []testcontainers.Container{infra.MailHog, infra.MinIO}
	if infra.Redis != nil {
		containers = append(containers, infra.Redis)
	}
	if infra.Postgres != nil {
		containers = append(containers, infra.Postgres)
	}

	for _, container := range containers {
		if container == nil {
			continue
		}
		err := container.Terminate(ctx)
		if err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}
}
