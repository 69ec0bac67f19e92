package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ferdian3456/jobboard/internal/config"
	"github.com/ferdian3456/jobboard/internal/delivery/http/middleware"
	"github.com/ferdian3456/jobboard/internal/exception"
	traceMiddleware "github.com/ferdian3456/jobboard/internal/middleware"
	"github.com/ferdian3456/jobboard/internal/observability"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	zapLog "go.uber.org/zap"
)

func main() {
	time.Local = time.UTC

	fiber := config.NewFiber()
	zap := config.NewZap(os.Getenv("LOG_LEVEL"))
	koanf := config.NewKoanf(zap)

	shutdownTracer, err := observability.Init(context.Background(), config.LoadObservabilityConfig(koanf), zap)
	if err != nil {
		zap.Fatal("failed to initialize otel", zapLog.Error(err))
	}

	rds := config.NewRedisClient(koanf, zap)
	postgresql := config.NewPostgresqlPool(koanf, zap)
	blobStore := config.NewBlobStore(koanf, zap)
	codec := config.NewImageCodec(koanf, zap)
	mailer := config.NewMailer(koanf)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := observability.NewMetrics(registry)

	fiber.Use(exception.Recovery(zap))
	fiber.Use(otelfiber.Middleware())
	fiber.Use(traceMiddleware.TraceLoggerMiddleware(zap))
	fiber.Use(middleware.PrometheusMiddleware(metrics))
	fiber.Use(middleware.SetupCORS(koanf))
	fiber.Use(middleware.SetupRateLimiter(zap))
	fiber.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	config.Server(&config.ServerConfig{
		Router:    fiber,
		DB:        postgresql,
		DBCache:   rds,
		Log:       zap,
		Config:    koanf,
		BlobStore: blobStore,
		Codec:     codec,
		Mailer:    mailer,
		Metrics:   metrics,
		Gatherer:  registry,
	})

	GO_SERVER_PORT := koanf.String("GO_SERVER")

	zap.Info("Server is running on: " + GO_SERVER_PORT)

	go func() {
		err := fiber.Listen(GO_SERVER_PORT)
		if err != nil {
			zap.Fatal("error starting server", zapLog.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	<-stop
	zap.Info("got one of stop signals")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = fiber.ShutdownWithContext(ctx)
	if err != nil {
		zap.Warn("timeout, forced kill!", zapLog.Error(err))
		_ = zap.Sync()
		os.Exit(1)
	}

	postgresql.Close()
	_ = rds.Close()

	err = shutdownTracer(ctx)
	if err != nil {
		zap.Warn("failed to flush traces", zapLog.Error(err))
	}

	zap.Info("server has shut down gracefully")
	_ = zap.Sync()
}
