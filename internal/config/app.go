package config

import (
	http "github.com/ferdian3456/jobboard/internal/delivery/http"
	"github.com/ferdian3456/jobboard/internal/delivery/http/middleware"
	"github.com/ferdian3456/jobboard/internal/delivery/http/route"
	"github.com/ferdian3456/jobboard/internal/imaging"
	"github.com/ferdian3456/jobboard/internal/observability"
	"github.com/ferdian3456/jobboard/internal/repository"
	"github.com/ferdian3456/jobboard/internal/storage"
	"github.com/ferdian3456/jobboard/internal/usecase"
	"github.com/ferdian3456/jobboard/internal/util"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/knadh/koanf/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type ServerConfig struct {
	Router    *fiber.App
	DB        *pgxpool.Pool
	DBCache   *redis.Client
	Log       *zap.Logger
	Config    *koanf.Koanf
	BlobStore storage.BlobStore
	Codec     imaging.Codec
	Mailer    usecase.EmailSender
	Metrics   *observability.Metrics
	Gatherer  prometheus.Gatherer
}

func Server(config *ServerConfig) {
	validate := util.NewValidator()
	txManager := repository.NewPgxTxManager(config.DB)
	locker := repository.NewRedisLocker(config.DBCache)

	userRepository := repository.NewUserRepository(config.Log, config.DB, config.DBCache)
	categoryRepository := repository.NewCategoryRepository(config.Log, config.DB)
	jobRepository := repository.NewJobRepository(config.Log, config.DB)
	jobApplicationRepository := repository.NewJobApplicationRepository(config.Log, config.DB)
	savedJobRepository := repository.NewSavedJobRepository(config.Log, config.DB)

	userUsecase := usecase.NewUserUsecase(userRepository, config.BlobStore, config.Mailer, validate, config.Log, config.Config)
	profileUsecase := usecase.NewProfileUsecase(userRepository, config.BlobStore, validate, config.Log, config.Config)
	profilePictureUsecase := usecase.NewProfilePictureUsecase(userRepository, txManager, config.BlobStore, config.Codec, locker, config.Metrics, config.Log, config.Config)
	jobUsecase := usecase.NewJobUsecase(categoryRepository, jobRepository, validate, config.Log, config.Config)
	jobApplicationUsecase := usecase.NewJobApplicationUsecase(jobRepository, jobApplicationRepository, userRepository, config.Mailer, config.Log, config.Config)
	savedJobUsecase := usecase.NewSavedJobUsecase(jobRepository, savedJobRepository, config.Log, config.Config)

	userController := http.NewUserController(userUsecase, config.Log, config.Config)
	accountController := http.NewAccountController(profileUsecase, profilePictureUsecase, config.Log, config.Config)
	jobController := http.NewJobController(jobUsecase, config.Log, config.Config)
	jobApplicationController := http.NewJobApplicationController(jobApplicationUsecase, config.Log, config.Config)
	savedJobController := http.NewSavedJobController(savedJobUsecase, config.Log, config.Config)

	authMiddleware := middleware.NewAuthMiddleware(config.Router, config.Log, config.Config, userUsecase)

	routeConfig := route.RouteConfig{
		App:                      config.Router,
		AuthMiddleware:           authMiddleware,
		AuthRateLimiter:          middleware.SetupAuthRateLimiter(config.Log, config.Config.Int("AUTH_RATE_LIMIT")),
		Gatherer:                 config.Gatherer,
		UserController:           userController,
		AccountController:        accountController,
		JobController:            jobController,
		JobApplicationController: jobApplicationController,
		SavedJobController:       savedJobController,
	}

	routeConfig.SetupRoute()
}
