package middleware

import (
	"github.com/ferdian3456/jobboard/internal/model"
	"github.com/ferdian3456/jobboard/internal/observability"
	"github.com/ferdian3456/jobboard/internal/usecase"
	"github.com/ferdian3456/jobboard/internal/util"

	"github.com/gofiber/fiber/v2"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

const authLocalsKey = "auth"

type AuthMiddleware struct {
	App         *fiber.App
	Log         *zap.Logger
	Config      *koanf.Koanf
	UserUsecase *usecase.UserUsecase
}

func NewAuthMiddleware(app *fiber.App, zap *zap.Logger, koanf *koanf.Koanf, userUsecase *usecase.UserUsecase) *AuthMiddleware {
	return &AuthMiddleware{
		App:         app,
		Log:         zap,
		Config:      koanf,
		UserUsecase: userUsecase,
	}
}

func (middleware *AuthMiddleware) ProtectedRoute() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		log := observability.WithContext(ctx.UserContext(), middleware.Log)

		tokenString, userId, err := util.ParseBearerToken(ctx.Get("Authorization"), middleware.Config.String("JWT_SECRET_KEY"))
		if err != nil {
			return util.SendErrorResponseFromError(ctx, log, err)
		}

		err = middleware.UserUsecase.GetAccessToken(ctx.UserContext(), userId, tokenString)
		if err != nil {
			return util.SendErrorResponseFromError(ctx, log, err)
		}

		SetAuthContext(ctx, model.AuthContext{UserId: userId})

		log.Debug("request authenticated", zap.Int64("userId", userId))

		return ctx.Next()
	}
}

func SetAuthContext(ctx *fiber.Ctx, auth model.AuthContext) {
	ctx.Locals(authLocalsKey, auth)
}

// GetAuthContext returns the identity stored by ProtectedRoute. Handlers
// mounted behind it can rely on ok being true.
func GetAuthContext(ctx *fiber.Ctx) (model.AuthContext, bool) {
	auth, ok := ctx.Locals(authLocalsKey).(model.AuthContext)
	return auth, ok
}
