package http

import (
	"github.com/ferdian3456/jobboard/internal/constant"
	"github.com/ferdian3456/jobboard/internal/model"
	"github.com/ferdian3456/jobboard/internal/observability"
	"github.com/ferdian3456/jobboard/internal/usecase"
	"github.com/ferdian3456/jobboard/internal/util"

	"github.com/gofiber/fiber/v2"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

type UserController struct {
	UserUsecase *usecase.UserUsecase
	Log         *zap.Logger
	Config      *koanf.Koanf
}

func NewUserController(userUsecase *usecase.UserUsecase, zap *zap.Logger, koanf *koanf.Koanf) *UserController {
	return &UserController{
		UserUsecase: userUsecase,
		Log:         zap,
		Config:      koanf,
	}
}

func (controller UserController) Register(ctx *fiber.Ctx) error {
	log := observability.WithContext(ctx.UserContext(), controller.Log)

	var payload model.UserRegisterRequest
	err := util.ReadRequestBody(ctx, &payload)
	if err != nil {
		return util.SendErrorResponseFromError(ctx, log, err)
	}

	err = controller.UserUsecase.Register(ctx.UserContext(), payload)
	if err != nil {
		return util.SendErrorResponseFromError(ctx, log, err)
	}

	return util.SendSuccessResponseCreated(ctx, constant.MSG_REGISTERED, nil)
}

func (controller UserController) Login(ctx *fiber.Ctx) error {
	log := observability.WithContext(ctx.UserContext(), controller.Log)

	var payload model.UserLoginRequest
	err := util.ReadRequestBody(ctx, &payload)
	if err != nil {
		return util.SendErrorResponseFromError(ctx, log, err)
	}

	response, err := controller.UserUsecase.Login(ctx.UserContext(), payload)
	if err != nil {
		return util.SendErrorResponseFromError(ctx, log, err)
	}

	return util.SendSuccessResponseWithData(ctx, response)
}

func (controller UserController) ForgotPassword(ctx *fiber.Ctx) error {
	log := observability.WithContext(ctx.UserContext(), controller.Log)

	var payload model.ForgotPasswordRequest
	err := util.ReadRequestBody(ctx, &payload)
	if err != nil {
		return util.SendErrorResponseFromError(ctx, log, err)
	}

	err = controller.UserUsecase.ForgotPassword(ctx.UserContext(), payload)
	if err != nil {
		return util.SendErrorResponseFromError(ctx, log, err)
	}

	return util.SendSuccessResponseWithMessage(ctx, constant.MSG_PASSWORD_RESET_SENT)
}

func (controller UserController) ResetPassword(ctx *fiber.Ctx) error {
	log := observability.WithContext(ctx.UserContext(), controller.Log)

	var payload model.ResetPasswordRequest
	err := util.ReadRequestBody(ctx, &payload)
	if err != nil {
		return util.SendErrorResponseFromError(ctx, log, err)
	}

	err = controller.UserUsecase.ResetPassword(ctx.UserContext(), payload)
	if err != nil {
		return util.SendErrorResponseFromError(ctx, log, err)
	}

	return util.SendSuccessResponseWithMessage(ctx, constant.MSG_PASSWORD_RESET)
}

func (controller UserController) GetUserInfo(ctx *fiber.Ctx) error {
	log := observability.WithContext(ctx.UserContext(), controller.Log)

	auth, err := authContext(ctx)
	if err != nil {
		return util.SendErrorResponseFromError(ctx, log, err)
	}

	response, err := controller.UserUsecase.GetUserInfo(ctx.UserContext(), auth)
	if err != nil {
		return util.SendErrorResponseFromError(ctx, log, err)
	}

	return util.SendSuccessResponseWithData(ctx, response)
}

func (controller UserController) Logout(ctx *fiber.Ctx) error {
	log := observability.WithContext(ctx.UserContext(), controller.Log)

	auth, err := authContext(ctx)
	if err != nil {
		return util.SendErrorResponseFromError(ctx, log, err)
	}

	err = controller.UserUsecase.Logout(ctx.UserContext(), auth)
	if err != nil {
		return util.SendErrorResponseInternalServer(ctx, log, err)
	}

	return util.SendSuccessResponseWithMessage(ctx, constant.MSG_LOGGED_OUT)
}
