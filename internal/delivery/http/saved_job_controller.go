package http

import (
	"github.com/ferdian3456/jobboard/internal/constant"
	"github.com/ferdian3456/jobboard/internal/observability"
	"github.com/ferdian3456/jobboard/internal/usecase"
	"github.com/ferdian3456/jobboard/internal/util"

	"github.com/gofiber/fiber/v2"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

type SavedJobController struct {
	SavedJobUsecase *usecase.SavedJobUsecase
	Log             *zap.Logger
	Config          *koanf.Koanf
}

func NewSavedJobController(savedJobUsecase *usecase.SavedJobUsecase, zap *zap.Logger, koanf *koanf.Koanf) *SavedJobController {
	return &SavedJobController{
		SavedJobUsecase: savedJobUsecase,
		Log:             zap,
		Config:          koanf,
	}
}

func (controller SavedJobController) Save(ctx *fiber.Ctx) error {
	log := observability.WithContext(ctx.UserContext(), controller.Log)

	auth, err := authContext(ctx)
	if err != nil {
		return util.SendErrorResponseFromError(ctx, log, err)
	}

	jobId, err := pathId(ctx, "id", "Job does not exist")
	if err != nil {
		return util.SendErrorResponseFromError(ctx, log, err)
	}

	err = controller.SavedJobUsecase.Save(ctx.UserContext(), auth, jobId)
	if err != nil {
		return util.SendErrorResponseFromError(ctx, log, err)
	}

	return util.SendSuccessResponseWithMessage(ctx, constant.MSG_JOB_SAVED)
}

func (controller SavedJobController) SavedJobs(ctx *fiber.Ctx) error {
	log := observability.WithContext(ctx.UserContext(), controller.Log)

	auth, err := authContext(ctx)
	if err != nil {
		return util.SendErrorResponseFromError(ctx, log, err)
	}

	response, err := controller.SavedJobUsecase.SavedJobs(ctx.UserContext(), auth, ctx.QueryInt("page", 1))
	if err != nil {
		return util.SendErrorResponseInternalServer(ctx, log, err)
	}

	return util.SendSuccessResponseWithData(ctx, response)
}

func (controller SavedJobController) RemoveSavedJob(ctx *fiber.Ctx) error {
	log := observability.WithContext(ctx.UserContext(), controller.Log)

	auth, err := authContext(ctx)
	if err != nil {
		return util.SendErrorResponseFromError(ctx, log, err)
	}

	savedJobId, err := pathId(ctx, "id", constant.MSG_SAVED_JOB_FORBIDDEN)
	if err != nil {
		return util.SendErrorResponseFromError(ctx, log, err)
	}

	err = controller.SavedJobUsecase.RemoveSavedJob(ctx.UserContext(), auth, savedJobId)
	if err != nil {
		return util.SendErrorResponseFromError(ctx, log, err)
	}

	return util.SendSuccessResponseWithMessage(ctx, constant.MSG_SAVED_JOB_REMOVED)
}
