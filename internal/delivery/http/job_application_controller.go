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

type JobApplicationController struct {
	JobApplicationUsecase *usecase.JobApplicationUsecase
	Log                   *zap.Logger
	Config                *koanf.Koanf
}

func NewJobApplicationController(jobApplicationUsecase *usecase.JobApplicationUsecase, zap *zap.Logger, koanf *koanf.Koanf) *JobApplicationController {
	return &JobApplicationController{
		JobApplicationUsecase: jobApplicationUsecase,
		Log:                   zap,
		Config:                koanf,
	}
}

func (controller JobApplicationController) Apply(ctx *fiber.Ctx) error {
	log := observability.WithContext(ctx.UserContext(), controller.Log)

	auth, err := authContext(ctx)
	if err != nil {
		return util.SendErrorResponseFromError(ctx, log, err)
	}

	jobId, err := pathId(ctx, "id", "Job does not exist")
	if err != nil {
		return util.SendErrorResponseFromError(ctx, log, err)
	}

	err = controller.JobApplicationUsecase.Apply(ctx.UserContext(), auth, jobId)
	if err != nil {
		return util.SendErrorResponseFromError(ctx, log, err)
	}

	return util.SendSuccessResponseWithMessage(ctx, constant.MSG_JOB_APPLIED)
}

func (controller JobApplicationController) MyApplications(ctx *fiber.Ctx) error {
	log := observability.WithContext(ctx.UserContext(), controller.Log)

	auth, err := authContext(ctx)
	if err != nil {
		return util.SendErrorResponseFromError(ctx, log, err)
	}

	response, err := controller.JobApplicationUsecase.MyApplications(ctx.UserContext(), auth, ctx.QueryInt("page", 1))
	if err != nil {
		return util.SendErrorResponseInternalServer(ctx, log, err)
	}

	return util.SendSuccessResponseWithData(ctx, response)
}

func (controller JobApplicationController) RemoveApplication(ctx *fiber.Ctx) error {
	log := observability.WithContext(ctx.UserContext(), controller.Log)

	auth, err := authContext(ctx)
	if err != nil {
		return util.SendErrorResponseFromError(ctx, log, err)
	}

	applicationId, err := pathId(ctx, "id", constant.MSG_APPLICATION_FORBIDDEN)
	if err != nil {
		return util.SendErrorResponseFromError(ctx, log, err)
	}

	err = controller.JobApplicationUsecase.RemoveApplication(ctx.UserContext(), auth, applicationId)
	if err != nil {
		return util.SendErrorResponseFromError(ctx, log, err)
	}

	return util.SendSuccessResponseWithMessage(ctx, constant.MSG_APPLICATION_REMOVED)
}
