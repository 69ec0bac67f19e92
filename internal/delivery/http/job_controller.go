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

type JobController struct {
	JobUsecase *usecase.JobUsecase
	Log        *zap.Logger
	Config     *koanf.Koanf
}

func NewJobController(jobUsecase *usecase.JobUsecase, zap *zap.Logger, koanf *koanf.Koanf) *JobController {
	return &JobController{
		JobUsecase: jobUsecase,
		Log:        zap,
		Config:     koanf,
	}
}

func (controller JobController) GetFormOptions(ctx *fiber.Ctx) error {
	log := observability.WithContext(ctx.UserContext(), controller.Log)

	response, err := controller.JobUsecase.GetFormOptions(ctx.UserContext())
	if err != nil {
		return util.SendErrorResponseInternalServer(ctx, log, err)
	}

	return util.SendSuccessResponseWithData(ctx, response)
}

func (controller JobController) CreateJob(ctx *fiber.Ctx) error {
	log := observability.WithContext(ctx.UserContext(), controller.Log)

	auth, err := authContext(ctx)
	if err != nil {
		return util.SendErrorResponseFromError(ctx, log, err)
	}

	var payload model.JobRequest
	err = util.ReadRequestBody(ctx, &payload)
	if err != nil {
		return util.SendErrorResponseFromError(ctx, log, err)
	}

	response, err := controller.JobUsecase.CreateJob(ctx.UserContext(), auth, payload)
	if err != nil {
		return util.SendErrorResponseFromError(ctx, log, err)
	}

	return util.SendSuccessResponseCreated(ctx, constant.MSG_JOB_CREATED, response)
}

func (controller JobController) MyJobs(ctx *fiber.Ctx) error {
	log := observability.WithContext(ctx.UserContext(), controller.Log)

	auth, err := authContext(ctx)
	if err != nil {
		return util.SendErrorResponseFromError(ctx, log, err)
	}

	response, err := controller.JobUsecase.MyJobs(ctx.UserContext(), auth, ctx.QueryInt("page", 1))
	if err != nil {
		return util.SendErrorResponseInternalServer(ctx, log, err)
	}

	return util.SendSuccessResponseWithData(ctx, response)
}

func (controller JobController) GetJob(ctx *fiber.Ctx) error {
	log := observability.WithContext(ctx.UserContext(), controller.Log)

	auth, err := authContext(ctx)
	if err != nil {
		return util.SendErrorResponseFromError(ctx, log, err)
	}

	jobId, err := pathId(ctx, "id", "Job not found")
	if err != nil {
		return util.SendErrorResponseFromError(ctx, log, err)
	}

	response, err := controller.JobUsecase.GetJobForEdit(ctx.UserContext(), auth, jobId)
	if err != nil {
		return util.SendErrorResponseFromError(ctx, log, err)
	}

	return util.SendSuccessResponseWithData(ctx, response)
}

func (controller JobController) UpdateJob(ctx *fiber.Ctx) error {
	log := observability.WithContext(ctx.UserContext(), controller.Log)

	auth, err := authContext(ctx)
	if err != nil {
		return util.SendErrorResponseFromError(ctx, log, err)
	}

	jobId, err := pathId(ctx, "id", "Job not found")
	if err != nil {
		return util.SendErrorResponseFromError(ctx, log, err)
	}

	var payload model.JobRequest
	err = util.ReadRequestBody(ctx, &payload)
	if err != nil {
		return util.SendErrorResponseFromError(ctx, log, err)
	}

	response, err := controller.JobUsecase.UpdateJob(ctx.UserContext(), auth, jobId, payload)
	if err != nil {
		return util.SendErrorResponseFromError(ctx, log, err)
	}

	return util.SendSuccessResponseWithMessageAndData(ctx, constant.MSG_JOB_UPDATED, response)
}

func (controller JobController) DeleteJob(ctx *fiber.Ctx) error {
	log := observability.WithContext(ctx.UserContext(), controller.Log)

	auth, err := authContext(ctx)
	if err != nil {
		return util.SendErrorResponseFromError(ctx, log, err)
	}

	jobId, err := pathId(ctx, "id", constant.MSG_JOB_DELETE_FORBIDDEN)
	if err != nil {
		return util.SendErrorResponseFromError(ctx, log, err)
	}

	err = controller.JobUsecase.DeleteJob(ctx.UserContext(), auth, jobId)
	if err != nil {
		return util.SendErrorResponseFromError(ctx, log, err)
	}

	return util.SendSuccessResponseWithMessage(ctx, constant.MSG_JOB_DELETED)
}
