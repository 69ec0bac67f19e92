package usecase

import (
	"context"
	"time"

	"github.com/ferdian3456/jobboard/internal/constant"
	"github.com/ferdian3456/jobboard/internal/model"

	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

type SavedJobStore interface {
	CheckSaved(ctx context.Context, jobId int64, userId int64) (bool, error)
	CreateSavedJob(ctx context.Context, savedJob model.SavedJob) (int64, error)
	CountUserSavedJobs(ctx context.Context, userId int64) (int, error)
	GetUserSavedJobs(ctx context.Context, userId int64, limit int, offset int) ([]model.SavedJobResponse, error)
	DeleteUserSavedJob(ctx context.Context, id int64, userId int64) (int64, error)
}

type SavedJobUsecase struct {
	JobRepository      JobStore
	SavedJobRepository SavedJobStore
	Log                *zap.Logger
	Config             *koanf.Koanf
}

func NewSavedJobUsecase(jobRepository JobStore, savedJobRepository SavedJobStore, zap *zap.Logger, koanf *koanf.Koanf) *SavedJobUsecase {
	return &SavedJobUsecase{
		JobRepository:      jobRepository,
		SavedJobRepository: savedJobRepository,
		Log:                zap,
		Config:             koanf,
	}
}

func (usecase *SavedJobUsecase) Save(ctx context.Context, auth model.AuthContext, jobId int64) error {
	_, err := usecase.JobRepository.GetActiveJob(ctx, jobId)
	if err != nil {
		return err
	}

	saved, err := usecase.SavedJobRepository.CheckSaved(ctx, jobId, auth.UserId)
	if err != nil {
		return err
	}

	if saved {
		return validationError(constant.ERR_ALREADY_SAVED_MESSAGE, "jobId")
	}

	now := time.Now().UTC()
	_, err = usecase.SavedJobRepository.CreateSavedJob(ctx, model.SavedJob{
		JobId:          jobId,
		UserId:         auth.UserId,
		CreateDatetime: now,
		UpdateDatetime: now,
	})
	if err != nil {
		return err
	}

	return nil
}

func (usecase *SavedJobUsecase) SavedJobs(ctx context.Context, auth model.AuthContext, page int) (model.PageResponse[model.SavedJobResponse], error) {
	response := model.PageResponse[model.SavedJobResponse]{}

	total, err := usecase.SavedJobRepository.CountUserSavedJobs(ctx, auth.UserId)
	if err != nil {
		return response, err
	}

	pageInfo, offset := model.NewPageInfo(page, constant.PAGE_SIZE, total)

	savedJobs, err := usecase.SavedJobRepository.GetUserSavedJobs(ctx, auth.UserId, constant.PAGE_SIZE, offset)
	if err != nil {
		return response, err
	}

	response.Items = savedJobs
	response.Page = pageInfo

	return response, nil
}

func (usecase *SavedJobUsecase) RemoveSavedJob(ctx context.Context, auth model.AuthContext, savedJobId int64) error {
	deleted, err := usecase.SavedJobRepository.DeleteUserSavedJob(ctx, savedJobId, auth.UserId)
	if err != nil {
		return err
	}

	if deleted == 0 {
		return notFoundError(constant.MSG_SAVED_JOB_FORBIDDEN, "savedJobId")
	}

	return nil
}
