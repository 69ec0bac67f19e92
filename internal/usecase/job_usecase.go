package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/ferdian3456/jobboard/internal/constant"
	"github.com/ferdian3456/jobboard/internal/model"
	"github.com/ferdian3456/jobboard/internal/observability"
	"github.com/ferdian3456/jobboard/internal/util"

	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

type CategoryStore interface {
	GetActiveCategories(ctx context.Context) ([]model.Category, error)
	GetActiveJobTypes(ctx context.Context) ([]model.JobType, error)
	CheckCategoryActive(ctx context.Context, id int64) (bool, error)
	CheckJobTypeActive(ctx context.Context, id int64) (bool, error)
}

// JobStore scopes edits and deletes to the owning user; a job owned by
// someone else is reported as not found.
type JobStore interface {
	CreateJob(ctx context.Context, job model.Job) (int64, error)
	CountUserJobs(ctx context.Context, userId int64) (int, error)
	GetUserJobs(ctx context.Context, userId int64, limit int, offset int) ([]model.MyJobResponse, error)
	GetUserJob(ctx context.Context, id int64, userId int64) (model.Job, error)
	GetActiveJob(ctx context.Context, id int64) (model.Job, error)
	UpdateJob(ctx context.Context, job model.Job) error
	DeleteUserJob(ctx context.Context, id int64, userId int64) (int64, error)
}

type JobUsecase struct {
	CategoryRepository CategoryStore
	JobRepository      JobStore
	Validate           *util.Validator
	Log                *zap.Logger
	Config             *koanf.Koanf
}

func NewJobUsecase(categoryRepository CategoryStore, jobRepository JobStore, validate *util.Validator, zap *zap.Logger, koanf *koanf.Koanf) *JobUsecase {
	return &JobUsecase{
		CategoryRepository: categoryRepository,
		JobRepository:      jobRepository,
		Validate:           validate,
		Log:                zap,
		Config:             koanf,
	}
}

func newJobResponse(job model.Job) model.JobResponse {
	return model.JobResponse{
		Id:              job.Id,
		Title:           job.Title,
		CategoryId:      job.CategoryId,
		JobTypeId:       job.JobTypeId,
		Vacancy:         job.Vacancy,
		Salary:          job.Salary,
		Location:        job.Location,
		Description:     job.Description,
		Benefits:        job.Benefits,
		Responsibility:  job.Responsibility,
		Qualifications:  job.Qualifications,
		Keywords:        job.Keywords,
		Experience:      job.Experience,
		CompanyName:     job.CompanyName,
		CompanyLocation: job.CompanyLocation,
		CompanyWebsite:  job.CompanyWebsite,
		Status:          job.Status,
		CreateDatetime:  job.CreateDatetime,
		UpdateDatetime:  job.UpdateDatetime,
	}
}

func applyJobRequest(job *model.Job, payload model.JobRequest) {
	job.Title = payload.Title
	job.CategoryId = payload.Category
	job.JobTypeId = payload.JobType
	job.Vacancy = payload.Vacancy
	job.Salary = payload.Salary
	job.Location = payload.Location
	job.Description = payload.Description
	job.Benefits = payload.Benefits
	job.Responsibility = payload.Responsibility
	job.Qualifications = payload.Qualifications
	job.Keywords = payload.Keywords
	job.Experience = payload.Experience
	job.CompanyName = payload.CompanyName
	job.CompanyLocation = payload.CompanyLocation
	job.CompanyWebsite = payload.CompanyWebsite
}

func (usecase *JobUsecase) validateJobRequest(ctx context.Context, payload *model.JobRequest) error {
	payload.Title = strings.TrimSpace(payload.Title)
	payload.Location = strings.TrimSpace(payload.Location)
	payload.CompanyName = strings.TrimSpace(payload.CompanyName)

	err := usecase.Validate.ValidateStruct(payload)
	if err != nil {
		return err
	}

	fields := map[string]string{}

	active, err := usecase.CategoryRepository.CheckCategoryActive(ctx, payload.Category)
	if err != nil {
		return err
	}
	if !active {
		fields["category"] = "The selected category is invalid."
	}

	active, err = usecase.CategoryRepository.CheckJobTypeActive(ctx, payload.JobType)
	if err != nil {
		return err
	}
	if !active {
		fields["job_type"] = "The selected job type is invalid."
	}

	if len(fields) > 0 {
		return &model.ValidationError{
			Code:    constant.ERR_VALIDATION_CODE,
			Message: "The given data was invalid.",
			Fields:  fields,
		}
	}

	return nil
}

func (usecase *JobUsecase) GetFormOptions(ctx context.Context) (model.JobFormOptionsResponse, error) {
	response := model.JobFormOptionsResponse{}

	categories, err := usecase.CategoryRepository.GetActiveCategories(ctx)
	if err != nil {
		return response, err
	}

	jobTypes, err := usecase.CategoryRepository.GetActiveJobTypes(ctx)
	if err != nil {
		return response, err
	}

	response.Categories = categories
	response.JobTypes = jobTypes

	return response, nil
}

func (usecase *JobUsecase) CreateJob(ctx context.Context, auth model.AuthContext, payload model.JobRequest) (model.JobResponse, error) {
	err := usecase.validateJobRequest(ctx, &payload)
	if err != nil {
		return model.JobResponse{}, err
	}

	now := time.Now().UTC()
	job := model.Job{
		UserId:         auth.UserId,
		Status:         model.JobStatusActive,
		IsFeatured:     false,
		CreateDatetime: now,
		UpdateDatetime: now,
	}
	applyJobRequest(&job, payload)

	job.Id, err = usecase.JobRepository.CreateJob(ctx, job)
	if err != nil {
		return model.JobResponse{}, err
	}

	observability.WithContext(ctx, usecase.Log).Info("job created", zap.Int64("jobId", job.Id), zap.Int64("userId", auth.UserId))

	return newJobResponse(job), nil
}

func (usecase *JobUsecase) MyJobs(ctx context.Context, auth model.AuthContext, page int) (model.PageResponse[model.MyJobResponse], error) {
	response := model.PageResponse[model.MyJobResponse]{}

	total, err := usecase.JobRepository.CountUserJobs(ctx, auth.UserId)
	if err != nil {
		return response, err
	}

	pageInfo, offset := model.NewPageInfo(page, constant.PAGE_SIZE, total)

	jobs, err := usecase.JobRepository.GetUserJobs(ctx, auth.UserId, constant.PAGE_SIZE, offset)
	if err != nil {
		return response, err
	}

	response.Items = jobs
	response.Page = pageInfo

	return response, nil
}

func (usecase *JobUsecase) GetJobForEdit(ctx context.Context, auth model.AuthContext, jobId int64) (model.JobResponse, error) {
	job, err := usecase.JobRepository.GetUserJob(ctx, jobId, auth.UserId)
	if err != nil {
		return model.JobResponse{}, err
	}

	return newJobResponse(job), nil
}

func (usecase *JobUsecase) UpdateJob(ctx context.Context, auth model.AuthContext, jobId int64, payload model.JobRequest) (model.JobResponse, error) {
	job, err := usecase.JobRepository.GetUserJob(ctx, jobId, auth.UserId)
	if err != nil {
		return model.JobResponse{}, err
	}

	err = usecase.validateJobRequest(ctx, &payload)
	if err != nil {
		return model.JobResponse{}, err
	}

	applyJobRequest(&job, payload)
	job.UpdateDatetime = time.Now().UTC()

	err = usecase.JobRepository.UpdateJob(ctx, job)
	if err != nil {
		return model.JobResponse{}, err
	}

	return newJobResponse(job), nil
}

func (usecase *JobUsecase) DeleteJob(ctx context.Context, auth model.AuthContext, jobId int64) error {
	deleted, err := usecase.JobRepository.DeleteUserJob(ctx, jobId, auth.UserId)
	if err != nil {
		return err
	}

	if deleted == 0 {
		return notFoundError(constant.MSG_JOB_DELETE_FORBIDDEN, "jobId")
	}

	observability.WithContext(ctx, usecase.Log).Info("job deleted", zap.Int64("jobId", jobId), zap.Int64("userId", auth.UserId))

	return nil
}
