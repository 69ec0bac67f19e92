package usecase

import (
	"context"
	"time"

	"github.com/ferdian3456/jobboard/internal/constant"
	"github.com/ferdian3456/jobboard/internal/model"
	"github.com/ferdian3456/jobboard/internal/observability"
	"github.com/ferdian3456/jobboard/internal/util"

	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

type JobApplicationStore interface {
	CheckApplied(ctx context.Context, jobId int64, userId int64) (bool, error)
	CreateApplication(ctx context.Context, application model.JobApplication) (int64, error)
	CountUserApplications(ctx context.Context, userId int64) (int, error)
	GetUserApplications(ctx context.Context, userId int64, limit int, offset int) ([]model.JobApplicationResponse, error)
	DeleteUserApplication(ctx context.Context, id int64, userId int64) (int64, error)
}

type UserFinder interface {
	FindById(ctx context.Context, id int64) (model.User, error)
}

type JobApplicationUsecase struct {
	JobRepository            JobStore
	JobApplicationRepository JobApplicationStore
	UserRepository           UserFinder
	Mailer                   EmailSender
	Log                      *zap.Logger
	Config                   *koanf.Koanf
}

func NewJobApplicationUsecase(jobRepository JobStore, jobApplicationRepository JobApplicationStore, userRepository UserFinder, mailer EmailSender, zap *zap.Logger, koanf *koanf.Koanf) *JobApplicationUsecase {
	return &JobApplicationUsecase{
		JobRepository:            jobRepository,
		JobApplicationRepository: jobApplicationRepository,
		UserRepository:           userRepository,
		Mailer:                   mailer,
		Log:                      zap,
		Config:                   koanf,
	}
}

func (usecase *JobApplicationUsecase) Apply(ctx context.Context, auth model.AuthContext, jobId int64) error {
	job, err := usecase.JobRepository.GetActiveJob(ctx, jobId)
	if err != nil {
		return err
	}

	if job.UserId == auth.UserId {
		return validationError("You can not apply on your own job.", "jobId")
	}

	applied, err := usecase.JobApplicationRepository.CheckApplied(ctx, jobId, auth.UserId)
	if err != nil {
		return err
	}

	if applied {
		return validationError(constant.ERR_ALREADY_APPLIED_MESSAGE, "jobId")
	}

	now := time.Now().UTC()
	application := model.JobApplication{
		JobId:          jobId,
		UserId:         auth.UserId,
		EmployerId:     job.UserId,
		AppliedDate:    now,
		CreateDatetime: now,
		UpdateDatetime: now,
	}

	_, err = usecase.JobApplicationRepository.CreateApplication(ctx, application)
	if err != nil {
		return err
	}

	usecase.notifyEmployer(ctx, job, auth.UserId)

	return nil
}

// notifyEmployer emails the job owner about a new applicant. The application
// is already stored, so failures are only logged.
func (usecase *JobApplicationUsecase) notifyEmployer(ctx context.Context, job model.Job, applicantId int64) {
	if usecase.Mailer == nil {
		return
	}

	log := observability.WithContext(ctx, usecase.Log).With(zap.Int64("jobId", job.Id))

	employer, err := usecase.UserRepository.FindById(ctx, job.UserId)
	if err != nil {
		log.Warn("failed to load employer for job notification", zap.Error(err))
		return
	}

	applicant, err := usecase.UserRepository.FindById(ctx, applicantId)
	if err != nil {
		log.Warn("failed to load applicant for job notification", zap.Error(err))
		return
	}

	body, err := util.RenderTemplate("job_applied.html", model.JobAppliedTemplateData{
		EmployerName:   employer.Name,
		JobTitle:       job.Title,
		ApplicantName:  applicant.Name,
		ApplicantEmail: applicant.Email,
		ApplicantPhone: applicant.Mobile,
	})
	if err != nil {
		log.Warn("failed to render job notification", zap.Error(err))
		return
	}

	err = usecase.Mailer.Send(employer.Email, "New application for "+job.Title, body)
	if err != nil {
		log.Warn("failed to send job notification", zap.Error(err))
	}
}

func (usecase *JobApplicationUsecase) MyApplications(ctx context.Context, auth model.AuthContext, page int) (model.PageResponse[model.JobApplicationResponse], error) {
	response := model.PageResponse[model.JobApplicationResponse]{}

	total, err := usecase.JobApplicationRepository.CountUserApplications(ctx, auth.UserId)
	if err != nil {
		return response, err
	}

	pageInfo, offset := model.NewPageInfo(page, constant.PAGE_SIZE, total)

	applications, err := usecase.JobApplicationRepository.GetUserApplications(ctx, auth.UserId, constant.PAGE_SIZE, offset)
	if err != nil {
		return response, err
	}

	response.Items = applications
	response.Page = pageInfo

	return response, nil
}

func (usecase *JobApplicationUsecase) RemoveApplication(ctx context.Context, auth model.AuthContext, applicationId int64) error {
	deleted, err := usecase.JobApplicationRepository.DeleteUserApplication(ctx, applicationId, auth.UserId)
	if err != nil {
		return err
	}

	if deleted == 0 {
		return notFoundError(constant.MSG_APPLICATION_FORBIDDEN, "applicationId")
	}

	return nil
}
