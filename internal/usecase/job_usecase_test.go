package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/ferdian3456/jobboard/internal/constant"
	"github.com/ferdian3456/jobboard/internal/model"
	"github.com/ferdian3456/jobboard/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	ownerId    int64 = 7
	intruderId int64 = 8
	ownedJobId int64 = 11
)

func newJobUsecaseFixture(jobs ...model.Job) (*JobUsecase, *fakeJobStore) {
	store := newFakeJobStore(jobs...)
	return NewJobUsecase(newFakeCategoryStore(), store, util.NewValidator(), zap.NewNop(), nil), store
}

func ownedJob() model.Job {
	return model.Job{
		Id:          ownedJobId,
		UserId:      ownerId,
		Title:       "Senior Go Engineer",
		CategoryId:  1,
		JobTypeId:   1,
		Vacancy:     1,
		Location:    "Jakarta",
		Description: "Build services",
		CompanyName: "Acme Corp",
		Status:      model.JobStatusActive,
	}
}

func validJobRequest() model.JobRequest {
	return model.JobRequest{
		Title:       "  Backend Developer  ",
		Category:    1,
		JobType:     1,
		Vacancy:     2,
		Location:    "Bandung",
		Description: "Own the billing service",
		CompanyName: "Acme Corp",
	}
}

func requireValidationCode(t *testing.T, err error, code string) *model.ValidationError {
	t.Helper()

	var validationErr *model.ValidationError
	require.True(t, errors.As(err, &validationErr), "expected *model.ValidationError, got %v", err)
	assert.Equal(t, code, validationErr.Code)
	return validationErr
}

func TestCreateJob_StoresTrimmedActiveJob(t *testing.T) {
	usecase, store := newJobUsecaseFixture()

	response, err := usecase.CreateJob(context.Background(), model.AuthContext{UserId: ownerId}, validJobRequest())
	require.NoError(t, err)
	assert.Equal(t, "Backend Developer", response.Title)
	assert.Equal(t, model.JobStatusActive, response.Status)

	stored := store.jobs[response.Id]
	require.NotNil(t, stored)
	assert.Equal(t, ownerId, stored.UserId)
	assert.False(t, stored.IsFeatured)
}

func TestCreateJob_RejectsInactiveCategoryAndUnknownJobType(t *testing.T) {
	usecase, store := newJobUsecaseFixture()
	payload := validJobRequest()
	payload.Category = 2
	payload.JobType = 9

	_, err := usecase.CreateJob(context.Background(), model.AuthContext{UserId: ownerId}, payload)
	validationErr := requireValidationCode(t, err, constant.ERR_VALIDATION_CODE)
	assert.Contains(t, validationErr.Fields, "category")
	assert.Contains(t, validationErr.Fields, "job_type")
	assert.Empty(t, store.jobs)
}

func TestCreateJob_RejectsMissingFields(t *testing.T) {
	usecase, store := newJobUsecaseFixture()

	_, err := usecase.CreateJob(context.Background(), model.AuthContext{UserId: ownerId}, model.JobRequest{})
	validationErr := requireValidationCode(t, err, constant.ERR_VALIDATION_CODE)
	assert.Contains(t, validationErr.Fields, "title")
	assert.Empty(t, store.jobs)
}

func TestGetJobForEdit_OwnerOnly(t *testing.T) {
	usecase, _ := newJobUsecaseFixture(ownedJob())

	response, err := usecase.GetJobForEdit(context.Background(), model.AuthContext{UserId: ownerId}, ownedJobId)
	require.NoError(t, err)
	assert.Equal(t, "Senior Go Engineer", response.Title)

	_, err = usecase.GetJobForEdit(context.Background(), model.AuthContext{UserId: intruderId}, ownedJobId)
	requireValidationCode(t, err, constant.ERR_NOT_FOUND_ERROR)
}

func TestUpdateJob_ByNonOwnerIsNotFound(t *testing.T) {
	usecase, store := newJobUsecaseFixture(ownedJob())

	_, err := usecase.UpdateJob(context.Background(), model.AuthContext{UserId: intruderId}, ownedJobId, validJobRequest())
	requireValidationCode(t, err, constant.ERR_NOT_FOUND_ERROR)
	assert.Equal(t, "Senior Go Engineer", store.jobs[ownedJobId].Title)
}

func TestUpdateJob_ByOwner(t *testing.T) {
	usecase, store := newJobUsecaseFixture(ownedJob())

	response, err := usecase.UpdateJob(context.Background(), model.AuthContext{UserId: ownerId}, ownedJobId, validJobRequest())
	require.NoError(t, err)
	assert.Equal(t, "Backend Developer", response.Title)
	assert.Equal(t, "Backend Developer", store.jobs[ownedJobId].Title)
	assert.Equal(t, ownerId, store.jobs[ownedJobId].UserId)
}

func TestDeleteJob_ByNonOwnerIsNotFound(t *testing.T) {
	usecase, store := newJobUsecaseFixture(ownedJob())

	err := usecase.DeleteJob(context.Background(), model.AuthContext{UserId: intruderId}, ownedJobId)
	validationErr := requireValidationCode(t, err, constant.ERR_NOT_FOUND_ERROR)
	assert.Equal(t, constant.MSG_JOB_DELETE_FORBIDDEN, validationErr.Message)
	assert.Contains(t, store.jobs, ownedJobId)

	err = usecase.DeleteJob(context.Background(), model.AuthContext{UserId: ownerId}, ownedJobId)
	require.NoError(t, err)
	assert.NotContains(t, store.jobs, ownedJobId)
}

func TestMyJobs_OnlyListsOwnJobs(t *testing.T) {
	other := ownedJob()
	other.Id = 12
	other.UserId = intruderId
	usecase, _ := newJobUsecaseFixture(ownedJob(), other)

	response, err := usecase.MyJobs(context.Background(), model.AuthContext{UserId: ownerId}, 1)
	require.NoError(t, err)
	require.Len(t, response.Items, 1)
	assert.Equal(t, ownedJobId, response.Items[0].Id)
	assert.Equal(t, 1, response.Page.Total)
}
