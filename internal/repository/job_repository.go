package repository

import (
	"context"
	"errors"

	"github.com/ferdian3456/jobboard/internal/constant"
	"github.com/ferdian3456/jobboard/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type JobRepository struct {
	Log *zap.Logger
	DB  *pgxpool.Pool
}

func NewJobRepository(zap *zap.Logger, db *pgxpool.Pool) *JobRepository {
	return &JobRepository{
		Log: zap,
		DB:  db,
	}
}

const jobColumns = `id,title,category_id,job_type_id,user_id,vacancy,salary,location,description,benefits,
	responsibility,qualifications,keywords,experience,company_name,company_location,company_website,
	status,is_featured,create_datetime,update_datetime`

func jobNotFoundError() error {
	return &model.ValidationError{
		Code:    constant.ERR_NOT_FOUND_ERROR,
		Message: "Job not found",
		Param:   "jobId",
	}
}

func scanJob(row pgx.Row) (model.Job, error) {
	job := model.Job{}
	err := row.Scan(&job.Id, &job.Title, &job.CategoryId, &job.JobTypeId, &job.UserId, &job.Vacancy, &job.Salary, &job.Location,
		&job.Description, &job.Benefits, &job.Responsibility, &job.Qualifications, &job.Keywords, &job.Experience,
		&job.CompanyName, &job.CompanyLocation, &job.CompanyWebsite, &job.Status, &job.IsFeatured,
		&job.CreateDatetime, &job.UpdateDatetime)
	return job, err
}

func (repository *JobRepository) CreateJob(ctx context.Context, job model.Job) (int64, error) {
	query := `INSERT INTO jobs (title,category_id,job_type_id,user_id,vacancy,salary,location,description,benefits,
		responsibility,qualifications,keywords,experience,company_name,company_location,company_website,
		status,is_featured,create_datetime,update_datetime)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20) RETURNING id`

	var id int64
	err := repository.DB.QueryRow(ctx, query, job.Title, job.CategoryId, job.JobTypeId, job.UserId, job.Vacancy, job.Salary,
		job.Location, job.Description, job.Benefits, job.Responsibility, job.Qualifications, job.Keywords, job.Experience,
		job.CompanyName, job.CompanyLocation, job.CompanyWebsite, job.Status, job.IsFeatured,
		job.CreateDatetime, job.UpdateDatetime).Scan(&id)
	if err != nil {
		return id, err
	}

	return id, nil
}

func (repository *JobRepository) CountUserJobs(ctx context.Context, userId int64) (int, error) {
	query := "SELECT COUNT(*) FROM jobs WHERE user_id=$1"

	var total int
	err := repository.DB.QueryRow(ctx, query, userId).Scan(&total)
	if err != nil {
		return total, err
	}

	return total, nil
}

func (repository *JobRepository) GetUserJobs(ctx context.Context, userId int64, limit int, offset int) ([]model.MyJobResponse, error) {
	query := `SELECT A.id,A.title,B.name,A.location,A.status,
			(SELECT COUNT(*) FROM job_applications C WHERE C.job_id = A.id),
			A.create_datetime
			FROM jobs A
			JOIN job_types B ON A.job_type_id = B.id
			WHERE A.user_id=$1
			ORDER BY A.create_datetime DESC, A.id DESC
			LIMIT $2 OFFSET $3`

	rows, err := repository.DB.Query(ctx, query, userId, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := []model.MyJobResponse{}
	for rows.Next() {
		job := model.MyJobResponse{}
		err = rows.Scan(&job.Id, &job.Title, &job.JobTypeName, &job.Location, &job.Status, &job.ApplicationCount, &job.CreateDatetime)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}

	return jobs, rows.Err()
}

// GetUserJob returns the job only when userId owns it.
func (repository *JobRepository) GetUserJob(ctx context.Context, id int64, userId int64) (model.Job, error) {
	query := "SELECT " + jobColumns + " FROM jobs WHERE id=$1 AND user_id=$2 LIMIT 1"

	job, err := scanJob(repository.DB.QueryRow(ctx, query, id, userId))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job, jobNotFoundError()
		}
		return job, err
	}

	return job, nil
}

func (repository *JobRepository) GetActiveJob(ctx context.Context, id int64) (model.Job, error) {
	query := "SELECT " + jobColumns + " FROM jobs WHERE id=$1 AND status=$2 LIMIT 1"

	job, err := scanJob(repository.DB.QueryRow(ctx, query, id, model.JobStatusActive))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job, jobNotFoundError()
		}
		return job, err
	}

	return job, nil
}

func (repository *JobRepository) UpdateJob(ctx context.Context, job model.Job) error {
	query := `UPDATE jobs SET title=$1,category_id=$2,job_type_id=$3,vacancy=$4,salary=$5,location=$6,description=$7,
		benefits=$8,responsibility=$9,qualifications=$10,keywords=$11,experience=$12,company_name=$13,
		company_location=$14,company_website=$15,update_datetime=$16
		WHERE id=$17 AND user_id=$18`

	tag, err := repository.DB.Exec(ctx, query, job.Title, job.CategoryId, job.JobTypeId, job.Vacancy, job.Salary, job.Location,
		job.Description, job.Benefits, job.Responsibility, job.Qualifications, job.Keywords, job.Experience, job.CompanyName,
		job.CompanyLocation, job.CompanyWebsite, job.UpdateDatetime, job.Id, job.UserId)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return jobNotFoundError()
	}

	return nil
}

// DeleteUserJob reports how many rows were removed; zero means the job is
// gone or belongs to someone else.
func (repository *JobRepository) DeleteUserJob(ctx context.Context, id int64, userId int64) (int64, error) {
	query := "DELETE FROM jobs WHERE id=$1 AND user_id=$2"

	tag, err := repository.DB.Exec(ctx, query, id, userId)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}
