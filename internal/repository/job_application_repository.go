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

type JobApplicationRepository struct {
	Log *zap.Logger
	DB  *pgxpool.Pool
}

func NewJobApplicationRepository(zap *zap.Logger, db *pgxpool.Pool) *JobApplicationRepository {
	return &JobApplicationRepository{
		Log: zap,
		DB:  db,
	}
}

func (repository *JobApplicationRepository) CheckApplied(ctx context.Context, jobId int64, userId int64) (bool, error) {
	query := "SELECT 1 FROM job_applications WHERE job_id=$1 AND user_id=$2 LIMIT 1"

	var exists int
	err := repository.DB.QueryRow(ctx, query, jobId, userId).Scan(&exists)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

func (repository *JobApplicationRepository) CreateApplication(ctx context.Context, application model.JobApplication) (int64, error) {
	query := "INSERT INTO job_applications (job_id,user_id,employer_id,applied_date,create_datetime,update_datetime) VALUES ($1,$2,$3,$4,$5,$6) RETURNING id"

	var id int64
	err := repository.DB.QueryRow(ctx, query, application.JobId, application.UserId, application.EmployerId,
		application.AppliedDate, application.CreateDatetime, application.UpdateDatetime).Scan(&id)
	if err != nil {
		return id, duplicateError(err, constant.ERR_ALREADY_APPLIED_MESSAGE, "jobId")
	}

	return id, nil
}

func (repository *JobApplicationRepository) CountUserApplications(ctx context.Context, userId int64) (int, error) {
	query := "SELECT COUNT(*) FROM job_applications WHERE user_id=$1"

	var total int
	err := repository.DB.QueryRow(ctx, query, userId).Scan(&total)
	if err != nil {
		return total, err
	}

	return total, nil
}

func (repository *JobApplicationRepository) GetUserApplications(ctx context.Context, userId int64, limit int, offset int) ([]model.JobApplicationResponse, error) {
	query := `SELECT A.id,B.id,B.title,C.name,D.name,B.location,B.status,
			(SELECT COUNT(*) FROM job_applications E WHERE E.job_id = B.id),
			A.applied_date
			FROM job_applications A
			JOIN jobs B ON A.job_id = B.id
			JOIN job_types C ON B.job_type_id = C.id
			JOIN categories D ON B.category_id = D.id
			WHERE A.user_id=$1
			ORDER BY A.create_datetime DESC, A.id DESC
			LIMIT $2 OFFSET $3`

	rows, err := repository.DB.Query(ctx, query, userId, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applications := []model.JobApplicationResponse{}
	for rows.Next() {
		application := model.JobApplicationResponse{}
		err = rows.Scan(&application.Id, &application.JobId, &application.JobTitle, &application.JobTypeName, &application.CategoryName,
			&application.Location, &application.JobStatus, &application.ApplicationCount, &application.AppliedDate)
		if err != nil {
			return nil, err
		}
		applications = append(applications, application)
	}

	return applications, rows.Err()
}

func (repository *JobApplicationRepository) DeleteUserApplication(ctx context.Context, id int64, userId int64) (int64, error) {
	query := "DELETE FROM job_applications WHERE id=$1 AND user_id=$2"

	tag, err := repository.DB.Exec(ctx, query, id, userId)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}
