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

type SavedJobRepository struct {
	Log *zap.Logger
	DB  *pgxpool.Pool
}

func NewSavedJobRepository(zap *zap.Logger, db *pgxpool.Pool) *SavedJobRepository {
	return &SavedJobRepository{
		Log: zap,
		DB:  db,
	}
}

func (repository *SavedJobRepository) CheckSaved(ctx context.Context, jobId int64, userId int64) (bool, error) {
	query := "SELECT 1 FROM saved_jobs WHERE job_id=$1 AND user_id=$2 LIMIT 1"

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

func (repository *SavedJobRepository) CreateSavedJob(ctx context.Context, savedJob model.SavedJob) (int64, error) {
	query := "INSERT INTO saved_jobs (job_id,user_id,create_datetime,update_datetime) VALUES ($1,$2,$3,$4) RETURNING id"

	var id int64
	err := repository.DB.QueryRow(ctx, query, savedJob.JobId, savedJob.UserId, savedJob.CreateDatetime, savedJob.UpdateDatetime).Scan(&id)
	if err != nil {
		return id, duplicateError(err, constant.ERR_ALREADY_SAVED_MESSAGE, "jobId")
	}

	return id, nil
}

func (repository *SavedJobRepository) CountUserSavedJobs(ctx context.Context, userId int64) (int, error) {
	query := "SELECT COUNT(*) FROM saved_jobs WHERE user_id=$1"

	var total int
	err := repository.DB.QueryRow(ctx, query, userId).Scan(&total)
	if err != nil {
		return total, err
	}

	return total, nil
}

func (repository *SavedJobRepository) GetUserSavedJobs(ctx context.Context, userId int64, limit int, offset int) ([]model.SavedJobResponse, error) {
	query := `SELECT A.id,B.id,B.title,C.name,D.name,B.location,B.status,
			(SELECT COUNT(*) FROM job_applications E WHERE E.job_id = B.id),
			A.create_datetime
			FROM saved_jobs A
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

	savedJobs := []model.SavedJobResponse{}
	for rows.Next() {
		savedJob := model.SavedJobResponse{}
		err = rows.Scan(&savedJob.Id, &savedJob.JobId, &savedJob.JobTitle, &savedJob.JobTypeName, &savedJob.CategoryName,
			&savedJob.Location, &savedJob.JobStatus, &savedJob.ApplicationCount, &savedJob.SavedDatetime)
		if err != nil {
			return nil, err
		}
		savedJobs = append(savedJobs, savedJob)
	}

	return savedJobs, rows.Err()
}

func (repository *SavedJobRepository) DeleteUserSavedJob(ctx context.Context, id int64, userId int64) (int64, error) {
	query := "DELETE FROM saved_jobs WHERE id=$1 AND user_id=$2"

	tag, err := repository.DB.Exec(ctx, query, id, userId)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}
