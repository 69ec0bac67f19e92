package repository

import (
	"context"
	"errors"

	"github.com/ferdian3456/jobboard/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// CategoryRepository serves the lookup tables used by the job form.
type CategoryRepository struct {
	Log *zap.Logger
	DB  *pgxpool.Pool
}

func NewCategoryRepository(zap *zap.Logger, db *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{
		Log: zap,
		DB:  db,
	}
}

func (repository *CategoryRepository) GetActiveCategories(ctx context.Context) ([]model.Category, error) {
	query := "SELECT id,name FROM categories WHERE status=1 ORDER BY name ASC"

	rows, err := repository.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []model.Category{}
	for rows.Next() {
		category := model.Category{}
		err = rows.Scan(&category.Id, &category.Name)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}

	return categories, rows.Err()
}

func (repository *CategoryRepository) GetActiveJobTypes(ctx context.Context) ([]model.JobType, error) {
	query := "SELECT id,name FROM job_types WHERE status=1 ORDER BY name ASC"

	rows, err := repository.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobTypes := []model.JobType{}
	for rows.Next() {
		jobType := model.JobType{}
		err = rows.Scan(&jobType.Id, &jobType.Name)
		if err != nil {
			return nil, err
		}
		jobTypes = append(jobTypes, jobType)
	}

	return jobTypes, rows.Err()
}

func (repository *CategoryRepository) CheckCategoryActive(ctx context.Context, id int64) (bool, error) {
	query := "SELECT 1 FROM categories WHERE id=$1 AND status=1 LIMIT 1"
	return repository.exists(ctx, query, id)
}

func (repository *CategoryRepository) CheckJobTypeActive(ctx context.Context, id int64) (bool, error) {
	query := "SELECT 1 FROM job_types WHERE id=$1 AND status=1 LIMIT 1"
	return repository.exists(ctx, query, id)
}

func (repository *CategoryRepository) exists(ctx context.Context, query string, id int64) (bool, error) {
	var exists int
	err := repository.DB.QueryRow(ctx, query, id).Scan(&exists)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
