package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ferdian3456/jobboard/internal/constant"
	"github.com/ferdian3456/jobboard/internal/model"
	"github.com/ferdian3456/jobboard/internal/util"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type UserRepository struct {
	Log     *zap.Logger
	DB      *pgxpool.Pool
	DBCache *redis.Client
}

func NewUserRepository(zap *zap.Logger, db *pgxpool.Pool, dbCache *redis.Client) *UserRepository {
	return &UserRepository{
		Log:     zap,
		DB:      db,
		DBCache: dbCache,
	}
}

const userColumns = "id,name,email,password,designation,mobile,image,role,create_datetime,update_datetime"

func scanUser(row pgx.Row) (model.User, error) {
	user := model.User{}
	err := row.Scan(&user.Id, &user.Name, &user.Email, &user.Password, &user.Designation, &user.Mobile, &user.Image, &user.Role, &user.CreateDatetime, &user.UpdateDatetime)
	return user, err
}

// Postgresql
func (repository *UserRepository) Register(ctx context.Context, user model.User) (int64, error) {
	query := "INSERT INTO users (name,email,password,role,create_datetime,update_datetime) VALUES ($1,$2,$3,$4,$5,$6) RETURNING id"

	var id int64
	err := repository.DB.QueryRow(ctx, query, user.Name, user.Email, user.Password, user.Role, user.CreateDatetime, user.UpdateDatetime).Scan(&id)
	if err != nil {
		return id, duplicateError(err, constant.ERR_EMAIL_TAKEN_MESSAGE, "email")
	}

	return id, nil
}

// CheckEmailUnique reports 1 when another user than ignoreId owns email.
func (repository *UserRepository) CheckEmailUnique(ctx context.Context, email string, ignoreId int64) (int, error) {
	query := "SELECT 1 FROM users WHERE email=$1 AND id<>$2 LIMIT 1"

	var exists int
	err := repository.DB.QueryRow(ctx, query, email, ignoreId).Scan(&exists)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return exists, nil
		}
		return exists, err
	}

	return exists, nil
}

func (repository *UserRepository) GetUserAuth(ctx context.Context, email string) (int64, string, error) {
	query := "SELECT id,password FROM users WHERE email=$1 LIMIT 1"

	var id int64
	var passwordHash string

	err := repository.DB.QueryRow(ctx, query, email).Scan(&id, &passwordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return id, passwordHash, &model.ValidationError{
				Code:    constant.ERR_VALIDATION_CODE,
				Message: "Either email or password is incorrect",
				Param:   "email",
			}
		}
		return id, passwordHash, err
	}

	return id, passwordHash, nil
}

func (repository *UserRepository) FindById(ctx context.Context, id int64) (model.User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE id=$1 LIMIT 1"

	user, err := scanUser(repository.DB.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user, &model.ValidationError{
				Code:    constant.ERR_NOT_FOUND_ERROR,
				Message: "User not found",
				Param:   "userId",
			}
		}
		return user, err
	}

	return user, nil
}

func (repository *UserRepository) FindByEmail(ctx context.Context, email string) (model.User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE email=$1 LIMIT 1"

	user, err := scanUser(repository.DB.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user, &model.ValidationError{
				Code:    constant.ERR_NOT_FOUND_ERROR,
				Message: "User not found",
				Param:   "email",
			}
		}
		return user, err
	}

	return user, nil
}

// UpdateImage runs on q so callers can keep it inside their transaction.
func (repository *UserRepository) UpdateImage(ctx context.Context, q Querier, id int64, image string) error {
	query := "UPDATE users SET image = $1, update_datetime = NOW() WHERE id = $2"

	tag, err := q.Exec(ctx, query, image, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return &model.ValidationError{
			Code:    constant.ERR_NOT_FOUND_ERROR,
			Message: "User not found",
			Param:   "userId",
		}
	}

	return nil
}

func (repository *UserRepository) UpdateProfile(ctx context.Context, user model.User) error {
	query := "UPDATE users SET name = $1, email = $2, designation = $3, mobile = $4, update_datetime = $5 WHERE id = $6"

	_, err := repository.DB.Exec(ctx, query, user.Name, user.Email, user.Designation, user.Mobile, user.UpdateDatetime, user.Id)
	if err != nil {
		return duplicateError(err, constant.ERR_EMAIL_TAKEN_MESSAGE, "email")
	}

	return nil
}

func (repository *UserRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string, updateDatetime time.Time) error {
	query := "UPDATE users SET password = $1, update_datetime = $2 WHERE id = $3"

	_, err := repository.DB.Exec(ctx, query, passwordHash, updateDatetime, id)
	if err != nil {
		return err
	}

	return nil
}

// Redis - Cache
func (repository *UserRepository) SetAuthTokenInCache(ctx context.Context, accessToken string, userId int64) error {
	accessTokenKey := fmt.Sprintf("auth:accessToken:%d", userId)

	err := repository.DBCache.Set(ctx, accessTokenKey, util.HashSHA256(accessToken), util.AccessTokenDuration).Err()
	if err != nil {
		return err
	}

	return nil
}

func (repository *UserRepository) GetAccessTokenInCache(ctx context.Context, userId int64) (string, error) {
	accessTokenKey := fmt.Sprintf("auth:accessToken:%d", userId)
	hashedToken, err := repository.DBCache.Get(ctx, accessTokenKey).Result()
	if err == redis.Nil {
		return hashedToken, &model.ValidationError{
			Code:    constant.ERR_UNATHORIZED_ERROR,
			Message: "Authorization token not found or expired",
			Param:   "accessToken",
		}
	} else if err != nil {
		return hashedToken, err
	}

	return hashedToken, nil
}

func (repository *UserRepository) RemoveAuthToken(ctx context.Context, userId int64) error {
	accessTokenKey := fmt.Sprintf("auth:accessToken:%d", userId)

	err := repository.DBCache.Del(ctx, accessTokenKey).Err()
	if err != nil {
		return err
	}

	return nil
}

func (repository *UserRepository) SetPasswordResetOTP(ctx context.Context, email string, otpHash string, ttl time.Duration) error {
	key := fmt.Sprintf("password_reset:%s", email)

	err := repository.DBCache.Set(ctx, key, otpHash, ttl).Err()
	if err != nil {
		return err
	}

	return nil
}

func (repository *UserRepository) GetPasswordResetOTP(ctx context.Context, email string) (string, error) {
	key := fmt.Sprintf("password_reset:%s", email)

	otpHash, err := repository.DBCache.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", &model.ValidationError{
			Code:    constant.ERR_VALIDATION_CODE,
			Message: "OTP does not exists or expired",
			Param:   "otp",
		}
	} else if err != nil {
		return "", err
	}

	return otpHash, nil
}

func (repository *UserRepository) DeletePasswordResetOTP(ctx context.Context, email string) error {
	key := fmt.Sprintf("password_reset:%s", email)

	err := repository.DBCache.Del(ctx, key).Err()
	if err != nil {
		return err
	}

	return nil
}
