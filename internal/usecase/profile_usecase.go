package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/ferdian3456/jobboard/internal/constant"
	"github.com/ferdian3456/jobboard/internal/model"
	"github.com/ferdian3456/jobboard/internal/repository"
	"github.com/ferdian3456/jobboard/internal/storage"
	"github.com/ferdian3456/jobboard/internal/util"

	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

type ProfileUsecase struct {
	UserRepository *repository.UserRepository
	Storage        storage.BlobStore
	Validate       *util.Validator
	Log            *zap.Logger
	Config         *koanf.Koanf
}

func NewProfileUsecase(userRepository *repository.UserRepository, blobStore storage.BlobStore, validate *util.Validator, zap *zap.Logger, koanf *koanf.Koanf) *ProfileUsecase {
	return &ProfileUsecase{
		UserRepository: userRepository,
		Storage:        blobStore,
		Validate:       validate,
		Log:            zap,
		Config:         koanf,
	}
}

func (usecase *ProfileUsecase) UpdateProfile(ctx context.Context, auth model.AuthContext, payload model.ProfileUpdateRequest) (model.UserResponse, error) {
	payload.Name = strings.TrimSpace(payload.Name)
	payload.Email = strings.ToLower(strings.TrimSpace(payload.Email))

	err := usecase.Validate.ValidateStruct(payload)
	if err != nil {
		return model.UserResponse{}, err
	}

	exists, err := usecase.UserRepository.CheckEmailUnique(ctx, payload.Email, auth.UserId)
	if err != nil {
		return model.UserResponse{}, err
	}

	if exists == 1 {
		return model.UserResponse{}, validationError(constant.ERR_EMAIL_TAKEN_MESSAGE, "email")
	}

	user, err := usecase.UserRepository.FindById(ctx, auth.UserId)
	if err != nil {
		return model.UserResponse{}, err
	}

	user.Name = payload.Name
	user.Email = payload.Email
	user.Designation = payload.Designation
	user.Mobile = payload.Mobile
	user.UpdateDatetime = time.Now().UTC()

	err = usecase.UserRepository.UpdateProfile(ctx, user)
	if err != nil {
		return model.UserResponse{}, err
	}

	return newUserResponse(user, usecase.Storage), nil
}
