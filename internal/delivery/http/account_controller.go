package http

import (
	"context"
	"errors"
	"fmt"

	"github.com/ferdian3456/jobboard/internal/constant"
	"github.com/ferdian3456/jobboard/internal/model"
	"github.com/ferdian3456/jobboard/internal/observability"
	"github.com/ferdian3456/jobboard/internal/usecase"
	"github.com/ferdian3456/jobboard/internal/util"

	"github.com/gofiber/fiber/v2"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

type ProfilePictureUpdater interface {
	UpdateProfilePicture(ctx context.Context, auth model.AuthContext, upload model.Upload) (model.ProfilePictureResponse, error)
}

type AccountController struct {
	ProfileUsecase        *usecase.ProfileUsecase
	ProfilePictureUsecase ProfilePictureUpdater
	Log                   *zap.Logger
	Config                *koanf.Koanf
}

func NewAccountController(profileUsecase *usecase.ProfileUsecase, profilePictureUsecase ProfilePictureUpdater, zap *zap.Logger, koanf *koanf.Koanf) *AccountController {
	return &AccountController{
		ProfileUsecase:        profileUsecase,
		ProfilePictureUsecase: profilePictureUsecase,
		Log:                   zap,
		Config:                koanf,
	}
}

func (controller AccountController) UpdateProfile(ctx *fiber.Ctx) error {
	log := observability.WithContext(ctx.UserContext(), controller.Log)

	auth, err := authContext(ctx)
	if err != nil {
		return util.SendErrorResponseFromError(ctx, log, err)
	}

	var payload model.ProfileUpdateRequest
	err = util.ReadRequestBody(ctx, &payload)
	if err != nil {
		return util.SendErrorResponseFromError(ctx, log, err)
	}

	response, err := controller.ProfileUsecase.UpdateProfile(ctx.UserContext(), auth, payload)
	if err != nil {
		return util.SendErrorResponseFromError(ctx, log, err)
	}

	return util.SendSuccessResponseWithMessageAndData(ctx, constant.MSG_PROFILE_UPDATED, response)
}

func (controller AccountController) UpdateProfilePicture(ctx *fiber.Ctx) error {
	log := observability.WithContext(ctx.UserContext(), controller.Log)

	auth, err := authContext(ctx)
	if err != nil {
		return util.SendErrorResponseFromError(ctx, log, err)
	}

	fileHeader, err := ctx.FormFile(constant.PROFILE_PICTURE_FIELD)
	if err != nil {
		return util.SendErrorResponse(ctx, &model.ValidationError{
			Code:    constant.ERR_VALIDATION_CODE,
			Message: fmt.Sprintf("The %s field is required.", constant.PROFILE_PICTURE_FIELD),
			Param:   constant.PROFILE_PICTURE_FIELD,
		})
	}

	upload, err := util.ReadUpload(fileHeader)
	if err != nil {
		return util.SendErrorResponseInternalServerWithMessage(ctx, log, err, constant.ERR_PROFILE_PICTURE_FAILED_MESSAGE)
	}

	response, err := controller.ProfilePictureUsecase.UpdateProfilePicture(ctx.UserContext(), auth, upload)
	if err != nil {
		var validationErr *model.ValidationError
		if errors.As(err, &validationErr) {
			return util.SendErrorResponseFromError(ctx, log, err)
		}

		if model.IsErrorKind(err, model.ErrKindConflict) {
			return util.SendErrorResponseConflict(ctx, constant.ERR_PROFILE_PICTURE_CONFLICT_MESSAGE)
		}

		return util.SendErrorResponseInternalServerWithMessage(ctx, log.With(zap.Int64("userId", auth.UserId)), err, constant.ERR_PROFILE_PICTURE_FAILED_MESSAGE)
	}

	return util.SendSuccessResponseWithMessageAndData(ctx, constant.MSG_PROFILE_PICTURE_UPDATED, response)
}
