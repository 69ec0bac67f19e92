package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/ferdian3456/jobboard/internal/constant"
	"github.com/ferdian3456/jobboard/internal/model"
	"github.com/ferdian3456/jobboard/internal/observability"
	"github.com/ferdian3456/jobboard/internal/repository"
	"github.com/ferdian3456/jobboard/internal/storage"
	"github.com/ferdian3456/jobboard/internal/util"

	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const passwordResetTTL = 5 * time.Minute

type EmailSender interface {
	Send(receiverEmail string, subject string, body string) error
}

type UserUsecase struct {
	UserRepository *repository.UserRepository
	Storage        storage.BlobStore
	Mailer         EmailSender
	Validate       *util.Validator
	Log            *zap.Logger
	Config         *koanf.Koanf
}

func NewUserUsecase(userRepository *repository.UserRepository, blobStore storage.BlobStore, mailer EmailSender, validate *util.Validator, zap *zap.Logger, koanf *koanf.Koanf) *UserUsecase {
	return &UserUsecase{
		UserRepository: userRepository,
		Storage:        blobStore,
		Mailer:         mailer,
		Validate:       validate,
		Log:            zap,
		Config:         koanf,
	}
}

func newUserResponse(user model.User, blobStore storage.BlobStore) model.UserResponse {
	response := model.UserResponse{
		Id:             user.Id,
		Name:           user.Name,
		Email:          user.Email,
		Designation:    user.Designation,
		Mobile:         user.Mobile,
		Image:          user.Image,
		CreateDatetime: user.CreateDatetime,
		UpdateDatetime: user.UpdateDatetime,
	}

	if user.Image != nil && *user.Image != "" {
		original, thumbnail := ProfilePictureKeys(*user.Image)
		imageURL := blobStore.URL(storage.VisibilityPublic, original)
		thumbnailURL := blobStore.URL(storage.VisibilityPublic, thumbnail)
		response.ImageURL = &imageURL
		response.ThumbnailImageURL = &thumbnailURL
	}

	return response
}

func (usecase *UserUsecase) Register(ctx context.Context, payload model.UserRegisterRequest) error {
	payload.Name = strings.TrimSpace(payload.Name)
	payload.Email = strings.ToLower(strings.TrimSpace(payload.Email))

	err := usecase.Validate.ValidateStruct(payload)
	if err != nil {
		return err
	}

	exists, err := usecase.UserRepository.CheckEmailUnique(ctx, payload.Email, 0)
	if err != nil {
		return err
	}

	if exists == 1 {
		return &model.ValidationError{
			Code:    constant.ERR_VALIDATION_CODE,
			Message: constant.ERR_EMAIL_TAKEN_MESSAGE,
			Param:   "email",
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	user := model.User{
		Name:           payload.Name,
		Email:          payload.Email,
		Password:       string(hashedPassword),
		Role:           model.RoleUser,
		CreateDatetime: now,
		UpdateDatetime: now,
	}

	userId, err := usecase.UserRepository.Register(ctx, user)
	if err != nil {
		return err
	}

	observability.WithContext(ctx, usecase.Log).Info("user registered", zap.Int64("userId", userId))

	return nil
}

func (usecase *UserUsecase) Login(ctx context.Context, payload model.UserLoginRequest) (model.TokenResponse, error) {
	token := model.TokenResponse{}
	payload.Email = strings.ToLower(strings.TrimSpace(payload.Email))

	err := usecase.Validate.ValidateStruct(payload)
	if err != nil {
		return token, err
	}

	userId, password, err := usecase.UserRepository.GetUserAuth(ctx, payload.Email)
	if err != nil {
		return token, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(password), []byte(payload.Password))
	if err != nil {
		return token, &model.ValidationError{
			Code:    constant.ERR_VALIDATION_CODE,
			Message: "Either email or password is incorrect",
			Param:   "email",
		}
	}

	token, err = util.IssueAccessToken(userId, usecase.Config.String("JWT_SECRET_KEY"), time.Now().UTC())
	if err != nil {
		return token, err
	}

	err = usecase.UserRepository.SetAuthTokenInCache(ctx, token.AccessToken, userId)
	if err != nil {
		return token, err
	}

	return token, nil
}

func (usecase *UserUsecase) GetUserInfo(ctx context.Context, auth model.AuthContext) (model.UserResponse, error) {
	user, err := usecase.UserRepository.FindById(ctx, auth.UserId)
	if err != nil {
		return model.UserResponse{}, err
	}

	return newUserResponse(user, usecase.Storage), nil
}

func (usecase *UserUsecase) GetAccessToken(ctx context.Context, userId int64, accessToken string) error {
	hashedTokenFromCache, err := usecase.UserRepository.GetAccessTokenInCache(ctx, userId)
	if err != nil {
		return err
	}

	hashedTokenFromClient := util.HashSHA256(accessToken)

	if subtle.ConstantTimeCompare([]byte(hashedTokenFromClient), []byte(hashedTokenFromCache)) != 1 {
		return &model.ValidationError{
			Code:    constant.ERR_UNATHORIZED_ERROR,
			Message: "Authorization token is expired",
			Param:   "accessToken",
		}
	}

	return nil
}

func (usecase *UserUsecase) Logout(ctx context.Context, auth model.AuthContext) error {
	err := usecase.UserRepository.RemoveAuthToken(ctx, auth.UserId)
	if err != nil {
		return err
	}

	return nil
}

// ForgotPassword answers the same way for unknown emails so callers cannot
// discover which addresses are registered.
func (usecase *UserUsecase) ForgotPassword(ctx context.Context, payload model.ForgotPasswordRequest) error {
	payload.Email = strings.ToLower(strings.TrimSpace(payload.Email))

	err := usecase.Validate.ValidateStruct(payload)
	if err != nil {
		return err
	}

	log := observability.WithContext(ctx, usecase.Log)

	user, err := usecase.UserRepository.FindByEmail(ctx, payload.Email)
	if err != nil {
		var validationErr *model.ValidationError
		if errors.As(err, &validationErr) && validationErr.Code == constant.ERR_NOT_FOUND_ERROR {
			log.Debug("password reset requested for unknown email")
			return nil
		}
		return err
	}

	otp, err := util.GenerateOTP()
	if err != nil {
		return err
	}

	body, err := util.RenderTemplate("password_reset.html", model.PasswordResetTemplateData{
		Name:      user.Name,
		OTP:       otp,
		ExpiresIn: int64(passwordResetTTL.Minutes()),
	})
	if err != nil {
		return err
	}

	err = usecase.UserRepository.SetPasswordResetOTP(ctx, user.Email, util.HashSHA256(otp), passwordResetTTL)
	if err != nil {
		return err
	}

	err = usecase.Mailer.Send(user.Email, "Reset Password Verification Code", body)
	if err != nil {
		return err
	}

	return nil
}

func (usecase *UserUsecase) ResetPassword(ctx context.Context, payload model.ResetPasswordRequest) error {
	payload.Email = strings.ToLower(strings.TrimSpace(payload.Email))

	err := usecase.Validate.ValidateStruct(payload)
	if err != nil {
		return err
	}

	otpHash, err := usecase.UserRepository.GetPasswordResetOTP(ctx, payload.Email)
	if err != nil {
		return err
	}

	if subtle.ConstantTimeCompare([]byte(otpHash), []byte(util.HashSHA256(payload.OTP))) != 1 {
		return &model.ValidationError{
			Code:    constant.ERR_VALIDATION_CODE,
			Message: "Otp does not match",
			Param:   "otp",
		}
	}

	user, err := usecase.UserRepository.FindByEmail(ctx, payload.Email)
	if err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	err = usecase.UserRepository.UpdatePassword(ctx, user.Id, string(hashedPassword), time.Now().UTC())
	if err != nil {
		return err
	}

	err = usecase.UserRepository.DeletePasswordResetOTP(ctx, payload.Email)
	if err != nil {
		return err
	}

	err = usecase.UserRepository.RemoveAuthToken(ctx, user.Id)
	if err != nil {
		return err
	}

	return nil
}
