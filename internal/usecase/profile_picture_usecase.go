package usecase

import (
	"context"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/ferdian3456/jobboard/internal/constant"
	"github.com/ferdian3456/jobboard/internal/imaging"
	"github.com/ferdian3456/jobboard/internal/model"
	"github.com/ferdian3456/jobboard/internal/observability"
	"github.com/ferdian3456/jobboard/internal/repository"
	"github.com/ferdian3456/jobboard/internal/storage"
	"github.com/ferdian3456/jobboard/internal/util"

	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

type ProfilePictureUserStore interface {
	FindById(ctx context.Context, id int64) (model.User, error)
	UpdateImage(ctx context.Context, q repository.Querier, id int64, image string) error
}

type Locker interface {
	Acquire(ctx context.Context, key string) (func(context.Context) error, error)
}

type ProfilePictureUsecase struct {
	UserRepository ProfilePictureUserStore
	TxManager      repository.TxManager
	Storage        storage.BlobStore
	Codec          imaging.Codec
	Locker         Locker
	Metrics        *observability.Metrics
	Log            *zap.Logger
	Config         *koanf.Koanf

	// Now supplies the timestamp embedded in new filenames.
	Now func() time.Time
	// DeferCleanup removes the previous blobs only after the new record is
	// committed, and discards freshly written blobs when the update fails.
	DeferCleanup bool
}

func NewProfilePictureUsecase(userRepository ProfilePictureUserStore, txManager repository.TxManager, blobStore storage.BlobStore, codec imaging.Codec, locker Locker, metrics *observability.Metrics, zap *zap.Logger, koanf *koanf.Koanf) *ProfilePictureUsecase {
	return &ProfilePictureUsecase{
		UserRepository: userRepository,
		TxManager:      txManager,
		Storage:        blobStore,
		Codec:          codec,
		Locker:         locker,
		Metrics:        metrics,
		Log:            zap,
		Config:         koanf,
		Now:            time.Now,
		DeferCleanup:   !koanf.Exists("PROFILE_PICTURE_DEFER_CLEANUP") || koanf.Bool("PROFILE_PICTURE_DEFER_CLEANUP"),
	}
}

// ProfilePictureKeys returns the object keys of the original image and its
// thumbnail for a stored filename.
func ProfilePictureKeys(filename string) (string, string) {
	return path.Join(constant.PROFILE_PICTURE_DIR, filename), path.Join(constant.PROFILE_PICTURE_THUMBNAIL_DIR, filename)
}

func (usecase *ProfilePictureUsecase) UpdateProfilePicture(ctx context.Context, auth model.AuthContext, upload model.Upload) (model.ProfilePictureResponse, error) {
	start := time.Now()

	response, err := usecase.updateProfilePicture(ctx, auth, upload)
	usecase.Metrics.ObserveProfilePictureUpdate(profilePictureResult(err), time.Since(start))

	return response, err
}

func (usecase *ProfilePictureUsecase) updateProfilePicture(ctx context.Context, auth model.AuthContext, upload model.Upload) (model.ProfilePictureResponse, error) {
	response := model.ProfilePictureResponse{}
	log := observability.WithContext(ctx, usecase.Log).With(zap.Int64("userId", auth.UserId))

	format, err := util.ValidateImage(upload, constant.PROFILE_PICTURE_FIELD)
	if err != nil {
		return response, err
	}

	thumbnail, err := usecase.makeThumbnail(upload.Content)
	if err != nil {
		log.Debug("uploaded image could not be processed", zap.Error(err))
		return response, &model.ValidationError{
			Code:    constant.ERR_VALIDATION_CODE,
			Message: fmt.Sprintf("The %s field must be an image.", constant.PROFILE_PICTURE_FIELD),
			Param:   constant.PROFILE_PICTURE_FIELD,
		}
	}

	if usecase.Locker != nil {
		lockKey := fmt.Sprintf("lock:profile_picture:%d", auth.UserId)
		release, err := usecase.Locker.Acquire(ctx, lockKey)
		if err != nil {
			if errors.Is(err, repository.ErrLockNotAcquired) {
				return response, model.NewConflictError("acquire profile picture lock", err)
			}
			return response, model.NewPersistenceError("acquire profile picture lock", err)
		}
		defer func() {
			err := release(context.WithoutCancel(ctx))
			if err != nil {
				log.Warn("failed to release profile picture lock", zap.Error(err))
			}
		}()
	}

	user, err := usecase.UserRepository.FindById(ctx, auth.UserId)
	if err != nil {
		var validationErr *model.ValidationError
		if errors.As(err, &validationErr) {
			return response, err
		}
		return response, model.NewPersistenceError("find user", err)
	}

	var oldKeys []string
	if user.Image != nil && *user.Image != "" {
		oldOriginal, oldThumbnail := ProfilePictureKeys(*user.Image)
		oldKeys = []string{oldOriginal, oldThumbnail}
	}

	filename := fmt.Sprintf("%d-%d.%s", auth.UserId, usecase.Now().Unix(), format.Extension())
	newOriginal, newThumbnail := ProfilePictureKeys(filename)
	// Re-uploading within the same second overwrites the current blobs in place.
	sameName := user.Image != nil && *user.Image == filename

	var written []string
	err = usecase.TxManager.WithinTransaction(ctx, func(q repository.Querier) error {
		if len(oldKeys) > 0 && !usecase.DeferCleanup {
			err := usecase.Storage.Delete(ctx, storage.VisibilityPublic, oldKeys...)
			if err != nil {
				return model.NewStorageError("delete previous profile picture", err)
			}
		}

		_, err := usecase.Storage.StoreAs(ctx, storage.VisibilityPublic, constant.PROFILE_PICTURE_DIR, filename, upload.Content, format.ContentType())
		if err != nil {
			return model.NewStorageError("store profile picture", err)
		}
		written = append(written, newOriginal)

		err = usecase.Storage.Put(ctx, storage.VisibilityPublic, newThumbnail, thumbnail, format.ContentType())
		if err != nil {
			return model.NewStorageError("store profile picture thumbnail", err)
		}
		written = append(written, newThumbnail)

		err = usecase.UserRepository.UpdateImage(ctx, q, auth.UserId, filename)
		if err != nil {
			var validationErr *model.ValidationError
			if errors.As(err, &validationErr) {
				return err
			}
			return model.NewPersistenceError("update user image", err)
		}

		return nil
	})

	if err != nil {
		if usecase.DeferCleanup && !sameName && len(written) > 0 {
			usecase.removeBlobs(ctx, log, "discard new profile picture", written)
		}

		var validationErr *model.ValidationError
		var operationErr *model.OperationError
		if !errors.As(err, &validationErr) && !errors.As(err, &operationErr) {
			err = model.NewPersistenceError("commit profile picture", err)
		}
		return response, err
	}

	if usecase.DeferCleanup && !sameName && len(oldKeys) > 0 {
		usecase.removeBlobs(ctx, log, "delete previous profile picture", oldKeys)
	}

	log.Info("profile picture updated", zap.String("image", filename))

	response.Image = filename
	response.ImageURL = usecase.Storage.URL(storage.VisibilityPublic, newOriginal)
	response.ThumbnailImageURL = usecase.Storage.URL(storage.VisibilityPublic, newThumbnail)

	return response, nil
}

func (usecase *ProfilePictureUsecase) makeThumbnail(content []byte) ([]byte, error) {
	img, err := usecase.Codec.Decode(content)
	if err != nil {
		return nil, err
	}

	thumbnail, err := usecase.Codec.FitCrop(img, constant.THUMBNAIL_WIDTH, constant.THUMBNAIL_HEIGHT, true)
	if err != nil {
		return nil, err
	}

	return usecase.Codec.Encode(thumbnail)
}

// removeBlobs is best effort; failures leave orphans that are only logged.
func (usecase *ProfilePictureUsecase) removeBlobs(ctx context.Context, log *zap.Logger, op string, keys []string) {
	err := usecase.Storage.Delete(context.WithoutCancel(ctx), storage.VisibilityPublic, keys...)
	if err != nil {
		usecase.Metrics.AddOrphanedBlobs(len(keys))
		log.Warn("failed to "+op, zap.Strings("keys", keys), zap.Error(err))
	}
}

func profilePictureResult(err error) string {
	if err == nil {
		return observability.ResultSuccess
	}

	var validationErr *model.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return observability.ResultValidation
	case model.IsErrorKind(err, model.ErrKindStorage):
		return observability.ResultStorage
	case model.IsErrorKind(err, model.ErrKindConflict):
		return observability.ResultConflict
	default:
		return observability.ResultPersist
	}
}
