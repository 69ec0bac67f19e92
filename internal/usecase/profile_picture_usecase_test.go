package usecase

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/ferdian3456/jobboard/internal/constant"
	"github.com/ferdian3456/jobboard/internal/imaging"
	"github.com/ferdian3456/jobboard/internal/model"
	"github.com/ferdian3456/jobboard/internal/observability"
	"github.com/ferdian3456/jobboard/internal/repository"

	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type profilePictureFixture struct {
	usecase *ProfilePictureUsecase
	users   *fakeUserStore
	tx      *fakeTxManager
	blobs   *fakeBlobStore
	locker  *fakeLocker
	metrics *observability.Metrics
}

func newProfilePictureFixture(t *testing.T, deferCleanup bool, users ...model.User) *profilePictureFixture {
	t.Helper()

	userStore := newFakeUserStore(users...)
	tx := &fakeTxManager{users: userStore}
	blobs := newFakeBlobStore()
	locker := &fakeLocker{}
	metrics := observability.NewMetrics(prometheus.NewRegistry())

	return &profilePictureFixture{
		usecase: &ProfilePictureUsecase{
			UserRepository: userStore,
			TxManager:      tx,
			Storage:        blobs,
			Codec:          imaging.NewDrawCodec(),
			Locker:         locker,
			Metrics:        metrics,
			Log:            zap.NewNop(),
			Now:            func() time.Time { return time.Unix(2000, 0) },
			DeferCleanup:   deferCleanup,
		},
		users:   userStore,
		tx:      tx,
		blobs:   blobs,
		locker:  locker,
		metrics: metrics,
	}
}

func stringPtr(s string) *string {
	return &s
}

func portraitPNG(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 150, 300))
	for y := 0; y < 300; y++ {
		for x := 0; x < 150; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func pngUpload(t *testing.T) model.Upload {
	content := portraitPNG(t)
	return model.Upload{
		Filename:    "me.png",
		ContentType: "image/png",
		Content:     content,
		Size:        int64(len(content)),
	}
}

func userWithImage(image string) model.User {
	user := model.User{Id: 42, Name: "Jane Doe", Email: "jane@example.com"}
	if image != "" {
		user.Image = stringPtr(image)
	}
	return user
}

func (f *profilePictureFixture) seedOldPicture() {
	f.blobs.objects["profile_picture/42-1000.jpg"] = []byte("old")
	f.blobs.objects["profile_picture/thumbnail/42-1000.jpg"] = []byte("old-thumb")
}

func TestUpdateProfilePicture_ReplacesPreviousPicture(t *testing.T) {
	f := newProfilePictureFixture(t, true, userWithImage("42-1000.jpg"))
	f.seedOldPicture()
	upload := pngUpload(t)

	response, err := f.usecase.UpdateProfilePicture(context.Background(), model.AuthContext{UserId: 42}, upload)
	require.NoError(t, err)

	assert.Equal(t, "42-2000.png", response.Image)
	assert.Equal(t, "http://cdn.test/public/profile_picture/42-2000.png", response.ImageURL)
	assert.Equal(t, "http://cdn.test/public/profile_picture/thumbnail/42-2000.png", response.ThumbnailImageURL)

	assert.Equal(t, upload.Content, f.blobs.objects["profile_picture/42-2000.png"])
	assert.Equal(t, "image/png", f.blobs.contentTypes["profile_picture/42-2000.png"])

	thumb, format, err := image.Decode(bytes.NewReader(f.blobs.objects["profile_picture/thumbnail/42-2000.png"]))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 200, thumb.Bounds().Dx())
	assert.Equal(t, 200, thumb.Bounds().Dy())

	assert.False(t, f.blobs.has("profile_picture/42-1000.jpg"))
	assert.False(t, f.blobs.has("profile_picture/thumbnail/42-1000.jpg"))

	require.NotNil(t, f.users.image(42))
	assert.Equal(t, "42-2000.png", *f.users.image(42))
	assert.Equal(t, 1, f.tx.commits)
	assert.Equal(t, []string{"lock:profile_picture:42"}, f.locker.acquired)
	assert.Equal(t, 1, f.locker.released)
}

func TestUpdateProfilePicture_ImmediateCleanupDeletesBeforeStoring(t *testing.T) {
	f := newProfilePictureFixture(t, false, userWithImage("42-1000.jpg"))
	f.seedOldPicture()

	_, err := f.usecase.UpdateProfilePicture(context.Background(), model.AuthContext{UserId: 42}, pngUpload(t))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"delete:profile_picture/42-1000.jpg,profile_picture/thumbnail/42-1000.jpg",
		"store:profile_picture/42-2000.png",
		"put:profile_picture/thumbnail/42-2000.png",
	}, f.blobs.ops)
	assert.Equal(t, "42-2000.png", *f.users.image(42))
}

func TestUpdateProfilePicture_FirstPictureSkipsDelete(t *testing.T) {
	f := newProfilePictureFixture(t, true, userWithImage(""))

	_, err := f.usecase.UpdateProfilePicture(context.Background(), model.AuthContext{UserId: 42}, pngUpload(t))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"store:profile_picture/42-2000.png",
		"put:profile_picture/thumbnail/42-2000.png",
	}, f.blobs.ops)
}

func TestUpdateProfilePicture_MissingOldBlobsIsNotAnError(t *testing.T) {
	f := newProfilePictureFixture(t, false, userWithImage("42-1000.jpg"))

	response, err := f.usecase.UpdateProfilePicture(context.Background(), model.AuthContext{UserId: 42}, pngUpload(t))
	require.NoError(t, err)
	assert.Equal(t, "42-2000.png", response.Image)
}

func TestUpdateProfilePicture_RejectsNonImageWithoutSideEffects(t *testing.T) {
	f := newProfilePictureFixture(t, true, userWithImage("42-1000.jpg"))
	f.seedOldPicture()
	content := []byte("%PDF-1.4 resume")

	_, err := f.usecase.UpdateProfilePicture(context.Background(), model.AuthContext{UserId: 42},
		model.Upload{Filename: "cv.png", Content: content, Size: int64(len(content))})
	require.Error(t, err)

	var validationErr *model.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, constant.PROFILE_PICTURE_FIELD, validationErr.Param)

	assert.Empty(t, f.blobs.ops)
	assert.Empty(t, f.locker.acquired)
	assert.Equal(t, "42-1000.jpg", *f.users.image(42))
}

func TestUpdateProfilePicture_RejectsOversizedUpload(t *testing.T) {
	f := newProfilePictureFixture(t, true, userWithImage(""))
	upload := pngUpload(t)
	upload.Size = constant.MAX_FILE_SIZE + 1

	_, err := f.usecase.UpdateProfilePicture(context.Background(), model.AuthContext{UserId: 42}, upload)
	require.Error(t, err)

	var validationErr *model.ValidationError
	assert.True(t, errors.As(err, &validationErr))
	assert.Empty(t, f.blobs.ops)
}

func TestUpdateProfilePicture_RejectsCorruptImage(t *testing.T) {
	f := newProfilePictureFixture(t, true, userWithImage(""))
	content := portraitPNG(t)[:64]

	_, err := f.usecase.UpdateProfilePicture(context.Background(), model.AuthContext{UserId: 42},
		model.Upload{Content: content, Size: int64(len(content))})
	require.Error(t, err)

	var validationErr *model.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "The image field must be an image.", validationErr.Message)
	assert.Empty(t, f.blobs.ops)
}

func TestUpdateProfilePicture_PersistenceFailureKeepsOldRecord(t *testing.T) {
	f := newProfilePictureFixture(t, true, userWithImage("42-1000.jpg"))
	f.seedOldPicture()
	f.users.updateErr = errBoom

	_, err := f.usecase.UpdateProfilePicture(context.Background(), model.AuthContext{UserId: 42}, pngUpload(t))
	require.Error(t, err)
	assert.True(t, model.IsErrorKind(err, model.ErrKindPersistence))
	assert.ErrorIs(t, err, errBoom)

	assert.Equal(t, "42-1000.jpg", *f.users.image(42))
	assert.True(t, f.blobs.has("profile_picture/42-1000.jpg"))
	assert.True(t, f.blobs.has("profile_picture/thumbnail/42-1000.jpg"))
	assert.False(t, f.blobs.has("profile_picture/42-2000.png"))
	assert.False(t, f.blobs.has("profile_picture/thumbnail/42-2000.png"))
	assert.Equal(t, 1, f.tx.rollbacks)
	assert.Equal(t, 1, f.locker.released)
}

func TestUpdateProfilePicture_CommitFailureIsPersistenceError(t *testing.T) {
	f := newProfilePictureFixture(t, true, userWithImage("42-1000.jpg"))
	f.seedOldPicture()
	f.tx.commitErr = errBoom

	_, err := f.usecase.UpdateProfilePicture(context.Background(), model.AuthContext{UserId: 42}, pngUpload(t))
	require.Error(t, err)
	assert.True(t, model.IsErrorKind(err, model.ErrKindPersistence))

	assert.Equal(t, "42-1000.jpg", *f.users.image(42))
	assert.True(t, f.blobs.has("profile_picture/42-1000.jpg"))
	assert.False(t, f.blobs.has("profile_picture/42-2000.png"))
}

func TestUpdateProfilePicture_ThumbnailStorageFailure(t *testing.T) {
	f := newProfilePictureFixture(t, true, userWithImage("42-1000.jpg"))
	f.seedOldPicture()
	f.blobs.putErr["profile_picture/thumbnail/42-2000.png"] = errBoom

	_, err := f.usecase.UpdateProfilePicture(context.Background(), model.AuthContext{UserId: 42}, pngUpload(t))
	require.Error(t, err)
	assert.True(t, model.IsErrorKind(err, model.ErrKindStorage))

	assert.Equal(t, "42-1000.jpg", *f.users.image(42))
	assert.False(t, f.blobs.has("profile_picture/42-2000.png"))
	assert.True(t, f.blobs.has("profile_picture/42-1000.jpg"))
}

func TestUpdateProfilePicture_ImmediateCleanupStorageFailure(t *testing.T) {
	f := newProfilePictureFixture(t, false, userWithImage("42-1000.jpg"))
	f.seedOldPicture()
	f.blobs.storeErr = errBoom

	_, err := f.usecase.UpdateProfilePicture(context.Background(), model.AuthContext{UserId: 42}, pngUpload(t))
	require.Error(t, err)
	assert.True(t, model.IsErrorKind(err, model.ErrKindStorage))

	// the record is untouched even though the old blobs are already gone
	assert.Equal(t, "42-1000.jpg", *f.users.image(42))
	assert.False(t, f.blobs.has("profile_picture/42-1000.jpg"))
}

func TestUpdateProfilePicture_PostCommitCleanupFailureStillSucceeds(t *testing.T) {
	f := newProfilePictureFixture(t, true, userWithImage("42-1000.jpg"))
	f.seedOldPicture()
	f.blobs.deleteErr = errBoom

	response, err := f.usecase.UpdateProfilePicture(context.Background(), model.AuthContext{UserId: 42}, pngUpload(t))
	require.NoError(t, err)
	assert.Equal(t, "42-2000.png", response.Image)
	assert.Equal(t, "42-2000.png", *f.users.image(42))

	// both old blobs stay behind and are counted
	assert.True(t, f.blobs.has("profile_picture/42-1000.jpg"))
	assert.True(t, f.blobs.has("profile_picture/thumbnail/42-1000.jpg"))
	assert.Equal(t, 2.0, promtestutil.ToFloat64(f.metrics.OrphanedBlobs))
	assert.Equal(t, 1.0, promtestutil.ToFloat64(f.metrics.ProfilePictureUpdates.WithLabelValues(observability.ResultSuccess)))
}

func TestUpdateProfilePicture_SuccessfulCleanupLeavesNoOrphans(t *testing.T) {
	f := newProfilePictureFixture(t, true, userWithImage("42-1000.jpg"))
	f.seedOldPicture()

	_, err := f.usecase.UpdateProfilePicture(context.Background(), model.AuthContext{UserId: 42}, pngUpload(t))
	require.NoError(t, err)
	assert.Equal(t, 0.0, promtestutil.ToFloat64(f.metrics.OrphanedBlobs))
}

func TestUpdateProfilePicture_RejectsDecompressionBomb(t *testing.T) {
	f := newProfilePictureFixture(t, true, userWithImage(""))

	var buf bytes.Buffer
	encoder := png.Encoder{CompressionLevel: png.BestCompression}
	require.NoError(t, encoder.Encode(&buf, image.NewGray(image.Rect(0, 0, 16000, 16000))))
	content := buf.Bytes()

	_, err := f.usecase.UpdateProfilePicture(context.Background(), model.AuthContext{UserId: 42},
		model.Upload{Content: content, Size: int64(len(content))})
	require.Error(t, err)

	var validationErr *model.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "The image field must be an image.", validationErr.Message)
	assert.Empty(t, f.blobs.ops)
	assert.Equal(t, 1.0, promtestutil.ToFloat64(f.metrics.ProfilePictureUpdates.WithLabelValues(observability.ResultValidation)))
}

func TestUpdateProfilePicture_LockHeldIsConflict(t *testing.T) {
	f := newProfilePictureFixture(t, true, userWithImage("42-1000.jpg"))
	f.locker.err = repository.ErrLockNotAcquired

	_, err := f.usecase.UpdateProfilePicture(context.Background(), model.AuthContext{UserId: 42}, pngUpload(t))
	require.Error(t, err)
	assert.True(t, model.IsErrorKind(err, model.ErrKindConflict))
	assert.Empty(t, f.blobs.ops)
	assert.Equal(t, 0, f.tx.commits+f.tx.rollbacks)
}

func TestUpdateProfilePicture_LockBackendFailureIsPersistenceError(t *testing.T) {
	f := newProfilePictureFixture(t, true, userWithImage(""))
	f.locker.err = errBoom

	_, err := f.usecase.UpdateProfilePicture(context.Background(), model.AuthContext{UserId: 42}, pngUpload(t))
	require.Error(t, err)
	assert.True(t, model.IsErrorKind(err, model.ErrKindPersistence))
}

func TestUpdateProfilePicture_UnknownUser(t *testing.T) {
	f := newProfilePictureFixture(t, true)

	_, err := f.usecase.UpdateProfilePicture(context.Background(), model.AuthContext{UserId: 7}, pngUpload(t))
	require.Error(t, err)

	var validationErr *model.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, constant.ERR_NOT_FOUND_ERROR, validationErr.Code)
	assert.Empty(t, f.blobs.ops)
}

func TestUpdateProfilePicture_SameSecondReuploadKeepsBlobs(t *testing.T) {
	f := newProfilePictureFixture(t, true, userWithImage("42-2000.png"))

	_, err := f.usecase.UpdateProfilePicture(context.Background(), model.AuthContext{UserId: 42}, pngUpload(t))
	require.NoError(t, err)

	assert.True(t, f.blobs.has("profile_picture/42-2000.png"))
	assert.True(t, f.blobs.has("profile_picture/thumbnail/42-2000.png"))
	assert.Equal(t, "42-2000.png", *f.users.image(42))
}
