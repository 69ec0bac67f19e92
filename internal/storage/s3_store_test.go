package storage

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	objects      map[string][]byte
	contentTypes map[string]string
	deleteErr    error
	putErr       error
}

func newFakeS3() *fakeS3 {
	return &fakeS3{
		objects:      map[string][]byte{},
		contentTypes: map[string]string{},
	}
}

func (f *fakeS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}

	body, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}

	id := aws.ToString(params.Bucket) + "/" + aws.ToString(params.Key)
	f.objects[id] = body
	f.contentTypes[id] = aws.ToString(params.ContentType)

	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}

	delete(f.objects, aws.ToString(params.Bucket)+"/"+aws.ToString(params.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3Store_StoreAsAndURL(t *testing.T) {
	client := newFakeS3()
	store := NewS3Store(client, Buckets{VisibilityPublic: "public"}, "http://localhost:9000/")

	key, err := store.StoreAs(context.Background(), VisibilityPublic, "profile_picture", "42-2000.png", []byte("png"), "image/png")
	require.NoError(t, err)

	assert.Equal(t, "profile_picture/42-2000.png", key)
	assert.Equal(t, []byte("png"), client.objects["public/profile_picture/42-2000.png"])
	assert.Equal(t, "image/png", client.contentTypes["public/profile_picture/42-2000.png"])
	assert.Equal(t, "http://localhost:9000/public/profile_picture/42-2000.png", store.URL(VisibilityPublic, key))
}

func TestS3Store_DeleteIgnoresMissingKey(t *testing.T) {
	client := newFakeS3()
	client.deleteErr = &types.NoSuchKey{}
	store := NewS3Store(client, Buckets{VisibilityPublic: "public"}, "http://localhost:9000")

	err := store.Delete(context.Background(), VisibilityPublic, "profile_picture/missing.jpg")
	assert.NoError(t, err)
}

func TestS3Store_DeleteReturnsOtherErrors(t *testing.T) {
	client := newFakeS3()
	client.deleteErr = errors.New("connection reset")
	store := NewS3Store(client, Buckets{VisibilityPublic: "public"}, "http://localhost:9000")

	err := store.Delete(context.Background(), VisibilityPublic, "profile_picture/a.jpg")
	assert.ErrorContains(t, err, "connection reset")
}

func TestS3Store_UnknownVisibility(t *testing.T) {
	store := NewS3Store(newFakeS3(), Buckets{}, "http://localhost:9000")

	err := store.Put(context.Background(), VisibilityPublic, "a", []byte("x"), "image/png")
	assert.Error(t, err)
}
