package minio

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	minioLib "github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Deba69/BookList/internal/model"
)

// fakeMinio implements minioAPI for testing without network.
type fakeMinio struct {
	bucketExists    bool
	bucketExistsErr error
	makeBucketErr   error
	madeBucket      string

	putErr     error
	putBucket  string
	putKey     string
	putBody    []byte
	putSize    int64
	putOptions minioLib.PutObjectOptions
}

func (f *fakeMinio) BucketExists(_ context.Context, _ string) (bool, error) {
	return f.bucketExists, f.bucketExistsErr
}

func (f *fakeMinio) MakeBucket(_ context.Context, name string, _ minioLib.MakeBucketOptions) error {
	f.madeBucket = name
	return f.makeBucketErr
}

func (f *fakeMinio) PutObject(_ context.Context, bucket, key string, r io.Reader, size int64, opts minioLib.PutObjectOptions) (minioLib.UploadInfo, error) {
	if f.putErr != nil {
		return minioLib.UploadInfo{}, f.putErr
	}
	body, err := io.ReadAll(r)
	if err != nil {
		return minioLib.UploadInfo{}, err
	}
	f.putBucket, f.putKey, f.putBody, f.putSize, f.putOptions = bucket, key, body, size, opts
	return minioLib.UploadInfo{Bucket: bucket, Key: key, Size: size}, nil
}

func TestNewArchiveWithAPI(t *testing.T) {
	ctx := context.Background()

	t.Run("bucket exists", func(t *testing.T) {
		api := &fakeMinio{bucketExists: true}
		a, err := NewArchiveWithAPI(ctx, api, "b")
		require.NoError(t, err)
		assert.Equal(t, "b", a.bucket)
		assert.Empty(t, api.madeBucket)
	})

	t.Run("creates bucket", func(t *testing.T) {
		api := &fakeMinio{}
		_, err := NewArchiveWithAPI(ctx, api, "bucket")
		require.NoError(t, err)
		assert.Equal(t, "bucket", api.madeBucket)
	})

	t.Run("bucket check error", func(t *testing.T) {
		a, err := NewArchiveWithAPI(ctx, &fakeMinio{bucketExistsErr: errors.New("boom")}, "bucket")
		assert.Nil(t, a)
		assert.ErrorContains(t, err, "failed to ensure bucket exists")
	})

	t.Run("make bucket error", func(t *testing.T) {
		a, err := NewArchiveWithAPI(ctx, &fakeMinio{makeBucketErr: errors.New("fail")}, "bucket")
		assert.Nil(t, a)
		assert.ErrorContains(t, err, "failed to create bucket")
	})
}

func TestArchive_Archive(t *testing.T) {
	ctx := context.Background()
	review := model.Review{
		ID:        uuid.MustParse("6f1c2a3e-8a7b-4c1d-9e2f-0a1b2c3d4e5f"),
		BookKey:   "/works/OL1W",
		Username:  "alice",
		Rating:    4.5,
		Comment:   "x",
		CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}

	t.Run("success", func(t *testing.T) {
		api := &fakeMinio{}
		a := &Archive{api: api, bucket: "b"}

		require.NoError(t, a.Archive(ctx, review))
		assert.Equal(t, "b", api.putBucket)
		assert.Equal(t, "reviews/%2Fworks%2FOL1W/6f1c2a3e-8a7b-4c1d-9e2f-0a1b2c3d4e5f.json", api.putKey)
		assert.Equal(t, "application/json", api.putOptions.ContentType)
		assert.Equal(t, int64(len(api.putBody)), api.putSize)

		var got model.Review
		require.NoError(t, json.Unmarshal(api.putBody, &got))
		assert.Equal(t, review, got)
	})

	t.Run("error", func(t *testing.T) {
		a := &Archive{api: &fakeMinio{putErr: errors.New("put-fail")}, bucket: "b"}
		err := a.Archive(ctx, review)
		assert.ErrorContains(t, err, "failed to upload object")
	})
}
