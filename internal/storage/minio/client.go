// Package minio archives snapshots of removed reviews in an S3-compatible
// bucket.
package minio

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/Deba69/BookList/internal/model"
)

// minioAPI is the subset of *minio.Client the archive uses.
type minioAPI interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

var _ model.ReviewArchive = (*Archive)(nil)

// Options configures the connection to the object store.
type Options struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

type Archive struct {
	api    minioAPI
	bucket string
}

// NewArchive connects to the object store described by opts and makes sure
// the archive bucket exists.
func NewArchive(ctx context.Context, opts Options) (*Archive, error) {
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}
	return NewArchiveWithAPI(ctx, client, opts.Bucket)
}

// NewArchiveWithAPI allows injecting a fake API in tests.
func NewArchiveWithAPI(ctx context.Context, api minioAPI, bucket string) (*Archive, error) {
	a := &Archive{
		api:    api,
		bucket: bucket,
	}

	if err := a.ensureBucketExists(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure bucket exists: %w", err)
	}

	return a, nil
}

func (a *Archive) ensureBucketExists(ctx context.Context) error {
	exists, err := a.api.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		err = a.api.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{})
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return nil
}

// ObjectKey is the object name a review snapshot is stored under.
func ObjectKey(review model.Review) string {
	return "reviews/" + url.PathEscape(review.BookKey) + "/" + review.ID.String() + ".json"
}

// Archive uploads a JSON snapshot of the review.
func (a *Archive) Archive(ctx context.Context, review model.Review) error {
	data, err := json.Marshal(review)
	if err != nil {
		return fmt.Errorf("failed to encode review: %w", err)
	}

	_, err = a.api.PutObject(ctx, a.bucket, ObjectKey(review), bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("failed to upload object: %w", err)
	}
	return nil
}
