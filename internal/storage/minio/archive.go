package minio

import (
	"bytes"
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"

	"github.com/taskboard/taskboard-server/internal/model"
)

// Internal adapter interface to enable mocking without a real MinIO server.
type minioAPI interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader *bytes.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

// Wrapper to adapt *minio.Client to minioAPI.
type minioClientWrapper struct{ c *minio.Client }

func (w minioClientWrapper) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	return w.c.BucketExists(ctx, bucketName)
}
func (w minioClientWrapper) MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error {
	return w.c.MakeBucket(ctx, bucketName, opts)
}
func (w minioClientWrapper) PutObject(ctx context.Context, bucketName, objectName string, reader *bytes.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	return w.c.PutObject(ctx, bucketName, objectName, reader, objectSize, opts)
}

var _ model.EventArchive = (*Archive)(nil)

// Archive mirrors lifecycle event records into an object storage bucket as
// JSON objects, one object per event. It is a write-only audit sink.
type Archive struct {
	api    minioAPI
	bucket string
}

// NewArchive creates an archive using a real *minio.Client instance.
func NewArchive(ctx context.Context, client *minio.Client, bucket string) (*Archive, error) {
	return NewArchiveWithAPI(ctx, minioClientWrapper{c: client}, bucket)
}

// NewArchiveWithAPI allows injecting a mockable API (used in tests).
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
		if err := a.api.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return nil
}

// Put stores one JSON-encoded event record under the given key.
func (a *Archive) Put(ctx context.Context, key string, data []byte) error {
	_, err := a.api.PutObject(ctx, a.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("failed to upload object: %w", err)
	}
	return nil
}
