package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// minioAPI covers the methods of *minio.Client the store uses, so tests can
// substitute a stub.
type minioAPI interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	BucketExists(ctx context.Context, bucketName string) (bool, error)
}

// minioNewClient builds the underlying client; tests override this variable.
var minioNewClient = func(endpoint string, opts *minio.Options) (minioAPI, error) {
	return minio.New(endpoint, opts)
}

type minioStorage struct {
	client minioAPI
	bucket string
}

// NewMinioStorage returns a Storage backed by one S3-compatible bucket.
func NewMinioStorage(endpoint, accessKey, secretKey, bucket string, useSSL bool) (Storage, error) {
	client, err := minioNewClient(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("NewMinioStorage: %w", err)
	}
	return &minioStorage{client: client, bucket: bucket}, nil
}

func (s *minioStorage) Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("Upload: %w", err)
	}
	return nil
}

func (s *minioStorage) Ping(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("Ping: %w", err)
	}
	if !exists {
		return fmt.Errorf("Ping: bucket %q does not exist", s.bucket)
	}
	return nil
}
