// Package gcs implements the ObjectStore port against a GCS-compatible
// object store using the S3 interoperability API.
package gcs

import (
	"bytes"
	"context"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/relforge/relforge/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.ObjectStore.
type Store struct {
	client *minio.Client
}

// NewStore creates an object store client for the configured endpoint.
func NewStore(cfg domain.StorageConfig) (*Store, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create object store client")
	}
	return &Store{client: client}, nil
}

// UploadString writes the given contents to path inside bucket, blocking
// until the transfer completes.
func (s *Store) UploadString(ctx context.Context, bucket, path string, contents []byte) error {
	_, err := s.client.PutObject(ctx, bucket, path,
		bytes.NewReader(contents), int64(len(contents)),
		minio.PutObjectOptions{ContentType: "application/octet-stream"})
	if err != nil {
		return wrapUploadErr(err, bucket, path)
	}
	return nil
}

// UploadFile uploads a local file to path inside bucket, blocking until the
// transfer completes.
func (s *Store) UploadFile(ctx context.Context, bucket, path, localPath string) error {
	_, err := s.client.FPutObject(ctx, bucket, path, localPath, minio.PutObjectOptions{})
	if err != nil {
		return wrapUploadErr(err, bucket, path)
	}
	return nil
}

func wrapUploadErr(err error, bucket, path string) error {
	uploadErr := zerr.Wrap(err, domain.ErrUploadFailed.Error())
	uploadErr = zerr.With(uploadErr, "bucket", bucket)
	return zerr.With(uploadErr, "path", path)
}
