package ports

import "context"

// ObjectStore is the interface to the cloud object store used by trigger
// operations. Both calls block until the transfer completes and fail fast;
// retry policy, if any, belongs to the implementation.
//
//go:generate mockgen -source=objectstore.go -destination=mocks/mock_objectstore.go -package=mocks
type ObjectStore interface {
	// UploadString writes the given contents to path inside bucket.
	UploadString(ctx context.Context, bucket, path string, contents []byte) error

	// UploadFile uploads a local file to path inside bucket.
	UploadFile(ctx context.Context, bucket, path, localPath string) error
}
