// Package trigger implements the upload-then-poll-until-done operation used
// by pipeline integration tests: a one-shot upload to the object store
// followed by caller-driven polling of the downstream execution status.
package trigger

import (
	"context"

	"github.com/google/uuid"
	"github.com/relforge/relforge/internal/core/domain"
	"github.com/relforge/relforge/internal/core/ports"
	"go.trai.ch/zerr"
)

// Params describes one upload trigger. Exactly one of LocalFile and
// Contents should be set.
type Params struct {
	// Bucket is the object store bucket the trigger object is written to.
	Bucket string

	// UploadPath is the object path inside the bucket.
	UploadPath string

	// LocalFile is a local file to upload.
	LocalFile string

	// Contents is an inline payload to upload instead of a file.
	Contents []byte

	// StatusPath is the status resource polled after the upload.
	StatusPath string
}

// Operation is an upload trigger in its constructed, not-yet-executed state.
// Construction has no side effects; Execute performs the upload and returns
// the pollable status.
type Operation struct {
	id       string
	store    ports.ObjectStore
	source   ports.StatusSource
	delegate ports.TriggerStatus
	params   Params
}

// NewUploadOperation creates an operation that uploads the described object
// and then tracks the downstream execution through the delegate status.
func NewUploadOperation(
	store ports.ObjectStore,
	source ports.StatusSource,
	delegate ports.TriggerStatus,
	params Params,
) *Operation {
	return &Operation{
		id:       uuid.NewString(),
		store:    store,
		source:   source,
		delegate: delegate,
		params:   params,
	}
}

// ID returns the unique identifier of this operation.
func (o *Operation) ID() string {
	return o.id
}

// Execute performs the upload and, on success, constructs the poll status.
// If the upload fails the whole operation fails: no status object is
// created and no partial state is observable.
func (o *Operation) Execute(ctx context.Context) (*Status, error) {
	var err error
	if o.params.LocalFile != "" {
		err = o.store.UploadFile(ctx, o.params.Bucket, o.params.UploadPath, o.params.LocalFile)
	} else {
		err = o.store.UploadString(ctx, o.params.Bucket, o.params.UploadPath, o.params.Contents)
	}
	if err != nil {
		uploadErr := zerr.Wrap(err, domain.ErrUploadFailed.Error())
		uploadErr = zerr.With(uploadErr, "bucket", o.params.Bucket)
		return nil, zerr.With(uploadErr, "path", o.params.UploadPath)
	}

	return newStatus(ctx, o.source, o.delegate, o.params.StatusPath)
}
