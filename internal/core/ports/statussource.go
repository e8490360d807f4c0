package ports

import (
	"context"

	"github.com/relforge/relforge/internal/core/domain"
)

//go:generate mockgen -source=statussource.go -destination=mocks/mock_statussource.go -package=mocks

// StatusSource performs raw lookups against the downstream status endpoint
// (the gate API). It blocks until the HTTP call returns.
type StatusSource interface {
	// Get fetches the resource at path and returns the captured response.
	Get(ctx context.Context, path string) (*domain.TriggerResponse, error)
}

// TriggerStatus is an externally defined status object wrapped by a
// trigger-poll status and consulted on each refresh cycle.
type TriggerStatus interface {
	// Refresh re-queries the underlying status resource.
	Refresh(ctx context.Context) error

	// FinishedOK reports whether the delegate has observed completion.
	FinishedOK() bool
}
