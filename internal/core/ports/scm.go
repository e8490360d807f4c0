package ports

import (
	"context"

	"github.com/relforge/relforge/internal/core/domain"
)

// SourceManager resolves repository metadata from the source-of-truth bill
// of materials.
//
//go:generate mockgen -source=scm.go -destination=mocks/mock_scm.go -package=mocks
type SourceManager interface {
	// ServiceBuildVersion returns the build version recorded for the
	// repository's service.
	ServiceBuildVersion(ctx context.Context, repo domain.Repository) (string, error)
}
