// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"github.com/relforge/relforge/internal/core/domain"
)

// BuildTool defines the interface to the external build tool (gradle) used
// to produce debian packages.
//
//go:generate mockgen -source=buildtool.go -destination=mocks/mock_buildtool.go -package=mocks
type BuildTool interface {
	// CommonArgs returns the argument list shared by every gradle
	// invocation, including the bintray publishing properties.
	CommonArgs() []string

	// DebianArgs returns the arguments that select debian packaging for the
	// given target distributions.
	DebianArgs(distributions []string) []string

	// ConsiderDebianOnBintray reports whether the given build version of the
	// repository is already published, in which case the build can be
	// skipped. It must be side-effect free.
	ConsiderDebianOnBintray(ctx context.Context, repo domain.Repository, version string) (bool, error)

	// CheckRun invokes the build tool with the assembled arguments for the
	// repository, blocking until the subprocess exits. A failed run returns
	// an error carrying the phase and artifact labels.
	CheckRun(ctx context.Context, args []string, repo domain.Repository, phase, artifact string) error
}
