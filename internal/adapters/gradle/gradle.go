// Package gradle implements the BuildTool port by shelling out to the
// gradle wrapper of each repository checkout.
package gradle

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/relforge/relforge/internal/adapters/bintray"
	"github.com/relforge/relforge/internal/core/domain"
	"github.com/relforge/relforge/internal/core/ports"
	"go.trai.ch/zerr"
)

const gradleWrapper = "./gradlew"

// Gradle implements ports.BuildTool.
type Gradle struct {
	logger  ports.Logger
	bintray *bintray.Client
	opts    domain.BuildOptions
	creds   domain.Credentials
}

// New creates a Gradle build tool bound to the given bintray client and
// publishing options.
func New(logger ports.Logger, bintrayClient *bintray.Client, opts domain.BuildOptions, creds domain.Credentials) *Gradle {
	return &Gradle{
		logger:  logger,
		bintray: bintrayClient,
		opts:    opts,
		creds:   creds,
	}
}

// CommonArgs returns the arguments shared by every gradle invocation,
// carrying the bintray publishing properties.
func (g *Gradle) CommonArgs() []string {
	return []string{
		"--stacktrace",
		"--no-daemon",
		"-Pbintray.user=" + g.creds.User,
		"-Pbintray.key=" + g.creds.Key,
		"-PbintrayOrg=" + g.opts.BintrayOrg,
		"-PbintrayJarRepository=" + g.opts.BintrayJarRepository,
		"-PbintrayPublishWaitForSecs=" + strconv.Itoa(int(g.opts.PublishWait.Seconds())),
	}
}

// DebianArgs returns the arguments selecting debian packaging for the given
// target distributions.
func (g *Gradle) DebianArgs(distributions []string) []string {
	return []string{
		"-PbintrayPackageDebDistribution=" + strings.Join(distributions, ","),
		"-PbintrayDebianRepository=" + g.opts.BintrayDebianRepository,
		"buildDeb",
	}
}

// ConsiderDebianOnBintray reports whether the repository's build version is
// already published to the configured debian repository.
func (g *Gradle) ConsiderDebianOnBintray(ctx context.Context, repo domain.Repository, version string) (bool, error) {
	return g.bintray.HasDebianVersion(ctx, repo.Name, version)
}

// CheckRun invokes the gradle wrapper in the repository checkout and blocks
// until it exits. Subprocess output is streamed to the logger and, when a
// telemetry vertex is attached to the context, to that vertex as well.
func (g *Gradle) CheckRun(ctx context.Context, args []string, repo domain.Repository, phase, artifact string) error {
	cmd := exec.CommandContext(ctx, gradleWrapper, args...) //nolint:gosec // args are assembled by the dispatcher
	cmd.Dir = repo.GitDir
	cmd.Env = os.Environ()

	stdout := &logWriter{logger: g.logger, level: "info"}
	stderr := &logWriter{logger: g.logger, level: "error"}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if vertex, ok := ports.VertexFromContext(ctx); ok {
		cmd.Stdout = io.MultiWriter(stdout, vertex.Stdout())
		cmd.Stderr = io.MultiWriter(stderr, vertex.Stderr())
	}

	g.logger.Info("building " + repo.Name + " (" + phase + "/" + artifact + ")")

	if err := cmd.Run(); err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		runErr := zerr.With(zerr.Wrap(err, "gradle run failed"), "exit_code", exitCode)
		runErr = zerr.With(runErr, "repository", repo.Name)
		runErr = zerr.With(runErr, "phase", phase)
		return zerr.With(runErr, "artifact", artifact)
	}

	stdout.Flush()
	stderr.Flush()
	return nil
}
