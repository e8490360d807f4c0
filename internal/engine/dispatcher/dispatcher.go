// Package dispatcher runs debian package builds for a set of repositories
// under a bounded concurrency gate.
package dispatcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/relforge/relforge/internal/core/domain"
	"github.com/relforge/relforge/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/semaphore"
)

// nonDebianRepositories are known repositories that do not produce debian
// packages and are always skipped.
var nonDebianRepositories = map[string]struct{}{
	"spin": {},
}

// debianDistributions are the target distributions packages are built for.
var debianDistributions = []string{"trusty", "xenial", "bionic"}

const (
	buildPhase    = "candidate"
	buildArtifact = "debian-build"

	// deckRepository is the UI build; its tests need a browser binary.
	deckRepository = "deck"

	initScriptPath = "gradle/init-publish.gradle"
)

// Dispatcher builds debian packages for repositories, bounding the number of
// concurrently running build subprocesses.
type Dispatcher struct {
	buildTool ports.BuildTool
	scm       ports.SourceManager
	logger    ports.Logger
	telemetry ports.Telemetry

	opts  domain.BuildOptions
	creds domain.Credentials
	gate  *semaphore.Weighted
}

// New creates a Dispatcher, validating the option set and credentials before
// any repository is processed. A missing required value fails the whole run
// up front rather than mid-batch.
func New(
	buildTool ports.BuildTool,
	scm ports.SourceManager,
	logger ports.Logger,
	telemetry ports.Telemetry,
	opts domain.BuildOptions,
	creds domain.Credentials,
) (*Dispatcher, error) {
	if creds.User == "" {
		return nil, zerr.With(domain.ErrCredentialNotSet, "variable", "BINTRAY_USER")
	}
	if creds.Key == "" {
		return nil, zerr.With(domain.ErrCredentialNotSet, "variable", "BINTRAY_KEY")
	}

	required := []struct {
		name string
		ok   bool
	}{
		{"bintray.org", opts.BintrayOrg != ""},
		{"bintray.jar_repository", opts.BintrayJarRepository != ""},
		{"bintray.debian_repository", opts.BintrayDebianRepository != ""},
		{"bintray.publish_wait_secs", opts.PublishWait > 0},
	}
	for _, opt := range required {
		if !opt.ok {
			return nil, zerr.With(domain.ErrOptionNotSet, "option", opt.name)
		}
	}

	if opts.MaxLocalBuilds < 1 {
		return nil, zerr.With(domain.ErrInvalidMaxLocalBuilds, "max_local_builds", opts.MaxLocalBuilds)
	}

	return &Dispatcher{
		buildTool: buildTool,
		scm:       scm,
		logger:    logger,
		telemetry: telemetry,
		opts:      opts,
		creds:     creds,
		gate:      semaphore.NewWeighted(int64(opts.MaxLocalBuilds)),
	}, nil
}

// CanSkip reports whether the repository needs no build: either it is a
// known non-debian repository, or its current build version is already
// published. The check is side-effect free.
func (d *Dispatcher) CanSkip(ctx context.Context, repo domain.Repository) (bool, error) {
	if _, ok := nonDebianRepositories[repo.Name]; ok {
		return true, nil
	}

	version, err := d.scm.ServiceBuildVersion(ctx, repo)
	if err != nil {
		return false, zerr.Wrap(err, domain.ErrVersionLookupFailed.Error())
	}

	return d.buildTool.ConsiderDebianOnBintray(ctx, repo, version)
}

// Build assembles the gradle argument list for the repository and runs it
// under the concurrency gate. The gate is released on every exit path; a
// failed build affects only this repository.
func (d *Dispatcher) Build(ctx context.Context, repo domain.Repository) error {
	args := d.buildArgs(repo)

	if err := d.gate.Acquire(ctx, 1); err != nil {
		return zerr.Wrap(err, "failed to acquire build slot")
	}
	defer d.gate.Release(1)

	return d.buildTool.CheckRun(ctx, args, repo, buildPhase, buildArtifact)
}

// buildArgs deterministically assembles the argument list for one build.
func (d *Dispatcher) buildArgs(repo domain.Repository) []string {
	args := d.buildTool.CommonArgs()

	if d.opts.GradleCachePath != "" {
		args = append(args, "--gradle-user-home="+d.opts.GradleCachePath)
	}

	// Deck's test suite drives a browser; without one configured the tests
	// cannot run at all.
	if !d.opts.RunUnitTests || (repo.Name == deckRepository && d.opts.ChromeBin == "") {
		args = append(args, "-x", "test")
	}

	if _, err := os.Stat(filepath.Join(repo.GitDir, initScriptPath)); err == nil {
		args = append(args, "-I", initScriptPath)
	}

	return append(args, d.buildTool.DebianArgs(debianDistributions)...)
}

type result struct {
	repo domain.Repository
	err  error
}

// Run processes all repositories, skipping the ones that are already
// published and building the rest in parallel up to the configured limit.
// Per-repository failures are aggregated; one failure never aborts the
// other builds.
func (d *Dispatcher) Run(ctx context.Context, repos []domain.Repository) error {
	results := make(chan result, len(repos))

	for _, repo := range repos {
		go func(repo domain.Repository) {
			results <- result{repo: repo, err: d.processRepository(ctx, repo)}
		}(repo)
	}

	var errs error
	for range repos {
		res := <-results
		if res.err != nil {
			errs = errors.Join(errs, zerr.With(
				zerr.Wrap(res.err, domain.ErrBuildFailed.Error()),
				"repository", res.repo.Name,
			))
		}
	}
	return errs
}

func (d *Dispatcher) processRepository(ctx context.Context, repo domain.Repository) error {
	ctx, vertex := d.telemetry.Record(ctx, repo.Name+":"+buildArtifact)

	skip, err := d.CanSkip(ctx, repo)
	if err != nil {
		vertex.Complete(err)
		return err
	}
	if skip {
		d.logger.Info("skipping " + repo.Name + ": already published")
		vertex.Cached()
		vertex.Complete(nil)
		return nil
	}

	err = d.Build(ctx, repo)
	vertex.Complete(err)
	return err
}
