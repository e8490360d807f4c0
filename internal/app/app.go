// Package app implements the application layer for relforge.
package app

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/relforge/relforge/internal/adapters/bintray"
	"github.com/relforge/relforge/internal/adapters/gate"
	"github.com/relforge/relforge/internal/adapters/gcs"
	"github.com/relforge/relforge/internal/adapters/gradle"
	"github.com/relforge/relforge/internal/adapters/scm"
	"github.com/relforge/relforge/internal/core/domain"
	"github.com/relforge/relforge/internal/core/ports"
	"github.com/relforge/relforge/internal/engine/dispatcher"
	"github.com/relforge/relforge/internal/engine/trigger"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	telemetry    ports.Telemetry

	newObjectStore  func(domain.StorageConfig) (ports.ObjectStore, error)
	newStatusSource func(baseURL string) ports.StatusSource
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, logger ports.Logger, telemetry ports.Telemetry) *App {
	return &App{
		configLoader: loader,
		logger:       logger,
		telemetry:    telemetry,
		newObjectStore: func(cfg domain.StorageConfig) (ports.ObjectStore, error) {
			return gcs.NewStore(cfg)
		},
		newStatusSource: func(baseURL string) ports.StatusSource {
			return gate.NewClient(baseURL)
		},
	}
}

// WithObjectStoreFactory overrides how the object store is constructed. Used
// for testing.
func (a *App) WithObjectStoreFactory(fn func(domain.StorageConfig) (ports.ObjectStore, error)) {
	a.newObjectStore = fn
}

// WithStatusSourceFactory overrides how the status source is constructed.
// Used for testing.
func (a *App) WithStatusSourceFactory(fn func(baseURL string) ports.StatusSource) {
	a.newStatusSource = fn
}

// BuildDebians builds debian packages for the named repositories, or for all
// configured repositories when none are named. Option and credential
// validation happens once, before any repository work starts.
func (a *App) BuildDebians(ctx context.Context, configPath string, repositories []string) error {
	cfg, err := a.configLoader.Load(configPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	repos, err := selectRepositories(cfg, repositories)
	if err != nil {
		return err
	}

	source, err := scm.NewBomSource(cfg.BomPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load bill of materials")
	}

	bintrayClient := bintray.NewClient(
		cfg.Build.BintrayOrg,
		cfg.Build.BintrayDebianRepository,
		cfg.Credentials,
		publishCacheDir(),
	)
	buildTool := gradle.New(a.logger, bintrayClient, cfg.Build, cfg.Credentials)

	disp, err := dispatcher.New(buildTool, source, a.logger, a.telemetry, cfg.Build, cfg.Credentials)
	if err != nil {
		return err
	}

	return disp.Run(ctx, repos)
}

// TriggerOptions describes one trigger-poll invocation.
type TriggerOptions struct {
	Bucket     string
	UploadPath string
	LocalFile  string
	Contents   []byte
	StatusPath string

	// Timeout bounds the wait for the downstream execution. Zero keeps the
	// default.
	Timeout time.Duration

	// PollInterval is the delay between status refreshes.
	PollInterval time.Duration
}

// TriggerResult is the terminal outcome of a trigger-poll invocation. A
// timed-out wait is a result, not an error.
type TriggerResult struct {
	OperationID string
	FinishedOK  bool
	TimedOut    bool
	Detail      string
}

const defaultPollInterval = 10 * time.Second

// TriggerPipeline uploads the trigger object and polls the downstream
// execution status until it finishes or the wait times out.
func (a *App) TriggerPipeline(ctx context.Context, configPath string, opts TriggerOptions) (*TriggerResult, error) {
	cfg, err := a.configLoader.Load(configPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	store, err := a.newObjectStore(cfg.Storage)
	if err != nil {
		return nil, err
	}
	source := a.newStatusSource(cfg.GateBaseURL)
	delegate := gate.NewPipelineStatus(source, opts.StatusPath)

	op := trigger.NewUploadOperation(store, source, delegate, trigger.Params{
		Bucket:     opts.Bucket,
		UploadPath: opts.UploadPath,
		LocalFile:  opts.LocalFile,
		Contents:   opts.Contents,
		StatusPath: opts.StatusPath,
	})

	status, err := op.Execute(ctx)
	if err != nil {
		return nil, err
	}
	if opts.Timeout > 0 {
		status.SetTimeout(opts.Timeout)
	}

	interval := opts.PollInterval
	if interval <= 0 {
		interval = defaultPollInterval
	}

	if err := a.poll(ctx, status, interval); err != nil {
		return nil, err
	}

	return &TriggerResult{
		OperationID: op.ID(),
		FinishedOK:  status.FinishedOK(),
		TimedOut:    status.TimedOut(),
		Detail:      status.Detail(),
	}, nil
}

// poll drives the status refresh loop until the execution finishes, the wait
// times out, or the context is canceled.
func (a *App) poll(ctx context.Context, status *trigger.Status, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for !status.Finished() {
		select {
		case <-ctx.Done():
			return zerr.Wrap(ctx.Err(), "trigger wait canceled")
		case <-ticker.C:
			if err := status.Refresh(ctx); err != nil {
				return err
			}
		}
	}
	return nil
}

// selectRepositories resolves the named repositories against the
// configuration, or returns all configured repositories when none are named.
func selectRepositories(cfg *domain.Config, names []string) ([]domain.Repository, error) {
	if len(names) == 0 {
		return cfg.Repositories, nil
	}

	repos := make([]domain.Repository, 0, len(names))
	for _, name := range names {
		repo, ok := cfg.Repository(name)
		if !ok {
			return nil, zerr.With(domain.ErrRepositoryNotConfigured, "repository", name)
		}
		repos = append(repos, repo)
	}
	return repos, nil
}

// publishCacheDir returns the per-user cache directory for published-version
// markers, or "" when no user cache directory is available.
func publishCacheDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "relforge", "published")
}
