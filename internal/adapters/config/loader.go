// Package config provides the release configuration loader.
package config

import (
	"os"
	"time"

	"github.com/relforge/relforge/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Environment variables resolved by the loader. Nothing outside this
// package reads them.
const (
	bintrayUserEnv = "BINTRAY_USER"
	bintrayKeyEnv  = "BINTRAY_KEY"
	chromeBinEnv   = "CHROME_BIN"

	defaultAccessKeyEnv = "GCS_ACCESS_KEY"
	defaultSecretKeyEnv = "GCS_SECRET_KEY"
)

const (
	defaultMaxLocalBuilds  = 4
	defaultPublishWaitSecs = 300
	defaultStorageEndpoint = "storage.googleapis.com"
)

// FileConfigLoader implements ports.ConfigLoader using a YAML file plus
// environment credential resolution.
type FileConfigLoader struct{}

// NewLoader creates a new FileConfigLoader.
func NewLoader() *FileConfigLoader {
	return &FileConfigLoader{}
}

// Load reads the configuration at path and resolves credentials from the
// environment. Presence validation of the credential and option values is
// deliberately left to the dispatcher so it happens exactly once, before any
// repository work.
func (l *FileConfigLoader) Load(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by the user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file releaseFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	cfg := &domain.Config{
		Build: domain.BuildOptions{
			MaxLocalBuilds:          defaultMaxLocalBuilds,
			RunUnitTests:            true,
			GradleCachePath:         file.Gradle.CachePath,
			ChromeBin:               os.Getenv(chromeBinEnv),
			BintrayOrg:              file.Bintray.Org,
			BintrayJarRepository:    file.Bintray.JarRepository,
			BintrayDebianRepository: file.Bintray.DebianRepository,
			PublishWait:             defaultPublishWaitSecs * time.Second,
		},
		Credentials: domain.Credentials{
			User: os.Getenv(bintrayUserEnv),
			Key:  os.Getenv(bintrayKeyEnv),
		},
		BomPath:     file.Bom,
		GateBaseURL: file.Gate.BaseURL,
	}

	if file.Gradle.MaxLocalBuilds != nil {
		cfg.Build.MaxLocalBuilds = *file.Gradle.MaxLocalBuilds
	}
	if file.Gradle.RunUnitTests != nil {
		cfg.Build.RunUnitTests = *file.Gradle.RunUnitTests
	}
	if file.Bintray.PublishWaitSecs != nil {
		cfg.Build.PublishWait = time.Duration(*file.Bintray.PublishWaitSecs) * time.Second
	}

	cfg.Storage = resolveStorage(file.Storage)

	cfg.Repositories = make([]domain.Repository, len(file.Repositories))
	for i, dto := range file.Repositories {
		cfg.Repositories[i] = domain.Repository{
			Name:   dto.Name,
			GitDir: dto.GitDir,
		}
	}

	return cfg, nil
}

func resolveStorage(dto storageDTO) domain.StorageConfig {
	endpoint := dto.Endpoint
	if endpoint == "" {
		endpoint = defaultStorageEndpoint
	}

	accessKeyEnv := dto.AccessKeyEnv
	if accessKeyEnv == "" {
		accessKeyEnv = defaultAccessKeyEnv
	}
	secretKeyEnv := dto.SecretKeyEnv
	if secretKeyEnv == "" {
		secretKeyEnv = defaultSecretKeyEnv
	}

	useSSL := true
	if dto.UseSSL != nil {
		useSSL = *dto.UseSSL
	}

	return domain.StorageConfig{
		Endpoint:  endpoint,
		AccessKey: os.Getenv(accessKeyEnv),
		SecretKey: os.Getenv(secretKeyEnv),
		UseSSL:    useSSL,
	}
}
