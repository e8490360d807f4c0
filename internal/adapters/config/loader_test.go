package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relforge/relforge/internal/adapters/config"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "release.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoad_FullConfig(t *testing.T) {
	t.Setenv("BINTRAY_USER", "builder")
	t.Setenv("BINTRAY_KEY", "secret")
	t.Setenv("CHROME_BIN", "/usr/bin/chromium")
	t.Setenv("GCS_ACCESS_KEY", "access")
	t.Setenv("GCS_SECRET_KEY", "sekrit")

	path := writeConfig(t, `
version: "1"
bintray:
  org: acme
  jar_repository: jars
  debian_repository: debs
  publish_wait_secs: 120
gradle:
  cache_path: /var/cache/gradle
  run_unit_tests: false
  max_local_builds: 2
bom: /etc/release/bom.yml
gate:
  base_url: https://gate.internal
storage:
  endpoint: storage.example.com
  use_ssl: false
repositories:
  - name: orca
    git_dir: /src/orca
  - name: deck
    git_dir: /src/deck
`)

	loader := config.NewLoader()
	cfg, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "builder", cfg.Credentials.User)
	assert.Equal(t, "secret", cfg.Credentials.Key)

	assert.Equal(t, 2, cfg.Build.MaxLocalBuilds)
	assert.False(t, cfg.Build.RunUnitTests)
	assert.Equal(t, "/var/cache/gradle", cfg.Build.GradleCachePath)
	assert.Equal(t, "/usr/bin/chromium", cfg.Build.ChromeBin)
	assert.Equal(t, "acme", cfg.Build.BintrayOrg)
	assert.Equal(t, "jars", cfg.Build.BintrayJarRepository)
	assert.Equal(t, "debs", cfg.Build.BintrayDebianRepository)
	assert.Equal(t, 2*time.Minute, cfg.Build.PublishWait)

	assert.Equal(t, "/etc/release/bom.yml", cfg.BomPath)
	assert.Equal(t, "https://gate.internal", cfg.GateBaseURL)

	assert.Equal(t, "storage.example.com", cfg.Storage.Endpoint)
	assert.False(t, cfg.Storage.UseSSL)
	assert.Equal(t, "access", cfg.Storage.AccessKey)
	assert.Equal(t, "sekrit", cfg.Storage.SecretKey)

	require.Len(t, cfg.Repositories, 2)
	repo, ok := cfg.Repository("deck")
	require.True(t, ok)
	assert.Equal(t, "/src/deck", repo.GitDir)

	_, ok = cfg.Repository("keel")
	assert.False(t, ok)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("BINTRAY_USER", "")
	t.Setenv("BINTRAY_KEY", "")
	t.Setenv("CHROME_BIN", "")

	path := writeConfig(t, `
bintray:
  org: acme
`)

	loader := config.NewLoader()
	cfg, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Build.MaxLocalBuilds)
	assert.True(t, cfg.Build.RunUnitTests)
	assert.Equal(t, 300*time.Second, cfg.Build.PublishWait)
	assert.Equal(t, "storage.googleapis.com", cfg.Storage.Endpoint)
	assert.True(t, cfg.Storage.UseSSL)

	// Validation is the dispatcher's job: an empty credential loads fine.
	assert.Empty(t, cfg.Credentials.User)
}

func TestLoad_CustomCredentialEnvNames(t *testing.T) {
	t.Setenv("RELEASE_STORE_ACCESS", "access")
	t.Setenv("RELEASE_STORE_SECRET", "sekrit")

	path := writeConfig(t, `
storage:
  access_key_env: RELEASE_STORE_ACCESS
  secret_key_env: RELEASE_STORE_SECRET
`)

	loader := config.NewLoader()
	cfg, err := loader.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "access", cfg.Storage.AccessKey)
	assert.Equal(t, "sekrit", cfg.Storage.SecretKey)
}

func TestLoad_FileMissing(t *testing.T) {
	loader := config.NewLoader()

	_, err := loader.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestLoad_Unparsable(t *testing.T) {
	path := writeConfig(t, "bintray: [org: acme")

	loader := config.NewLoader()
	_, err := loader.Load(path)
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to parse config file")
}
