package scm_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relforge/relforge/internal/adapters/scm"
	"github.com/relforge/relforge/internal/core/domain"
)

func writeBom(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bom.yml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestServiceBuildVersion(t *testing.T) {
	path := writeBom(t, `
version: 1.14.0
services:
  orca:
    version: 1.2.3-20260801
  echo:
    version: 2.0.1-20260802
`)

	source, err := scm.NewBomSource(path)
	require.NoError(t, err)

	version, err := source.ServiceBuildVersion(context.Background(), domain.Repository{Name: "orca"})
	require.NoError(t, err)
	assert.Equal(t, "1.2.3-20260801", version)
}

func TestServiceBuildVersion_ServiceMissing(t *testing.T) {
	path := writeBom(t, `
services:
  orca:
    version: 1.2.3
`)

	source, err := scm.NewBomSource(path)
	require.NoError(t, err)

	_, err = source.ServiceBuildVersion(context.Background(), domain.Repository{Name: "keel"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrServiceNotInBom)
}

func TestNewBomSource_FileMissing(t *testing.T) {
	_, err := scm.NewBomSource(filepath.Join(t.TempDir(), "absent.yml"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to read bom file")
}

func TestNewBomSource_Unparsable(t *testing.T) {
	path := writeBom(t, "services: [not: a: mapping")

	_, err := scm.NewBomSource(path)
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to parse bom file")
}
