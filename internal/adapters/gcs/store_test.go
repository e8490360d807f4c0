package gcs_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relforge/relforge/internal/adapters/gcs"
	"github.com/relforge/relforge/internal/core/domain"
)

func TestNewStore(t *testing.T) {
	store, err := gcs.NewStore(domain.StorageConfig{
		Endpoint:  "storage.googleapis.com",
		AccessKey: "access",
		SecretKey: "secret",
		UseSSL:    true,
	})
	require.NoError(t, err)
	assert.NotNil(t, store)
}

func TestNewStore_InvalidEndpoint(t *testing.T) {
	_, err := gcs.NewStore(domain.StorageConfig{
		Endpoint: "not a host name",
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to create object store client")
}

func testStore(t *testing.T) *gcs.Store {
	t.Helper()

	// An endpoint that rejects every request: upload failures must surface
	// as wrapped errors, not panics or silent successes.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "access denied", http.StatusForbidden)
	}))
	t.Cleanup(server.Close)

	endpoint, err := url.Parse(server.URL)
	require.NoError(t, err)

	store, err := gcs.NewStore(domain.StorageConfig{
		Endpoint:  endpoint.Host,
		AccessKey: "access",
		SecretKey: "secret",
		UseSSL:    false,
	})
	require.NoError(t, err)
	return store
}

func TestUploadString_Rejected(t *testing.T) {
	store := testStore(t)

	err := store.UploadString(context.Background(), "builds", "triggers/run.json", []byte(`{}`))
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to upload trigger object")
}

func TestUploadFile_LocalFileMissing(t *testing.T) {
	store := testStore(t)

	err := store.UploadFile(context.Background(), "builds", "triggers/run.json",
		filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to upload trigger object")
}
