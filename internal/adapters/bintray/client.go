// Package bintray implements the published-version check against the
// bintray package hosting API.
package bintray

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/relforge/relforge/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	defaultAPIBase    = "https://api.bintray.com"
	httpClientTimeout = 30 * time.Second
)

// Client answers whether a package version is already published to the
// configured debian repository. Positive answers are cached on disk:
// published versions are immutable, so a cached hit never goes stale.
type Client struct {
	apiBase    string
	org        string
	repository string
	creds      domain.Credentials
	cacheDir   string
	httpClient *http.Client
}

// NewClient creates a bintray client for the given organization and debian
// repository. cacheDir may be empty to disable lookup caching.
func NewClient(org, repository string, creds domain.Credentials, cacheDir string) *Client {
	return &Client{
		apiBase:    defaultAPIBase,
		org:        org,
		repository: repository,
		creds:      creds,
		cacheDir:   cacheDir,
		httpClient: &http.Client{Timeout: httpClientTimeout},
	}
}

// newClientWithBase creates a Client against a custom API base (used for testing).
func newClientWithBase(apiBase, org, repository string, creds domain.Credentials, cacheDir string) *Client {
	c := NewClient(org, repository, creds, cacheDir)
	c.apiBase = apiBase
	return c
}

// HasDebianVersion reports whether the given version of the package is
// already published.
func (c *Client) HasDebianVersion(ctx context.Context, pkg, version string) (bool, error) {
	cachePath := c.cachePath(pkg, version)
	if cachePath != "" {
		if _, err := os.Stat(cachePath); err == nil {
			return true, nil
		}
	}

	url := fmt.Sprintf("%s/packages/%s/%s/%s/versions/%s", c.apiBase, c.org, c.repository, pkg, version)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return false, zerr.Wrap(err, domain.ErrPublishCheckFailed.Error())
	}
	req.SetBasicAuth(c.creds.User, c.creds.Key)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, zerr.Wrap(err, domain.ErrPublishCheckFailed.Error())
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode == http.StatusOK:
		c.markPublished(cachePath, pkg, version)
		return true, nil
	case resp.StatusCode == http.StatusNotFound:
		return false, nil
	default:
		checkErr := zerr.With(domain.ErrPublishCheckFailed, "status_code", resp.StatusCode)
		checkErr = zerr.With(checkErr, "package", pkg)
		return false, zerr.With(checkErr, "version", version)
	}
}

// cachePath returns the marker file path for a package version, or "" when
// caching is disabled.
func (c *Client) cachePath(pkg, version string) string {
	if c.cacheDir == "" {
		return ""
	}
	key := xxhash.Sum64String(c.org + "/" + c.repository + "/" + pkg + "@" + version)
	return filepath.Join(c.cacheDir, strconv.FormatUint(key, 16)+".published")
}

func (c *Client) markPublished(cachePath, pkg, version string) {
	if cachePath == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(cachePath), 0o755); err != nil {
		return
	}
	// Cache write failures only cost a future lookup.
	_ = os.WriteFile(cachePath, []byte(pkg+"@"+version+"\n"), 0o644)
}
