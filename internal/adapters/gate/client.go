// Package gate implements the status-source client for the pipeline API
// polled by trigger operations.
package gate

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/relforge/relforge/internal/core/domain"
	"go.trai.ch/zerr"
)

const httpClientTimeout = 30 * time.Second

// Client implements ports.StatusSource over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a status-source client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: httpClientTimeout},
	}
}

// Get fetches the resource at path and captures the response. Non-2xx
// responses are not errors here; callers inspect the captured status.
func (c *Client) Get(ctx context.Context, path string) (*domain.TriggerResponse, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, http.NoBody)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrStatusLookupFailed.Error())
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStatusLookupFailed.Error()), "path", path)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStatusLookupFailed.Error()), "path", path)
	}

	return &domain.TriggerResponse{
		StatusCode: resp.StatusCode,
		Body:       body,
	}, nil
}
