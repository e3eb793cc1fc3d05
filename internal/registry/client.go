package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	lerrors "github.com/licensor/cli/internal/errors"
)

// DefaultEndpoint is the registry base URL used when no override is configured.
const DefaultEndpoint = "https://api.github.com/licenses"

const userAgent = "licensor"

// Fetcher is the minimal registry surface the CLI depends on.
// Tests substitute a fixture double instead of a real network call.
type Fetcher interface {
	// List returns one Summary per license advertised by the registry.
	List(ctx context.Context) ([]Summary, error)

	// Get fetches the full record for a single key, passed through verbatim.
	Get(ctx context.Context, key string) (*License, error)
}

// Client fetches license records over HTTP.
//
// Every call re-fetches; there is no caching and no retry. A single
// round trip per key, strictly sequential.
type Client struct {
	httpClient *http.Client
	endpoint   string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a registry client for the given base endpoint.
// An empty endpoint falls back to DefaultEndpoint.
func NewClient(endpoint string, opts ...Option) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	c := &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		endpoint: strings.TrimRight(endpoint, "/"),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Endpoint returns the configured base URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// List fetches all available licenses from the listing endpoint.
// Any transport error or non-2xx status wraps ErrUnavailable; no
// partial results are returned.
func (c *Client) List(ctx context.Context) ([]Summary, error) {
	body, err := c.get(ctx, c.endpoint)
	if err != nil {
		return nil, lerrors.Wrapf(lerrors.ErrUnavailable, err, "listing licenses")
	}

	var summaries []Summary
	if err := json.Unmarshal(body, &summaries); err != nil {
		return nil, lerrors.Wrapf(lerrors.ErrUnavailable, err, "decoding license list")
	}

	return summaries, nil
}

// Get fetches the full record for a single license key.
// Failures wrap ErrRetrieval and name the offending key.
func (c *Client) Get(ctx context.Context, key string) (*License, error) {
	body, err := c.get(ctx, c.endpoint+"/"+key)
	if err != nil {
		return nil, lerrors.Wrapf(lerrors.ErrRetrieval, err, fmt.Sprintf("fetching license %q", key))
	}

	var lic License
	if err := json.Unmarshal(body, &lic); err != nil {
		return nil, lerrors.Wrapf(lerrors.ErrRetrieval, err, fmt.Sprintf("decoding license %q", key))
	}

	return &lic, nil
}

// get performs a GET request and returns the response body as bytes.
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	return io.ReadAll(resp.Body)
}
