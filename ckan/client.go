// Package ckan provides an HTTP client for a CKAN-style open-data catalog
// reached through a single configurable proxy endpoint. It implements both
// prezzario.Catalog and prezzario.Fetcher.
package ckan

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/maxsviluppo/prezzario"
)

// DefaultTimeout bounds every proxy request. A hung proxy or CKAN endpoint
// would otherwise block an import indefinitely.
const DefaultTimeout = 30 * time.Second

// DefaultRequestsPerSecond is the default client-side rate limit toward
// the proxy.
const DefaultRequestsPerSecond = 5.0

// searchRows is the fixed page size for catalog searches.
const searchRows = 50

// Ensure Client implements the domain interfaces at compile time.
var (
	_ prezzario.Catalog = (*Client)(nil)
	_ prezzario.Fetcher = (*Client)(nil)
)

// Client talks to the download/search proxy.
type Client struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
	timeout time.Duration
	rps     float64
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request wall-clock timeout.
// Defaults to DefaultTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithRateLimit sets the client-side requests-per-second limit.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		c.rps = rps
	}
}

// NewClient creates a new Client for the given proxy base URL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		timeout: DefaultTimeout,
		rps:     DefaultRequestsPerSecond,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.client = &http.Client{Timeout: c.timeout}
	c.limiter = rate.NewLimiter(rate.Limit(c.rps), 1)

	return c
}

// Fetch downloads a remote file through the proxy and returns the raw body
// as text. No retries are performed; a single failure surfaces immediately.
func (c *Client) Fetch(ctx context.Context, rawURL string) (string, error) {
	endpoint := c.baseURL + "/download?url=" + url.QueryEscape(rawURL)

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// SearchDatasets queries the catalog by keyword.
func (c *Client) SearchDatasets(ctx context.Context, query string) ([]*prezzario.Dataset, error) {
	endpoint := fmt.Sprintf("%s/search?q=%s&rows=%d", c.baseURL, url.QueryEscape(query), searchRows)

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Success bool `json:"success"`
		Result  struct {
			Results []*prezzario.Dataset `json:"results"`
		} `json:"result"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, prezzario.Errorf(prezzario.EUNAVAILABLE, "malformed catalog search response: %v", err)
	}
	if !envelope.Success {
		return nil, prezzario.Errorf(prezzario.EUNAVAILABLE, "catalog search failed for %q", query)
	}
	return envelope.Result.Results, nil
}

// FindDatasetByID retrieves one dataset with its full resource list.
func (c *Client) FindDatasetByID(ctx context.Context, id string) (*prezzario.Dataset, error) {
	endpoint := c.baseURL + "/dataset/" + url.PathEscape(id)

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Success bool               `json:"success"`
		Result  *prezzario.Dataset `json:"result"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, prezzario.Errorf(prezzario.EUNAVAILABLE, "malformed catalog dataset response: %v", err)
	}
	if !envelope.Success || envelope.Result == nil {
		return nil, prezzario.Errorf(prezzario.ENOTFOUND, "dataset %q not found", id)
	}
	return envelope.Result, nil
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, prezzario.Errorf(prezzario.EUNAVAILABLE, "proxy request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, prezzario.Errorf(prezzario.ENOTFOUND, "remote resource not found (HTTP 404)")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, prezzario.Errorf(prezzario.EUNAVAILABLE, "proxy returned HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, prezzario.Errorf(prezzario.EUNAVAILABLE, "reading proxy response: %v", err)
	}
	return body, nil
}
