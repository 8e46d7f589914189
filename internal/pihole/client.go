package pihole

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"pidash/internal/providers"
	"pidash/internal/structures"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

const (
	urlPathAPIAuth       = "/api/auth"
	urlPathAPISummary    = "/api/stats/summary"
	urlPathAPIBlocking   = "/api/dns/blocking"
	urlPathAPITopDomains = "/api/stats/top_domains"
	urlPathAPIHistory    = "/api/history"
)

// Client talks to the appliance HTTP API. It is stateless between calls:
// every fetch carries the session it is given and no result is cached.
type Client struct {
	baseURL    string
	apiKey     string
	count      int
	httpClient *http.Client
	metrics    providers.MetricsProviderInterface
}

func NewClient(conf *structures.Config, metrics providers.MetricsProviderInterface) *Client {
	return &Client{
		// no trailing separator before path concatenation
		baseURL: strings.TrimRight(conf.Pihole.Hostname, "/"),
		apiKey:  conf.Pihole.APIKey,
		count:   conf.Pihole.Count,
		httpClient: &http.Client{
			Timeout: conf.Pihole.Timeout,
		},
		metrics: metrics,
	}
}

// FetchJSON issues one authenticated GET against path and decodes the body
// into dst. Any non-success status is terminal for the current refresh
// cycle: no retry, no backoff.
func (c *Client) FetchJSON(ctx context.Context, path string, query url.Values, s Session, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return &FetchError{Path: path, Err: err}
	}
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}

	req.Header.Set("Accept", "application/json")
	if s.HasToken() {
		req.Header.Set("sid", s.Sid)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.ObserveUpstreamDuration(path, time.Since(start))
	if err != nil {
		return &FetchError{Path: path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &FetchError{Path: path, Err: fmt.Errorf("unexpected status code: %d", resp.StatusCode)}
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return &FetchError{Path: path, Err: fmt.Errorf("decoding response: %w", err)}
	}

	return nil
}

func (c *Client) Summary(ctx context.Context, s Session) (*Summary, error) {
	var v Summary
	if err := c.FetchJSON(ctx, urlPathAPISummary, nil, s, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (c *Client) Blocking(ctx context.Context, s Session) (*BlockingStatus, error) {
	var v BlockingStatus
	if err := c.FetchJSON(ctx, urlPathAPIBlocking, nil, s, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// TopDomains fetches one ranking category (blocked or allowed) and returns
// the raw payload. Shape validation is the caller's concern: the endpoint
// answers with an object in the happy case but other shapes occur in the
// wild and are handled leniently upstream.
func (c *Client) TopDomains(ctx context.Context, s Session, blocked bool) (json.RawMessage, error) {
	query := url.Values{
		"blocked": []string{strconv.FormatBool(blocked)},
		"count":   []string{strconv.Itoa(c.count)},
	}

	var v json.RawMessage
	if err := c.FetchJSON(ctx, urlPathAPITopDomains, query, s, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func (c *Client) History(ctx context.Context, s Session) (*History, error) {
	var v History
	if err := c.FetchJSON(ctx, urlPathAPIHistory, nil, s, &v); err != nil {
		return nil, err
	}
	return &v, nil
}
