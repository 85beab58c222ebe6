// Package servicem8 talks to the ServiceM8 field-service API and rebuilds the
// composed booking view the API itself never offers: a booking ID may name a
// job activity or a job, the parent job and owning company hang off optional
// links, and attachments are found through a related-object filter.
package servicem8

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"fieldportal/utils"

	"go.uber.org/zap"
)

// DefaultBaseURL is the production ServiceM8 REST endpoint.
const DefaultBaseURL = "https://api.servicem8.com/api_1.0"

// Client issues authenticated requests against ServiceM8. The API key is
// fixed at construction and read-only afterwards; a Client is safe for
// concurrent use.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// New builds a Client. An empty apiKey is valid: every call will then fail
// with ErrNotConfigured, degrading the feature instead of crashing the
// process. An empty baseURL selects the production endpoint.
func New(apiKey, baseURL string) *Client {
	logger := utils.GetLogger()
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if apiKey == "" {
		logger.Warn("SERVICEM8_API_KEY not set, ServiceM8 features will not work")
	} else {
		logger.Info("ServiceM8 API key loaded", zap.String("prefix", keyPrefix(apiKey)))
	}
	return &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// Configured reports whether an API key is available.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// BaseURL returns the upstream base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func keyPrefix(key string) string {
	if len(key) > 10 {
		return key[:10] + "..."
	}
	return "..."
}

// Call performs one authenticated request and returns the response payload.
// Non-JSON bodies are returned as a JSON-encoded string so callers that
// expect JSON can still decode defensively. Each call is attempted exactly
// once; nothing is retried.
func (c *Client) Call(ctx context.Context, method, endpoint string, body io.Reader) (json.RawMessage, error) {
	if c.apiKey == "" {
		return nil, ErrNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("servicem8: build request: %w", err)
	}
	req.Header.Set("X-API-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")
	if method != http.MethodGet && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("ServiceM8 request failed",
			zap.String("endpoint", endpoint), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrUnreachable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("ServiceM8 API error",
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode),
			zap.String("body", truncate(string(data), 512)))
		return nil, &APIError{Status: resp.StatusCode, Body: string(data), Endpoint: endpoint}
	}

	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "application/json") {
		quoted, merr := json.Marshal(string(data))
		if merr != nil {
			return nil, fmt.Errorf("servicem8: encode text response: %w", merr)
		}
		return quoted, nil
	}
	return data, nil
}

// FetchBinary issues an authenticated GET against an absolute upstream URL,
// accepting any content type. The caller owns the response body; closing it
// early aborts the upstream read, so a slow consumer throttles the upstream.
func (c *Client) FetchBinary(ctx context.Context, rawURL string) (*http.Response, error) {
	if c.apiKey == "" {
		return nil, ErrNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("servicem8: build request: %w", err)
	}
	req.Header.Set("X-API-Key", c.apiKey)
	req.Header.Set("Accept", "*/*")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("ServiceM8 binary fetch failed",
			zap.String("url", rawURL), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		resp.Body.Close()
		c.logger.Error("ServiceM8 binary fetch rejected",
			zap.String("url", rawURL), zap.Int("status", resp.StatusCode))
		return nil, &APIError{Status: resp.StatusCode, Body: string(body), Endpoint: rawURL}
	}
	return resp, nil
}

// getList fetches an endpoint and decodes the array response. A single
// object becomes a one-element slice; a text fallback decodes to nil.
func getList[T any](ctx context.Context, c *Client, endpoint string) ([]T, error) {
	raw, err := c.Call(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	var list []T
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}
	var single T
	if err := json.Unmarshal(raw, &single); err == nil {
		return []T{single}, nil
	}
	return nil, nil
}

// getFirst fetches an equality-filtered endpoint and returns the first match.
// The upstream identifier space is assumed unique; when duplicates exist the
// first record wins and the rest are ignored.
func getFirst[T any](ctx context.Context, c *Client, endpoint string) (*T, error) {
	list, err := getList[T](ctx, c, endpoint)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return &list[0], nil
}

// uuidFilterEndpoint builds the "$filter=<field> eq '<value>'" query the
// upstream expects for identifier lookups, pre-encoded the way its examples
// show it.
func uuidFilterEndpoint(resource, field, value string) string {
	return fmt.Sprintf("/%s.json?%%24filter=%s%%20eq%%20'%s'", resource, field, value)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
