// Package confluence provides a read-only client for the Confluence Cloud
// REST API and the MCP tool methods built on top of it.
package confluence

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	apierrors "confluencemcp/internal/errors"
	"confluencemcp/metrics"
	"confluencemcp/tracing"
)

// Client handles communication with the Confluence Cloud REST API.
// All operations are single GET requests; responses are never cached
// and failed requests are never retried.
type Client struct {
	config     *Config
	httpClient *http.Client
	logger     *slog.Logger

	// authHeader is computed once at construction and reused verbatim
	// for every request.
	authHeader string
}

// NewClient creates a new Confluence API client
func NewClient(config *Config, logger *slog.Logger) *Client {
	// Configure HTTP transport for better connection reuse and performance
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		ForceAttemptHTTP2:   true,
	}

	creds := base64.StdEncoding.EncodeToString([]byte(config.Email + ":" + config.APIToken))

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout:   config.Timeout,
			Transport: transport,
		},
		logger:     logger,
		authHeader: "Basic " + creds,
	}
}

// AuthHeader returns the Authorization header value used for API requests.
func (c *Client) AuthHeader() string {
	return c.authHeader
}

// baseURL returns the configured instance root without a trailing slash
func (c *Client) baseURL() string {
	return strings.TrimRight(c.config.BaseURL, "/")
}

// doGet performs an authenticated GET against the API and returns the raw body.
// Non-2xx responses become an UpstreamError carrying the status and body.
func (c *Client) doGet(ctx context.Context, endpoint, reqURL string) ([]byte, error) {
	ctx, span := tracing.StartSpan(ctx, "confluence.api."+endpoint)
	defer span.End()
	span.SetAttributes(attribute.String("http.url", reqURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", c.authHeader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.config.UserAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordAPICall(endpoint, time.Since(start).Seconds(), false, 0)
		tracing.RecordError(span, err)
		return nil, fmt.Errorf("request failed: %w", err)
	}

	body, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close() // Error ignored intentionally; body already read
	duration := time.Since(start).Seconds()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if readErr != nil {
		metrics.RecordAPICall(endpoint, duration, false, resp.StatusCode)
		tracing.RecordError(span, readErr)
		return nil, fmt.Errorf("failed to read response: %w", readErr)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		upstreamErr := apierrors.NewUpstreamError(resp.StatusCode, reqURL, string(body))
		metrics.RecordAPICall(endpoint, duration, false, resp.StatusCode)
		tracing.RecordError(span, upstreamErr)
		c.logger.Warn("Confluence API returned non-2xx status",
			"endpoint", endpoint,
			"status", resp.StatusCode)
		return nil, upstreamErr
	}

	metrics.RecordAPICall(endpoint, duration, true, resp.StatusCode)
	return body, nil
}

// ListSpaces retrieves all spaces visible to the configured credentials,
// in the order Confluence returns them.
func (c *Client) ListSpaces(ctx context.Context) ([]Space, error) {
	body, err := c.doGet(ctx, "list_spaces", c.baseURL()+"/wiki/rest/api/space")
	if err != nil {
		return nil, err
	}

	var result spacesResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse space listing: %w", err)
	}
	return result.Results, nil
}

// ListSpaceContent retrieves the raw content listing of a space.
func (c *Client) ListSpaceContent(ctx context.Context, key string) ([]byte, error) {
	reqURL := fmt.Sprintf("%s/wiki/rest/api/space/%s/content", c.baseURL(), url.PathEscape(key))
	return c.doGet(ctx, "space_content", reqURL)
}

// Search runs a CQL query and returns the raw results array.
func (c *Client) Search(ctx context.Context, cql string) ([]byte, error) {
	reqURL := c.baseURL() + "/wiki/rest/api/search?cql=" + url.QueryEscape(cql)
	body, err := c.doGet(ctx, "search", reqURL)
	if err != nil {
		return nil, err
	}

	var result searchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse search response: %w", err)
	}
	if result.Results == nil {
		return []byte("[]"), nil
	}
	return result.Results, nil
}

// GetPage retrieves a page by ID with its storage-format body expanded.
func (c *Client) GetPage(ctx context.Context, pageID string) ([]byte, error) {
	reqURL := fmt.Sprintf("%s/wiki/rest/api/content/%s?expand=body.storage", c.baseURL(), url.PathEscape(pageID))
	return c.doGet(ctx, "get_page", reqURL)
}
