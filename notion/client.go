// Package notion implements a small client for the Notion API: retrieving
// pages, appending, updating and archiving blocks, and flattening a page's
// content tree into an ordered list of simplified records.
//
// All persistence, ID assignment and concurrency control belong to the
// remote service. The client performs one request at a time and never
// retries; remote rejections surface as *APIError.
package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	apiBase    = "https://api.notion.com/v1"
	apiVersion = "2022-06-28"
)

// Client makes authenticated requests against the Notion API.
type Client struct {
	token      string
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint. Used by tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the logger used for request tracing and traversal
// warnings.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// NewClient creates a client authenticating with the given bearer token.
func NewClient(token string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, errors.New("notion: missing API token")
	}
	c := &Client{
		token:   token,
		baseURL: apiBase,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// APIError is a rejection returned by the Notion API.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("notion: API error %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("notion: API error %d: %s", e.StatusCode, e.Message)
}

// doRequest makes one authenticated request and returns the response body.
// Status codes >= 400 become an *APIError carrying the service's error
// code and message.
func (c *Client) doRequest(ctx context.Context, method, path string, body any) ([]byte, error) {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", apiVersion)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	c.log.Debug("notion request",
		"method", method, "path", path,
		"status", resp.StatusCode, "dur", time.Since(start))

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.Unmarshal(respBody, apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = strings.TrimSpace(string(respBody))
		}
		return nil, apiErr
	}

	return respBody, nil
}

// normalizeID strips dashes so IDs copied from page URLs and from API
// responses address the same object.
func normalizeID(id string) string {
	return strings.ReplaceAll(id, "-", "")
}
