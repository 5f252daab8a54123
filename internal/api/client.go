// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the client for the Askwire answers backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/morganforge/askwire-tui/internal/model"
)

// Configuration constants for the Askwire API.
const (
	// DefaultBaseURL is the base URL for the Askwire API.
	DefaultBaseURL = "https://api.askwire.dev"

	// DefaultTimeout is the default timeout for generate requests.
	DefaultTimeout = 60 * time.Second

	// MaxResponseSize is the maximum allowed response body size.
	MaxResponseSize = 10 * 1024 * 1024 // 10MB limit

	// submitsPerSecond spaces rapid successive submissions. The UI already
	// allows only one request in flight; the limiter only matters for the
	// plain REPL where submissions are not gated by a render loop.
	submitsPerSecond = 2
)

// sharedTransport pools connections across all Askwire clients. Timeouts
// stay per-client so WithTimeout cannot affect other clients.
var sharedTransport = &http.Transport{
	MaxIdleConns:        100,
	MaxIdleConnsPerHost: 10,
	IdleConnTimeout:     90 * time.Second,
	TLSHandshakeTimeout: 10 * time.Second,
}

// =============================================================================
// WIRE TYPES
// =============================================================================

// GenerateRequest is the body for the generate endpoint. ConversationID is
// omitted on the first call of a conversation.
type GenerateRequest struct {
	Query          string `json:"query"`
	ConversationID string `json:"conversation_id,omitempty"`
}

// Citation is a backend-supplied reference attached to a generated answer.
type Citation struct {
	Number int    `json:"number"`
	Title  string `json:"title,omitempty"`
	URL    string `json:"url"`
	Site   string `json:"site,omitempty"`
}

// GenerateResponse is the response from the generate endpoint.
type GenerateResponse struct {
	ConversationID string     `json:"conversation_id"`
	Answer         string     `json:"answer"`
	Citations      []Citation `json:"citations"`
}

// Sources converts the response citations into display sources.
func (r *GenerateResponse) Sources() []model.Source {
	if len(r.Citations) == 0 {
		return nil
	}
	sources := make([]model.Source, 0, len(r.Citations))
	for _, c := range r.Citations {
		sources = append(sources, model.Source{
			Number: c.Number,
			Title:  c.Title,
			URL:    c.URL,
			Site:   c.Site,
		})
	}
	return sources
}

// apiErrorResponse represents an error response from the API.
type apiErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// =============================================================================
// CLIENT
// =============================================================================

// Client is a client for the Askwire answers API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	timeout    time.Duration
	userAgent  string
	limiter    *rate.Limiter
}

// NewClient creates a new Askwire client for the given base URL.
//
// An empty API key is allowed; the backend decides whether anonymous
// queries are accepted.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Transport: sharedTransport,
			Timeout:   DefaultTimeout,
		},
		timeout:   DefaultTimeout,
		userAgent: "askwire/0.1.0",
		limiter:   rate.NewLimiter(rate.Limit(submitsPerSecond), 1),
	}
}

// WithAPIKey sets the bearer token sent with each request.
func (c *Client) WithAPIKey(key string) *Client {
	c.apiKey = strings.TrimSpace(key)
	return c
}

// WithTimeout sets the request timeout.
func (c *Client) WithTimeout(timeout time.Duration) *Client {
	if timeout <= 0 {
		return c
	}
	c.timeout = timeout
	c.httpClient.Timeout = timeout
	return c
}

// WithHTTPClient sets a custom HTTP client, used by tests.
func (c *Client) WithHTTPClient(httpClient *http.Client) *Client {
	c.httpClient = httpClient
	return c
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// IsConfigured returns true if the client has a base URL configured.
func (c *Client) IsConfigured() bool {
	return c.baseURL != ""
}

// =============================================================================
// LOGGING
// =============================================================================

// logRequest logs an API request without exposing sensitive data.
func (c *Client) logRequest(req *http.Request) {
	log.Printf("API Request: %s %s", req.Method, req.URL.Path)
}

// logResponse logs an API response with duration.
func (c *Client) logResponse(resp *http.Response, duration time.Duration) {
	log.Printf("API Response: %d %s (%v)", resp.StatusCode, resp.Status, duration)
}

// =============================================================================
// GENERATE
// =============================================================================

// Generate submits a query to the backend and returns the generated answer
// with its citations. The conversation identifier threads multi-turn context:
// pass the identifier from the previous response, or empty for a fresh
// conversation.
//
// There is no retry: a failed request surfaces immediately so the caller can
// render it as an error-role entry and let the user continue.
func (c *Client) Generate(ctx context.Context, query, conversationID string) (*GenerateResponse, error) {
	if !c.IsConfigured() {
		return nil, ErrNotConfigured
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, &APIError{Code: "empty_query", Message: "query must not be blank", Status: http.StatusBadRequest}
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	reqBody := GenerateRequest{
		Query:          query,
		ConversationID: conversationID,
	}
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/generate", bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req)

	c.logRequest(req)
	startTime := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, wrapTransportError(err)
	}
	defer resp.Body.Close()
	c.logResponse(resp, time.Since(startTime))

	body, err := readResponse(resp)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, c.handleErrorResponse(resp.StatusCode, body)
	}

	var genResp GenerateResponse
	if err := json.Unmarshal(body, &genResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return &genResp, nil
}

// Health checks whether the backend is reachable.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return wrapTransportError(err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: health returned HTTP %d", ErrUnavailable, resp.StatusCode)
	}
	return nil
}

// =============================================================================
// INTERNALS
// =============================================================================

// setHeaders sets the required headers for Askwire API requests.
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
}

// readResponse reads the response body with a size limit.
func readResponse(resp *http.Response) ([]byte, error) {
	limitedReader := io.LimitReader(resp.Body, MaxResponseSize)
	body, err := io.ReadAll(limitedReader)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if int64(len(body)) == MaxResponseSize {
		return nil, fmt.Errorf("response exceeded maximum size of %d bytes", MaxResponseSize)
	}
	return body, nil
}

// handleErrorResponse converts HTTP error responses to typed APIErrors.
// APIError.Is maps status codes onto the package sentinels, so callers can
// still match errors.Is(err, ErrRateLimited) and friends.
func (c *Client) handleErrorResponse(statusCode int, body []byte) error {
	var apiErr apiErrorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
		return &APIError{
			Code:    apiErr.Error.Code,
			Message: apiErr.Error.Message,
			Status:  statusCode,
		}
	}

	// Fallback for unparseable error responses.
	return &APIError{
		Message: strings.TrimSpace(string(body)),
		Status:  statusCode,
	}
}
