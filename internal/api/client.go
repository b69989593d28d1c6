// Package api implements the HTTP client for the platform's admin REST
// API. All authenticated requests carry "Authorization: Bearer <token>";
// the token is supplied per call by a TokenSource so the client itself
// holds no ambient credential state.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// DefaultTimeout bounds every API call. The platform API has no SLA, so
// a stuck request must not hang a page render forever.
const DefaultTimeout = 30 * time.Second

// TokenSource supplies the bearer token for a request. Returning an
// empty string issues the request unauthenticated.
type TokenSource interface {
	Token() string
}

// StaticToken is a TokenSource wrapping a fixed token string.
type StaticToken string

// Token returns the wrapped token.
func (t StaticToken) Token() string { return string(t) }

// Client is an HTTP client for the platform admin API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// NewClient creates a platform API client.
func NewClient(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
		Logger:     logger.With("component", "api"),
	}
}

// envelope is the union of the response shapes the platform API uses:
// { "data": ... }, { "success": bool, "data": ... }, and the error
// shapes { "message": ... } / { "error": ... }.
type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Err     string          `json:"error"`
}

// requestID generates a short identifier for log correlation.
func requestID() string {
	return "req_" + uuid.New().String()[:8]
}

// Do performs an HTTP request and returns the raw payload from the
// response envelope. Non-2xx responses and envelopes with success=false
// become an *APIError carrying the server's message.
func (c *Client) Do(ctx context.Context, token TokenSource, method, path string, body any) (json.RawMessage, error) {
	url := c.BaseURL + path
	reqID := requestID()

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != nil {
		if t := token.Token(); t != "" {
			req.Header.Set("Authorization", "Bearer "+t)
		}
	}

	c.Logger.Debug("HTTP request", "id", reqID, "method", method, "url", url)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	c.Logger.Debug("HTTP response", "id", reqID, "status", resp.StatusCode, "bytes", len(respBody))

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		// Not an envelope. A 2xx with a bare JSON payload is still a
		// valid response; anything else is an error with no usable body.
		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return respBody, nil
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: genericMessage(resp.StatusCode)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: env.errorMessage(resp.StatusCode)}
	}
	if env.Success != nil && !*env.Success {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: env.errorMessage(resp.StatusCode)}
	}

	if env.Data != nil {
		return env.Data, nil
	}
	return respBody, nil
}

// errorMessage picks the server's message out of the envelope, falling
// back to a generic string keyed off the status code.
func (e *envelope) errorMessage(status int) string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != "" {
		return e.Err
	}
	return genericMessage(status)
}

func genericMessage(status int) string {
	switch status {
	case http.StatusUnauthorized:
		return "authentication required"
	case http.StatusForbidden:
		return "permission denied"
	case http.StatusNotFound:
		return "resource not found"
	default:
		return fmt.Sprintf("request failed with status %d", status)
	}
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, token TokenSource, path string) (json.RawMessage, error) {
	return c.Do(ctx, token, http.MethodGet, path, nil)
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, token TokenSource, path string, body any) (json.RawMessage, error) {
	return c.Do(ctx, token, http.MethodPost, path, body)
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, token TokenSource, path string, body any) (json.RawMessage, error) {
	return c.Do(ctx, token, http.MethodPut, path, body)
}

// Patch performs a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, token TokenSource, path string, body any) (json.RawMessage, error) {
	return c.Do(ctx, token, http.MethodPatch, path, body)
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, token TokenSource, path string) (json.RawMessage, error) {
	return c.Do(ctx, token, http.MethodDelete, path, nil)
}

// GetInto performs a GET and decodes the envelope payload into out.
func (c *Client) GetInto(ctx context.Context, token TokenSource, path string, out any) error {
	data, err := c.Get(ctx, token, path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse response for %s: %w", path, err)
	}
	return nil
}
