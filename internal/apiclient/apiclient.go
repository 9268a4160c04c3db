package apiclient

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/time/rate"
)

// APIClient handles all communication with the backend API.
type APIClient struct {
	BaseURL    string
	HttpClient *http.Client
	limiter    *rate.Limiter
}

// New creates a new client for interacting with the backend. rps/burst cap
// the outbound request rate so a rendering storm cannot flood the API.
func New(baseURL string, rps float64, burst int) *APIClient {
	return &APIClient{
		BaseURL:    baseURL,
		HttpClient: &http.Client{},
		limiter:    rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// do is the single, unified helper for making API requests.
// It accepts an optional slice of cookies to be attached to the request.
func (c *APIClient) do(ctx context.Context, method, path string, body io.Reader, cookies ...*http.Cookie) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("request cancelled while rate limited: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create API request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend unavailable: %w", err)
	}
	return resp, nil
}

// drainError reads the response body into an error message.
func drainError(action string, resp *http.Response) error {
	bodyBytes, _ := io.ReadAll(resp.Body)
	return fmt.Errorf("failed to %s: %s", action, string(bodyBytes))
}
