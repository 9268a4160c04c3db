package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Register sends a registration request. It returns the raw response so the
// handler can check for different success status codes.
func (c *APIClient) Register(ctx context.Context, handle, email, password string) (*http.Response, error) {
	creds := map[string]string{"handle": handle, "email": email, "password": password}
	jsonBody, err := json.Marshal(creds)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal register data: %w", err)
	}

	return c.do(ctx, "POST", "/v1/auth/register", bytes.NewBuffer(jsonBody))
}

// Login sends login credentials. It returns the raw response because the
// handler needs to relay the access-token cookie from it.
func (c *APIClient) Login(ctx context.Context, email, password string) (*http.Response, error) {
	creds := map[string]string{"email": email, "password": password}
	jsonBody, err := json.Marshal(creds)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal login data: %w", err)
	}

	return c.do(ctx, "POST", "/v1/auth/login", bytes.NewBuffer(jsonBody))
}

// Logout invalidates the session server-side. Cookie clearing is the
// handler's job.
func (c *APIClient) Logout(r *http.Request) error {
	resp, err := c.do(r.Context(), "POST", "/v1/auth/logout", nil, r.Cookies()...)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return drainError("logout", resp)
	}
	return nil
}
