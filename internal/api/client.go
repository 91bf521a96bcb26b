// Package api is the HTTP client for the remote design-tool API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

const userHeader = "X-Plasmic-Api-User"

// Client talks to the remote API on behalf of one user.
type Client struct {
	host       string
	user       string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. The caller is then
// responsible for authentication.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// NewClient creates an authenticated API client. The token is sent as a
// bearer token through an oauth2 transport.
func NewClient(ctx context.Context, host, user, token string, opts ...Option) *Client {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"})

	c := &Client{
		host:       strings.TrimRight(host, "/"),
		user:       user,
		httpClient: oauth2.NewClient(ctx, ts),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) post(ctx context.Context, endpoint string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	reqURL := c.host + endpoint

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if c.user != "" {
		req.Header.Set(userHeader, c.user)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", reqURL, err)
	}

	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response from %s: %w", reqURL, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(reqURL, resp.StatusCode, data)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", reqURL, err)
	}

	return nil
}

func projectPath(projectID, suffix string) string {
	return "/api/v1/projects/" + url.PathEscape(projectID) + suffix
}

// IsNotFound reports whether err is an API 404.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
