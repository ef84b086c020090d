package havenly

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client is a low-level client for the Havenly API. Most applications use it
// through a Session, which layers the auth state machine on top.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	// Tokens holds the bearer credential. Defaults to an in-memory store.
	Tokens TokenStore
}

// NewClient creates a client with an in-memory token store.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		Tokens: NewMemoryTokenStore(),
	}
}

func (c *Client) url(path string) string {
	return c.BaseURL + path
}

// do performs a JSON request. An empty token means no Authorization header is
// attached; callers that require auth short-circuit before reaching here.
func (c *Client) do(ctx context.Context, method, path, token string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	return resp, nil
}

// serverError is the error envelope the API returns on 4xx/5xx responses.
type serverError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (e serverError) text(status int) string {
	if e.Error != "" {
		return e.Error
	}
	if e.Message != "" {
		return e.Message
	}
	return http.StatusText(status)
}

// call performs an unauthenticated request and normalises the response into a
// Result. Transport failures and error statuses resolve to a failed Result,
// never to an error.
func call[T any](ctx context.Context, c *Client, method, path string, body any) Result[T] {
	return exchange[T](ctx, c, method, path, "", body)
}

// callAuth performs an authenticated request. With no token in the store it
// short-circuits to a failed Result without touching the network.
func callAuth[T any](ctx context.Context, c *Client, method, path string, body any) Result[T] {
	token := c.Tokens.Get()
	if token == "" {
		return fail[T](MsgNoToken)
	}
	return exchange[T](ctx, c, method, path, token, body)
}

func exchange[T any](ctx context.Context, c *Client, method, path, token string, body any) Result[T] {
	resp, err := c.do(ctx, method, path, token, body)
	if err != nil {
		return fail[T](err.Error())
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fail[T](fmt.Sprintf("failed to read response: %v", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var se serverError
		_ = json.Unmarshal(raw, &se)
		return fail[T](se.text(resp.StatusCode))
	}

	var data T
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &data); err != nil {
			return fail[T](fmt.Sprintf("failed to decode response: %v", err))
		}
	}
	return ok(data)
}
