package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// TokenSource supplies the current access token for authenticated requests.
// It is consulted per request so rotated tokens are picked up immediately.
type TokenSource func() (string, bool)

// Option configures the client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client, ignoring nil for safety.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		if c != nil {
			cl.httpClient = c
		}
	}
}

// WithTokenSource sets the access-token provider for bearer-authenticated calls.
func WithTokenSource(ts TokenSource) Option {
	return func(cl *Client) {
		if ts != nil {
			cl.tokenSource = ts
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(cl *Client) {
		if ua != "" {
			cl.userAgent = ua
		}
	}
}

// Client talks to the betracked backend REST API.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	tokenSource TokenSource
	userAgent   string
}

// New creates a client for the backend at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, ErrMissingBaseURL
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		userAgent:  "sessionkit",
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Register creates a new account and returns a fresh token pair.
func (c *Client) Register(ctx context.Context, params RegisterParams) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", params, &resp, false); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Login exchanges credentials for a token pair.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &resp, false); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RefreshToken exchanges a refresh token for a new access token. The refresh
// token travels in the body, not the Authorization header.
func (c *Client) RefreshToken(ctx context.Context, refreshToken string) (*RefreshResponse, error) {
	body := struct {
		RefreshToken string `json:"refreshToken"`
	}{RefreshToken: refreshToken}

	var resp RefreshResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/refresh", body, &resp, false); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Me fetches the authenticated user's profile.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/api/users/me", nil, &user, true); err != nil {
		return nil, err
	}
	return &user, nil
}

// do performs a JSON round trip. Non-2xx responses become *APIError with the
// backend's message when one can be decoded.
func (c *Client) do(ctx context.Context, method, path string, body, out any, authenticated bool) error {
	var reqBody *bytes.Buffer
	if body != nil {
		reqBody = &bytes.Buffer{}
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
	}

	var req *http.Request
	var err error
	if reqBody != nil {
		req, err = http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	}
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if authenticated {
		if c.tokenSource == nil {
			return ErrNoAccessToken
		}
		accessToken, ok := c.tokenSource()
		if !ok {
			return ErrNoAccessToken
		}
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Join(ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return newAPIError(resp.StatusCode, decodeErrorMessage(resp))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errors.Join(ErrDecodeResponse, err)
		}
	}

	return nil
}

// decodeErrorMessage pulls the backend's message field out of an error body.
// The backend returns either a string or an array of validation messages.
func decodeErrorMessage(resp *http.Response) string {
	var body struct {
		Message json.RawMessage `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || len(body.Message) == 0 {
		return ""
	}

	var single string
	if err := json.Unmarshal(body.Message, &single); err == nil {
		return single
	}

	var many []string
	if err := json.Unmarshal(body.Message, &many); err == nil && len(many) > 0 {
		return strings.Join(many, "; ")
	}

	return ""
}
