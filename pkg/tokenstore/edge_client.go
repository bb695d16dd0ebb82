package tokenstore

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

// EdgeSyncer mirrors the token pair into the edge cookie store. The mirror is
// the redundant copy: implementations may fail, and the Manager treats any
// error as a logged warning rather than a fault.
type EdgeSyncer interface {
	// SetTokens writes both cookies via the same-origin endpoint.
	SetTokens(ctx context.Context, accessToken, refreshToken string) error

	// ClearTokens deletes both cookies.
	ClearTokens(ctx context.Context) error

	// Tokens reads the current cookie values back (empty when absent).
	Tokens(ctx context.Context) (accessToken, refreshToken string, err error)

	// Check reports whether the edge sees at least one token cookie.
	Check(ctx context.Context) (bool, error)
}

// EdgeClient implements EdgeSyncer over the /api/auth/* cookie-sync
// endpoints served by the edge gateway.
type EdgeClient struct {
	origin     string
	httpClient *http.Client
}

// NewEdgeClient creates a client for the edge at origin. A nil httpClient
// gets a short-timeout default; cookie syncing must never stall the session
// flow behind a slow edge.
func NewEdgeClient(origin string, httpClient *http.Client) *EdgeClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}

	return &EdgeClient{
		origin:     strings.TrimRight(origin, "/"),
		httpClient: httpClient,
	}
}

func (c *EdgeClient) SetTokens(ctx context.Context, accessToken, refreshToken string) error {
	body := struct {
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
	}{AccessToken: accessToken, RefreshToken: refreshToken}

	return c.post(ctx, "/api/auth/set-tokens", body)
}

func (c *EdgeClient) ClearTokens(ctx context.Context) error {
	return c.post(ctx, "/api/auth/clear-tokens", nil)
}

func (c *EdgeClient) Tokens(ctx context.Context) (string, string, error) {
	var out struct {
		AccessToken  *string `json:"accessToken"`
		RefreshToken *string `json:"refreshToken"`
	}
	if err := c.get(ctx, "/api/auth/tokens", &out); err != nil {
		return "", "", err
	}

	var access, refresh string
	if out.AccessToken != nil {
		access = *out.AccessToken
	}
	if out.RefreshToken != nil {
		refresh = *out.RefreshToken
	}
	return access, refresh, nil
}

func (c *EdgeClient) Check(ctx context.Context) (bool, error) {
	var out struct {
		Authenticated bool `json:"authenticated"`
	}
	if err := c.get(ctx, "/api/auth/check", &out); err != nil {
		return false, err
	}
	return out.Authenticated, nil
}

func (c *EdgeClient) post(ctx context.Context, path string, body any) error {
	var reqBody *bytes.Buffer
	if body != nil {
		reqBody = &bytes.Buffer{}
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return fmt.Errorf("encode body: %w", err)
		}
	}

	var req *http.Request
	var err error
	if reqBody != nil {
		req, err = http.NewRequestWithContext(ctx, http.MethodPost, c.origin+path, reqBody)
	} else {
		req, err = http.NewRequestWithContext(ctx, http.MethodPost, c.origin+path, nil)
	}
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Join(ErrEdgeUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: %d", ErrEdgeStatus, resp.StatusCode)
	}
	return nil
}

func (c *EdgeClient) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.origin+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Join(ErrEdgeUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: %d", ErrEdgeStatus, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
