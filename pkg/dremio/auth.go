// Copyright (c) 2025 The dremioctl Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package dremio

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/oauth2"
)

// loginResponse is the subset of the /apiv2/login body we use.
type loginResponse struct {
	Token string `json:"token"`
	// Expires is epoch milliseconds; older servers omit it.
	Expires int64 `json:"expires"`
}

// GetToken exchanges the configured username and password for a session token.
// It succeeds only on HTTP 200 with a non-empty token; any other outcome is a
// KindAuthentication error carrying the response body. There is no retry.
//
// Unless WithTokenCache was given, every request made by the Client calls
// GetToken first, so each operation logs in anew.
func (c *Client) GetToken(ctx context.Context) (string, error) {
	if c.pat != "" {
		return c.pat, nil
	}
	if c.cache != nil {
		return c.cache.token(ctx, c.login)
	}
	tok, err := c.login(ctx)
	if err != nil {
		return "", err
	}
	return tok.AccessToken, nil
}

// authorization returns the Authorization header value for the next request.
func (c *Client) authorization(ctx context.Context) (string, error) {
	token, err := c.GetToken(ctx)
	if err != nil {
		return "", err
	}
	if c.pat != "" {
		return "Bearer " + token, nil
	}
	return "_dremio" + token, nil
}

func (c *Client) login(ctx context.Context) (*oauth2.Token, error) {
	b, err := json.Marshal(map[string]string{
		"userName": c.username,
		"password": c.password,
	})
	if err != nil {
		return nil, wrap(KindAuthentication, "encode credentials", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.loginURL(), bytes.NewReader(b))
	if err != nil {
		return nil, wrap(KindAuthentication, "create request", err)
	}
	c.setStandardHeaders(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, wrap(KindAuthentication, "login request", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, statusErr(KindAuthentication, "login failed", resp.StatusCode, body)
	}

	var out loginResponse
	if err := json.Unmarshal(body, &out); err != nil || strings.TrimSpace(out.Token) == "" {
		return nil, statusErr(KindAuthentication, "login returned no token", resp.StatusCode, body)
	}

	tok := &oauth2.Token{AccessToken: strings.TrimSpace(out.Token), TokenType: "_dremio"}
	if out.Expires > 0 {
		tok.Expiry = time.UnixMilli(out.Expires)
	}
	return tok, nil
}

// tokenCache holds one login token until it nears expiry.
type tokenCache struct {
	mu  sync.Mutex
	ttl time.Duration
	tok *oauth2.Token
}

func (tc *tokenCache) token(ctx context.Context, fetch func(context.Context) (*oauth2.Token, error)) (string, error) {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	if tc.tok.Valid() {
		return tc.tok.AccessToken, nil
	}
	tok, err := fetch(ctx)
	if err != nil {
		return "", err
	}
	// The cache ttl caps whatever lifetime the server advertised.
	if limit := time.Now().Add(tc.ttl); tok.Expiry.IsZero() || limit.Before(tok.Expiry) {
		tok.Expiry = limit
	}
	tc.tok = tok
	return tok.AccessToken, nil
}

func (tc *tokenCache) invalidate() {
	tc.mu.Lock()
	tc.tok = nil
	tc.mu.Unlock()
}
