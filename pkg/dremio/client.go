// Copyright (c) 2025 The dremioctl Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package dremio is a client for the Dremio REST management API.
// It authenticates, runs SQL statements, polls job status and manages catalog
// elements (spaces, folders, virtual and physical datasets, wiki documentation).
//
// A Client is synchronous: every method performs one or more blocking HTTP
// round-trips and returns when the remote operation has settled. A Client is
// meant for a single caller; run independent clients for parallel work.
package dremio

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pterm/pterm"
)

// DefaultUserAgent is sent on every request unless overridden with WithUserAgent.
const DefaultUserAgent = "dremioctl/1.0"

// Client talks to one Dremio coordinator with one set of credentials.
type Client struct {
	// host is the base URL for all requests (e.g., "http://localhost:9047")
	host     string
	username string
	password string
	// pat, when set, replaces the login exchange with a personal access token
	pat string

	endpoints Endpoints
	client    *http.Client
	userAgent string
	log       *pterm.Logger

	jobPoll    PollPolicy
	lookupPoll PollPolicy
	observer   func(PollEvent)

	// cache is nil unless WithTokenCache was given
	cache *tokenCache
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client (30 second timeout).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// WithEndpoints overrides the REST paths, for proxies that remap them.
func WithEndpoints(e Endpoints) Option {
	return func(c *Client) { c.endpoints = e }
}

// WithLogger sets the logger used for orchestration progress.
func WithLogger(l *pterm.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithJobPolling sets the policy used by GetRunStatus.
func WithJobPolling(p PollPolicy) Option {
	return func(c *Client) { c.jobPoll = p }
}

// WithLookupPolling sets the policy used by GetElementID.
func WithLookupPolling(p PollPolicy) Option {
	return func(c *Client) { c.lookupPoll = p }
}

// WithPollObserver registers fn to be called after every job status attempt.
func WithPollObserver(fn func(PollEvent)) Option {
	return func(c *Client) { c.observer = fn }
}

// WithTokenCache reuses a login token for up to ttl instead of logging in
// before every request. Tokens within ten seconds of expiry are refreshed.
func WithTokenCache(ttl time.Duration) Option {
	return func(c *Client) { c.cache = &tokenCache{ttl: ttl} }
}

// WithPersonalAccessToken authenticates with a PAT as a bearer token and
// skips the login endpoint entirely.
func WithPersonalAccessToken(pat string) Option {
	return func(c *Client) { c.pat = pat }
}

// New creates a Client for host using username and password.
func New(host, username, password string, opts ...Option) *Client {
	c := &Client{
		host:       strings.TrimRight(host, "/"),
		username:   username,
		password:   password,
		endpoints:  DefaultEndpoints(),
		client:     &http.Client{Timeout: 30 * time.Second},
		userAgent:  DefaultUserAgent,
		log:        pterm.DefaultLogger.WithLevel(pterm.LogLevelDisabled),
		jobPoll:    DefaultJobPolling(),
		lookupPoll: DefaultLookupPolling(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Host returns the normalised base URL.
func (c *Client) Host() string { return c.host }

// Username returns the configured account name.
func (c *Client) Username() string { return c.username }

// setStandardHeaders applies headers shared by every request.
func (c *Client) setStandardHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
}

// do sends an authenticated JSON request and returns the status and full body.
// It fetches authorization first, so authentication failures surface as
// KindAuthentication; transport failures are wrapped in kind.
func (c *Client) do(ctx context.Context, kind Kind, method, url string, payload any) (int, []byte, error) {
	authz, err := c.authorization(ctx)
	if err != nil {
		return 0, nil, err
	}

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, wrap(kind, "encode request", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return 0, nil, wrap(kind, "create request", err)
	}
	c.setStandardHeaders(req)
	req.Header.Set("Authorization", authz)

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, nil, wrap(kind, method+" "+url, err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, wrap(kind, "read response", err)
	}
	if resp.StatusCode == http.StatusUnauthorized && c.cache != nil {
		c.cache.invalidate()
	}
	return resp.StatusCode, b, nil
}

// decodeField pulls a single string field from a JSON object body.
// Missing fields, non-string values and non-JSON bodies all yield "".
func decodeField(body []byte, field string) string {
	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return ""
	}
	if v, ok := raw[field].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}
