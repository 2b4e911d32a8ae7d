// Copyright (c) 2026 Developer DAO
// ddcloud - Developer DAO Cloud command-line client
// This source code is licensed under the MIT license found in the LICENSE file.

package account

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

	"github.com/developerdao/ddcloud/internal/logging"
	"github.com/developerdao/ddcloud/internal/security"
)

const (
	// DefaultBaseURL is the production account API.
	DefaultBaseURL = "https://api.cloud.developerdao.com"
	defaultTimeout = 30 * time.Second
	maxBodyBytes   = 1 << 20
)

// Client talks to the account API. It keeps no authentication state of its
// own; that lives in the Session.
type Client struct {
	http      *http.Client
	baseURL   *url.URL
	userAgent string
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient injects the HTTP client, e.g. an httptest server's client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// New creates a Client for baseURL (DefaultBaseURL when empty).
func New(baseURL string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parsing account base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("account base URL %q must be absolute", baseURL)
	}
	c := &Client{
		http:      &http.Client{Timeout: defaultTimeout},
		baseURL:   u,
		userAgent: "ddcloud",
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c, nil
}

// Login exchanges credentials for a Session.
func (c *Client) Login(ctx context.Context, creds Credentials) (Session, error) {
	const op = "login"
	body, err := json.Marshal(creds)
	if err != nil {
		return Session{}, fmt.Errorf("%s: encoding request: %w", op, err)
	}
	req, err := c.newRequest(ctx, http.MethodPost, "/api/login", bytes.NewReader(body))
	if err != nil {
		return Session{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Session{}, transportError(op, err)
	}
	defer drain(resp)

	if resp.StatusCode != http.StatusOK {
		return Session{}, &RemoteServiceError{Op: op, StatusCode: resp.StatusCode, Err: ErrAuthenticationFailed}
	}
	logging.Debugf("login succeeded, %d session cookie(s)", len(resp.Cookies()))
	return NewSession(resp.Cookies()...), nil
}

// ListKeys returns the account's API keys in the order the service sent them.
func (c *Client) ListKeys(ctx context.Context, s Session) ([]security.Secret, error) {
	const op = "list keys"
	resp, err := c.do(ctx, s, op, http.MethodGet, "/api/keys")
	if err != nil {
		return nil, err
	}
	defer drain(resp)

	var records []keyRecord
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&records); err != nil {
		return nil, &RemoteServiceError{Op: op, Err: fmt.Errorf("decoding response: %w", err)}
	}
	keys := make([]security.Secret, 0, len(records))
	for _, r := range records {
		keys = append(keys, r.APIKey)
	}
	return keys, nil
}

// CreateKey asks the service for a new API key. The response body is the key.
func (c *Client) CreateKey(ctx context.Context, s Session) (security.Secret, error) {
	const op = "create key"
	resp, err := c.do(ctx, s, op, http.MethodPost, "/api/keys")
	if err != nil {
		return security.Secret{}, err
	}
	defer drain(resp)

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return security.Secret{}, &RemoteServiceError{Op: op, Err: fmt.Errorf("reading response: %w", err)}
	}
	key := strings.TrimSpace(string(raw))
	// Some deployments answer with a JSON string rather than plain text.
	if strings.HasPrefix(key, `"`) {
		var unquoted string
		if json.Unmarshal([]byte(key), &unquoted) == nil {
			key = unquoted
		}
	}
	if key == "" {
		return security.Secret{}, &RemoteServiceError{Op: op, Err: errors.New("empty key in response")}
	}
	return security.FromString(key), nil
}

// DeleteKey revokes key.
func (c *Client) DeleteKey(ctx context.Context, s Session, key security.Secret) error {
	const op = "delete key"
	resp, err := c.do(ctx, s, op, http.MethodDelete, "/api/keys/"+url.PathEscape(key.Reveal()))
	if err != nil {
		return err
	}
	drain(resp)
	return nil
}

// Usage returns the number of RPC calls made this billing cycle.
func (c *Client) Usage(ctx context.Context, s Session) (Usage, error) {
	b, err := c.balances(ctx, s, "get usage")
	if err != nil {
		return Usage{}, err
	}
	return Usage{CallsThisCycle: b.Calls}, nil
}

// Balance returns the account balance.
func (c *Client) Balance(ctx context.Context, s Session) (Balance, error) {
	b, err := c.balances(ctx, s, "get balance")
	if err != nil {
		return Balance{}, err
	}
	return Balance{BalanceCents: b.Balance}, nil
}

func (c *Client) balances(ctx context.Context, s Session, op string) (balances, error) {
	resp, err := c.do(ctx, s, op, http.MethodGet, "/api/balances")
	if err != nil {
		return balances{}, err
	}
	defer drain(resp)

	var b balances
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&b); err != nil {
		return balances{}, &RemoteServiceError{Op: op, Err: fmt.Errorf("decoding response: %w", err)}
	}
	return b, nil
}

// do sends an authenticated request and maps non-2xx answers to
// RemoteServiceError. The caller owns resp.Body on success.
func (c *Client) do(ctx context.Context, s Session, op, method, path string) (*http.Response, error) {
	req, err := c.newRequest(ctx, method, path, nil)
	if err != nil {
		return nil, err
	}
	s.apply(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, transportError(op, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		drain(resp)
		return nil, &RemoteServiceError{Op: op, StatusCode: resp.StatusCode}
	}
	logging.Debugf("%s: %d", op, resp.StatusCode)
	return resp, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	u := *c.baseURL
	// Assign RawPath too so an escaped key survives as a single segment.
	rawPath := strings.TrimRight(u.EscapedPath(), "/") + path
	p, err := url.PathUnescape(rawPath)
	if err != nil {
		return nil, fmt.Errorf("building request path: %w", err)
	}
	u.Path = p
	u.RawPath = rawPath
	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
	_ = resp.Body.Close()
}
