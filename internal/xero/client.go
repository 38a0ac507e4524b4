// Package xero is a per-tenant client for the Xero accounting API.
//
// A Client is an immutable value constructed once per inbound call from
// that call's credential triple. It holds no state beyond the triple and
// issues exactly one HTTP request per operation: classification of the
// response (rate limited, auth failure, API error, empty success) is the
// caller's only recovery surface, there are no retries.
//
// Every entity kind gets a pair of pure mapping functions between the
// Xero wire schema (PascalCase field names, nested references,
// enumerated strings) and the domain representation rendered to tools.
// Write payloads are sparse: nil pointer fields are omitted, which the
// remote treats as "leave unchanged".
package xero

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	// Xero rejects quoted numerics in write payloads.
	decimal.MarshalJSONWithoutQuotes = true
}

// defaultRetryAfterSeconds is used when a 429 arrives without a
// parseable Retry-After header.
const defaultRetryAfterSeconds = 60

// Credentials is the per-call identity triple. BaseURL is optional and
// overrides the default API root for every call made under this triple.
type Credentials struct {
	Token    string
	TenantID string
	BaseURL  string
}

// Validate checks the mandatory fields. It never inspects the token
// beyond presence; refresh and introspection are the caller's problem.
func (c Credentials) Validate() error {
	if strings.TrimSpace(c.Token) == "" {
		return &MissingCredentialError{Field: "token"}
	}
	if strings.TrimSpace(c.TenantID) == "" {
		return &MissingCredentialError{Field: "tenant id"}
	}
	return nil
}

// Client issues requests against one tenant. Safe for concurrent use;
// all fields are read-only after construction.
type Client struct {
	creds   Credentials
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient substitutes the underlying HTTP client (tests, custom
// transports).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger attaches a logger. Default: slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithBaseURL sets the default API root used when the credential triple
// carries no override.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// NewClient validates the credential triple and builds a client for it.
// Validation failure means no request will ever be sent.
func NewClient(creds Credentials, opts ...Option) (*Client, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		creds:   creds,
		baseURL: "https://api.xero.com/api.xro/2.0",
		http:    http.DefaultClient,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if creds.BaseURL != "" {
		c.baseURL = creds.BaseURL
	}
	c.baseURL = strings.TrimRight(c.baseURL, "/")
	return c, nil
}

// do issues one request and decodes the JSON response into out.
// A nil out discards the body. Response classification, in priority
// order: 429, 401/403, other non-2xx, 204, decoded body.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding %s %s body: %w", method, path, err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("building %s %s: %w", method, path, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Authorization", "Bearer "+c.creds.Token)
	req.Header.Set("Xero-Tenant-Id", c.creds.TenantID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("xero request", "method", method, "path", path, "request_id", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return &RateLimitError{RetryAfterSeconds: retryAfter(resp)}
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return &AuthError{StatusCode: resp.StatusCode}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		raw, _ := io.ReadAll(resp.Body)
		apiErr := extractAPIError(resp.StatusCode, raw)
		c.logger.Debug("xero error", "status", resp.StatusCode, "message", apiErr.Message, "request_id", requestID)
		return apiErr
	case resp.StatusCode == http.StatusNoContent:
		return nil
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, path, err)
	}
	return nil
}

// retryAfter parses the Retry-After header in seconds, defaulting when
// absent or unparseable.
func retryAfter(resp *http.Response) int {
	h := resp.Header.Get("Retry-After")
	if h == "" {
		return defaultRetryAfterSeconds
	}
	n, err := strconv.Atoi(strings.TrimSpace(h))
	if err != nil || n < 0 {
		return defaultRetryAfterSeconds
	}
	return n
}

// firstOf returns the first element of a response collection, or a
// not-found APIError. Singular GETs on Xero return a one-element
// collection; an empty one means the identifier matched nothing.
func firstOf[T any](items []T, kind, id string) (T, error) {
	if len(items) == 0 {
		var zero T
		return zero, &APIError{StatusCode: http.StatusNotFound, Message: fmt.Sprintf("%s %s not found", kind, id)}
	}
	return items[0], nil
}
