// Package auth carries per-request Xero credentials from HTTP headers
// into the request context. Credentials are never read from server
// configuration: every request brings its own token and tenant, and a
// missing credential is reported by the client layer when a tool
// actually runs, not rejected at the transport.
package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/tallyops/xero-mcp/internal/xero"
)

// Request headers holding the caller's credentials.
const (
	HeaderTenantID = "Xero-Tenant-Id"
	HeaderBaseURL  = "Xero-Base-Url"
)

// Context key type (unexported to prevent collisions).
type credentialsKey struct{}

var ctxKeyCredentials = credentialsKey{}

// WithCredentials returns a context carrying the given credentials.
func WithCredentials(ctx context.Context, creds xero.Credentials) context.Context {
	return context.WithValue(ctx, ctxKeyCredentials, creds)
}

// FromContext retrieves the request credentials from the context.
// Returns the zero value and false if none were attached; callers pass
// the zero value on so validation reports which field is missing.
func FromContext(ctx context.Context) (xero.Credentials, bool) {
	creds, ok := ctx.Value(ctxKeyCredentials).(xero.Credentials)
	return creds, ok
}

// Middleware extracts credentials from the request headers and attaches
// them to the request context. Absent headers yield empty fields rather
// than an HTTP error: the MCP handshake must succeed without
// credentials, and tool calls fail individually with a typed error.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			creds := xero.Credentials{
				Token:    bearerToken(r.Header.Get("Authorization")),
				TenantID: r.Header.Get(HeaderTenantID),
				BaseURL:  r.Header.Get(HeaderBaseURL),
			}
			ctx := WithCredentials(r.Context(), creds)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken strips the Bearer scheme from an Authorization header
// value. A bare token without the scheme is accepted as-is; the scheme
// with nothing after it is an empty token, not a token named "Bearer".
func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	const prefix = "bearer "
	if len(header) >= len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return strings.TrimSpace(header)
}
