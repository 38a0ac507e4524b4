package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tallyops/xero-mcp/internal/xero"
)

func TestMiddlewareExtractsCredentials(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    xero.Credentials
	}{
		{
			"bearer token",
			map[string]string{
				"Authorization": "Bearer tok-123",
				HeaderTenantID:  "tenant-1",
				HeaderBaseURL:   "https://example.com/api",
			},
			xero.Credentials{Token: "tok-123", TenantID: "tenant-1", BaseURL: "https://example.com/api"},
		},
		{
			"case-insensitive scheme",
			map[string]string{"Authorization": "BEARER tok-123"},
			xero.Credentials{Token: "tok-123"},
		},
		{
			"bare token",
			map[string]string{"Authorization": "tok-123"},
			xero.Credentials{Token: "tok-123"},
		},
		{
			"no headers at all",
			nil,
			xero.Credentials{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got xero.Credentials
			var present bool
			inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got, present = FromContext(r.Context())
			})

			req := httptest.NewRequest(http.MethodPost, "/mcp", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			Middleware()(inner).ServeHTTP(httptest.NewRecorder(), req)

			if !present {
				t.Fatal("credentials missing from context")
			}
			if got != tt.want {
				t.Errorf("credentials = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMiddlewareNeverRejects(t *testing.T) {
	// The MCP handshake carries no credentials; the transport must let
	// it through and leave credential errors to individual tool calls.
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/mcp", nil)
	rec := httptest.NewRecorder()
	Middleware()(inner).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestFromContextAbsent(t *testing.T) {
	creds, ok := FromContext(context.Background())
	if ok {
		t.Error("ok = true, want false")
	}
	if creds != (xero.Credentials{}) {
		t.Errorf("creds = %+v, want zero value", creds)
	}
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"Bearer abc", "abc"},
		{"bearer abc", "abc"},
		{"Bearer  abc ", "abc"},
		{"Bearer ", ""},
		{"bearer ", ""},
		{"abc", "abc"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := bearerToken(tt.header); got != tt.want {
			t.Errorf("bearerToken(%q) = %q, want %q", tt.header, got, tt.want)
		}
	}
}
