package xero

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tallyops/xero-mcp/internal/log"
)

// newTestClient builds a client against an httptest server.
func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	hc := &http.Client{}
	t.Cleanup(hc.CloseIdleConnections)

	c, err := NewClient(
		Credentials{Token: "test-token", TenantID: "test-tenant"},
		WithBaseURL(srv.URL),
		WithHTTPClient(hc),
		WithLogger(log.NewNop()),
	)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	return c
}

// countingTransport fails every request and counts attempts. Used to
// prove that credential validation happens before any network traffic.
type countingTransport struct {
	calls int
}

func (ct *countingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	ct.calls++
	return nil, errors.New("unexpected network call")
}

func TestNewClientValidatesCredentials(t *testing.T) {
	tests := []struct {
		name      string
		creds     Credentials
		wantField string
	}{
		{"missing token", Credentials{TenantID: "tenant"}, "token"},
		{"blank token", Credentials{Token: "   ", TenantID: "tenant"}, "token"},
		{"missing tenant", Credentials{Token: "tok"}, "tenant id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ct := &countingTransport{}
			_, err := NewClient(tt.creds, WithHTTPClient(&http.Client{Transport: ct}))

			var mce *MissingCredentialError
			if !errors.As(err, &mce) {
				t.Fatalf("NewClient() error = %v, want MissingCredentialError", err)
			}
			if mce.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", mce.Field, tt.wantField)
			}
			if ct.calls != 0 {
				t.Errorf("network calls = %d, want 0", ct.calls)
			}
		})
	}
}

func TestCredentialBaseURLOverridesDefault(t *testing.T) {
	c, err := NewClient(
		Credentials{Token: "tok", TenantID: "tenant", BaseURL: "https://example.com/api/"},
		WithBaseURL("https://ignored.example.com"),
	)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	if c.baseURL != "https://example.com/api" {
		t.Errorf("baseURL = %q, want %q", c.baseURL, "https://example.com/api")
	}
}

func TestDoSetsRequestHeaders(t *testing.T) {
	var got http.Header
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`{"Organisations":[{"Name":"Test Org"}]}`))
	}))

	if _, err := c.GetOrganisation(context.Background()); err != nil {
		t.Fatalf("GetOrganisation() error = %v", err)
	}

	if auth := got.Get("Authorization"); auth != "Bearer test-token" {
		t.Errorf("Authorization = %q, want %q", auth, "Bearer test-token")
	}
	if tenant := got.Get("Xero-Tenant-Id"); tenant != "test-tenant" {
		t.Errorf("Xero-Tenant-Id = %q, want %q", tenant, "test-tenant")
	}
	if accept := got.Get("Accept"); accept != "application/json" {
		t.Errorf("Accept = %q, want %q", accept, "application/json")
	}
}

func TestDoRateLimit(t *testing.T) {
	tests := []struct {
		name       string
		retryAfter string
		want       int
	}{
		{"header present", "30", 30},
		{"header absent", "", 60},
		{"header junk", "soon", 60},
		{"header negative", "-5", 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.retryAfter != "" {
					w.Header().Set("Retry-After", tt.retryAfter)
				}
				w.WriteHeader(http.StatusTooManyRequests)
			}))

			_, err := c.GetInvoice(context.Background(), "inv-1")

			var rle *RateLimitError
			if !errors.As(err, &rle) {
				t.Fatalf("error = %v, want RateLimitError", err)
			}
			if rle.RetryAfterSeconds != tt.want {
				t.Errorf("RetryAfterSeconds = %d, want %d", rle.RetryAfterSeconds, tt.want)
			}
			if !Retryable(err) {
				t.Error("Retryable() = false, want true")
			}
		})
	}
}

func TestDoAuthError(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		_, err := c.GetInvoice(context.Background(), "inv-1")

		var ae *AuthError
		if !errors.As(err, &ae) {
			t.Fatalf("status %d: error = %v, want AuthError", status, err)
		}
		if ae.StatusCode != status {
			t.Errorf("StatusCode = %d, want %d", ae.StatusCode, status)
		}
		if Retryable(err) {
			t.Error("Retryable() = true, want false")
		}
	}
}

func TestDoAPIErrorMessageExtraction(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			"top-level message",
			`{"Message":"A validation exception occurred"}`,
			"A validation exception occurred",
		},
		{
			"validation errors flattened",
			`{"Elements":[{"ValidationErrors":[{"Message":"Invoice not of valid status"},{"Message":"Date is required"}]}]}`,
			"Invoice not of valid status; Date is required",
		},
		{
			"unparseable body",
			`<html>gateway error</html>`,
			"HTTP 400",
		},
		{
			"empty envelope",
			`{}`,
			"HTTP 400",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(tt.body))
			}))

			_, err := c.GetInvoice(context.Background(), "inv-1")

			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("error = %v, want APIError", err)
			}
			if apiErr.StatusCode != http.StatusBadRequest {
				t.Errorf("StatusCode = %d, want 400", apiErr.StatusCode)
			}
			if apiErr.Message != tt.want {
				t.Errorf("Message = %q, want %q", apiErr.Message, tt.want)
			}
		})
	}
}

func TestDoNoContent(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %s, want DELETE", r.Method)
		}
		w.WriteHeader(http.StatusNoContent)
	}))

	if err := c.DeleteItem(context.Background(), "item-1"); err != nil {
		t.Fatalf("DeleteItem() error = %v", err)
	}
}

func TestFirstOfEmptyCollection(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Invoices":[]}`))
	}))

	_, err := c.GetInvoice(context.Background(), "missing-id")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want APIError", err)
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want 404", apiErr.StatusCode)
	}
}
