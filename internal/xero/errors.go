package xero

import (
	"encoding/json"
	"fmt"
	"strings"
)

// MissingCredentialError reports an absent mandatory credential field.
// It is always raised before any network traffic.
type MissingCredentialError struct {
	Field string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("missing credential: %s", e.Field)
}

// AuthError reports HTTP 401 (expired or invalid token) or 403
// (insufficient tenant permission) from the remote API.
type AuthError struct {
	StatusCode int
}

func (e *AuthError) Error() string {
	if e.StatusCode == 403 {
		return "authentication failed: insufficient permission for this tenant"
	}
	return "authentication failed: token expired or invalid"
}

// RateLimitError reports HTTP 429. RetryAfterSeconds carries the
// advised wait; this layer never retries on its own.
type RateLimitError struct {
	RetryAfterSeconds int
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded, retry after %d seconds", e.RetryAfterSeconds)
}

// APIError reports any other non-2xx response. Message is best-effort
// extracted from the response body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("xero api error (HTTP %d): %s", e.StatusCode, e.Message)
}

// Retryable reports whether the caller may reasonably retry the call
// later. Only rate limiting qualifies; auth and validation failures
// need out-of-band fixes first.
func Retryable(err error) bool {
	_, ok := err.(*RateLimitError)
	return ok
}

// apiErrorBody matches the Xero error envelope. A top-level Message is
// preferred; otherwise per-element validation messages are flattened.
type apiErrorBody struct {
	Message  string `json:"Message"`
	Elements []struct {
		ValidationErrors []struct {
			Message string `json:"Message"`
		} `json:"ValidationErrors"`
	} `json:"Elements"`
}

// extractAPIError builds an APIError from a non-2xx response body.
// Parse failures fall back to a generic message carrying the status.
func extractAPIError(status int, body []byte) *APIError {
	generic := &APIError{StatusCode: status, Message: fmt.Sprintf("HTTP %d", status)}

	var parsed apiErrorBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		return generic
	}

	if parsed.Message != "" {
		return &APIError{StatusCode: status, Message: parsed.Message}
	}

	var msgs []string
	for _, el := range parsed.Elements {
		for _, ve := range el.ValidationErrors {
			if ve.Message != "" {
				msgs = append(msgs, ve.Message)
			}
		}
	}
	if len(msgs) > 0 {
		return &APIError{StatusCode: status, Message: strings.Join(msgs, "; ")}
	}
	return generic
}
