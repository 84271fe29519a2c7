package forge

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"
)

// Sentinel errors for the API failure classes. They are attached to the
// returned *APIError as marks, so callers can branch with errors.Is while
// errors.As still yields the status and server message.
var (
	// ErrNotFound indicates the addressed record does not exist (404).
	ErrNotFound = errors.New("resource not found")

	// ErrRateLimited indicates the API request budget was exhausted (429).
	ErrRateLimited = errors.New("too many attempts")

	// ErrMaintenance indicates the panel is down for maintenance (503).
	ErrMaintenance = errors.New("service temporarily unavailable for maintenance")

	// ErrServer indicates an internal API failure (other 5xx).
	ErrServer = errors.New("internal server error")
)

// APIError is an API failure with its HTTP status and server-reported message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("forge API error: status=%d message=%q", e.StatusCode, e.Message)
}

// ValidationError is a 4xx failure whose body carries per-field validation
// messages, keyed by request field name.
type ValidationError struct {
	StatusCode int
	Message    string
	Errors     map[string][]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("forge validation error: status=%d message=%q fields=%d", e.StatusCode, e.Message, len(e.Errors))
}

// DomainTakenError is returned by site creation when the API reports the
// requested root domain is already in use. It wraps the originating
// validation error, so errors.As against *ValidationError still works.
type DomainTakenError struct {
	// Domain is the root domain that was rejected.
	Domain string

	cause error
}

func (e *DomainTakenError) Error() string {
	return fmt.Sprintf("root domain %q has already been taken", e.Domain)
}

func (e *DomainTakenError) Unwrap() error {
	return e.cause
}

// apiErrorBody is the JSON error envelope the API returns on failure.
type apiErrorBody struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

// errorFromResponse maps a non-200 response onto the error taxonomy.
func errorFromResponse(statusCode int, body []byte) error {
	var parsed apiErrorBody
	// Not every failure body is JSON (proxies, maintenance pages); decode
	// failures fall back to the generic status text.
	_ = json.Unmarshal(body, &parsed)

	message := parsed.Message
	if message == "" {
		message = http.StatusText(statusCode)
	}

	apiErr := &APIError{StatusCode: statusCode, Message: message}

	switch {
	case statusCode == http.StatusNotFound:
		return errors.Mark(apiErr, ErrNotFound)
	case statusCode == http.StatusTooManyRequests:
		return errors.Mark(apiErr, ErrRateLimited)
	case statusCode == http.StatusServiceUnavailable:
		return errors.Mark(apiErr, ErrMaintenance)
	case statusCode >= http.StatusInternalServerError:
		return errors.Mark(apiErr, ErrServer)
	case len(parsed.Errors) > 0:
		return &ValidationError{
			StatusCode: statusCode,
			Message:    message,
			Errors:     parsed.Errors,
		}
	default:
		return apiErr
	}
}

// domainTaken reports whether a validation failure names the root domain
// as already in use. The API reports this as a root_domain field error.
func domainTaken(valErr *ValidationError) bool {
	for _, msg := range valErr.Errors["root_domain"] {
		if strings.Contains(msg, "already been taken") {
			return true
		}
	}
	return false
}
