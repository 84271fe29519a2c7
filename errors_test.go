package forge

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorFromResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
		body       string
		sentinel   error
		message    string
	}{
		{
			name:       "not found",
			statusCode: 404,
			body:       `{"message": "Site not found."}`,
			sentinel:   ErrNotFound,
			message:    "Site not found.",
		},
		{
			name:       "rate limited",
			statusCode: 429,
			body:       `{"message": "Too Many Attempts."}`,
			sentinel:   ErrRateLimited,
			message:    "Too Many Attempts.",
		},
		{
			name:       "maintenance",
			statusCode: 503,
			body:       `{"message": "Be right back."}`,
			sentinel:   ErrMaintenance,
			message:    "Be right back.",
		},
		{
			name:       "internal server error",
			statusCode: 500,
			body:       `{"message": "Server Error"}`,
			sentinel:   ErrServer,
			message:    "Server Error",
		},
		{
			name:       "bad gateway is a server error",
			statusCode: 502,
			body:       `<html>Bad Gateway</html>`,
			sentinel:   ErrServer,
			message:    "Bad Gateway",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := errorFromResponse(tt.statusCode, []byte(tt.body))
			require.Error(t, err)

			assert.ErrorIs(t, err, tt.sentinel)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.statusCode, apiErr.StatusCode)
			assert.Equal(t, tt.message, apiErr.Message)
		})
	}
}

func TestErrorFromResponseValidation(t *testing.T) {
	t.Parallel()

	body := `{"message": "The given data was invalid.", "errors": {"root_domain": ["The root domain field is required."]}}`

	err := errorFromResponse(422, []byte(body))
	require.Error(t, err)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, 422, valErr.StatusCode)
	assert.Equal(t, "The given data was invalid.", valErr.Message)
	assert.Equal(t, []string{"The root domain field is required."}, valErr.Errors["root_domain"])

	// Validation failures are not marked with the other sentinels
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrServer)
}

func TestErrorFromResponseGeneric(t *testing.T) {
	t.Parallel()

	// 4xx without field errors is a plain API error
	err := errorFromResponse(403, []byte(`{"message": "This action is unauthorized."}`))
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 403, apiErr.StatusCode)
	assert.Equal(t, "This action is unauthorized.", apiErr.Message)
}

func TestErrorFromResponseNonJSONBody(t *testing.T) {
	t.Parallel()

	err := errorFromResponse(404, []byte("not json at all"))
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Not Found", apiErr.Message, "message should fall back to status text")
}

func TestDomainTakenErrorUnwrap(t *testing.T) {
	t.Parallel()

	valErr := &ValidationError{
		StatusCode: 422,
		Message:    "The given data was invalid.",
		Errors:     map[string][]string{"root_domain": {"The root domain has already been taken."}},
	}
	err := &DomainTakenError{Domain: "example.com", cause: valErr}

	assert.Contains(t, err.Error(), "example.com")

	var unwrapped *ValidationError
	require.ErrorAs(t, err, &unwrapped)
	assert.Same(t, valErr, unwrapped)
}

func TestDomainTaken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		errors map[string][]string
		want   bool
	}{
		{
			name:   "domain already taken",
			errors: map[string][]string{"root_domain": {"The root domain has already been taken."}},
			want:   true,
		},
		{
			name:   "unrelated root_domain failure",
			errors: map[string][]string{"root_domain": {"The root domain format is invalid."}},
			want:   false,
		},
		{
			name:   "different field",
			errors: map[string][]string{"web_directory": {"The web directory has already been taken."}},
			want:   false,
		},
		{
			name:   "no field errors",
			errors: nil,
			want:   false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			valErr := &ValidationError{StatusCode: 422, Errors: tt.errors}
			assert.Equal(t, tt.want, domainTaken(valErr))
		})
	}
}

func TestWrappedErrorsPreserveTaxonomy(t *testing.T) {
	t.Parallel()

	err := errorFromResponse(404, []byte(`{"message": "Site not found."}`))
	wrapped := errors.Wrap(err, "failed to get site 42 on server 5")

	assert.ErrorIs(t, wrapped, ErrNotFound, "wrapping must not hide the failure class")

	var apiErr *APIError
	assert.ErrorAs(t, wrapped, &apiErr)
}
