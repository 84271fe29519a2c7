package middleware

import (
	"net/http"
	"regexp"
	"sync"
	"time"

	"github.com/lexfrei/go-forge/observability"
)

// Observability returns a middleware that logs and records metrics for HTTP requests.
func Observability(logger observability.Logger, metrics observability.MetricsRecorder) func(http.RoundTripper) http.RoundTripper {
	if logger == nil {
		logger = observability.NoopLogger()
	}
	if metrics == nil {
		metrics = observability.NoopMetricsRecorder()
	}

	return func(next http.RoundTripper) http.RoundTripper {
		return &observabilityTransport{
			next:    next,
			logger:  logger,
			metrics: metrics,
		}
	}
}

type observabilityTransport struct {
	next    http.RoundTripper
	logger  observability.Logger
	metrics observability.MetricsRecorder
}

func (t *observabilityTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	// Compute URL string once to avoid multiple allocations
	urlStr := req.URL.String()

	// Log request
	t.logger.Debug("http request started",
		observability.Field{Key: "method", Value: req.Method},
		observability.Field{Key: "url", Value: urlStr},
		observability.Field{Key: "path", Value: req.URL.Path},
	)

	// Make request
	resp, err := t.next.RoundTrip(req)

	duration := time.Since(start)

	if err != nil {
		// Log error
		t.logger.Error("http request failed",
			observability.Field{Key: "method", Value: req.Method},
			observability.Field{Key: "url", Value: urlStr},
			observability.Field{Key: "duration", Value: duration},
			observability.Field{Key: "error", Value: err.Error()},
		)

		t.metrics.RecordError("http_request", "NetworkError")

		//nolint:wrapcheck // Observability middleware logs error but passes it through unchanged
		return nil, err
	}

	// Log response
	fields := []observability.Field{
		{Key: "method", Value: req.Method},
		{Key: "url", Value: urlStr},
		{Key: "status", Value: resp.StatusCode},
		{Key: "duration", Value: duration},
	}

	if resp.StatusCode >= http.StatusBadRequest {
		t.logger.Warn("http request completed with error", fields...)
	} else {
		t.logger.Debug("http request completed", fields...)
	}

	// Record metrics with normalized path to avoid unbounded cardinality
	normalizedPath := normalizePath(req.URL.Path)
	t.metrics.RecordHTTPRequest(req.Method, normalizedPath, resp.StatusCode, duration)

	return resp, nil
}

var (
	// resourceIDPattern matches numeric resource id path segments. Forge
	// addresses every record with an integer id (/servers/5/sites/42), so a
	// single all-digits rule covers the whole API surface.
	resourceIDPattern = regexp.MustCompile(`/\d+(/|$)`)

	// normalizedPathCache caches normalized paths to avoid repeated regex
	// operations. Real workloads hit a handful of endpoint shapes, so the
	// cache stays small and almost always hits.
	normalizedPathCache sync.Map
)

// normalizePath replaces numeric id segments with an :id placeholder to
// prevent unbounded cardinality in metrics backends.
//
// Examples:
//   - /servers/5/sites/42 → /servers/:id/sites/:id
//   - /servers/5/sites/42/deploy/script → /servers/:id/sites/:id/deploy/script
//   - /servers → /servers
func normalizePath(path string) string {
	// Fast path: check cache
	if cached, ok := normalizedPathCache.Load(path); ok {
		//nolint:forcetypeassert // Cache only stores strings, type assertion is safe
		return cached.(string)
	}

	// Slow path: compute and cache. The pattern consumes the segment's
	// trailing slash, so it must be preserved in the replacement.
	normalized := resourceIDPattern.ReplaceAllStringFunc(path, func(match string) string {
		if match[len(match)-1] == '/' {
			return "/:id/"
		}
		return "/:id"
	})

	normalizedPathCache.Store(path, normalized)

	return normalized
}
