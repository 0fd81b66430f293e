// Package errors defines the error type every API operation returns for a
// non-2xx response, plus predicates for branching on HTTP status.
package errors

import "fmt"

// APIError wraps a non-2xx response from the Fastly API. Network-level
// failures are never converted into one; those surface as the transport's
// own error so callers can tell the two apart.
type APIError struct {
	StatusCode int
	Status     string // e.g. "404 Not Found"
	Method     string
	URL        string
	Body       string // raw response body, kept for debugging
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("fastly: %s %s: %s: %s", e.Method, e.URL, e.Status, e.Body)
	}
	return fmt.Sprintf("fastly: %s %s: %s", e.Method, e.URL, e.Status)
}
