// Package errors provides shared error types for the Confluence MCP server.
package errors

import (
	"fmt"
)

// UpstreamError indicates a non-2xx response from the Confluence REST API.
// The status and body are carried verbatim; the request is never retried.
type UpstreamError struct {
	StatusCode int    // HTTP status returned by Confluence
	URL        string // request URL that failed
	Body       string // response body, possibly truncated for display
}

func (e *UpstreamError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("confluence API returned %d for %s: %s", e.StatusCode, e.URL, e.Body)
	}
	return fmt.Sprintf("confluence API returned %d for %s", e.StatusCode, e.URL)
}

// NewUpstreamError creates an UpstreamError for a failed API call.
func NewUpstreamError(statusCode int, url, body string) *UpstreamError {
	return &UpstreamError{
		StatusCode: statusCode,
		URL:        url,
		Body:       body,
	}
}

// ValidationError indicates invalid or missing tool arguments.
type ValidationError struct {
	Field   string // argument name that failed validation
	Value   string // the invalid value (empty when the argument was absent)
	Message string // human-readable error message
}

func (e *ValidationError) Error() string {
	if e.Field != "" && e.Value != "" {
		return fmt.Sprintf("validation failed for %s=%q: %s", e.Field, e.Value, e.Message)
	}
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, value, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// UnknownResourceError indicates a resource URI outside the two recognized
// shapes (confluence://spaces/{key}, confluence://pages/{id}).
type UnknownResourceError struct {
	URI string
}

func (e *UnknownResourceError) Error() string {
	return fmt.Sprintf("unknown resource: %s", e.URI)
}

// NewUnknownResourceError creates an UnknownResourceError.
func NewUnknownResourceError(uri string) *UnknownResourceError {
	return &UnknownResourceError{URI: uri}
}

// IsUpstream returns true if the error is an UpstreamError.
func IsUpstream(err error) bool {
	_, ok := err.(*UpstreamError)
	return ok
}

// IsValidation returns true if the error is a ValidationError.
func IsValidation(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}

// IsUnknownResource returns true if the error is an UnknownResourceError.
func IsUnknownResource(err error) bool {
	_, ok := err.(*UnknownResourceError)
	return ok
}
