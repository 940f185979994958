// Package errors classifies SDK failures by recoverability so the optional
// retry policy can decide whether another attempt is worthwhile.
package errors

import "fmt"

// ErrorCategory determines how a failure should be handled by retry logic.
type ErrorCategory int

const (
	// Recoverable failures may succeed on retry: 5xx responses, request
	// timeouts, rate limiting, network-level errors.
	Recoverable ErrorCategory = iota

	// Irrecoverable failures will not improve on retry: 400 Bad Request,
	// 401 Unauthorized, 403 Forbidden, 404 Not Found and similar.
	Irrecoverable
)

// String returns a human-readable representation of the category.
func (c ErrorCategory) String() string {
	switch c {
	case Recoverable:
		return "Recoverable"
	case Irrecoverable:
		return "Irrecoverable"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// ClassifiedError wraps a failure with categorization metadata.
type ClassifiedError struct {
	Category   ErrorCategory
	StatusCode int    // HTTP status (0 for network-level failures)
	Body       string // response body, kept for diagnostics
	Underlying error
}

// Error implements the error interface.
func (e *ClassifiedError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%v (HTTP %d)", e.Underlying, e.StatusCode)
	}
	return e.Underlying.Error()
}

// Unwrap returns the underlying error for errors.Is / errors.As chains.
func (e *ClassifiedError) Unwrap() error { return e.Underlying }

// IsIrrecoverable reports whether err must not be retried.
func IsIrrecoverable(err error) bool {
	if classified, ok := err.(*ClassifiedError); ok {
		return classified.Category == Irrecoverable
	}
	return false
}
