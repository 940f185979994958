package errors

import "fmt"

// NewHTTPError builds a classified error for a non-success HTTP status.
func NewHTTPError(statusCode int, body, operation string) *ClassifiedError {
	return &ClassifiedError{
		Category:   categoryForStatus(statusCode),
		StatusCode: statusCode,
		Body:       body,
		Underlying: fmt.Errorf("%s: status %d", operation, statusCode),
	}
}

// NewNetworkError builds a classified error for a failure below the HTTP
// layer. Network errors are always recoverable: they may be transient.
func NewNetworkError(operation string, err error) *ClassifiedError {
	return &ClassifiedError{
		Category:   Recoverable,
		Underlying: fmt.Errorf("%s: %w", operation, err),
	}
}

// categoryForStatus maps an HTTP status code to an error category.
func categoryForStatus(statusCode int) ErrorCategory {
	switch {
	case statusCode >= 400 && statusCode < 500:
		switch statusCode {
		case 408, 429: // timeout / rate limited: retry with backoff
			return Recoverable
		default:
			return Irrecoverable
		}
	case statusCode >= 500 && statusCode < 600:
		return Recoverable
	default:
		// Unexpected codes: be conservative and allow a retry.
		return Recoverable
	}
}
