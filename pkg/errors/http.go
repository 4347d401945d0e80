package errors

import "net/http"

// HTTPError is an error carrying the HTTP status and the message shown to the client.
type HTTPError struct {
	StatusCode int
	Code       int
	Message    string
}

// NewHTTPError builds an HTTPError whose error code equals the status code.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Code: statusCode, Message: message}
}

func (e *HTTPError) Error() string {
	return e.Message
}

var (
	ErrBadRequest       = NewHTTPError(http.StatusBadRequest, "Bad request")
	ErrUnauthorized     = NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	ErrForbidden        = NewHTTPError(http.StatusForbidden, "Forbidden")
	ErrNotFound         = NewHTTPError(http.StatusNotFound, "Not found")
	ErrMethodNotAllowed = NewHTTPError(http.StatusMethodNotAllowed, "Method not allowed")
	ErrTooManyRequests  = NewHTTPError(http.StatusTooManyRequests, "Too many requests")
)
