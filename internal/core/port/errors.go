package port

import "net/http"

// StatusError is a client-visible failure. The inbound HTTP adapter renders
// it as {error, details?, hint?} with the embedded status code; every other
// error becomes an opaque 500. Recoverable conditions are converted to a
// StatusError as early as possible, before any state mutation.
type StatusError struct {
	Status  int
	Message string
	Details string
	Hint    string
}

func (e *StatusError) Error() string {
	if e.Details != "" {
		return e.Message + ": " + e.Details
	}
	return e.Message
}

func Unauthorized(msg string) *StatusError {
	return &StatusError{Status: http.StatusUnauthorized, Message: msg}
}

func BadRequest(msg string) *StatusError {
	return &StatusError{Status: http.StatusBadRequest, Message: msg}
}

func BadRequestDetails(msg, details string) *StatusError {
	return &StatusError{Status: http.StatusBadRequest, Message: msg, Details: details}
}

func Forbidden(msg string) *StatusError {
	return &StatusError{Status: http.StatusForbidden, Message: msg}
}

func NotFound(msg string) *StatusError {
	return &StatusError{Status: http.StatusNotFound, Message: msg}
}

func TooManyRequests(msg, hint string) *StatusError {
	return &StatusError{Status: http.StatusTooManyRequests, Message: msg, Hint: hint}
}

func Misconfigured(msg, hint string) *StatusError {
	return &StatusError{Status: http.StatusInternalServerError, Message: msg, Hint: hint}
}
