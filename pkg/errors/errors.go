package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error represents a typed client error with the originating HTTP status.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a new Error instance.
func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message, Err: err}
}

// Predefined errors covering the client failure kinds.
var (
	// ErrValidation marks field-level input problems; recoverable, never fatal.
	ErrValidation = New("VALIDATION_ERROR", http.StatusBadRequest, "validation failed")
	// ErrRemoteData marks an unsuccessful envelope or non-2xx fetch; the caller may retry.
	ErrRemoteData = New("REMOTE_DATA_ERROR", http.StatusBadGateway, "remote data unavailable")
	// ErrSessionExpired marks an HTTP 401; the session must be torn down, not retried.
	ErrSessionExpired = New("SESSION_EXPIRED", http.StatusUnauthorized, "session expired")
	// ErrSubmission marks a failure inside the submit/upload sequence; the draft survives.
	ErrSubmission = New("SUBMISSION_ERROR", http.StatusBadGateway, "submission failed")
	// ErrUploadDegraded marks an upload failure the submission survived with a placeholder.
	ErrUploadDegraded = New("UPLOAD_DEGRADED", http.StatusBadGateway, "file upload failed, placeholder submitted")
	// ErrSubmissionInFlight rejects a second submit while one is pending.
	ErrSubmissionInFlight = New("SUBMISSION_IN_FLIGHT", http.StatusConflict, "a submission is already in progress")
	ErrInternal           = New("INTERNAL_ERROR", http.StatusInternalServerError, "internal error")
)

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Status, ErrInternal.Message)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}

// Is reports whether err carries the given sentinel's code.
func Is(err error, sentinel *Error) bool {
	if err == nil || sentinel == nil {
		return false
	}
	return FromError(err).Code == sentinel.Code
}

// IsSessionExpired reports whether the error signals an invalid session.
func IsSessionExpired(err error) bool {
	return Is(err, ErrSessionExpired)
}
