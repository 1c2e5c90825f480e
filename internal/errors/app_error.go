package errors

import (
	"errors"
	"fmt"
	"net/http"
)

type AppError struct {
	Code       string
	Message    string
	Detail     string
	StatusCode int
	Err        error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func (e *AppError) WithDetail(detail string) *AppError {
	e.Detail = detail

	return e
}

func (e *AppError) WithError(err error) *AppError {
	e.Err = err

	return e
}

const (
	ErrCodeValidation        = "VALIDATION_ERROR"
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeUnauthenticated   = "UNAUTHENTICATED"
	ErrCodeRemoteRejected    = "REMOTE_REJECTED"
	ErrCodeRemoteUnavailable = "REMOTE_UNAVAILABLE"
	ErrCodeCheckoutStep      = "CHECKOUT_STEP_FAILED"
	ErrCodeInternal          = "INTERNAL_ERROR"
)

func ValidationError(message string) *AppError {
	return NewAppError(ErrCodeValidation, message, http.StatusBadRequest)
}

func NotFoundError(message string) *AppError {
	return NewAppError(ErrCodeNotFound, message, http.StatusNotFound)
}

func UnauthenticatedError(message string) *AppError {
	return NewAppError(ErrCodeUnauthenticated, message, http.StatusUnauthorized)
}

// RemoteRejectedError wraps a non-2xx backend response. The message is the
// server-provided one when the error body carried it, else a generic string
// for the status code.
func RemoteRejectedError(statusCode int, message string) *AppError {
	if message == "" {
		message = fmt.Sprintf("request failed with status %d", statusCode)
	}

	return NewAppError(ErrCodeRemoteRejected, message, statusCode)
}

// RemoteUnavailableError marks transport-level failures: timeout, DNS,
// connection refused. No response was received from the backend.
func RemoteUnavailableError(message string) *AppError {
	return NewAppError(ErrCodeRemoteUnavailable, message, http.StatusServiceUnavailable)
}

func InternalError(message string) *AppError {
	return NewAppError(ErrCodeInternal, message, http.StatusInternalServerError)
}

func IsAppError(err error) (*AppError, bool) {
	var appError *AppError

	if errors.As(err, &appError) {
		return appError, true
	}

	return nil, false
}

// field validation error.
func AddValidationError(field, reason string) *AppError {
	return ValidationError(fmt.Sprintf("Invalid field '%s': %s", field, reason))
}
