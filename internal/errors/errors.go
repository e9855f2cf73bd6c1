package errors

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	TransportError  ErrorCode = "transport_error"
	RemoteError     ErrorCode = "remote_error"
	DecodeError     ErrorCode = "decode_error"
	ValidationError ErrorCode = "validation_error"
)

type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewAppError(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

func NewAppErrorf(code ErrorCode, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

func (e *AppError) WithDetails(details string) *AppError {
	e.Details = details
	return e
}

// CodeOf returns the error's code, or empty for non-AppError values.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// MessageOf extracts the user-facing message from any error.
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

// IsTransport reports whether the service could not be reached at all,
// as opposed to reachable but rejecting the request.
func IsTransport(err error) bool {
	return CodeOf(err) == TransportError
}

// Predefined errors for common precondition failures
var (
	ErrNoAccountSelected    = NewAppError(ValidationError, "Please select an account")
	ErrBothAccountsRequired = NewAppError(ValidationError, "Please select both accounts")
	ErrSameAccountTransfer  = NewAppError(ValidationError, "Cannot transfer to the same account")
	ErrNonPositiveAmount    = NewAppError(ValidationError, "Amount must be greater than zero")
)
