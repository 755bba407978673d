package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the structured failure returned by every core operation.
// Field and Bound are set for validation failures and name the input that
// was rejected and the limit it violated.
type AppError struct {
	Code    ErrorCode
	Kind    Kind
	Message string
	Field   string
	Bound   string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches another *AppError by code so errors.Is can compare against
// sentinel values built with New.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// New creates an AppError for code. An empty message falls back to the
// code's default message.
func New(code ErrorCode, message string) *AppError {
	if message == "" {
		message = GetErrorMessage(code)
	}
	return &AppError{
		Code:    code,
		Kind:    GetKind(code),
		Message: message,
	}
}

// Newf is New with a formatted message.
func Newf(code ErrorCode, format string, args ...any) *AppError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap creates an AppError for code carrying cause.
func Wrap(code ErrorCode, cause error, message string) *AppError {
	e := New(code, message)
	e.Err = cause
	return e
}

// WithField records the rejected field and the bound it violated.
func (e *AppError) WithField(field, bound string) *AppError {
	e.Field = field
	e.Bound = bound
	return e
}

// As returns the AppError in err's chain, if any.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// KindOf reports the kind of err. Errors that are not AppErrors are internal.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	if appErr, ok := As(err); ok {
		return appErr.Kind
	}
	return KindInternal
}

// CodeOf reports the code of err, or SystemInternalError for foreign errors.
func CodeOf(err error) ErrorCode {
	if appErr, ok := As(err); ok {
		return appErr.Code
	}
	return SystemInternalError
}

// Internal wraps an unexpected failure, typically a storage write.
func Internal(cause error, message string) *AppError {
	return Wrap(SystemInternalError, cause, message)
}

// ServiceIntegration wraps a failure talking to an external directory.
func ServiceIntegration(cause error, message string) *AppError {
	return Wrap(SystemServiceIntegration, cause, message)
}
