package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorResponse represents the standardized error payload rendered to callers
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains the detailed error information
type ErrorDetail struct {
	Code    string   `json:"code"`
	Kind    string   `json:"kind"`
	Message string   `json:"message"`
	Field   string   `json:"field,omitempty"`
	Bound   string   `json:"bound,omitempty"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"trace_id,omitempty"`
}

// ErrorOption is a functional option for configuring error responses
type ErrorOption func(*ErrorResponse)

// WithDetails adds detail messages to the error response
func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Details = details
	}
}

// WithMessage overrides the default message for the error code
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Message = message
	}
}

// NewErrorResponse creates a standardized error response with the given error code and trace ID
func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	response := &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(code),
			Kind:    string(GetKind(code)),
			Message: GetErrorMessage(code),
			TraceID: traceID,
			Details: []string{},
		},
	}

	for _, opt := range opts {
		opt(response)
	}

	return response
}

// FromError renders any error. AppErrors keep their code, message and
// violated bound; other errors are reported as a generic internal failure so
// storage details do not leak to callers.
func FromError(err error, traceID string) *ErrorResponse {
	appErr, ok := As(err)
	if !ok {
		return NewErrorResponse(SystemInternalError, traceID)
	}

	response := NewErrorResponse(appErr.Code, traceID, WithMessage(appErr.Message))
	response.Error.Kind = string(appErr.Kind)
	response.Error.Field = appErr.Field
	response.Error.Bound = appErr.Bound
	return response
}

// ToJSON serializes the error response to JSON bytes
func (er *ErrorResponse) ToJSON() ([]byte, error) {
	return json.Marshal(er)
}

// String returns a string representation of the error response
func (er *ErrorResponse) String() string {
	return fmt.Sprintf("[%s] %s (trace: %s)", er.Error.Code, er.Error.Message, er.Error.TraceID)
}
