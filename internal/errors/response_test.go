package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ResponseTestSuite defines the test suite for error responses
type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "550e8400-e29b-41d4-a716-446655440000"
}

func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_BasicUsage() {
	response := NewErrorResponse(AccountNotFound, s.traceID)

	s.Equal("ACCOUNT_001", response.Error.Code)
	s.Equal("NOT_FOUND", response.Error.Kind)
	s.Equal("Account not found", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestNewErrorResponse_Options() {
	response := NewErrorResponse(ValidationGeneral, s.traceID,
		WithDetails("principal_amount: required"),
		WithMessage("bad input"))

	s.Equal("bad input", response.Error.Message)
	s.Equal([]string{"principal_amount: required"}, response.Error.Details)
}

func (s *ResponseTestSuite) TestFromError_AppError() {
	err := Newf(AccountInvalidData, "Principal amount %.2f is below minimum %.2f for product %s", 500.0, 10000.0, "FD-STD").
		WithField("principal_amount", "10000.00")

	response := FromError(fmt.Errorf("create account: %w", err), s.traceID)

	s.Equal("ACCOUNT_002", response.Error.Code)
	s.Equal("INVALID_DATA", response.Error.Kind)
	s.Equal("Principal amount 500.00 is below minimum 10000.00 for product FD-STD", response.Error.Message)
	s.Equal("principal_amount", response.Error.Field)
	s.Equal("10000.00", response.Error.Bound)
}

func (s *ResponseTestSuite) TestFromError_ForeignErrorIsMasked() {
	response := FromError(stderrors.New("pq: connection refused"), s.traceID)

	s.Equal("SYSTEM_001", response.Error.Code)
	s.Equal("INTERNAL", response.Error.Kind)
	s.NotContains(response.Error.Message, "pq")
}

func (s *ResponseTestSuite) TestToJSON() {
	data, err := NewErrorResponse(AccountAlreadyClosed, s.traceID).ToJSON()
	s.Require().NoError(err)

	var decoded map[string]map[string]any
	s.Require().NoError(json.Unmarshal(data, &decoded))
	s.Equal("ACCOUNT_003", decoded["error"]["code"])
	s.Equal("CONFLICT", decoded["error"]["kind"])
}

func (s *ResponseTestSuite) TestAppError_Chain() {
	cause := stderrors.New("dial tcp: timeout")
	err := ServiceIntegration(cause, "Failed to validate customer with Customer Service")

	s.ErrorIs(err, cause)
	s.ErrorIs(fmt.Errorf("outer: %w", err), New(SystemServiceIntegration, ""))
	s.Equal(KindServiceIntegration, KindOf(err))
	s.Equal(KindInternal, KindOf(cause))
	s.Equal(SystemServiceIntegration, CodeOf(err))
	s.Contains(err.Error(), "dial tcp: timeout")
}
