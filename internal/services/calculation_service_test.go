package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"fixed-deposit-core/internal/dto"
	apperrors "fixed-deposit-core/internal/errors"
	"fixed-deposit-core/internal/gateway"
	"fixed-deposit-core/internal/gateway/gateway_mocks"
	"fixed-deposit-core/internal/models"
	"fixed-deposit-core/internal/repositories"
	"fixed-deposit-core/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type CalculationServiceSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	gateway      *gateway_mocks.MockValidationGateway
	calculations *repository_mocks.MockCalculationRepositoryInterface
	registry     *prometheus.Registry
	service      *calculationService
	clock        time.Time
	ctx          context.Context
}

func (s *CalculationServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.gateway = gateway_mocks.NewMockValidationGateway(s.ctrl)
	s.calculations = repository_mocks.NewMockCalculationRepositoryInterface(s.ctrl)

	var metrics MetricsRecorderInterface
	metrics, s.registry = newTestMetrics()
	s.service = NewCalculationService(s.calculations, s.gateway, newTestAudit(), metrics,
		calculationConfig(), zap.NewNop()).(*calculationService)

	s.clock = time.Date(2024, 3, 9, 10, 0, 0, 0, time.UTC)
	s.service.now = func() time.Time { return s.clock }
	s.ctx = context.Background()
}

func (s *CalculationServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCalculationServiceSuite(t *testing.T) {
	suite.Run(t, new(CalculationServiceSuite))
}

func (s *CalculationServiceSuite) request(principal string, tenure int) dto.CalculationRequest {
	return dto.CalculationRequest{
		CustomerID:      "42",
		ProductCode:     "FD-STANDARD",
		PrincipalAmount: dec(principal),
		TenureMonths:    tenure,
	}
}

func (s *CalculationServiceSuite) expectLookups() {
	s.gateway.EXPECT().GetCustomer(gomock.Any(), "42").Return(activeCustomer("42"), nil)
	s.gateway.EXPECT().GetProductByCode(gomock.Any(), "FD-STANDARD").Return(standardProduct(), nil)
}

func (s *CalculationServiceSuite) TestCalculateFd_UsesTieredRate() {
	s.expectLookups()
	s.calculations.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, calc *models.FdCalculation) error {
			calc.ID = uuid.New()
			return nil
		})

	calc, err := s.service.CalculateFd(s.ctx, s.request("100000", 24))

	s.Require().NoError(err)
	s.Equal("6.5", calc.InterestRate.String())
	s.Equal("113763.90", calc.MaturityAmount.StringFixed(2))
	s.Equal("13763.90", calc.InterestEarned.StringFixed(2))
	s.Equal("6.66", calc.EffectiveRate.StringFixed(2))
	s.Equal(4, calc.CompoundingFrequency)
	s.Equal("INR", calc.Currency)
	s.Equal("Standard Fixed Deposit", calc.ProductName)
	s.Equal(s.clock, calc.CalculationDate)
	s.Equal(1.0, testutil.ToFloat64(s.service.metrics.(*PrometheusMetrics).calculations.WithLabelValues("success")))
}

func (s *CalculationServiceSuite) TestCalculateFd_OneYearQuote() {
	product := standardProduct()
	product.MinInterestRate = dec("6.5")
	product.MaxInterestRate = dec("6.5")
	s.gateway.EXPECT().GetCustomer(gomock.Any(), "42").Return(activeCustomer("42"), nil)
	s.gateway.EXPECT().GetProductByCode(gomock.Any(), "FD-STANDARD").Return(product, nil)
	s.calculations.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	calc, err := s.service.CalculateFd(s.ctx, s.request("100000", 12))

	s.Require().NoError(err)
	s.Equal("106660.16", calc.MaturityAmount.StringFixed(2))
	s.Equal("6660.16", calc.InterestEarned.StringFixed(2))
	s.Equal("6.66", calc.EffectiveRate.StringFixed(2))
}

func (s *CalculationServiceSuite) TestCalculateFd_ExplicitFrequency() {
	s.expectLookups()
	s.calculations.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	monthly := 12
	req := s.request("250000", 18)
	req.CompoundingFrequency = &monthly

	calc, err := s.service.CalculateFd(s.ctx, req)

	s.Require().NoError(err)
	s.Equal(12, calc.CompoundingFrequency)
	s.Equal("275530.36", calc.MaturityAmount.StringFixed(2))
}

func (s *CalculationServiceSuite) TestCalculateFd_CustomerErrors() {
	tests := []struct {
		name string
		resp *dto.CustomerDetails
		err  error
		code apperrors.ErrorCode
		msg  string
	}{
		{name: "not found", err: gateway.ErrCustomerNotFound, code: apperrors.CustomerNotFound, msg: "Customer not found with ID: 42"},
		{name: "inactive", resp: &dto.CustomerDetails{ID: "42"}, code: apperrors.CalculationInvalidData, msg: "Customer account is not active"},
		{name: "transport", err: &gateway.TransportError{Service: gateway.ServiceCustomer, StatusCode: 503, Err: errors.New("down")}, code: apperrors.SystemServiceIntegration, msg: "Failed to validate customer information"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.gateway.EXPECT().GetCustomer(gomock.Any(), "42").Return(tt.resp, tt.err)
			s.gateway.EXPECT().GetProductByCode(gomock.Any(), "FD-STANDARD").Return(standardProduct(), nil)

			_, err := s.service.CalculateFd(s.ctx, s.request("100000", 12))

			appErr, ok := apperrors.As(err)
			s.Require().True(ok)
			s.Equal(tt.code, appErr.Code)
			s.Equal(tt.msg, appErr.Message)
		})
	}
}

func (s *CalculationServiceSuite) TestCalculateFd_CustomerErrorWinsOverProductError() {
	s.gateway.EXPECT().GetCustomer(gomock.Any(), "42").Return(nil, gateway.ErrCustomerNotFound)
	s.gateway.EXPECT().GetProductByCode(gomock.Any(), "FD-STANDARD").Return(nil, gateway.ErrProductNotFound)

	_, err := s.service.CalculateFd(s.ctx, s.request("100000", 12))

	s.Equal(apperrors.CustomerNotFound, apperrors.CodeOf(err))
}

func (s *CalculationServiceSuite) TestCalculateFd_ProductErrors() {
	inactive := standardProduct()
	inactive.Status = "INACTIVE"

	tests := []struct {
		name string
		resp *dto.ProductDetails
		err  error
		code apperrors.ErrorCode
		msg  string
	}{
		{name: "not found", err: gateway.ErrProductNotFound, code: apperrors.ProductNotFound, msg: "Product not found with code: FD-STANDARD"},
		{name: "inactive", resp: inactive, code: apperrors.CalculationInvalidData, msg: "Product is not active: FD-STANDARD"},
		{name: "transport", err: &gateway.TransportError{Service: gateway.ServiceProduct, Err: errors.New("timeout")}, code: apperrors.SystemServiceIntegration, msg: "Failed to fetch product information"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.gateway.EXPECT().GetCustomer(gomock.Any(), "42").Return(activeCustomer("42"), nil)
			s.gateway.EXPECT().GetProductByCode(gomock.Any(), "FD-STANDARD").Return(tt.resp, tt.err)

			_, err := s.service.CalculateFd(s.ctx, s.request("100000", 12))

			appErr, ok := apperrors.As(err)
			s.Require().True(ok)
			s.Equal(tt.code, appErr.Code)
			s.Equal(tt.msg, appErr.Message)
		})
	}
}

func (s *CalculationServiceSuite) TestCalculateFd_OutOfBand() {
	tests := []struct {
		name      string
		principal string
		tenure    int
		msg       string
		bound     string
	}{
		{name: "below minimum amount", principal: "500", tenure: 12, msg: "Principal amount must be at least 10000", bound: "10000"},
		{name: "above maximum amount", principal: "20000000", tenure: 12, msg: "Principal amount cannot exceed 10000000", bound: "10000000"},
		{name: "short tenure", principal: "100000", tenure: 3, msg: "Tenure must be at least 6 months", bound: "6"},
		{name: "long tenure", principal: "100000", tenure: 121, msg: "Tenure cannot exceed 120 months", bound: "120"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.expectLookups()

			_, err := s.service.CalculateFd(s.ctx, s.request(tt.principal, tt.tenure))

			appErr, ok := apperrors.As(err)
			s.Require().True(ok)
			s.Equal(apperrors.CalculationInvalidData, appErr.Code)
			s.Equal(tt.msg, appErr.Message)
			s.Equal(tt.bound, appErr.Bound)
		})
	}
	s.Equal(4.0, testutil.ToFloat64(s.service.metrics.(*PrometheusMetrics).calculations.WithLabelValues("failed")))
}

func (s *CalculationServiceSuite) TestCalculateFd_InvalidRequestSkipsLookups() {
	_, err := s.service.CalculateFd(s.ctx, dto.CalculationRequest{CustomerID: "42"})

	s.Equal(apperrors.CalculationInvalidData, apperrors.CodeOf(err))
}

func (s *CalculationServiceSuite) TestCalculateFd_SaveFailure() {
	s.expectLookups()
	s.calculations.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	_, err := s.service.CalculateFd(s.ctx, s.request("100000", 12))

	s.Equal(apperrors.KindInternal, apperrors.KindOf(err))
}

func (s *CalculationServiceSuite) TestGetCalculationByID() {
	id := uuid.New()
	stored := &models.FdCalculation{ID: id, ProductCode: "FD-STANDARD", ProductName: "Old Name"}

	s.Run("fresh product name", func() {
		s.calculations.EXPECT().GetByID(gomock.Any(), id).Return(stored, nil)
		s.gateway.EXPECT().GetProductByCode(gomock.Any(), "FD-STANDARD").Return(standardProduct(), nil)

		calc, err := s.service.GetCalculationByID(s.ctx, id)
		s.Require().NoError(err)
		s.Equal("Standard Fixed Deposit", calc.ProductName)
	})

	s.Run("directory down keeps stored name", func() {
		stored.ProductName = "Old Name"
		s.calculations.EXPECT().GetByID(gomock.Any(), id).Return(stored, nil)
		s.gateway.EXPECT().GetProductByCode(gomock.Any(), "FD-STANDARD").Return(nil, &gateway.TransportError{Service: gateway.ServiceProduct, Err: errors.New("down")})

		calc, err := s.service.GetCalculationByID(s.ctx, id)
		s.Require().NoError(err)
		s.Equal("Old Name", calc.ProductName)
	})

	s.Run("not found", func() {
		s.calculations.EXPECT().GetByID(gomock.Any(), id).Return(nil, repositories.ErrCalculationNotFound)

		_, err := s.service.GetCalculationByID(s.ctx, id)
		appErr, ok := apperrors.As(err)
		s.Require().True(ok)
		s.Equal(apperrors.CalculationNotFound, appErr.Code)
		s.Equal("Calculation not found with ID: "+id.String(), appErr.Message)
	})
}

func (s *CalculationServiceSuite) TestGetCalculationHistory() {
	s.gateway.EXPECT().GetCustomer(gomock.Any(), "42").Return(activeCustomer("42"), nil)
	s.calculations.EXPECT().GetByCustomerID(gomock.Any(), "42").Return([]models.FdCalculation{
		{ProductCode: "FD-STANDARD", ProductName: "Standard Fixed Deposit"},
		{ProductCode: "FD-LEGACY"},
	}, nil)
	s.gateway.EXPECT().GetProductByCode(gomock.Any(), "FD-LEGACY").Return(nil, gateway.ErrProductNotFound)

	history, err := s.service.GetCalculationHistory(s.ctx, "42")

	s.Require().NoError(err)
	s.Require().Len(history, 2)
	s.Equal("Standard Fixed Deposit", history[0].ProductName)
	s.Equal("FD-LEGACY", history[1].ProductName)
}

func (s *CalculationServiceSuite) TestGetCalculationHistory_UnknownCustomer() {
	s.gateway.EXPECT().GetCustomer(gomock.Any(), "99").Return(nil, gateway.ErrCustomerNotFound)

	_, err := s.service.GetCalculationHistory(s.ctx, "99")

	s.Equal(apperrors.CustomerNotFound, apperrors.CodeOf(err))
}

func (s *CalculationServiceSuite) TestGetRecentCalculations() {
	s.gateway.EXPECT().GetCustomer(gomock.Any(), "42").Return(activeCustomer("42"), nil)
	s.calculations.EXPECT().GetRecentByCustomerID(gomock.Any(), "42", s.clock.AddDate(0, 0, -7)).
		Return([]models.FdCalculation{{ProductCode: "FD-STANDARD", ProductName: "Standard Fixed Deposit"}}, nil)

	recent, err := s.service.GetRecentCalculations(s.ctx, "42", 7)

	s.Require().NoError(err)
	s.Len(recent, 1)
}

func (s *CalculationServiceSuite) TestGetRecentCalculations_RejectsNonPositiveDays() {
	_, err := s.service.GetRecentCalculations(s.ctx, "42", 0)

	s.Equal(apperrors.CalculationInvalidData, apperrors.CodeOf(err))
}

func (s *CalculationServiceSuite) TestAttachAccount() {
	id := uuid.New()
	s.calculations.EXPECT().AttachAccount(gomock.Any(), id, "FD-BR001-20240309-10000002").Return(nil)
	s.NoError(s.service.AttachAccount(s.ctx, id, "FD-BR001-20240309-10000002"))

	s.calculations.EXPECT().AttachAccount(gomock.Any(), id, "FD-BR001-20240309-10000003").Return(repositories.ErrCalculationNotFound)
	err := s.service.AttachAccount(s.ctx, id, "FD-BR001-20240309-10000003")
	s.Equal(apperrors.CalculationNotFound, apperrors.CodeOf(err))
}
