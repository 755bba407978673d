package services

import (
	"context"
	"sync"
	"time"

	"fixed-deposit-core/internal/config"
	"fixed-deposit-core/internal/dto"
	"fixed-deposit-core/internal/sequence"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

var (
	officer    = Caller{Username: "officer.one", Roles: []string{"BANK_OFFICER"}}
	nonOfficer = Caller{Username: "jane.doe", Roles: []string{"CUSTOMER"}}
)

func standardProduct() *dto.ProductDetails {
	return &dto.ProductDetails{
		ProductCode:     "FD-STANDARD",
		ProductName:     "Standard Fixed Deposit",
		MinInterestRate: dec("5"),
		MaxInterestRate: dec("8"),
		MinTermMonths:   6,
		MaxTermMonths:   120,
		MinAmount:       dec("10000"),
		MaxAmount:       dec("10000000"),
		Currency:        "INR",
		Status:          dto.ProductStatusActive,
	}
}

func activeCustomer(id string) *dto.CustomerDetails {
	return &dto.CustomerDetails{
		ID:       dto.DirectoryID(id),
		Username: "jane.doe",
		FullName: "Jane Doe",
		Active:   true,
	}
}

func calculationConfig() config.CalculationConfig {
	return config.CalculationConfig{DefaultCompoundingFrequency: 4, RoundingScale: 2}
}

func accountsConfig() config.AccountsConfig {
	return config.AccountsConfig{
		Prefix:             "FD",
		SequenceBackend:    config.SequenceBackendProcess,
		SequenceBase:       10000001,
		AllocationAttempts: 3,
		LedgerAttempts:     3,
	}
}

func newTestMetrics() (MetricsRecorderInterface, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewPrometheusMetrics(reg), reg
}

func newTestAudit() AuditLoggerInterface {
	return NewAuditLogger(zap.NewNop())
}

// countingStore is a sequence.Store that counts per branch and day in memory.
type countingStore struct {
	mu     sync.Mutex
	base   int64
	counts map[string]int64
}

var _ sequence.Store = (*countingStore)(nil)

func newCountingStore(base int64) *countingStore {
	return &countingStore{base: base, counts: make(map[string]int64)}
}

func (s *countingStore) Next(_ context.Context, branchCode string, day time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := branchCode + ":" + day.Format(sequence.DayFormat)
	s.counts[key]++
	return s.base + s.counts[key], nil
}
