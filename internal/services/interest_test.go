package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestResolveTieredRate(t *testing.T) {
	minRate, maxRate := dec("5"), dec("8")

	tests := []struct {
		tenure int
		want   string
	}{
		{tenure: 1, want: "5"},
		{tenure: 11, want: "5"},
		{tenure: 12, want: "6.5"},
		{tenure: 24, want: "6.5"},
		{tenure: 35, want: "6.5"},
		{tenure: 36, want: "7.25"},
		{tenure: 59, want: "7.25"},
		{tenure: 60, want: "8"},
		{tenure: 120, want: "8"},
	}

	for _, tt := range tests {
		got := ResolveTieredRate(minRate, maxRate, tt.tenure)
		assert.True(t, dec(tt.want).Equal(got), "tenure %d: want %s, got %s", tt.tenure, tt.want, got)
	}
}

func TestCompoundMaturity(t *testing.T) {
	tests := []struct {
		name      string
		principal string
		rate      string
		tenure    int
		frequency int
		want      string
	}{
		{name: "one year quarterly", principal: "100000", rate: "6.5", tenure: 12, frequency: 4, want: "106660.16"},
		{name: "two years quarterly", principal: "100000", rate: "6.5", tenure: 24, frequency: 4, want: "113763.90"},
		{name: "half year rounds half up", principal: "100000", rate: "5", tenure: 6, frequency: 4, want: "102515.63"},
		{name: "three years", principal: "100000", rate: "7.25", tenure: 36, frequency: 4, want: "124054.70"},
		{name: "five years", principal: "100000", rate: "8", tenure: 60, frequency: 4, want: "148594.74"},
		{name: "monthly compounding", principal: "250000", rate: "6.5", tenure: 18, frequency: 12, want: "275530.36"},
		{name: "zero rate", principal: "100000", rate: "0", tenure: 12, frequency: 4, want: "100000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompoundMaturity(dec(tt.principal), dec(tt.rate), tt.tenure, tt.frequency, 2)
			assert.Equal(t, dec(tt.want).StringFixed(2), got.StringFixed(2))
		})
	}
}

func TestCompoundMaturity_NeverBelowPrincipal(t *testing.T) {
	principal := dec("12345.67")
	for _, rate := range []string{"0", "0.01", "1", "6.5", "12"} {
		for _, tenure := range []int{1, 6, 12, 37, 120} {
			got := CompoundMaturity(principal, dec(rate), tenure, 4, 2)
			if dec(rate).IsZero() {
				assert.True(t, got.Equal(principal), "rate %s tenure %d", rate, tenure)
			} else {
				assert.True(t, got.GreaterThan(principal), "rate %s tenure %d", rate, tenure)
			}
		}
	}
}

func TestEffectiveAnnualRate(t *testing.T) {
	assert.Equal(t, "6.66", EffectiveAnnualRate(dec("6.5"), 4, 2).StringFixed(2))
	assert.Equal(t, "6.50", EffectiveAnnualRate(dec("6.5"), 1, 2).StringFixed(2))
	assert.Equal(t, "0.00", EffectiveAnnualRate(dec("0"), 4, 2).StringFixed(2))
}
