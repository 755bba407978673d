package services

import (
	"math"

	"github.com/shopspring/decimal"
)

var (
	hundred            = decimal.NewFromInt(100)
	threeQuarters      = decimal.RequireFromString("0.75")
	half               = decimal.RequireFromString("0.5")
	rateDivisionDigits = int32(10)
)

// ResolveTieredRate picks the annual rate for a tenure from the product band.
// Longer deposits earn a larger share of the spread between minRate and maxRate.
func ResolveTieredRate(minRate, maxRate decimal.Decimal, tenureMonths int) decimal.Decimal {
	spread := maxRate.Sub(minRate)

	switch {
	case tenureMonths >= 60:
		return maxRate
	case tenureMonths >= 36:
		return minRate.Add(spread.Mul(threeQuarters))
	case tenureMonths >= 12:
		return minRate.Add(spread.Mul(half))
	default:
		return minRate
	}
}

// CompoundMaturity returns principal * (1 + r/n)^(n * months/12) rounded
// half-up to scale, where r is ratePercent/100 and n the compounding
// frequency per year.
func CompoundMaturity(principal, ratePercent decimal.Decimal, tenureMonths, frequency, scale int) decimal.Decimal {
	r := ratePercent.DivRound(hundred, rateDivisionDigits).InexactFloat64()
	n := float64(frequency)
	years := float64(tenureMonths) / 12.0

	factor := math.Pow(1+r/n, n*years)
	maturity := principal.InexactFloat64() * factor

	return decimal.NewFromFloat(maturity).Round(int32(scale))
}

// EffectiveAnnualRate returns ((1 + r/n)^n - 1) * 100 rounded half-up to scale.
func EffectiveAnnualRate(ratePercent decimal.Decimal, frequency, scale int) decimal.Decimal {
	r := ratePercent.DivRound(hundred, rateDivisionDigits).InexactFloat64()
	n := float64(frequency)

	effective := (math.Pow(1+r/n, n) - 1) * 100

	return decimal.NewFromFloat(effective).Round(int32(scale))
}
