// Package mortgage provides the amortization math for a Canadian fixed-rate
// mortgage with scheduled rate resets at the five- and ten-year anniversaries.
package mortgage

import (
	"math"

	"github.com/mlavoie/buy-vs-rent/pkg/constants"
)

// MonthlyPayment calculates the fixed payment amortizing presentValue down to
// futureValue over numPeriods at the given monthly rate. Sign follows the
// annuity convention: a positive present value yields a negative payment.
// When dueAtPeriodStart is true the payment is due at the beginning of each
// period rather than the end.
func MonthlyPayment(monthlyRate float64, numPeriods int, presentValue, futureValue float64, dueAtPeriodStart bool) float64 {
	if monthlyRate == 0 {
		// Zero interest degenerates to linear amortization.
		return -(presentValue + futureValue) / float64(numPeriods)
	}

	pvif := math.Pow(1+monthlyRate, float64(numPeriods))
	payment := -monthlyRate * presentValue * (pvif + futureValue) / (pvif - 1)
	if dueAtPeriodStart {
		payment /= 1 + monthlyRate
	}
	return payment
}

// BalanceAfterPeriods returns the outstanding balance after elapsedPeriods
// payments of the given size against presentValue at the given monthly rate,
// using the closed-form amortized-balance recurrence.
func BalanceAfterPeriods(presentValue, monthlyRate, payment float64, elapsedPeriods int) float64 {
	if monthlyRate == 0 {
		return presentValue - payment*float64(elapsedPeriods)
	}

	growth := math.Pow(1+monthlyRate, float64(elapsedPeriods))
	return growth*presentValue - (growth-1)*(payment/monthlyRate)
}

// EffectiveMonthlyRate converts an annual nominal rate compounded
// semi-annually (the Canadian mortgage convention) into the exact
// monthly-compounding-equivalent rate, preserving the true annual yield.
func EffectiveMonthlyRate(annualNominalRate float64) float64 {
	return math.Pow(1+annualNominalRate/2, 2.0/constants.MonthsPerYear) - 1
}

// TieredPayments holds the payment schedule for each rate tier actually
// reached by the amortization, along with the balances at the tier-boundary
// anniversaries where the payment is recalculated. Tiers beyond the horizon
// carry zero values.
type TieredPayments struct {
	Initial       float64
	AfterFive     float64
	AfterTen      float64
	BalanceAtFive float64
	BalanceAtTen  float64
	Tiers         int
}

// CalculateTieredPayments computes the payment for each tier: the initial
// payment over the full term, then at each reset the balance is carried
// forward and the payment recomputed over the remaining term at the next
// tier's monthly rate. Rates beyond the amortization horizon are never
// consulted.
func CalculateTieredPayments(principal float64, totalMonths int, monthlyInitial, monthlyAfterFive, monthlyAfterTen float64) TieredPayments {
	payments := TieredPayments{Tiers: 1}
	payments.Initial = -MonthlyPayment(monthlyInitial, totalMonths, principal, 0, false)
	if totalMonths <= constants.TierOneEndYear*constants.MonthsPerYear {
		return payments
	}

	payments.Tiers = 2
	payments.BalanceAtFive = BalanceAfterPeriods(principal, monthlyInitial, payments.Initial,
		constants.TierOneEndYear*constants.MonthsPerYear)
	payments.AfterFive = -MonthlyPayment(monthlyAfterFive,
		totalMonths-constants.TierOneEndYear*constants.MonthsPerYear,
		payments.BalanceAtFive, 0, false)
	if totalMonths <= constants.TierTwoEndYear*constants.MonthsPerYear {
		return payments
	}

	payments.Tiers = 3
	payments.BalanceAtTen = BalanceAfterPeriods(payments.BalanceAtFive, monthlyAfterFive, payments.AfterFive,
		constants.TierOneEndYear*constants.MonthsPerYear)
	payments.AfterTen = -MonthlyPayment(monthlyAfterTen,
		totalMonths-constants.TierTwoEndYear*constants.MonthsPerYear,
		payments.BalanceAtTen, 0, false)
	return payments
}
