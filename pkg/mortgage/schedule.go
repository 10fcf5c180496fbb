package mortgage

import (
	"fmt"

	"github.com/mlavoie/buy-vs-rent/pkg/constants"
	"github.com/mlavoie/buy-vs-rent/pkg/rates"
	"go.uber.org/zap"
)

// Schedule exposes the yearly view of an amortizing mortgage: the applicable
// payment and the outstanding balance at any year offset within the horizon.
// It is computed once per projection and holds no mutable state.
type Schedule struct {
	Principal float64
	Years     int
	Payments  TieredPayments

	monthlyInitial   float64
	monthlyAfterFive float64
	monthlyAfterTen  float64
}

// NewSchedule builds the payment schedule for a loan of the given principal
// amortized over amortizationYears, with interest rates resolved per tier
// from the series. Each tier rate is an annual nominal rate compounded
// semi-annually.
func NewSchedule(logger *zap.Logger, principal float64, amortizationYears int, interest rates.Series) *Schedule {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Schedule{
		Principal:        principal,
		Years:            amortizationYears,
		monthlyInitial:   EffectiveMonthlyRate(interest.Initial()),
		monthlyAfterFive: EffectiveMonthlyRate(interest.AfterFive()),
		monthlyAfterTen:  EffectiveMonthlyRate(interest.AfterTen()),
	}
	s.Payments = CalculateTieredPayments(principal, amortizationYears*constants.MonthsPerYear,
		s.monthlyInitial, s.monthlyAfterFive, s.monthlyAfterTen)

	logger.Debug(fmt.Sprintf("amortizing %.2f over %d years in %d rate tiers", principal, amortizationYears, s.Payments.Tiers),
		zap.String("op", "mortgage.NewSchedule"),
	)
	return s
}

// PaymentAt returns the monthly payment applicable at the given year offset.
// Boundaries follow rates.Series.Resolve: offsets 5 and 10 report the
// pre-reset payment, even though the balance recurrence applies the reset
// payment from the anniversary month onward. The boundary-year outlay is
// therefore priced at the outgoing tier.
func (s *Schedule) PaymentAt(yearOffset int) float64 {
	switch {
	case yearOffset <= constants.TierOneEndYear || s.Payments.Tiers < 2:
		return s.Payments.Initial
	case yearOffset <= constants.TierTwoEndYear || s.Payments.Tiers < 3:
		return s.Payments.AfterFive
	default:
		return s.Payments.AfterTen
	}
}

// BalanceAt returns the outstanding balance at the given year offset,
// anchored at the starting balance of the tier the offset falls in. The
// balance is exactly zero at or beyond loan maturity.
func (s *Schedule) BalanceAt(yearOffset int) float64 {
	if yearOffset >= s.Years {
		// The closed form would leave machine error here.
		return 0
	}

	switch {
	case yearOffset <= constants.TierOneEndYear || s.Payments.Tiers < 2:
		return BalanceAfterPeriods(s.Principal, s.monthlyInitial, s.Payments.Initial,
			yearOffset*constants.MonthsPerYear)
	case yearOffset <= constants.TierTwoEndYear || s.Payments.Tiers < 3:
		return BalanceAfterPeriods(s.Payments.BalanceAtFive, s.monthlyAfterFive, s.Payments.AfterFive,
			(yearOffset-constants.TierOneEndYear)*constants.MonthsPerYear)
	default:
		return BalanceAfterPeriods(s.Payments.BalanceAtTen, s.monthlyAfterTen, s.Payments.AfterTen,
			(yearOffset-constants.TierTwoEndYear)*constants.MonthsPerYear)
	}
}

// AnnualCost returns the total payments due during the given year offset:
// twelve times the payment PaymentAt reports, except at or beyond maturity
// where the loan is paid off and no payment is due. At the reset years this
// inherits PaymentAt's outgoing-tier pricing.
func (s *Schedule) AnnualCost(yearOffset int) float64 {
	if yearOffset >= s.Years {
		return 0
	}
	return constants.MonthsPerYear * s.PaymentAt(yearOffset)
}
