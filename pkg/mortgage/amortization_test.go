package mortgage

import (
	"math"
	"testing"

	"github.com/mlavoie/buy-vs-rent/pkg/rates"
)

func TestMonthlyPaymentZeroRate(t *testing.T) {
	// Zero interest must degenerate to exact linear amortization.
	got := MonthlyPayment(0, 300, 300000, 0, false)
	expected := -300000.0 / 300
	if got != expected {
		t.Errorf("MonthlyPayment() = %v, expected exactly %v", got, expected)
	}
}

func TestMonthlyPaymentStandardRange(t *testing.T) {
	tests := []struct {
		name          string
		monthlyRate   float64
		numPeriods    int
		presentValue  float64
		expectedRange []float64 // [min, max] of the payment magnitude
	}{
		{
			name:          "25-year mortgage at 4% semi-annual convention",
			monthlyRate:   EffectiveMonthlyRate(0.04),
			numPeriods:    300,
			presentValue:  400000,
			expectedRange: []float64{2100, 2110}, // Around $2104
		},
		{
			name:          "30-year at 6% monthly compounding",
			monthlyRate:   0.06 / 12,
			numPeriods:    360,
			presentValue:  300000,
			expectedRange: []float64{1790, 1810}, // Around $1799
		},
		{
			name:          "Short high-rate loan",
			monthlyRate:   0.18 / 12,
			numPeriods:    36,
			presentValue:  10000,
			expectedRange: []float64{355, 375}, // Around $362
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payment := -MonthlyPayment(tt.monthlyRate, tt.numPeriods, tt.presentValue, 0, false)
			if payment < tt.expectedRange[0] || payment > tt.expectedRange[1] {
				t.Errorf("payment = %.2f, expected range [%.2f, %.2f]",
					payment, tt.expectedRange[0], tt.expectedRange[1])
			}
		})
	}
}

func TestMonthlyPaymentDueAtPeriodStart(t *testing.T) {
	rate := 0.005
	endOfPeriod := MonthlyPayment(rate, 120, 50000, 0, false)
	startOfPeriod := MonthlyPayment(rate, 120, 50000, 0, true)
	if math.Abs(startOfPeriod-endOfPeriod/(1+rate)) > 1e-9 {
		t.Errorf("start-of-period payment = %v, expected %v", startOfPeriod, endOfPeriod/(1+rate))
	}
}

func TestBalanceAfterZeroPeriods(t *testing.T) {
	// No elapsed time means no change, whatever the rate or payment.
	tests := []struct {
		name         string
		presentValue float64
		monthlyRate  float64
		payment      float64
	}{
		{name: "Standard mortgage", presentValue: 400000, monthlyRate: 0.0033, payment: 2100},
		{name: "Zero rate", presentValue: 250000, monthlyRate: 0, payment: 1000},
		{name: "Tiny balance", presentValue: 12.34, monthlyRate: 0.01, payment: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BalanceAfterPeriods(tt.presentValue, tt.monthlyRate, tt.payment, 0); got != tt.presentValue {
				t.Errorf("BalanceAfterPeriods(..., 0) = %v, expected %v", got, tt.presentValue)
			}
		})
	}
}

func TestBalanceReachesZeroAtMaturity(t *testing.T) {
	rate := EffectiveMonthlyRate(0.04)
	payment := -MonthlyPayment(rate, 300, 400000, 0, false)
	balance := BalanceAfterPeriods(400000, rate, payment, 300)
	if math.Abs(balance) > 0.01 {
		t.Errorf("balance at maturity = %v, expected ~0", balance)
	}
}

func TestBalanceZeroRateLinear(t *testing.T) {
	balance := BalanceAfterPeriods(120000, 0, 1000, 24)
	if balance != 96000 {
		t.Errorf("balance = %v, expected 96000", balance)
	}
}

func TestEffectiveMonthlyRate(t *testing.T) {
	// A 4% nominal rate compounded semi-annually yields (1.02)^(1/6)-1 monthly.
	expected := math.Pow(1.02, 1.0/6.0) - 1
	if got := EffectiveMonthlyRate(0.04); math.Abs(got-expected) > 1e-12 {
		t.Errorf("EffectiveMonthlyRate(0.04) = %v, expected %v", got, expected)
	}

	// The monthly rate must preserve the true annual yield.
	annualYield := math.Pow(1+EffectiveMonthlyRate(0.06), 12)
	if math.Abs(annualYield-math.Pow(1.03, 2)) > 1e-12 {
		t.Errorf("annual yield = %v, expected %v", annualYield, math.Pow(1.03, 2))
	}

	if got := EffectiveMonthlyRate(0); got != 0 {
		t.Errorf("EffectiveMonthlyRate(0) = %v, expected 0", got)
	}
}

func TestCalculateTieredPaymentsTierCount(t *testing.T) {
	r1 := EffectiveMonthlyRate(0.04)
	r2 := EffectiveMonthlyRate(0.05)
	r3 := EffectiveMonthlyRate(0.06)

	tests := []struct {
		name          string
		totalMonths   int
		expectedTiers int
	}{
		{name: "3-year loan has one tier", totalMonths: 36, expectedTiers: 1},
		{name: "5-year loan has one tier", totalMonths: 60, expectedTiers: 1},
		{name: "10-year loan has two tiers", totalMonths: 120, expectedTiers: 2},
		{name: "25-year loan has three tiers", totalMonths: 300, expectedTiers: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payments := CalculateTieredPayments(200000, tt.totalMonths, r1, r2, r3)
			if payments.Tiers != tt.expectedTiers {
				t.Errorf("Tiers = %d, expected %d", payments.Tiers, tt.expectedTiers)
			}
			if payments.Initial <= 0 {
				t.Errorf("Initial payment = %v, expected positive", payments.Initial)
			}
			if tt.expectedTiers < 2 && payments.AfterFive != 0 {
				t.Errorf("AfterFive = %v, expected 0 for omitted tier", payments.AfterFive)
			}
			if tt.expectedTiers < 3 && payments.AfterTen != 0 {
				t.Errorf("AfterTen = %v, expected 0 for omitted tier", payments.AfterTen)
			}
		})
	}
}

func TestCalculateTieredPaymentsCarriesBalanceForward(t *testing.T) {
	r1 := EffectiveMonthlyRate(0.04)
	r2 := EffectiveMonthlyRate(0.05)
	r3 := EffectiveMonthlyRate(0.06)

	payments := CalculateTieredPayments(400000, 300, r1, r2, r3)

	// The tier-2 anchor balance must be the tier-1 balance at month 60.
	expected := BalanceAfterPeriods(400000, r1, payments.Initial, 60)
	if math.Abs(payments.BalanceAtFive-expected) > 1e-6 {
		t.Errorf("BalanceAtFive = %v, expected %v", payments.BalanceAtFive, expected)
	}

	// The tier-3 anchor balance must be the tier-2 balance 60 months later.
	expected = BalanceAfterPeriods(payments.BalanceAtFive, r2, payments.AfterFive, 60)
	if math.Abs(payments.BalanceAtTen-expected) > 1e-6 {
		t.Errorf("BalanceAtTen = %v, expected %v", payments.BalanceAtTen, expected)
	}

	// Each recomputed payment amortizes the carried balance to zero over the
	// remaining term.
	final := BalanceAfterPeriods(payments.BalanceAtTen, r3, payments.AfterTen, 180)
	if math.Abs(final) > 0.01 {
		t.Errorf("final balance = %v, expected ~0", final)
	}
}

func TestCalculateTieredPaymentsFlatRateStable(t *testing.T) {
	// With the same rate in every tier the recomputed payments equal the
	// initial payment.
	r := EffectiveMonthlyRate(0.04)
	payments := CalculateTieredPayments(400000, 300, r, r, r)
	if math.Abs(payments.AfterFive-payments.Initial) > 0.01 {
		t.Errorf("AfterFive = %v, expected %v", payments.AfterFive, payments.Initial)
	}
	if math.Abs(payments.AfterTen-payments.Initial) > 0.01 {
		t.Errorf("AfterTen = %v, expected %v", payments.AfterTen, payments.Initial)
	}
}

func TestScheduleShortHorizonNeverConsultsLaterTiers(t *testing.T) {
	// A 4-year amortization only ever exercises the initial tier; the series
	// values beyond it are irrelevant.
	a := NewSchedule(nil, 100000, 4, rates.Tiered(0.04, 0.99, 0.99))
	b := NewSchedule(nil, 100000, 4, rates.Tiered(0.04, 0.01, 0.01))
	for f := 0; f <= 4; f++ {
		if a.BalanceAt(f) != b.BalanceAt(f) {
			t.Errorf("BalanceAt(%d) differs: %v vs %v", f, a.BalanceAt(f), b.BalanceAt(f))
		}
		if a.AnnualCost(f) != b.AnnualCost(f) {
			t.Errorf("AnnualCost(%d) differs: %v vs %v", f, a.AnnualCost(f), b.AnnualCost(f))
		}
	}
}
