// Package closing computes the one-time costs of purchasing a home: land
// transfer taxes, the mortgage-insurance premium, and the total cash needed
// up front.
package closing

import (
	"github.com/mlavoie/buy-vs-rent/pkg/constants"
)

// IneligiblePremium is the sentinel returned by InsurancePremiumRate when the
// down payment is below the minimum insurable fraction. Callers must check
// eligibility before trusting any downstream table.
const IneligiblePremium = 1.0

// Provincial land transfer tax brackets (Ontario): marginal rate above each
// floor plus the tax accumulated by the lower brackets.
func provincialLandTransferTax(price float64) float64 {
	switch {
	case price > 400000:
		return 4475 + (price-400000)*0.02
	case price > 250000:
		return 2225 + (price-250000)*0.015
	case price > 55000:
		return 275 + (price-55000)*0.01
	default:
		return price * 0.005
	}
}

// Municipal land transfer tax brackets (Toronto).
func municipalLandTransferTax(price float64) float64 {
	switch {
	case price > 400000:
		return 3725 + (price-400000)*0.02
	case price > 55000:
		return 275 + (price-55000)*0.01
	default:
		return price * 0.005
	}
}

// LandTransferTax returns the total land transfer tax on a purchase: the
// provincial tax, plus the municipal tax when the home is in the municipal
// taxing jurisdiction.
func LandTransferTax(price float64, municipalJurisdiction bool) float64 {
	tax := provincialLandTransferTax(price)
	if municipalJurisdiction {
		tax += municipalLandTransferTax(price)
	}
	return tax
}

// InsurancePremiumRate returns the CMHC-style mortgage-insurance premium as a
// fraction of loan principal, keyed by down-payment bracket. Amortizations
// beyond 25 years carry a slightly higher schedule. A down payment below 5%
// returns IneligiblePremium.
func InsurancePremiumRate(downPaymentFraction float64, amortizationYears int) float64 {
	if downPaymentFraction < constants.MinimumDownPaymentFraction {
		return IneligiblePremium
	}

	if amortizationYears > constants.ExtendedAmortizationYears {
		switch {
		case downPaymentFraction >= 0.20:
			return 0
		case downPaymentFraction >= 0.15:
			return 0.0195
		case downPaymentFraction >= 0.10:
			return 0.022
		default:
			return 0.0295
		}
	}

	switch {
	case downPaymentFraction >= 0.20:
		return 0
	case downPaymentFraction >= 0.15:
		return 0.018
	case downPaymentFraction >= 0.10:
		return 0.024
	default:
		return 0.0315
	}
}

// Costs describes the one-time amounts paid at closing beyond the purchase
// price itself.
type Costs struct {
	TitleInsurance float64
	LegalFees      float64
	HomeInspection float64
}

// UpfrontCash returns the total cash needed to complete the purchase: the
// down payment, land transfer taxes, and the one-time closing costs. The
// mortgage-insurance premium is financed into the loan principal and is not
// part of the upfront cash.
func UpfrontCash(price, downPaymentFraction float64, municipalJurisdiction bool, costs Costs) float64 {
	return price*downPaymentFraction +
		LandTransferTax(price, municipalJurisdiction) +
		costs.TitleInsurance + costs.LegalFees + costs.HomeInspection
}
