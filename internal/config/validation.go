package config

import (
	"fmt"

	"github.com/mlavoie/buy-vs-rent/pkg/constants"
	"github.com/mlavoie/buy-vs-rent/pkg/rates"
)

// Validate performs hard validation of the projection input. A non-nil error
// means the engine must not be invoked: feeding invalid values into the
// compounding recurrences would silently corrupt every later year's table.
func (p Projection) Validate() error {
	if p.PurchasePrice <= 0 {
		return fmt.Errorf("purchasePrice must be positive, got %.2f", p.PurchasePrice)
	}
	if p.MonthlyRent <= 0 {
		return fmt.Errorf("monthlyRent must be positive, got %.2f", p.MonthlyRent)
	}
	if p.AmortizationYears <= 0 {
		return fmt.Errorf("amortizationYears must be a positive integer, got %d", p.AmortizationYears)
	}
	if p.DownPayment < 0 || p.DownPayment > 1 {
		return fmt.Errorf("downPayment must be a fraction between 0 and 1, got %.4f", p.DownPayment)
	}
	if p.CommissionRate < 0 || p.CommissionRate > 1 {
		return fmt.Errorf("commissionRate must be a fraction between 0 and 1, got %.4f", p.CommissionRate)
	}
	if p.InvestmentTaxRate != nil && (*p.InvestmentTaxRate < 0 || *p.InvestmentTaxRate > 1) {
		return fmt.Errorf("investmentTaxRate must be a fraction between 0 and 1, got %.4f", *p.InvestmentTaxRate)
	}
	oneTimeCosts := []struct {
		name   string
		amount float64
	}{
		{"titleInsurance", p.TitleInsurance},
		{"legalFees", p.LegalFees},
		{"homeInspection", p.HomeInspection},
	}
	for _, cost := range oneTimeCosts {
		if cost.amount < 0 {
			return fmt.Errorf("%s must be non-negative, got %.2f", cost.name, cost.amount)
		}
	}
	return nil
}

// Warnings flags suspicious but not fatal input values, most commonly rates
// that look like they were entered as percentages rather than fractions.
func (p Projection) Warnings() []string {
	var warnings []string

	categories := []struct {
		name   string
		series rates.Series
	}{
		{"maintenanceRate", p.MaintenanceRate},
		{"propertyTaxRate", p.PropertyTaxRate},
		{"homeInsuranceRate", p.HomeInsuranceRate},
		{"appreciationRate", p.AppreciationRate},
		{"interestRate", p.InterestRate},
		{"cpiRate", p.CPIRate},
		{"rentersInsuranceRate", p.RentersInsuranceRate},
		{"investmentReturnRate", p.InvestmentReturnRate},
	}
	for _, category := range categories {
		name, series := category.name, category.series
		for _, rate := range []float64{series.Initial(), series.AfterFive(), series.AfterTen()} {
			if rate > constants.SuspiciousRateThreshold {
				warnings = append(warnings,
					fmt.Sprintf("%s value %.2f exceeds %.2f; rates are fractions, not percentages",
						name, rate, constants.SuspiciousRateThreshold))
				break
			}
		}
	}

	if p.DownPayment < constants.MinimumDownPaymentFraction {
		warnings = append(warnings,
			fmt.Sprintf("downPayment %.2f%% is below the minimum insurable fraction; the scenario is not financeable",
				p.DownPayment*100))
	}

	return warnings
}
