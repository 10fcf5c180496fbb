// Package projection defines the data structures related to a buy-vs-rent
// projection and includes the function for computing one.
package projection

import (
	"errors"
	"fmt"

	"github.com/mlavoie/buy-vs-rent/internal/config"
	"github.com/mlavoie/buy-vs-rent/pkg/closing"
	"github.com/mlavoie/buy-vs-rent/pkg/comparison"
	"github.com/mlavoie/buy-vs-rent/pkg/investment"
	"github.com/mlavoie/buy-vs-rent/pkg/mortgage"
	"github.com/mlavoie/buy-vs-rent/pkg/owning"
	"github.com/mlavoie/buy-vs-rent/pkg/renting"
	"go.uber.org/zap"
)

// ErrIneligibleMortgage indicates a down payment below the minimum insurable
// fraction; no lender would finance the scenario and no tables are produced.
var ErrIneligibleMortgage = errors.New("down payment below 5% is not eligible for mortgage insurance")

// Result holds the four derived tables of one projection plus the scalar
// quantities shared between them. Every table covers years 0 through the
// amortization horizon inclusive.
type Result struct {
	StartYear            int                 `json:"startYear"`
	Horizon              int                 `json:"horizon"`
	Principal            float64             `json:"principal"`
	InsurancePremiumRate float64             `json:"insurancePremiumRate"`
	UpfrontCash          float64             `json:"upfrontCash"`
	Ownership            []owning.Record     `json:"ownership"`
	Rent                 []renting.Record    `json:"rent"`
	Portfolio            []investment.Record `json:"portfolio"`
	Comparison           []comparison.Record `json:"comparison"`
}

// Project computes a full buy-vs-rent projection from one input. It derives
// the tables in dependency order: the mortgage schedule and ownership costs,
// the rent costs, the renter's portfolio fed by the owning-vs-renting
// surplus, and finally the year-by-year comparison. Project is pure: it
// holds no state across calls and identical inputs yield identical tables,
// so it is safe to invoke concurrently.
func Project(logger *zap.Logger, input config.Projection) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("invalid projection input: %s", err)
	}

	premium := closing.InsurancePremiumRate(input.DownPayment, input.AmortizationYears)
	if premium == closing.IneligiblePremium {
		return nil, ErrIneligibleMortgage
	}

	startYear := input.EffectiveStartYear()
	horizon := input.AmortizationYears

	// The insurance premium is financed into the principal rather than paid
	// up front.
	principal := input.PurchasePrice * (1 - input.DownPayment) * (1 + premium)
	schedule := mortgage.NewSchedule(logger, principal, input.AmortizationYears, input.InterestRate)

	ownership := owning.Table(startYear, horizon, input.PurchasePrice,
		input.AppreciationRate, input.MaintenanceRate, input.HomeInsuranceRate, input.PropertyTaxRate,
		schedule)

	rent := renting.Table(startYear, horizon, input.MonthlyRent,
		input.RentersInsuranceRate, input.CPIRate)

	upfrontCash := closing.UpfrontCash(input.PurchasePrice, input.DownPayment,
		input.MunicipalJurisdiction, closing.Costs{
			TitleInsurance: input.TitleInsurance,
			LegalFees:      input.LegalFees,
			HomeInspection: input.HomeInspection,
		})

	outlay := make([]float64, horizon+1)
	rentCost := make([]float64, horizon+1)
	for f := 0; f <= horizon; f++ {
		outlay[f] = ownership[f].AnnualCashOutlay
		rentCost[f] = rent[f].RentCost
	}

	portfolio, err := investment.Table(logger, startYear, horizon, upfrontCash,
		input.InvestmentReturnRate, outlay, rentCost)
	if err != nil {
		return nil, err
	}

	compared, err := comparison.Table(ownership, portfolio,
		input.CommissionRate, input.EffectiveInvestmentTaxRate())
	if err != nil {
		return nil, err
	}

	logger.Debug(fmt.Sprintf("projection complete: %d-year horizon, principal %.2f, upfront cash %.2f",
		horizon, principal, upfrontCash),
		zap.String("op", "projection.Project"),
	)

	return &Result{
		StartYear:            startYear,
		Horizon:              horizon,
		Principal:            principal,
		InsurancePremiumRate: premium,
		UpfrontCash:          upfrontCash,
		Ownership:            ownership,
		Rent:                 rent,
		Portfolio:            portfolio,
		Comparison:           compared,
	}, nil
}
