// Package owning computes the yearly carrying costs and equity position of a
// homeowner: appreciated home value, recurring costs as fractions of that
// value, and the total annual cash outlay.
package owning

import (
	"github.com/mlavoie/buy-vs-rent/pkg/mathutil"
	"github.com/mlavoie/buy-vs-rent/pkg/rates"
)

// HomeValue returns the appreciated home value at the given year offset. The
// appreciation series compounds tier-locally, so tiered appreciation chains
// continuously across the five- and ten-year boundaries.
func HomeValue(purchasePrice float64, appreciation rates.Series, yearOffset int) float64 {
	return mathutil.Round(purchasePrice * appreciation.CompoundFactor(yearOffset))
}

// RecurringCost returns one category's yearly cost at the given year offset:
// the category rate for that year applied to the appreciated home value,
// rounded to cents.
func RecurringCost(purchasePrice float64, appreciation, costRate rates.Series, yearOffset int) float64 {
	return mathutil.Round(costRate.Resolve(yearOffset) * HomeValue(purchasePrice, appreciation, yearOffset))
}

// Record is one year's row of the ownership table.
type Record struct {
	Year             int     `json:"year"`
	HomeValue        float64 `json:"homeValue"`
	MortgageBalance  float64 `json:"mortgageBalance"`
	MortgageCost     float64 `json:"mortgageCost"`
	Maintenance      float64 `json:"maintenance"`
	Insurance        float64 `json:"insurance"`
	PropertyTax      float64 `json:"propertyTax"`
	AnnualCashOutlay float64 `json:"annualCashOutlay"`
	Equity           float64 `json:"equity"`
}

// BalanceSource supplies the mortgage side of the yearly ownership rows.
type BalanceSource interface {
	BalanceAt(yearOffset int) float64
	AnnualCost(yearOffset int) float64
}

// Table derives the full ownership table for years 0 through horizon
// inclusive. Each row combines the appreciated home value, that year's
// recurring costs, and the mortgage schedule's balance and annual cost.
func Table(startYear, horizon int, purchasePrice float64, appreciation, maintenance, insurance, propertyTax rates.Series, schedule BalanceSource) []Record {
	table := make([]Record, 0, horizon+1)
	for f := 0; f <= horizon; f++ {
		value := HomeValue(purchasePrice, appreciation, f)
		balance := schedule.BalanceAt(f)
		row := Record{
			Year:            startYear + f,
			HomeValue:       value,
			MortgageBalance: balance,
			MortgageCost:    schedule.AnnualCost(f),
			Maintenance:     RecurringCost(purchasePrice, appreciation, maintenance, f),
			Insurance:       RecurringCost(purchasePrice, appreciation, insurance, f),
			PropertyTax:     RecurringCost(purchasePrice, appreciation, propertyTax, f),
			Equity:          value - balance,
		}
		row.AnnualCashOutlay = row.Maintenance + row.Insurance + row.PropertyTax + row.MortgageCost
		table = append(table, row)
	}
	return table
}
