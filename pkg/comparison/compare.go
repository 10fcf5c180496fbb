// Package comparison produces the final buy-vs-rent verdict: for each year,
// the net position of a renter liquidating the investment portfolio against
// an owner selling the home, and the signed difference between them.
package comparison

import (
	"fmt"

	"github.com/mlavoie/buy-vs-rent/pkg/investment"
	"github.com/mlavoie/buy-vs-rent/pkg/owning"
)

// Record is one year's row of the comparison table. Comparison is positive
// when renting-then-investing outperforms owning-then-selling by that amount,
// negative when owning wins.
type Record struct {
	Year       int     `json:"year"`
	RentNet    float64 `json:"rentNet"`
	BuyNet     float64 `json:"buyNet"`
	Comparison float64 `json:"comparison"`
}

// Table combines the ownership and portfolio tables. The owner's net
// position is the appreciated home value net of the sale commission minus the
// outstanding mortgage balance. The renter's net position is the portfolio
// balance minus an approximate tax on investment gains: portfolio growth in
// excess of the principal contributed (the upfront cash plus all surpluses to
// date), taxed at investmentTaxRate. Year 0 carries no gains and therefore no
// tax.
func Table(ownership []owning.Record, portfolio []investment.Record, commissionRate, investmentTaxRate float64) ([]Record, error) {
	if len(ownership) != len(portfolio) {
		return nil, fmt.Errorf("comparison requires aligned tables, got %d ownership and %d portfolio rows",
			len(ownership), len(portfolio))
	}

	initialBalance := portfolio[0].Balance
	contributedSurplus := 0.0

	table := make([]Record, 0, len(ownership))
	for f := range ownership {
		buyNet := ownership[f].HomeValue*(1-commissionRate) - ownership[f].MortgageBalance

		gainsTax := 0.0
		if f > 0 {
			contributedSurplus += portfolio[f-1].Surplus
			gains := portfolio[f].Balance - initialBalance - contributedSurplus
			gainsTax = gains * investmentTaxRate
		}
		rentNet := portfolio[f].Balance - gainsTax

		table = append(table, Record{
			Year:       ownership[f].Year,
			RentNet:    rentNet,
			BuyNet:     buyNet,
			Comparison: rentNet - buyNet,
		})
	}
	return table, nil
}
