// Package investment simulates the portfolio of a renter who invests the
// cash a buyer would have spent up front, topped up each year by the surplus
// between owning and renting costs.
package investment

import (
	"fmt"

	"github.com/mlavoie/buy-vs-rent/pkg/rates"
	"go.uber.org/zap"
)

// Record is one year's row of the portfolio table. Surplus is the amount an
// owner spent beyond a renter during the same year, diverted into the
// portfolio at the start of the following year.
type Record struct {
	Year    int     `json:"year"`
	Balance float64 `json:"balance"`
	Surplus float64 `json:"surplus"`
}

// Table folds the portfolio forward one year at a time. The starting balance
// is the upfront cash a buyer would have spent. Each subsequent year the
// prior balance compounds at that year's investment return while the prior
// year's surplus earns half the return, approximating a mid-year
// contribution. The recurrence is strictly sequential: each row depends on
// the one before it.
//
// ownerOutlay and rentCost must both cover years 0 through horizon inclusive.
func Table(logger *zap.Logger, startYear, horizon int, upfrontCash float64, investmentReturn rates.Series, ownerOutlay, rentCost []float64) ([]Record, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(ownerOutlay) < horizon+1 || len(rentCost) < horizon+1 {
		return nil, fmt.Errorf("portfolio table requires %d rows of outlay and rent, got %d and %d",
			horizon+1, len(ownerOutlay), len(rentCost))
	}

	table := make([]Record, 0, horizon+1)
	table = append(table, Record{
		Year:    startYear,
		Balance: upfrontCash,
		Surplus: ownerOutlay[0] - rentCost[0],
	})

	for f := 1; f <= horizon; f++ {
		previous := table[f-1]
		annualReturn := investmentReturn.Resolve(f)
		balance := previous.Balance*(1+annualReturn) + previous.Surplus*(1+annualReturn/2)
		table = append(table, Record{
			Year:    startYear + f,
			Balance: balance,
			Surplus: ownerOutlay[f] - rentCost[f],
		})
	}

	logger.Debug(fmt.Sprintf("portfolio grows from %.2f to %.2f over %d years",
		upfrontCash, table[horizon].Balance, horizon),
		zap.String("op", "investment.Table"),
	)
	return table, nil
}
