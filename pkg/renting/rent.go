// Package renting computes the yearly cost of renting under CPI-driven
// escalation.
package renting

import (
	"github.com/mlavoie/buy-vs-rent/pkg/constants"
	"github.com/mlavoie/buy-vs-rent/pkg/mathutil"
	"github.com/mlavoie/buy-vs-rent/pkg/rates"
)

// BaseAnnualRent returns the first-year annual rent including the renter's
// insurance loading.
func BaseAnnualRent(monthlyRent float64, rentersInsurance rates.Series) float64 {
	return monthlyRent * constants.MonthsPerYear * (1 + rentersInsurance.Resolve(0))
}

// Cost returns the yearly rent cost at the given year offset, escalating the
// base annual rent by the chained CPI compound factor and rounding to cents.
func Cost(baseAnnualRent float64, cpi rates.Series, yearOffset int) float64 {
	return mathutil.Round(baseAnnualRent * cpi.CompoundFactor(yearOffset))
}

// Record is one year's row of the rent table.
type Record struct {
	Year     int     `json:"year"`
	RentCost float64 `json:"rentCost"`
}

// Table derives the rent table for years 0 through horizon inclusive.
func Table(startYear, horizon int, monthlyRent float64, rentersInsurance, cpi rates.Series) []Record {
	base := BaseAnnualRent(monthlyRent, rentersInsurance)
	table := make([]Record, 0, horizon+1)
	for f := 0; f <= horizon; f++ {
		table = append(table, Record{
			Year:     startYear + f,
			RentCost: Cost(base, cpi, f),
		})
	}
	return table
}
