// Package output provides utilities for formatting and displaying projection results.
package output

import (
	"fmt"
	"io"

	"github.com/mlavoie/buy-vs-rent/internal/projection"
	"github.com/mlavoie/buy-vs-rent/pkg/mathutil"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat writes a human-readable rather than machine-readable table.
// Currency amounts are grouped with thousands separators; years are not.
func PrettyFormat(w io.Writer, result *projection.Result) {
	p := message.NewPrinter(language.English)
	fmt.Fprintf(w, "--- Buy vs rent over %d years starting %d ---\n", result.Horizon, result.StartYear)
	fmt.Fprintf(w, "Loan principal: %s (mortgage insurance premium %.2f%%)\n",
		p.Sprintf("$%.2f", result.Principal), result.InsurancePremiumRate*100)
	fmt.Fprintf(w, "Upfront cash to purchase: %s\n\n", p.Sprintf("$%.2f", result.UpfrontCash))

	fmt.Fprintf(w, "Year | Home Value     | Mortgage Bal.  | Own Outlay    | Rent Cost     | Portfolio      | Rent - Buy\n")
	fmt.Fprintf(w, "____ | ______________ | ______________ | _____________ | _____________ | ______________ | __________\n")
	for f := 0; f <= result.Horizon; f++ {
		own := result.Ownership[f]
		fmt.Fprintf(w, "%d | %s | %s | %s | %s | %s | %s\n",
			own.Year,
			p.Sprintf("$%.2f", own.HomeValue),
			p.Sprintf("$%.2f", own.MortgageBalance),
			p.Sprintf("$%.2f", own.AnnualCashOutlay),
			p.Sprintf("$%.2f", result.Rent[f].RentCost),
			p.Sprintf("$%.2f", result.Portfolio[f].Balance),
			p.Sprintf("$%.2f", result.Comparison[f].Comparison))
	}

	final := result.Comparison[result.Horizon]
	switch {
	case mathutil.IsZero(final.Comparison):
		fmt.Fprintf(w, "\nAt year %d buying and renting break even\n", final.Year)
	case mathutil.IsPositive(final.Comparison):
		fmt.Fprintf(w, "\nAt year %d renting and investing comes out ahead by %s\n",
			final.Year, p.Sprintf("$%.2f", final.Comparison))
	default:
		fmt.Fprintf(w, "\nAt year %d buying comes out ahead by %s\n",
			final.Year, p.Sprintf("$%.2f", -final.Comparison))
	}
}

// CsvFormat writes the joined yearly tables in comma-separated value format.
func CsvFormat(w io.Writer, result *projection.Result) {
	fmt.Fprintf(w, `"year","homeValue","mortgageBalance","mortgageCost","maintenance","insurance","propertyTax","annualCashOutlay","equity","rentCost","portfolio","surplus","rentNet","buyNet","comparison"`)
	fmt.Fprintf(w, "\n")
	for f := 0; f <= result.Horizon; f++ {
		own := result.Ownership[f]
		fmt.Fprintf(w, `"%d","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f"`,
			own.Year, own.HomeValue, own.MortgageBalance, own.MortgageCost,
			own.Maintenance, own.Insurance, own.PropertyTax, own.AnnualCashOutlay, own.Equity,
			result.Rent[f].RentCost, result.Portfolio[f].Balance, result.Portfolio[f].Surplus,
			result.Comparison[f].RentNet, result.Comparison[f].BuyNet, result.Comparison[f].Comparison)
		fmt.Fprintf(w, "\n")
	}
}
