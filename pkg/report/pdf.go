// Package report renders a projection result as a PDF document with a
// summary page and the year-by-year comparison table.
package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/mlavoie/buy-vs-rent/internal/projection"
	"github.com/mlavoie/buy-vs-rent/pkg/format"
	"github.com/mlavoie/buy-vs-rent/pkg/mathutil"
)

const (
	pageWidth    = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 20.0
	contentWidth = pageWidth - marginLeft - marginRight
	rowHeight    = 6.0
)

type pdfReport struct {
	pdf    *fpdf.Fpdf
	result *projection.Result
}

// Generate renders the projection as a PDF and returns the document bytes.
func Generate(result *projection.Result) ([]byte, error) {
	r := &pdfReport{
		pdf:    fpdf.New("P", "mm", "A4", ""),
		result: result,
	}
	r.pdf.SetMargins(marginLeft, marginTop, marginRight)
	r.pdf.SetAutoPageBreak(true, marginBottom)

	r.addSummaryPage()
	r.addYearTable()

	var buf bytes.Buffer
	if err := r.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *pdfReport) addSummaryPage() {
	r.pdf.AddPage()

	r.pdf.SetFont("Arial", "B", 24)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.Ln(30)
	r.pdf.CellFormat(contentWidth, 12, "Buy vs Rent Projection", "", 1, "C", false, 0, "")

	r.pdf.SetFont("Arial", "I", 11)
	r.pdf.SetTextColor(80, 80, 80)
	r.pdf.Ln(5)
	r.pdf.CellFormat(contentWidth, 8, fmt.Sprintf("Generated: %s", time.Now().Format("2 January 2006")), "", 1, "C", false, 0, "")

	r.pdf.Ln(15)
	r.pdf.SetFillColor(245, 247, 250)
	r.pdf.SetDrawColor(200, 200, 200)

	r.pdf.SetFont("Arial", "B", 12)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 8, "Scenario", "1", 1, "C", true, 0, "")

	r.pdf.SetFont("Arial", "", 11)
	r.pdf.SetTextColor(50, 50, 50)
	lines := []string{
		fmt.Sprintf("Horizon: %d to %d (%d years)", r.result.StartYear, r.result.StartYear+r.result.Horizon, r.result.Horizon),
		fmt.Sprintf("Loan principal: %s", format.Currency(r.result.Principal)),
		fmt.Sprintf("Mortgage insurance premium: %.2f%% of principal", r.result.InsurancePremiumRate*100),
		fmt.Sprintf("Upfront cash to purchase: %s", format.Currency(r.result.UpfrontCash)),
	}
	for _, line := range lines {
		r.pdf.CellFormat(contentWidth, 7, line, "LR", 1, "C", true, 0, "")
	}
	r.pdf.CellFormat(contentWidth, 1, "", "LRB", 1, "C", true, 0, "")

	final := r.result.Comparison[r.result.Horizon]
	verdict := "Buying and renting break even"
	if mathutil.IsPositive(final.Comparison) {
		verdict = fmt.Sprintf("Renting and investing comes out ahead by %s", format.Currency(final.Comparison))
	} else if mathutil.IsNegative(final.Comparison) {
		verdict = fmt.Sprintf("Buying comes out ahead by %s", format.Currency(-final.Comparison))
	}

	r.pdf.Ln(10)
	r.pdf.SetFont("Arial", "B", 12)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 8, fmt.Sprintf("Verdict at year %d", final.Year), "1", 1, "C", true, 0, "")
	r.pdf.SetFont("Arial", "", 11)
	r.pdf.SetTextColor(50, 50, 50)
	r.pdf.CellFormat(contentWidth, 7, verdict, "LRB", 1, "C", true, 0, "")
}

func (r *pdfReport) addYearTable() {
	r.pdf.AddPage()

	r.pdf.SetFont("Arial", "B", 14)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 10, "Year by Year", "", 1, "L", false, 0, "")

	headers := []string{"Year", "Home Value", "Mortgage", "Own Outlay", "Rent", "Portfolio", "Rent - Buy"}
	widths := []float64{16, 28, 28, 27, 25, 28, 28}

	r.pdf.SetFont("Arial", "B", 9)
	r.pdf.SetFillColor(230, 235, 243)
	for i, header := range headers {
		r.pdf.CellFormat(widths[i], rowHeight+1, header, "1", 0, "C", true, 0, "")
	}
	r.pdf.Ln(-1)

	r.pdf.SetFont("Arial", "", 8)
	r.pdf.SetTextColor(50, 50, 50)
	for f := 0; f <= r.result.Horizon; f++ {
		own := r.result.Ownership[f]
		cells := []string{
			fmt.Sprintf("%d", own.Year),
			format.Currency(own.HomeValue),
			format.Currency(own.MortgageBalance),
			format.Currency(own.AnnualCashOutlay),
			format.Currency(r.result.Rent[f].RentCost),
			format.Currency(r.result.Portfolio[f].Balance),
			format.Currency(r.result.Comparison[f].Comparison),
		}
		for i, cell := range cells {
			align := "R"
			if i == 0 {
				align = "C"
			}
			r.pdf.CellFormat(widths[i], rowHeight, cell, "1", 0, align, false, 0, "")
		}
		r.pdf.Ln(-1)
	}
}
