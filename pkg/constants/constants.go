// Package constants provides shared constants for the buy-vs-rent application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// TierOneEndYear is the last year offset served by the initial rate tier
	TierOneEndYear = 5

	// TierTwoEndYear is the last year offset served by the five-year rate tier
	TierTwoEndYear = 10

	// MinimumDownPaymentFraction is the smallest down payment eligible for
	// mortgage insurance; anything below is not financeable
	MinimumDownPaymentFraction = 0.05

	// UninsuredDownPaymentFraction is the down payment at which mortgage
	// insurance is no longer required
	UninsuredDownPaymentFraction = 0.20

	// ExtendedAmortizationYears is the amortization length above which the
	// higher mortgage-insurance premium schedule applies
	ExtendedAmortizationYears = 25

	// DefaultInvestmentTaxRate approximates the tax owed on investment gains
	// when the renter liquidates the portfolio
	DefaultInvestmentTaxRate = 0.10
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatPDF is the PDF report output format
	OutputFormatPDF = "pdf"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxRequestSizeBytes is the default maximum request body size for
	// projection requests (256 KB)
	DefaultMaxRequestSizeBytes int64 = 256 * 1024
)

// Validation constants
const (
	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// SuspiciousRateThreshold flags rate fractions that were likely entered
	// as percentages (e.g. 5 instead of 0.05)
	SuspiciousRateThreshold = 0.25
)
