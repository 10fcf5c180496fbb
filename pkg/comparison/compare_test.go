package comparison

import (
	"math"
	"testing"

	"github.com/mlavoie/buy-vs-rent/pkg/investment"
	"github.com/mlavoie/buy-vs-rent/pkg/owning"
)

func TestTableYearZeroHasNoGainsTax(t *testing.T) {
	ownership := []owning.Record{
		{Year: 2026, HomeValue: 500000, MortgageBalance: 400000},
	}
	portfolio := []investment.Record{
		{Year: 2026, Balance: 106475, Surplus: 5000},
	}

	table, err := Table(ownership, portfolio, 0.05, 0.10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Net-of-commission equity vs the untaxed portfolio.
	expectedBuyNet := 500000*0.95 - 400000
	if math.Abs(table[0].BuyNet-expectedBuyNet) > 1e-9 {
		t.Errorf("BuyNet = %v, expected %v", table[0].BuyNet, expectedBuyNet)
	}
	if table[0].RentNet != 106475 {
		t.Errorf("RentNet = %v, expected the untaxed portfolio balance", table[0].RentNet)
	}
	if math.Abs(table[0].Comparison-(106475-expectedBuyNet)) > 1e-9 {
		t.Errorf("Comparison = %v, expected %v", table[0].Comparison, 106475-expectedBuyNet)
	}
}

func TestTableTaxesOnlyGains(t *testing.T) {
	// Portfolio went from 1000 to 1310 with a 200 surplus contributed along
	// the way, so taxable gains are 110 and the tax at 10% is 11.
	ownership := []owning.Record{
		{Year: 2026, HomeValue: 500000, MortgageBalance: 400000},
		{Year: 2027, HomeValue: 515000, MortgageBalance: 390000},
	}
	portfolio := []investment.Record{
		{Year: 2026, Balance: 1000, Surplus: 200},
		{Year: 2027, Balance: 1310, Surplus: 250},
	}

	table, err := Table(ownership, portfolio, 0.05, 0.10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expectedRentNet := 1310.0 - 11.0
	if math.Abs(table[1].RentNet-expectedRentNet) > 1e-9 {
		t.Errorf("RentNet = %v, expected %v", table[1].RentNet, expectedRentNet)
	}

	expectedBuyNet := 515000*0.95 - 390000
	if math.Abs(table[1].BuyNet-expectedBuyNet) > 1e-9 {
		t.Errorf("BuyNet = %v, expected %v", table[1].BuyNet, expectedBuyNet)
	}

	if math.Abs(table[1].Comparison-(expectedRentNet-expectedBuyNet)) > 1e-9 {
		t.Errorf("Comparison = %v, expected RentNet minus BuyNet", table[1].Comparison)
	}
}

func TestTableSignConvention(t *testing.T) {
	// A huge portfolio means renting wins: positive comparison.
	ownership := []owning.Record{{Year: 2026, HomeValue: 100000, MortgageBalance: 90000}}
	portfolio := []investment.Record{{Year: 2026, Balance: 1000000}}
	table, err := Table(ownership, portfolio, 0.05, 0.10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table[0].Comparison <= 0 {
		t.Errorf("Comparison = %v, expected positive when renting wins", table[0].Comparison)
	}

	// Full equity and an empty portfolio means owning wins: negative.
	ownership = []owning.Record{{Year: 2026, HomeValue: 800000, MortgageBalance: 0}}
	portfolio = []investment.Record{{Year: 2026, Balance: 0}}
	table, err = Table(ownership, portfolio, 0.05, 0.10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table[0].Comparison >= 0 {
		t.Errorf("Comparison = %v, expected negative when owning wins", table[0].Comparison)
	}
}

func TestTableRejectsMisalignedTables(t *testing.T) {
	ownership := []owning.Record{{Year: 2026}, {Year: 2027}}
	portfolio := []investment.Record{{Year: 2026}}
	if _, err := Table(ownership, portfolio, 0.05, 0.10); err == nil {
		t.Error("expected an error for misaligned tables, got nil")
	}
}
