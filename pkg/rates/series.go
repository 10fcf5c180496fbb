// Package rates provides the rate schedule used throughout the projection:
// a value that is either one flat rate or three tiered rates resetting at
// the five- and ten-year anniversaries.
package rates

import (
	"encoding/json"
	"fmt"

	"github.com/mlavoie/buy-vs-rent/pkg/constants"
)

// Series represents a rate category over the projection horizon. It holds
// either a single flat rate or three tier rates covering years 0-5, 5-10,
// and 10 onward. All rates are fractions (0.05 = 5%), never percentages.
type Series struct {
	tiered    bool
	initial   float64
	afterFive float64
	afterTen  float64
}

// Flat returns a Series that resolves to the same rate for every year.
func Flat(rate float64) Series {
	return Series{initial: rate, afterFive: rate, afterTen: rate}
}

// Tiered returns a Series with distinct rates for years 0-5, 5-10, and 10+.
func Tiered(initial, afterFive, afterTen float64) Series {
	return Series{tiered: true, initial: initial, afterFive: afterFive, afterTen: afterTen}
}

// IsTiered reports whether the series carries three distinct tier values.
func (s Series) IsTiered() bool {
	return s.tiered
}

// Initial returns the tier-1 rate.
func (s Series) Initial() float64 {
	return s.initial
}

// AfterFive returns the tier-2 rate, applicable after the five-year reset.
func (s Series) AfterFive() float64 {
	return s.afterFive
}

// AfterTen returns the tier-3 rate, applicable after the ten-year reset.
func (s Series) AfterTen() float64 {
	return s.afterTen
}

// Resolve returns the rate applicable at the given year offset from the
// purchase. The boundaries are fixed: offsets through year 5 resolve to the
// initial tier, offsets through year 10 to the five-year tier, and later
// offsets to the ten-year tier. Every rate category must resolve through
// this single function so that tier boundaries stay aligned when the cost
// tables are summed.
func (s Series) Resolve(yearOffset int) float64 {
	switch {
	case yearOffset <= constants.TierOneEndYear:
		return s.initial
	case yearOffset <= constants.TierTwoEndYear:
		return s.afterFive
	default:
		return s.afterTen
	}
}

// CompoundFactor returns the cumulative growth factor after yearOffset whole
// years, chaining tier-locally: each year compounds at that year's resolved
// rate on top of the value already accumulated, so the factor is continuous
// across the five- and ten-year boundaries.
func (s Series) CompoundFactor(yearOffset int) float64 {
	factor := 1.0
	for y := 1; y <= yearOffset; y++ {
		factor *= 1 + s.Resolve(y)
	}
	return factor
}

// seriesJSON mirrors the tiered wire shape accepted over HTTP.
type seriesJSON struct {
	Initial        float64 `json:"initial"`
	AfterFiveYears float64 `json:"afterFiveYears"`
	AfterTenYears  float64 `json:"afterTenYears"`
}

// UnmarshalJSON accepts either a bare number (flat series) or an object with
// initial/afterFiveYears/afterTenYears fields (tiered series). A tier object
// must carry all three fields and nothing else; a partial object is an error,
// not a series with implicit zero tiers.
func (s *Series) UnmarshalJSON(data []byte) error {
	var flat float64
	if err := json.Unmarshal(data, &flat); err == nil {
		*s = Flat(flat)
		return nil
	}

	var tiered map[string]float64
	if err := json.Unmarshal(data, &tiered); err != nil {
		return fmt.Errorf("rate series must be a number or a tier object, %s", err)
	}
	fields := make(map[string]interface{}, len(tiered))
	for key, rate := range tiered {
		fields[key] = rate
	}
	parsed, err := seriesFromMap(fields)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalJSON emits a bare number for flat series and a tier object otherwise.
func (s Series) MarshalJSON() ([]byte, error) {
	if !s.tiered {
		return json.Marshal(s.initial)
	}
	return json.Marshal(seriesJSON{
		Initial:        s.initial,
		AfterFiveYears: s.afterFive,
		AfterTenYears:  s.afterTen,
	})
}
