package rates

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// DecodeHookFunc returns a mapstructure hook that converts configuration
// values into a Series. A scalar number yields a flat series; a mapping with
// initial/afterFiveYears/afterTenYears keys yields a tiered series. Keys are
// matched case-insensitively because viper lowercases them.
func DecodeHookFunc() mapstructure.DecodeHookFunc {
	seriesType := reflect.TypeOf(Series{})
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to != seriesType {
			return data, nil
		}

		switch v := data.(type) {
		case float64:
			return Flat(v), nil
		case int:
			return Flat(float64(v)), nil
		case int64:
			return Flat(float64(v)), nil
		case map[string]interface{}:
			return seriesFromMap(v)
		case Series:
			return v, nil
		default:
			return nil, fmt.Errorf("cannot decode %T into a rate series", data)
		}
	}
}

func seriesFromMap(values map[string]interface{}) (Series, error) {
	var initial, afterFive, afterTen float64
	var haveInitial, haveFive, haveTen bool

	for key, raw := range values {
		rate, err := toFloat(raw)
		if err != nil {
			return Series{}, fmt.Errorf("rate series field %s: %s", key, err)
		}
		switch strings.ToLower(key) {
		case "initial":
			initial, haveInitial = rate, true
		case "afterfiveyears":
			afterFive, haveFive = rate, true
		case "aftertenyears":
			afterTen, haveTen = rate, true
		default:
			return Series{}, fmt.Errorf("unknown rate series field %s", key)
		}
	}

	if !haveInitial || !haveFive || !haveTen {
		return Series{}, fmt.Errorf("tiered rate series requires initial, afterFiveYears, and afterTenYears")
	}
	return Tiered(initial, afterFive, afterTen), nil
}

func toFloat(raw interface{}) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("expected a number, got %T", raw)
	}
}
