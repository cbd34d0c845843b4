// Package types provides monetary value types shared by formatters.
package types

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Money is a major-unit amount with full precision.
type Money = decimal.Decimal

// ParseMoney reads a major-unit amount from API payload values: strings,
// json.Number, Go numbers and decimals. NaN and infinities are not amounts.
func ParseMoney(v any) (Money, bool) {
	switch x := v.(type) {
	case decimal.Decimal:
		return x, true
	case MinorUnits:
		return x.Major(DefaultDecimalPlaces), true
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(x))
		return d, err == nil
	case json.Number:
		d, err := decimal.NewFromString(x.String())
		return d, err == nil
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return decimal.Decimal{}, false
		}
		return decimal.NewFromFloat(x), true
	case float32:
		if math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) {
			return decimal.Decimal{}, false
		}
		return decimal.NewFromFloat32(x), true
	case int:
		return decimal.NewFromInt(int64(x)), true
	case int32:
		return decimal.NewFromInt32(x), true
	case int64:
		return decimal.NewFromInt(x), true
	}
	return decimal.Decimal{}, false
}

// DefaultDecimalPlaces is the exponent of most fiat currencies (cents, kobo).
const DefaultDecimalPlaces = 2

// MinorUnits is an amount in minor currency units, as many payment APIs
// send it. Example: 123.45 NGN -> 12345 (kobo).
type MinorUnits int64

// ParseMinorUnits reads an integral minor-unit amount. Fractions are rejected.
func ParseMinorUnits(v any) (MinorUnits, bool) {
	switch x := v.(type) {
	case MinorUnits:
		return x, true
	case int:
		return MinorUnits(x), true
	case int64:
		return MinorUnits(x), true
	case json.Number:
		n, err := x.Int64()
		return MinorUnits(n), err == nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(x), 10, 64)
		return MinorUnits(n), err == nil
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) || x != float64(int64(x)) {
			return 0, false
		}
		return MinorUnits(int64(x)), true
	}
	return 0, false
}

// Major converts to major units.
func (m MinorUnits) Major(decimalPlaces int) Money {
	return decimal.New(int64(m), int32(-decimalPlaces))
}

func (m MinorUnits) IsZero() bool { return m == 0 }

// String renders the amount in major units with DefaultDecimalPlaces.
func (m MinorUnits) String() string {
	return m.Major(DefaultDecimalPlaces).StringFixed(DefaultDecimalPlaces)
}

// Format renders the amount with a currency code, e.g. "12.34 USD".
func Format(amount Money, currency string) string {
	s := amount.StringFixed(DefaultDecimalPlaces)
	if currency == "" {
		return s
	}
	return fmt.Sprintf("%s %s", s, currency)
}
