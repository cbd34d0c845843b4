package types

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
		ok    bool
	}{
		{"string", " 10.5 ", "10.5", true},
		{"json", json.Number("0.105"), "0.105", true},
		{"float", 1.25, "1.25", true},
		{"int", 3, "3", true},
		{"minor units", MinorUnits(1999), "19.99", true},
		{"decimal", decimal.RequireFromString("-4"), "-4", true},
		{"garbage", "n/a", "", false},
		{"nil", nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseMoney(tt.value)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got.String())
			}
		})
	}
}

func TestParseMinorUnits(t *testing.T) {
	m, ok := ParseMinorUnits(json.Number("12345"))
	assert.True(t, ok)
	assert.Equal(t, MinorUnits(12345), m)

	_, ok = ParseMinorUnits(12.5)
	assert.False(t, ok)

	_, ok = ParseMinorUnits("1.5")
	assert.False(t, ok)
}

func TestMinorUnits(t *testing.T) {
	assert.Equal(t, "123.45", MinorUnits(12345).String())
	assert.Equal(t, "-0.05", MinorUnits(-5).String())
	assert.Equal(t, "12.345", MinorUnits(12345).Major(3).String())
	assert.True(t, MinorUnits(0).IsZero())
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "1234.50 USD", Format(decimal.RequireFromString("1234.5"), "USD"))
	assert.Equal(t, "0.00", Format(decimal.Zero, ""))
}
