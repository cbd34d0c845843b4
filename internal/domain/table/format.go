package table

import (
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"paydash/internal/core/types"
)

// Formatters maps names used in column spec files to formatters.
type Formatters map[string]Formatter

// FormatOptions configures DefaultFormatters.
type FormatOptions struct {
	Currency   string
	Locale     string
	DateLayout string
}

// DefaultFormatters returns the named formatters available to column specs.
func DefaultFormatters(opts FormatOptions) Formatters {
	if opts.DateLayout == "" {
		opts.DateLayout = "2006-01-02"
	}
	return Formatters{
		"money":       Money(opts.Currency),
		"money_minor": MoneyMinor(opts.Currency),
		"number":      Number(opts.Locale),
		"date":        Date(opts.DateLayout),
		"datetime":    Date(opts.DateLayout + " 15:04"),
		"upper":       Upper,
		"join_comma":  Join(", "),
		"dash":        Fallback("-"),
	}
}

// Money formats a major-unit amount with two decimals and a currency code,
// e.g. "1234.50 USD". Unparsable values are rendered as text.
func Money(currency string) Formatter {
	return func(value any) any {
		d, ok := types.ParseMoney(value)
		if !ok {
			return Text(value)
		}
		return types.Format(d, currency)
	}
}

// MoneyMinor is Money for integral amounts stored in minor units (cents).
func MoneyMinor(currency string) Formatter {
	return func(value any) any {
		m, ok := types.ParseMinorUnits(value)
		if !ok {
			return Text(value)
		}
		return types.Format(m.Major(types.DefaultDecimalPlaces), currency)
	}
}

// Number formats numbers with the grouping rules of locale ("en" -> 1,234,567).
// Fractions are rounded to two decimals. Non-numbers are rendered as text.
func Number(locale string) Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	p := message.NewPrinter(tag)

	return func(value any) any {
		d, ok := types.ParseMoney(value)
		if !ok {
			return Text(value)
		}
		if d.IsInteger() {
			return p.Sprintf("%v", d.IntPart())
		}
		f, _ := d.Round(2).Float64()
		return p.Sprintf("%.2f", f)
	}
}

// Date formats time values with layout. Strings are parsed as RFC 3339
// (or a plain 2006-01-02 date) first; unparsable strings pass through.
func Date(layout string) Formatter {
	return func(value any) any {
		switch v := value.(type) {
		case time.Time:
			if v.IsZero() {
				return ""
			}
			return v.Format(layout)
		case *time.Time:
			if v == nil || v.IsZero() {
				return ""
			}
			return v.Format(layout)
		case string:
			if v == "" {
				return ""
			}
			for _, in := range []string{time.RFC3339Nano, "2006-01-02"} {
				if t, err := time.Parse(in, v); err == nil {
					return t.Format(layout)
				}
			}
			return v
		}
		return Text(value)
	}
}

// Upper renders the value as upper-case text.
func Upper(value any) any {
	return strings.ToUpper(Text(value))
}

// Join renders a composite column by joining its non-empty parts with sep.
// A single value is rendered as text.
func Join(sep string) Formatter {
	return func(value any) any {
		values, ok := value.([]any)
		if !ok {
			return Text(value)
		}
		parts := make([]string, 0, len(values))
		for _, v := range values {
			if s := strings.TrimSpace(Text(v)); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, sep)
	}
}

// Fallback shows placeholder instead of falsy values.
func Fallback(placeholder string) Formatter {
	return func(value any) any {
		if Falsy(value) {
			return placeholder
		}
		return value
	}
}
