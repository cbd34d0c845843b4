package filter

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"paydash/internal/core/apperror"
)

// ReservedParams are query params owned by pagination; no filter key may
// use these names.
var ReservedParams = []string{"page", "limit"}

// DefaultDateLayout formats date-range bounds in query parameters.
const DefaultDateLayout = "2006-01-02"

// Params flattens the values into key -> string pairs for query parameters.
// String sets are joined with ",", date ranges become "from,to",
// undefined optional values are dropped. Strings are kept even when empty.
func (v Values) Params(dateLayout string) map[string]string {
	if dateLayout == "" {
		dateLayout = DefaultDateLayout
	}
	out := make(map[string]string, len(v.defs))
	for _, kd := range v.defs {
		if s, ok := v.vals[kd.Name].param(dateLayout); ok {
			out[string(kd.Name)] = s
		}
	}
	return out
}

// Encode renders params as a URL query string with sorted keys.
func Encode(params map[string]string) string {
	q := make(url.Values, len(params))
	for k, v := range params {
		q.Set(k, v)
	}
	return q.Encode()
}

// ParseParam is the inverse of Params for one key: it reads raw in the
// format Params writes and returns a value of the key's kind. An empty raw
// value yields the kind's empty value.
func (r *Registry) ParseParam(c Category, k Key, raw, dateLayout string) (Value, error) {
	kd, ok := r.Key(c, k)
	if !ok {
		if !r.Has(c) {
			return nil, apperror.NewUnknownCategory(string(c))
		}
		return nil, apperror.NewUnknownKey(string(c), string(k))
	}
	if dateLayout == "" {
		dateLayout = DefaultDateLayout
	}

	invalid := func(err error) error {
		return apperror.NewInvalidInput("invalid filter value").
			WithDetail("category", string(c)).
			WithDetail("key", string(k)).
			WithDetail("value", raw).
			WithCause(err)
	}

	switch kd.Kind {
	case KindString:
		return String(raw), nil
	case KindStringSet:
		var items []string
		for _, it := range strings.Split(raw, ",") {
			if it = strings.TrimSpace(it); it != "" {
				items = append(items, it)
			}
		}
		return Strings(items...), nil
	case KindDateRange:
		if raw == "" {
			return DateRange{}, nil
		}
		fromRaw, toRaw, _ := strings.Cut(raw, ",")
		from, err := parseBound(fromRaw, dateLayout)
		if err != nil {
			return nil, invalid(err)
		}
		to, err := parseBound(toRaw, dateLayout)
		if err != nil {
			return nil, invalid(err)
		}
		return Period(from, to), nil
	case KindID:
		if raw == "" {
			return ID{}, nil
		}
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, invalid(err)
		}
		return SomeID(n), nil
	case KindBool:
		if raw == "" {
			return Bool{}, nil
		}
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, invalid(err)
		}
		return SomeBool(b), nil
	}
	return emptyValue(kd.Kind), nil
}

func parseBound(s, layout string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(layout, s)
}
