package filter

import (
	"slices"
	"strconv"
	"strings"
	"time"
)

// Value is a filter value. The set of implementations is closed:
// String, StringSet, DateRange, ID and Bool. The zero value of each is the
// "empty" value of its kind.
//
// Values are immutable and must be compared with Equal, never with ==.
type Value interface {
	Kind() Kind
	IsEmpty() bool
	Equal(other Value) bool

	// param flattens the value for query parameters; ok=false drops the key.
	param(dateLayout string) (s string, ok bool)
}

// --- String ---

// String is a free-text filter value. Empty string means "not set".
type String string

func (s String) Kind() Kind { return KindString }
func (s String) IsEmpty() bool { return s == "" }

func (s String) Equal(other Value) bool {
	o, ok := other.(String)
	return ok && o == s
}

func (s String) param(string) (string, bool) { return string(s), true }

// --- StringSet ---

// StringSet is an ordered set of strings (e.g. selected statuses).
type StringSet struct {
	items []string
}

// Strings builds a StringSet. Duplicates are dropped, first occurrence wins.
func Strings(items ...string) StringSet {
	if len(items) == 0 {
		return StringSet{}
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if !slices.Contains(out, it) {
			out = append(out, it)
		}
	}
	return StringSet{items: out}
}

func (s StringSet) Kind() Kind { return KindStringSet }
func (s StringSet) IsEmpty() bool { return len(s.items) == 0 }
func (s StringSet) Len() int { return len(s.items) }

// Items returns a copy of the set members in insertion order.
func (s StringSet) Items() []string { return slices.Clone(s.items) }

func (s StringSet) Contains(item string) bool { return slices.Contains(s.items, item) }

func (s StringSet) Equal(other Value) bool {
	o, ok := other.(StringSet)
	return ok && slices.Equal(s.items, o.items)
}

func (s StringSet) param(string) (string, bool) { return strings.Join(s.items, ","), true }

// --- DateRange ---

// DateRange is an optional period. The zero value is undefined.
// A zero From or To leaves that side of the range open.
type DateRange struct {
	from, to time.Time
	defined  bool
}

// Period builds a defined range; bounds are swapped when given in reverse.
func Period(from, to time.Time) DateRange {
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		from, to = to, from
	}
	return DateRange{from: from, to: to, defined: true}
}

func (r DateRange) Kind() Kind { return KindDateRange }
func (r DateRange) IsEmpty() bool { return !r.defined }
func (r DateRange) Defined() bool { return r.defined }
func (r DateRange) From() time.Time { return r.from }
func (r DateRange) To() time.Time { return r.to }

func (r DateRange) Equal(other Value) bool {
	o, ok := other.(DateRange)
	if !ok || o.defined != r.defined {
		return false
	}
	return !r.defined || (r.from.Equal(o.from) && r.to.Equal(o.to))
}

func (r DateRange) param(layout string) (string, bool) {
	if !r.defined {
		return "", false
	}
	return formatBound(r.from, layout) + "," + formatBound(r.to, layout), true
}

func formatBound(t time.Time, layout string) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(layout)
}

// --- ID ---

// ID is an optional numeric identifier. The zero value is undefined.
type ID struct {
	v       int64
	defined bool
}

// SomeID builds a defined ID.
func SomeID(v int64) ID { return ID{v: v, defined: true} }

func (i ID) Kind() Kind { return KindID }
func (i ID) IsEmpty() bool { return !i.defined }
func (i ID) Value() (int64, bool) { return i.v, i.defined }

func (i ID) Equal(other Value) bool {
	o, ok := other.(ID)
	return ok && o == i
}

func (i ID) param(string) (string, bool) {
	if !i.defined {
		return "", false
	}
	return strconv.FormatInt(i.v, 10), true
}

// --- Bool ---

// Bool is an optional flag. The zero value is undefined.
type Bool struct {
	v       bool
	defined bool
}

// SomeBool builds a defined Bool.
func SomeBool(v bool) Bool { return Bool{v: v, defined: true} }

func (b Bool) Kind() Kind { return KindBool }
func (b Bool) IsEmpty() bool { return !b.defined }
func (b Bool) Value() (bool, bool) { return b.v, b.defined }

func (b Bool) Equal(other Value) bool {
	o, ok := other.(Bool)
	return ok && o == b
}

func (b Bool) param(string) (string, bool) {
	if !b.defined {
		return "", false
	}
	return strconv.FormatBool(b.v), true
}

// emptyValue returns the "not set" value of a kind.
func emptyValue(k Kind) Value {
	switch k {
	case KindString:
		return String("")
	case KindStringSet:
		return StringSet{}
	case KindDateRange:
		return DateRange{}
	case KindID:
		return ID{}
	case KindBool:
		return Bool{}
	}
	return nil
}
