package table

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// RawKey is the reserved row key holding the original record, for actions
// that need untransformed data (e.g. row-click navigation). A column keyed
// RawKey is overwritten by the back-reference; LoadSpec rejects one.
const RawKey = "_raw"

// Record is a raw backend row. The projector only reads it.
type Record map[string]any

// Row is a presentation row produced by Project.
type Row map[string]any

// Raw returns the record the row was projected from.
func (r Row) Raw() Record {
	rec, _ := r[RawKey].(Record)
	return rec
}

// Project maps records to rows, one row per record in the same order.
//
// Composite columns: missing sub-fields become "", the formatter receives
// the ordered values; without a formatter the values are joined by a single
// space and trimmed. The result is stored under the column label.
//
// Single-field columns: the formatter receives the raw value (nil when
// missing); without a formatter the raw value is stored, or "" when it is
// falsy (nil, false, zero, empty string). The result is stored under the
// field name.
func Project(columns []Column, records []Record) []Row {
	rows := make([]Row, len(records))
	for i, rec := range records {
		rows[i] = projectRecord(columns, rec)
	}
	return rows
}

func projectRecord(columns []Column, rec Record) Row {
	row := make(Row, len(columns)+1)

	for _, col := range columns {
		if col.Composite() {
			values := make([]any, len(col.Fields))
			for i, f := range col.Fields {
				v, ok := rec[f]
				if !ok || v == nil {
					v = ""
				}
				values[i] = v
			}

			if col.Format != nil {
				row[col.Label] = col.Format(values)
				continue
			}

			parts := make([]string, len(values))
			for i, v := range values {
				parts[i] = Text(v)
			}
			row[col.Label] = strings.TrimSpace(strings.Join(parts, " "))
			continue
		}

		v := rec[col.Field]
		switch {
		case col.Format != nil:
			row[col.Field] = col.Format(v)
		case Falsy(v):
			row[col.Field] = ""
		default:
			row[col.Field] = v
		}
	}

	row[RawKey] = rec
	return row
}

// Falsy reports whether v counts as "no value" for display: nil, false,
// numeric zero (and NaN), empty string, nil pointers/maps/slices.
func Falsy(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case bool:
		return !x
	case string:
		return x == ""
	case json.Number:
		if x == "" {
			return true
		}
		f, err := x.Float64()
		return err == nil && (f == 0 || math.IsNaN(f))
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return !rv.Bool()
	case reflect.String:
		return rv.Len() == 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f == 0 || math.IsNaN(f)
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// Text renders a raw value as display text. nil becomes "".
func Text(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprint(v)
}
