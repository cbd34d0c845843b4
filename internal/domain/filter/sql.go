package filter

import (
	"fmt"

	"github.com/Masterminds/squirrel"
)

// Predicates renders the non-empty values as SQL predicates for backends
// that share the registry. Empty values produce no predicate.
func (v Values) Predicates() []squirrel.Sqlizer {
	var out []squirrel.Sqlizer
	for _, kd := range v.defs {
		val := v.vals[kd.Name]
		if val.IsEmpty() {
			continue
		}
		out = append(out, predicate(kd, val)...)
	}
	return out
}

// ApplyTo adds the predicates to a SELECT builder.
func (v Values) ApplyTo(q squirrel.SelectBuilder) squirrel.SelectBuilder {
	for _, p := range v.Predicates() {
		q = q.Where(p)
	}
	return q
}

func predicate(kd KeyDef, val Value) []squirrel.Sqlizer {
	col := kd.Column

	switch x := val.(type) {
	case String:
		if kd.Operator == Contains {
			return []squirrel.Sqlizer{squirrel.ILike{col: fmt.Sprintf("%%%s%%", string(x))}}
		}
		return []squirrel.Sqlizer{squirrel.Eq{col: string(x)}}
	case StringSet:
		return []squirrel.Sqlizer{squirrel.Eq{col: x.Items()}}
	case DateRange:
		var out []squirrel.Sqlizer
		if !x.From().IsZero() {
			out = append(out, squirrel.GtOrEq{col: x.From()})
		}
		if !x.To().IsZero() {
			out = append(out, squirrel.LtOrEq{col: x.To()})
		}
		return out
	case ID:
		id, _ := x.Value()
		return []squirrel.Sqlizer{squirrel.Eq{col: id}}
	case Bool:
		b, _ := x.Value()
		return []squirrel.Sqlizer{squirrel.Eq{col: b}}
	}
	return nil
}
