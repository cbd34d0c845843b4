package filter

import "slices"

// Values is the immutable, fully populated filter record of one category.
type Values struct {
	category Category
	defs     []KeyDef
	vals     map[Key]Value
}

// Category returns the category these values belong to.
func (v Values) Category() Category { return v.category }

// Get returns the value stored under k.
func (v Values) Get(k Key) (Value, bool) {
	val, ok := v.vals[k]
	return val, ok
}

// Keys returns the declared keys in registry order.
func (v Values) Keys() []Key {
	keys := make([]Key, len(v.defs))
	for i, kd := range v.defs {
		keys[i] = kd.Name
	}
	return keys
}

// Active returns keys whose value is not empty, in registry order.
func (v Values) Active() []Key {
	var keys []Key
	for _, kd := range v.defs {
		if !v.vals[kd.Name].IsEmpty() {
			keys = append(keys, kd.Name)
		}
	}
	return keys
}

// Equal compares values leaf by leaf.
func (v Values) Equal(other Values) bool {
	if v.category != other.category || len(v.vals) != len(other.vals) {
		return false
	}
	for k, val := range v.vals {
		o, ok := other.vals[k]
		if !ok || !val.Equal(o) {
			return false
		}
	}
	return true
}

// with returns a copy of v where k holds val.
func (v Values) with(k Key, val Value) Values {
	vals := make(map[Key]Value, len(v.vals))
	for key, existing := range v.vals {
		vals[key] = existing
	}
	vals[k] = val
	return Values{category: v.category, defs: v.defs, vals: vals}
}

// Leaf addresses a single filter value.
type Leaf struct {
	Category Category
	Key      Key
}

// Snapshot is an immutable view of every category's filters.
// Snapshots never change after publication and can be kept by readers.
type Snapshot struct {
	order []Category
	cats  map[Category]Values
}

// Categories returns category names in registry order.
func (s Snapshot) Categories() []Category { return slices.Clone(s.order) }

// Category returns the values of one category.
func (s Snapshot) Category(c Category) (Values, bool) {
	v, ok := s.cats[c]
	return v, ok
}

// Get returns a single value.
func (s Snapshot) Get(c Category, k Key) (Value, bool) {
	v, ok := s.cats[c]
	if !ok {
		return nil, false
	}
	return v.Get(k)
}

// Equal compares two snapshots leaf by leaf.
func (s Snapshot) Equal(other Snapshot) bool {
	return len(s.Diff(other)) == 0 && len(s.cats) == len(other.cats)
}

// Diff lists leaves whose values differ between s and other,
// in registry order of s.
func (s Snapshot) Diff(other Snapshot) []Leaf {
	var out []Leaf
	for _, c := range s.order {
		mine := s.cats[c]
		theirs, ok := other.cats[c]
		for _, kd := range mine.defs {
			if !ok {
				out = append(out, Leaf{Category: c, Key: kd.Name})
				continue
			}
			o, found := theirs.vals[kd.Name]
			if !found || !mine.vals[kd.Name].Equal(o) {
				out = append(out, Leaf{Category: c, Key: kd.Name})
			}
		}
	}
	return out
}

// withCategory returns a copy of s where category c holds v.
func (s Snapshot) withCategory(c Category, v Values) Snapshot {
	cats := make(map[Category]Values, len(s.cats))
	for name, existing := range s.cats {
		cats[name] = existing
	}
	cats[c] = v
	return Snapshot{order: s.order, cats: cats}
}
