package filter

import (
	"fmt"
	"slices"

	"paydash/internal/core/apperror"
)

// KeyDef describes one filter key of a category.
type KeyDef struct {
	Name  Key
	Kind  Kind
	Label string

	// Default is restored on every reset. Nil means the kind's empty value.
	Default Value

	// Column is the backend column used by Where. Defaults to Name.
	Column string

	// Operator controls predicate rendering. Defaults per kind:
	// string=contains, string set=in, date range=between, id/bool=eq.
	Operator ComparisonType
}

// CategoryDef describes a filter category and its keys in display order.
type CategoryDef struct {
	Name  Category
	Label string
	Keys  []KeyDef
}

// Registry is the closed set of filter categories known to the dashboard.
// It is built once with NewRegistry and never changes afterwards.
type Registry struct {
	order    []Category
	defs     map[Category]CategoryDef
	keys     map[Category]map[Key]KeyDef
	defaults Snapshot
}

// NewRegistry validates definitions and builds a registry.
func NewRegistry(defs ...CategoryDef) (*Registry, error) {
	r := &Registry{
		order: make([]Category, 0, len(defs)),
		defs:  make(map[Category]CategoryDef, len(defs)),
		keys:  make(map[Category]map[Key]KeyDef, len(defs)),
	}

	for _, def := range defs {
		if def.Name == "" {
			return nil, fmt.Errorf("filter registry: category without name")
		}
		if _, dup := r.defs[def.Name]; dup {
			return nil, fmt.Errorf("filter registry: duplicate category %q", def.Name)
		}

		normalized := CategoryDef{Name: def.Name, Label: def.Label, Keys: make([]KeyDef, 0, len(def.Keys))}
		byName := make(map[Key]KeyDef, len(def.Keys))
		for _, raw := range def.Keys {
			kd, err := normalizeKey(def.Name, raw)
			if err != nil {
				return nil, err
			}
			if _, dup := byName[kd.Name]; dup {
				return nil, fmt.Errorf("filter registry: duplicate key %s.%s", def.Name, kd.Name)
			}
			byName[kd.Name] = kd
			normalized.Keys = append(normalized.Keys, kd)
		}

		r.order = append(r.order, def.Name)
		r.defs[def.Name] = normalized
		r.keys[def.Name] = byName
	}

	r.defaults = r.buildDefaults()
	return r, nil
}

// MustNewRegistry is like NewRegistry but panics on invalid definitions.
// Use only for package-level registries built from literals.
func MustNewRegistry(defs ...CategoryDef) *Registry {
	r, err := NewRegistry(defs...)
	if err != nil {
		panic(err)
	}
	return r
}

func normalizeKey(cat Category, kd KeyDef) (KeyDef, error) {
	if kd.Name == "" {
		return kd, fmt.Errorf("filter registry: key without name in %q", cat)
	}
	if slices.Contains(ReservedParams, string(kd.Name)) {
		return kd, fmt.Errorf("filter registry: %s.%s collides with a pagination param", cat, kd.Name)
	}
	if emptyValue(kd.Kind) == nil {
		return kd, fmt.Errorf("filter registry: %s.%s has unknown kind %d", cat, kd.Name, kd.Kind)
	}
	if kd.Default == nil {
		kd.Default = emptyValue(kd.Kind)
	} else if kd.Default.Kind() != kd.Kind {
		return kd, fmt.Errorf("filter registry: %s.%s default is %s, want %s", cat, kd.Name, kd.Default.Kind(), kd.Kind)
	}
	if kd.Column == "" {
		kd.Column = string(kd.Name)
	}
	if kd.Label == "" {
		kd.Label = string(kd.Name)
	}
	if kd.Operator == "" {
		kd.Operator = defaultOperator(kd.Kind)
	} else if !operatorAllowed(kd.Kind, kd.Operator) {
		return kd, fmt.Errorf("filter registry: %s.%s operator %q not allowed for %s", cat, kd.Name, kd.Operator, kd.Kind)
	}
	return kd, nil
}

func (r *Registry) buildDefaults() Snapshot {
	cats := make(map[Category]Values, len(r.order))
	for _, c := range r.order {
		def := r.defs[c]
		vals := make(map[Key]Value, len(def.Keys))
		for _, kd := range def.Keys {
			vals[kd.Name] = kd.Default
		}
		cats[c] = Values{category: c, defs: def.Keys, vals: vals}
	}
	return Snapshot{order: r.order, cats: cats}
}

// Categories returns category names in registration order.
func (r *Registry) Categories() []Category {
	return slices.Clone(r.order)
}

// Category returns the definition of a category.
func (r *Registry) Category(c Category) (CategoryDef, bool) {
	def, ok := r.defs[c]
	if !ok {
		return CategoryDef{}, false
	}
	def.Keys = slices.Clone(def.Keys)
	return def, true
}

// Key returns the definition of a key within a category.
func (r *Registry) Key(c Category, k Key) (KeyDef, bool) {
	kd, ok := r.keys[c][k]
	return kd, ok
}

// Has reports whether the category is registered.
func (r *Registry) Has(c Category) bool {
	_, ok := r.defs[c]
	return ok
}

// Defaults returns the snapshot with every category at its default.
func (r *Registry) Defaults() Snapshot {
	return r.defaults
}

// Default returns the default values of one category.
func (r *Registry) Default(c Category) (Values, bool) {
	return r.defaults.Category(c)
}

// Check validates that value may be stored at (c, k).
func (r *Registry) Check(c Category, k Key, value Value) error {
	keys, ok := r.keys[c]
	if !ok {
		return apperror.NewUnknownCategory(string(c))
	}
	kd, ok := keys[k]
	if !ok {
		return apperror.NewUnknownKey(string(c), string(k))
	}
	if value == nil {
		return apperror.NewTypeMismatch(string(c), string(k), kd.Kind.String(), "nil")
	}
	if value.Kind() != kd.Kind {
		return apperror.NewTypeMismatch(string(c), string(k), kd.Kind.String(), value.Kind().String())
	}
	return nil
}
