// Package table projects raw backend records into presentation rows
// driven by declarative column specifications.
package table

// Formatter maps extracted raw value(s) to a display value.
// Single-field columns pass the raw value (nil when the field is missing);
// composite columns pass the ordered values as []any.
type Formatter func(value any) any

// Column describes one table column.
type Column struct {
	// Label is the presentation key (header) of the column.
	Label string

	// Field is the source field of a single-field column.
	Field string

	// Fields, when non-nil, makes the column composite; Field is ignored.
	// An empty non-nil list yields "" under the label.
	Fields []string

	// Format is optional.
	Format Formatter
}

// FieldColumn builds a single-field column.
func FieldColumn(field, label string) Column {
	return Column{Label: label, Field: field}
}

// CompositeColumn builds a column combining several fields.
func CompositeColumn(label string, fields ...string) Column {
	return Column{Label: label, Fields: append([]string{}, fields...)}
}

// WithFormat returns a copy of c using f.
func (c Column) WithFormat(f Formatter) Column {
	c.Format = f
	return c
}

// Composite reports whether the column reads a list of fields.
func (c Column) Composite() bool {
	return c.Fields != nil
}

// Key is the row key the column writes to: the label for composite
// columns, the field name otherwise.
func (c Column) Key() string {
	if c.Composite() {
		return c.Label
	}
	return c.Field
}

// Headers returns column labels in order.
func Headers(columns []Column) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = c.Label
	}
	return out
}
