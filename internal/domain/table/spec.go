package table

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"paydash/internal/core/apperror"
)

// Spec holds column specifications per view name, as loaded from YAML:
//
//	views:
//	  customers:
//	    - label: Name
//	      fields: [first_name, last_name]
//	    - label: Email
//	      field: email
//	    - label: Balance
//	      field: balance
//	      format: money
//	    - label: Contact
//	      fields: [email, phone]
//	      expr: 'values[1] == "" ? values[0] : values[0] + " / " + values[1]'
type Spec map[string][]Column

type specFile struct {
	Views map[string][]columnSpec `yaml:"views"`
}

type columnSpec struct {
	Label  string   `yaml:"label"`
	Field  string   `yaml:"field"`
	Fields []string `yaml:"fields"`
	Format string   `yaml:"format"`
	Expr   string   `yaml:"expr"`
}

// LoadSpec decodes a YAML column spec. format names are resolved against
// formatters; expr entries are compiled with Expr.
func LoadSpec(r io.Reader, formatters Formatters) (Spec, error) {
	var file specFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode column spec: %w", err)
	}

	spec := make(Spec, len(file.Views))
	for view, cols := range file.Views {
		columns := make([]Column, 0, len(cols))
		for i, cs := range cols {
			col, err := cs.build(formatters)
			if err != nil {
				if appErr, ok := apperror.AsAppError(err); ok {
					appErr.WithDetail("view", view).WithDetail("column", i)
				}
				return nil, err
			}
			columns = append(columns, col)
		}
		spec[view] = columns
	}
	return spec, nil
}

func (cs columnSpec) build(formatters Formatters) (Column, error) {
	switch {
	case cs.Field == "" && len(cs.Fields) == 0:
		return Column{}, apperror.NewValidation("column needs field or fields").WithDetail("label", cs.Label)
	case cs.Field != "" && len(cs.Fields) > 0:
		return Column{}, apperror.NewValidation("column sets both field and fields").WithDetail("label", cs.Label)
	case len(cs.Fields) > 0 && cs.Label == "":
		return Column{}, apperror.NewValidation("composite column needs a label").WithDetail("fields", cs.Fields)
	case cs.Format != "" && cs.Expr != "":
		return Column{}, apperror.NewValidation("column sets both format and expr").WithDetail("label", cs.Label)
	}

	col := Column{Label: cs.Label, Field: cs.Field}
	if len(cs.Fields) > 0 {
		col.Fields = cs.Fields
	}
	if col.Label == "" {
		col.Label = cs.Field
	}
	if col.Key() == RawKey {
		return Column{}, apperror.NewValidation("column key is reserved").WithDetail("key", RawKey)
	}

	if cs.Format != "" {
		f, ok := formatters[cs.Format]
		if !ok {
			return Column{}, apperror.NewValidation("unknown formatter").
				WithDetail("label", col.Label).
				WithDetail("format", cs.Format)
		}
		col.Format = f
	}

	if cs.Expr != "" {
		f, err := Expr(cs.Expr)
		if err != nil {
			return Column{}, err
		}
		col.Format = f
	}

	return col, nil
}
