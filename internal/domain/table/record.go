package table

import (
	"reflect"
	"strings"
	"sync"
)

// fieldInfo contains pre-computed metadata about a struct field.
type fieldInfo struct {
	index []int  // Field index path (embedded structs included)
	name  string // Record key taken from the json tag
}

// typeCache holds []fieldInfo per struct type. Reflection runs once per type.
var typeCache sync.Map // map[reflect.Type][]fieldInfo

// RecordFromStruct converts a typed backend struct into a Record keyed the
// way the struct serializes to JSON: json tag names, "-" skipped,
// unexported fields skipped, untagged embedded structs flattened.
// Pointer fields are dereferenced; nil pointers become nil.
// Non-struct input yields an empty record.
func RecordFromStruct(v any) Record {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return Record{}
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return Record{}
	}

	fields := fieldsOf(rv.Type())
	rec := make(Record, len(fields))
	for _, fi := range fields {
		fv, ok := fieldByIndex(rv, fi.index)
		if !ok {
			rec[fi.name] = nil
			continue
		}
		if fv.Kind() == reflect.Pointer {
			if fv.IsNil() {
				rec[fi.name] = nil
				continue
			}
			fv = fv.Elem()
		}
		rec[fi.name] = fv.Interface()
	}
	return rec
}

// ProjectStructs projects typed items, see RecordFromStruct and Project.
func ProjectStructs[T any](columns []Column, items []T) []Row {
	records := make([]Record, len(items))
	for i, it := range items {
		records[i] = RecordFromStruct(it)
	}
	return Project(columns, records)
}

// fieldByIndex is reflect.Value.FieldByIndex that stops at nil embedded pointers.
func fieldByIndex(v reflect.Value, index []int) (reflect.Value, bool) {
	for i, x := range index {
		if i > 0 && v.Kind() == reflect.Pointer {
			if v.IsNil() {
				return reflect.Value{}, false
			}
			v = v.Elem()
		}
		v = v.Field(x)
	}
	return v, true
}

func fieldsOf(t reflect.Type) []fieldInfo {
	if cached, ok := typeCache.Load(t); ok {
		return cached.([]fieldInfo)
	}
	fields := collectFields(t, nil)
	typeCache.Store(t, fields)
	return fields
}

func collectFields(t reflect.Type, parent []int) []fieldInfo {
	var out []fieldInfo

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		index := append(append([]int(nil), parent...), i)

		name, tagged := jsonName(field)
		if name == "-" {
			continue
		}

		// Handle embedded structs (flattening)
		if field.Anonymous && !tagged {
			ft := field.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				out = append(out, collectFields(ft, index)...)
				continue
			}
		}

		if !field.IsExported() {
			continue
		}

		out = append(out, fieldInfo{index: index, name: name})
	}

	return out
}

// jsonName returns the json key of a field and whether a name was set by tag.
func jsonName(field reflect.StructField) (string, bool) {
	if tag, ok := field.Tag.Lookup("json"); ok {
		name, _, _ := strings.Cut(tag, ",")
		if name != "" {
			return name, true
		}
	}
	return field.Name, false
}
