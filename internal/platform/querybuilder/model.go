package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

// InsertModels renders one multi-row insert for table rows of a single struct
// type. Columns come from `db` tags; untagged and "-" fields are skipped.
func InsertModels(table string, models []any, onConflict string) (string, []any, error) {
	if len(models) == 0 {
		return "", nil, fmt.Errorf("insert into %s: no rows", table)
	}

	b := InsertInto(table).OnConflict(onConflict)
	var (
		rowType reflect.Type
		cols    []taggedColumn
	)
	for i, model := range models {
		value, err := structValue(model)
		if err != nil {
			return "", nil, fmt.Errorf("insert into %s row %d: %w", table, i, err)
		}
		if rowType == nil {
			rowType = value.Type()
			cols = taggedColumns(rowType)
			if len(cols) == 0 {
				return "", nil, fmt.Errorf("insert into %s: %s has no db columns", table, rowType)
			}
			names := make([]string, 0, len(cols))
			for _, col := range cols {
				names = append(names, col.name)
			}
			b.Columns(names...)
		} else if value.Type() != rowType {
			return "", nil, fmt.Errorf("insert into %s row %d: got %s, want %s", table, i, value.Type(), rowType)
		}

		vals := make([]any, 0, len(cols))
		for _, col := range cols {
			vals = append(vals, value.Field(col.index).Interface())
		}
		b.Values(vals...)
	}
	return b.ToSQL()
}

type taggedColumn struct {
	name  string
	index int
}

func structValue(model any) (reflect.Value, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return reflect.Value{}, fmt.Errorf("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("model must be a struct, got %s", value.Kind())
	}
	return value, nil
}

func taggedColumns(typ reflect.Type) []taggedColumn {
	out := make([]taggedColumn, 0, typ.NumField())
	for i := range typ.NumField() {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(field.Tag.Get("db"), ",")
		name = strings.TrimSpace(name)
		if name == "" || name == "-" {
			continue
		}
		out = append(out, taggedColumn{name: name, index: i})
	}
	return out
}
