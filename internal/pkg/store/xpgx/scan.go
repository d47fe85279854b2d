package xpgx

import (
	"fmt"
	"github.com/jackc/pgx/v5"
	"reflect"
	"strings"
)

// ScanAll reads every row into dest, which must point to a slice of structs or of
// struct pointers. Columns are matched to `db` tags, falling back to the lowercased
// field name. rows is always closed.
func ScanAll(rows pgx.Rows, dest interface{}) error {
	defer rows.Close()

	slice := reflect.ValueOf(dest)
	if slice.Kind() != reflect.Pointer || slice.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("xpgx: dest must be a pointer to a slice, got %T", dest)
	}
	slice = slice.Elem()

	elemType := slice.Type().Elem()
	isPtr := elemType.Kind() == reflect.Pointer
	structType := elemType
	if isPtr {
		structType = elemType.Elem()
	}
	if structType.Kind() != reflect.Struct {
		return fmt.Errorf("xpgx: slice element must be a struct, got %s", elemType)
	}

	indexes, err := columnIndexes(rows, structType)
	if err != nil {
		return err
	}

	slice.SetLen(0)
	for rows.Next() {
		item := reflect.New(structType)
		if err := scanInto(rows, item.Elem(), indexes); err != nil {
			return err
		}
		if isPtr {
			slice.Set(reflect.Append(slice, item))
		} else {
			slice.Set(reflect.Append(slice, item.Elem()))
		}
	}

	return rows.Err()
}

// ScanOne reads the first row into dest, a pointer to a struct.
func ScanOne(rows pgx.Rows, dest interface{}) error {
	defer rows.Close()

	item := reflect.ValueOf(dest)
	if item.Kind() != reflect.Pointer || item.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("xpgx: dest must be a pointer to a struct, got %T", dest)
	}

	indexes, err := columnIndexes(rows, item.Elem().Type())
	if err != nil {
		return err
	}

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return err
		}
		return pgx.ErrNoRows
	}

	return scanInto(rows, item.Elem(), indexes)
}

func scanInto(rows pgx.Rows, item reflect.Value, indexes []int) error {
	targets := make([]interface{}, len(indexes))
	for i, idx := range indexes {
		targets[i] = item.Field(idx).Addr().Interface()
	}
	return rows.Scan(targets...)
}

func columnIndexes(rows pgx.Rows, structType reflect.Type) ([]int, error) {
	fields := rows.FieldDescriptions()
	indexes := make([]int, len(fields))
	for i, fd := range fields {
		idx, ok := fieldByColumn(structType, fd.Name)
		if !ok {
			return nil, fmt.Errorf("xpgx: column %q has no field in %s", fd.Name, structType)
		}
		indexes[i] = idx
	}
	return indexes, nil
}

func fieldByColumn(structType reflect.Type, column string) (int, bool) {
	for i := 0; i < structType.NumField(); i++ {
		f := structType.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Tag.Get("db")
		if name == "-" {
			continue
		}
		if name == "" {
			name = strings.ToLower(f.Name)
		}
		if name == column {
			return i, true
		}
	}
	return 0, false
}
