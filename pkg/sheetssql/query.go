package sheetssql

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// GetTableAs retrieves all rows from a table and maps them to structs of
// type T via their ssql_header tags. The first two rows (column names and
// column types) are skipped.
func GetTableAs[T any](db *DB, tableName string) ([]T, error) {
	values, err := db.client.GetValues(db.spreadsheetID, tableName)
	if err != nil {
		return nil, fmt.Errorf("failed to get table %s: %w", tableName, err)
	}

	// Headers, types, and at least one data row
	if len(values) < 3 {
		return []T{}, nil
	}
	headers := values[0]
	dataRows := values[2:]

	var zero T
	t := reflect.TypeOf(zero)

	columnIndexes := make(map[string]int)
	for i, header := range headers {
		if name, ok := header.(string); ok {
			columnIndexes[name] = i
		}
	}

	fieldByColumn := make(map[string]reflect.StructField)
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if column := field.Tag.Get("ssql_header"); column != "" {
			fieldByColumn[column] = field
		}
	}

	results := make([]T, 0, len(dataRows))
	for rowIdx, row := range dataRows {
		result := reflect.New(t).Elem()
		for column, colIdx := range columnIndexes {
			field, mapped := fieldByColumn[column]
			if !mapped || colIdx >= len(row) || row[colIdx] == nil {
				continue
			}
			if err := setFieldValue(result.FieldByName(field.Name), row[colIdx]); err != nil {
				return nil, fmt.Errorf("row %d, column %s: %w", rowIdx+3, column, err)
			}
		}
		results = append(results, result.Interface().(T))
	}

	return results, nil
}

// setFieldValue converts a sheet cell (always a string from the API) into
// the field's Go type
func setFieldValue(field reflect.Value, cellValue interface{}) error {
	if !field.CanSet() {
		return fmt.Errorf("field cannot be set")
	}
	cell, ok := cellValue.(string)
	if !ok {
		return fmt.Errorf("cell value is not a string")
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(cell)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if cell == "" {
			field.SetInt(0)
			return nil
		}
		n, err := strconv.ParseInt(cell, 10, 64)
		if err != nil {
			return fmt.Errorf("failed to parse int: %w", err)
		}
		field.SetInt(n)

	case reflect.Bool:
		if cell == "" {
			field.SetBool(false)
			return nil
		}
		b, err := strconv.ParseBool(cell)
		if err != nil {
			return fmt.Errorf("failed to parse bool: %w", err)
		}
		field.SetBool(b)

	default:
		return fmt.Errorf("unsupported field type: %s", field.Kind())
	}

	return nil
}

// InsertModel appends a struct as one row of its table. The table name is
// the snake_case of the struct name.
func InsertModel[T any](db *DB, model T) error {
	return InsertModels(db, []T{model})
}

// InsertModels appends multiple structs as rows of their table
func InsertModels[T any](db *DB, models []T) error {
	if len(models) == 0 {
		return nil
	}

	t := reflect.TypeOf(models[0])
	tableName := toSnakeCase(t.Name())

	rows := make([][]interface{}, 0, len(models))
	for _, model := range models {
		v := reflect.ValueOf(model)
		row := make([]interface{}, 0, t.NumField())
		for i := 0; i < t.NumField(); i++ {
			if t.Field(i).Tag.Get("ssql_header") == "" {
				continue
			}
			row = append(row, v.Field(i).Interface())
		}
		rows = append(rows, row)
	}

	return db.InsertRows(tableName, rows)
}

// toSnakeCase converts a CamelCase struct name to its snake_case table name
func toSnakeCase(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
