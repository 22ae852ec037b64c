package sheetssql

import (
	"fmt"
	"reflect"
)

// Column describes one column of a table
type Column struct {
	Name string
	Type string
}

// Table describes one tab of the spreadsheet store
type Table struct {
	Name    string
	Columns []Column
}

// Schema is the full set of tables the store expects
type Schema struct {
	Tables []Table
}

// SchemaFromModels derives the schema from the given model structs. Every
// exported field must carry both an ssql_header and an ssql_type tag.
func SchemaFromModels(models ...interface{}) (*Schema, error) {
	schema := &Schema{}

	for _, model := range models {
		t := reflect.TypeOf(model)
		if t.Kind() == reflect.Ptr {
			t = t.Elem()
		}

		table := Table{Name: toSnakeCase(t.Name())}
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			name := field.Tag.Get("ssql_header")
			if name == "" {
				return nil, fmt.Errorf("field %s.%s is missing 'ssql_header' tag", t.Name(), field.Name)
			}
			colType := field.Tag.Get("ssql_type")
			if colType == "" {
				return nil, fmt.Errorf("field %s.%s is missing 'ssql_type' tag", t.Name(), field.Name)
			}
			table.Columns = append(table.Columns, Column{Name: name, Type: colType})
		}
		schema.Tables = append(schema.Tables, table)
	}

	return schema, nil
}

// EnsureTables creates a tab for every table missing from the spreadsheet
// and writes its header and type rows
func (db *DB) EnsureTables(schema *Schema) error {
	for _, table := range schema.Tables {
		// An existing tab answers the values call; a missing one errors
		if _, err := db.client.GetValues(db.spreadsheetID, table.Name); err == nil {
			continue
		}

		if _, err := db.client.CreateSheet(db.spreadsheetID, table.Name); err != nil {
			return fmt.Errorf("failed to create table %s: %w", table.Name, err)
		}

		headers := make([]interface{}, len(table.Columns))
		types := make([]interface{}, len(table.Columns))
		for i, col := range table.Columns {
			headers[i] = col.Name
			types[i] = col.Type
		}
		if err := db.client.AppendRows(db.spreadsheetID, table.Name, [][]interface{}{headers, types}); err != nil {
			return fmt.Errorf("failed to write header for table %s: %w", table.Name, err)
		}
	}
	return nil
}
