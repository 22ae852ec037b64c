package sheetssql

import "fmt"

// ValuesClient is the slice of the Sheets client the table store needs
type ValuesClient interface {
	GetValues(spreadsheetID, sheetRange string) ([][]interface{}, error)
	AppendRows(spreadsheetID, sheetRange string, values [][]interface{}) error
	CreateSheet(spreadsheetID, sheetTitle string) (int64, error)
}

// DB treats one spreadsheet as a set of tables: each tab is a table whose
// first row holds column names and second row holds column types
type DB struct {
	client        ValuesClient
	spreadsheetID string
}

// NewDB creates a table store over the given spreadsheet
func NewDB(client ValuesClient, spreadsheetID string) *DB {
	return &DB{client: client, spreadsheetID: spreadsheetID}
}

// InsertRow appends a single row to a table
func (db *DB) InsertRow(tableName string, row []interface{}) error {
	return db.InsertRows(tableName, [][]interface{}{row})
}

// InsertRows appends rows to a table
func (db *DB) InsertRows(tableName string, rows [][]interface{}) error {
	if len(rows) == 0 {
		return nil
	}
	if err := db.client.AppendRows(db.spreadsheetID, tableName, rows); err != nil {
		return fmt.Errorf("failed to append to table %s: %w", tableName, err)
	}
	return nil
}
