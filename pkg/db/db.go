package db

import "github.com/jakechorley/carehome-rota/pkg/sheetssql"

// DB provides database operations over the SheetsSQL table store
type DB struct {
	ssql *sheetssql.DB
}

// NewDB creates a database over the given SheetsSQL store
func NewDB(ssql *sheetssql.DB) *DB {
	return &DB{ssql: ssql}
}

// Schema returns the table schema the store expects; used by the
// initialisation command to create missing tabs
func Schema() (*sheetssql.Schema, error) {
	return sheetssql.SchemaFromModels(StaffRecord{}, OffRequest{}, ScheduleRun{}, ScheduleEntry{})
}
