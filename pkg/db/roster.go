package db

import (
	"context"
	"fmt"

	"github.com/jakechorley/carehome-rota/pkg/sheetssql"
)

// GetStaff retrieves every roster record
func (db *DB) GetStaff(ctx context.Context) ([]StaffRecord, error) {
	records, err := sheetssql.GetTableAs[StaffRecord](db.ssql, "staff_record")
	if err != nil {
		return nil, fmt.Errorf("failed to get staff records: %w", err)
	}
	return records, nil
}

// InsertStaff appends roster records
func (db *DB) InsertStaff(records []StaffRecord) error {
	if err := sheetssql.InsertModels(db.ssql, records); err != nil {
		return fmt.Errorf("failed to insert staff records: %w", err)
	}
	return nil
}

// GetOffRequests retrieves the requested-off days for one month
func (db *DB) GetOffRequests(ctx context.Context, year, month int) ([]OffRequest, error) {
	all, err := sheetssql.GetTableAs[OffRequest](db.ssql, "off_request")
	if err != nil {
		return nil, fmt.Errorf("failed to get off requests: %w", err)
	}
	var requests []OffRequest
	for _, r := range all {
		if r.Year == year && r.Month == month {
			requests = append(requests, r)
		}
	}
	return requests, nil
}

// InsertOffRequests appends requested-off records
func (db *DB) InsertOffRequests(requests []OffRequest) error {
	if err := sheetssql.InsertModels(db.ssql, requests); err != nil {
		return fmt.Errorf("failed to insert off requests: %w", err)
	}
	return nil
}
