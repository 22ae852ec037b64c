package db

import (
	"context"
	"fmt"

	"github.com/jakechorley/carehome-rota/pkg/sheetssql"
)

// GetScheduleRuns retrieves all generation-run records
func (db *DB) GetScheduleRuns(ctx context.Context) ([]ScheduleRun, error) {
	runs, err := sheetssql.GetTableAs[ScheduleRun](db.ssql, "schedule_run")
	if err != nil {
		return nil, fmt.Errorf("failed to get schedule runs: %w", err)
	}
	return runs, nil
}

// InsertScheduleRun appends one generation-run record
func (db *DB) InsertScheduleRun(run *ScheduleRun) error {
	if err := sheetssql.InsertModel(db.ssql, *run); err != nil {
		return fmt.Errorf("failed to insert schedule run: %w", err)
	}
	return nil
}

// GetScheduleEntries retrieves the cells of one generated schedule
func (db *DB) GetScheduleEntries(ctx context.Context, runID string) ([]ScheduleEntry, error) {
	all, err := sheetssql.GetTableAs[ScheduleEntry](db.ssql, "schedule_entry")
	if err != nil {
		return nil, fmt.Errorf("failed to get schedule entries: %w", err)
	}
	var entries []ScheduleEntry
	for _, e := range all {
		if e.RunID == runID {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

// InsertScheduleEntries appends schedule cells in one batch
func (db *DB) InsertScheduleEntries(entries []ScheduleEntry) error {
	if err := sheetssql.InsertModels(db.ssql, entries); err != nil {
		return fmt.Errorf("failed to insert schedule entries: %w", err)
	}
	return nil
}
