package db

import "context"

// RosterStore defines the roster-side database operations
type RosterStore interface {
	GetStaff(ctx context.Context) ([]StaffRecord, error)
	InsertStaff(records []StaffRecord) error
	GetOffRequests(ctx context.Context, year, month int) ([]OffRequest, error)
	InsertOffRequests(requests []OffRequest) error
}

// ScheduleStore defines the schedule-side database operations
type ScheduleStore interface {
	GetScheduleRuns(ctx context.Context) ([]ScheduleRun, error)
	InsertScheduleRun(run *ScheduleRun) error
	GetScheduleEntries(ctx context.Context, runID string) ([]ScheduleEntry, error)
	InsertScheduleEntries(entries []ScheduleEntry) error
}

// Database is the full store surface. Both the SheetsSQL-backed db.DB and
// postgres.DB implement this interface.
type Database interface {
	RosterStore
	ScheduleStore
}
