package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jakechorley/carehome-rota/pkg/db"
)

// GetScheduleRuns retrieves all generation-run records
func (d *DB) GetScheduleRuns(ctx context.Context) ([]db.ScheduleRun, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, year, month, generated_at, warning_count
		FROM schedule_run
		ORDER BY generated_at
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedule runs: %w", err)
	}
	defer rows.Close()

	var runs []db.ScheduleRun
	for rows.Next() {
		var r db.ScheduleRun
		var generatedAt time.Time
		if err := rows.Scan(&r.ID, &r.Year, &r.Month, &generatedAt, &r.WarningCount); err != nil {
			return nil, fmt.Errorf("failed to scan schedule run: %w", err)
		}
		r.GeneratedAt = generatedAt.UTC().Format(time.RFC3339)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating schedule runs: %w", err)
	}

	return runs, nil
}

// InsertScheduleRun inserts a new generation-run record
func (d *DB) InsertScheduleRun(run *db.ScheduleRun) error {
	generatedAt, err := time.Parse(time.RFC3339, run.GeneratedAt)
	if err != nil {
		return fmt.Errorf("invalid generated_at timestamp: %w", err)
	}

	_, err = d.pool.Exec(context.Background(), `
		INSERT INTO schedule_run (id, year, month, generated_at, warning_count)
		VALUES ($1, $2, $3, $4, $5)
	`, run.ID, run.Year, run.Month, generatedAt.UTC(), run.WarningCount)
	if err != nil {
		return fmt.Errorf("failed to insert schedule run: %w", err)
	}
	return nil
}

// GetScheduleEntries retrieves the cells of one generated schedule
func (d *DB) GetScheduleEntries(ctx context.Context, runID string) ([]db.ScheduleEntry, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, run_id, staff_id, day, shift
		FROM schedule_entry
		WHERE run_id = $1
		ORDER BY staff_id, day
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedule entries: %w", err)
	}
	defer rows.Close()

	var entries []db.ScheduleEntry
	for rows.Next() {
		var e db.ScheduleEntry
		if err := rows.Scan(&e.ID, &e.RunID, &e.StaffID, &e.Day, &e.Shift); err != nil {
			return nil, fmt.Errorf("failed to scan schedule entry: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating schedule entries: %w", err)
	}

	return entries, nil
}

// InsertScheduleEntries inserts schedule cells in a single transaction
func (d *DB) InsertScheduleEntries(entries []db.ScheduleEntry) error {
	if len(entries) == 0 {
		return nil
	}

	ctx := context.Background()
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, e := range entries {
		_, err := tx.Exec(ctx, `
			INSERT INTO schedule_entry (id, run_id, staff_id, day, shift)
			VALUES ($1, $2, $3, $4, $5)
		`, e.ID, e.RunID, e.StaffID, e.Day, e.Shift)
		if err != nil {
			return fmt.Errorf("failed to insert schedule entry: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
