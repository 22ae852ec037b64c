package postgres

import (
	"context"
	"fmt"

	"github.com/jakechorley/carehome-rota/pkg/db"
)

// GetStaff retrieves every roster record
func (d *DB) GetStaff(ctx context.Context) ([]db.StaffRecord, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name, kind, night, can_overtime, early_only, late_only,
		       off_target, max_days_per_week, max_consecutive,
		       start_time, end_time, allow_plus_one
		FROM staff_record
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query staff records: %w", err)
	}
	defer rows.Close()

	var records []db.StaffRecord
	for rows.Next() {
		var r db.StaffRecord
		if err := rows.Scan(&r.ID, &r.Name, &r.Kind, &r.Night, &r.CanOvertime,
			&r.EarlyOnly, &r.LateOnly, &r.OffTarget, &r.MaxDaysPerWeek,
			&r.MaxConsecutive, &r.StartTime, &r.EndTime, &r.AllowPlusOne); err != nil {
			return nil, fmt.Errorf("failed to scan staff record: %w", err)
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating staff records: %w", err)
	}

	return records, nil
}

// InsertStaff inserts roster records in a single transaction
func (d *DB) InsertStaff(records []db.StaffRecord) error {
	if len(records) == 0 {
		return nil
	}

	ctx := context.Background()
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, r := range records {
		_, err := tx.Exec(ctx, `
			INSERT INTO staff_record (id, name, kind, night, can_overtime, early_only,
				late_only, off_target, max_days_per_week, max_consecutive,
				start_time, end_time, allow_plus_one)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		`, r.ID, r.Name, r.Kind, r.Night, r.CanOvertime, r.EarlyOnly, r.LateOnly,
			r.OffTarget, r.MaxDaysPerWeek, r.MaxConsecutive, r.StartTime, r.EndTime, r.AllowPlusOne)
		if err != nil {
			return fmt.Errorf("failed to insert staff record: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetOffRequests retrieves the requested-off days for one month
func (d *DB) GetOffRequests(ctx context.Context, year, month int) ([]db.OffRequest, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, staff_id, year, month, day
		FROM off_request
		WHERE year = $1 AND month = $2
		ORDER BY staff_id, day
	`, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to query off requests: %w", err)
	}
	defer rows.Close()

	var requests []db.OffRequest
	for rows.Next() {
		var r db.OffRequest
		if err := rows.Scan(&r.ID, &r.StaffID, &r.Year, &r.Month, &r.Day); err != nil {
			return nil, fmt.Errorf("failed to scan off request: %w", err)
		}
		requests = append(requests, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating off requests: %w", err)
	}

	return requests, nil
}

// InsertOffRequests inserts requested-off records in a single transaction
func (d *DB) InsertOffRequests(requests []db.OffRequest) error {
	if len(requests) == 0 {
		return nil
	}

	ctx := context.Background()
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, r := range requests {
		_, err := tx.Exec(ctx, `
			INSERT INTO off_request (id, staff_id, year, month, day)
			VALUES ($1, $2, $3, $4, $5)
		`, r.ID, r.StaffID, r.Year, r.Month, r.Day)
		if err != nil {
			return fmt.Errorf("failed to insert off request: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
