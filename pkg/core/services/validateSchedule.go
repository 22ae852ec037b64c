package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/carehome-rota/internal/config"
	"github.com/jakechorley/carehome-rota/pkg/core/model"
	"github.com/jakechorley/carehome-rota/pkg/core/scheduler"
	"github.com/jakechorley/carehome-rota/pkg/db"
)

// ValidateSchedule re-checks a stored run against the hard rules and
// returns the warnings. Useful after the manager hand-edits stored cells.
func ValidateSchedule(
	ctx context.Context,
	database PublishScheduleStore,
	logger *zap.Logger,
	cfg *config.Config,
	runID string,
) ([]string, error) {
	logger.Debug("Validating schedule", zap.String("run_id", runID))

	run, err := findRun(ctx, database, runID)
	if err != nil {
		return nil, err
	}

	records, err := database.GetStaff(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff: %w", err)
	}
	entries, err := database.GetScheduleEntries(ctx, run.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule entries: %w", err)
	}

	staff, assignments := assignmentsFromEntries(records, entries)
	warnings := scheduler.Validate(staff, assignments, run.Year, run.Month, cfg.Generator.Settings())

	logger.Info("Schedule validated",
		zap.String("run_id", runID),
		zap.Int("warnings", len(warnings)))

	return warnings, nil
}

// assignmentsFromEntries rebuilds the in-memory staff list and assignment
// table from stored records. Cells with unknown shift tokens load as Off.
func assignmentsFromEntries(records []db.StaffRecord, entries []db.ScheduleEntry) ([]model.Staff, scheduler.Assignments) {
	staff := make([]model.Staff, 0, len(records))
	for _, r := range records {
		staff = append(staff, r.ToStaff())
	}

	assignments := make(scheduler.Assignments, len(staff))
	for _, e := range entries {
		shift, ok := scheduler.ParseShiftType(e.Shift)
		if !ok {
			shift = scheduler.Off
		}
		row := assignments[e.StaffID]
		if row == nil {
			row = make(map[int]scheduler.ShiftType)
			assignments[e.StaffID] = row
		}
		row[e.Day] = shift
	}

	return staff, assignments
}
