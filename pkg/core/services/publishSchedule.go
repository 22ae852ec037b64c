package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/carehome-rota/internal/config"
	"github.com/jakechorley/carehome-rota/pkg/clients/sheetsclient"
	"github.com/jakechorley/carehome-rota/pkg/core/scheduler"
	"github.com/jakechorley/carehome-rota/pkg/db"
)

// PublishScheduleStore defines the database operations publishing needs
type PublishScheduleStore interface {
	GetStaff(ctx context.Context) ([]db.StaffRecord, error)
	GetScheduleRuns(ctx context.Context) ([]db.ScheduleRun, error)
	GetScheduleEntries(ctx context.Context, runID string) ([]db.ScheduleEntry, error)
}

// SchedulePublisher defines the sheets operations publishing needs
type SchedulePublisher interface {
	PublishSchedule(spreadsheetID string, schedule *sheetsclient.PublishedSchedule) error
}

// PublishSchedule renders a stored run as the month grid and writes it to
// the configured spreadsheet, together with the run's warnings re-derived
// by the validator.
func PublishSchedule(
	ctx context.Context,
	database PublishScheduleStore,
	publisher SchedulePublisher,
	cfg *config.Config,
	logger *zap.Logger,
	runID string,
) (*sheetsclient.PublishedSchedule, error) {
	logger.Debug("Publishing schedule", zap.String("run_id", runID))

	run, err := findRun(ctx, database, runID)
	if err != nil {
		return nil, err
	}

	schedule, err := loadSchedule(ctx, database, run)
	if err != nil {
		return nil, err
	}

	if err := publisher.PublishSchedule(cfg.ScheduleSheetID, schedule); err != nil {
		return nil, fmt.Errorf("failed to publish schedule: %w", err)
	}

	logger.Info("Schedule published",
		zap.String("run_id", runID),
		zap.String("tab", schedule.TabTitle()))

	return schedule, nil
}

// findRun looks a run record up by id
func findRun(ctx context.Context, database PublishScheduleStore, runID string) (*db.ScheduleRun, error) {
	runs, err := database.GetScheduleRuns(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule runs: %w", err)
	}
	for i := range runs {
		if runs[i].ID == runID {
			return &runs[i], nil
		}
	}
	return nil, fmt.Errorf("no schedule run with id %s", runID)
}

// loadSchedule assembles the publishable grid for a stored run. Staff rows
// come out in roster order; the warnings block is re-derived by validating
// the stored cells so a hand-edited store still reports honestly.
func loadSchedule(ctx context.Context, database PublishScheduleStore, run *db.ScheduleRun) (*sheetsclient.PublishedSchedule, error) {
	records, err := database.GetStaff(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff: %w", err)
	}

	entries, err := database.GetScheduleEntries(ctx, run.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule entries: %w", err)
	}

	staff, assignments := assignmentsFromEntries(records, entries)

	days := 0
	for _, row := range assignments {
		for day := range row {
			if day > days {
				days = day
			}
		}
	}

	schedule := &sheetsclient.PublishedSchedule{
		Year:     run.Year,
		Month:    run.Month,
		Days:     days,
		Warnings: scheduler.Validate(staff, assignments, run.Year, run.Month, scheduler.Settings{}),
	}

	for _, s := range staff {
		row := sheetsclient.PublishedScheduleRow{Name: s.Name}
		for day := 1; day <= days; day++ {
			row.Shifts = append(row.Shifts, assignments[s.ID][day].String())
		}
		schedule.Rows = append(schedule.Rows, row)
	}

	return schedule, nil
}
