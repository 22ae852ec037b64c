package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/carehome-rota/internal/config"
	"github.com/jakechorley/carehome-rota/pkg/core/scheduler"
)

// CheckEdit previews a manual edit of one stored schedule cell: the change
// is probed against a copy of the staff's row and the would-be warnings
// come back. Nothing is written.
func CheckEdit(
	ctx context.Context,
	database PublishScheduleStore,
	logger *zap.Logger,
	cfg *config.Config,
	runID, staffID string,
	day int,
	shift scheduler.ShiftType,
) ([]string, error) {
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
	for _, s := range staff {
		if s.ID != staffID {
			continue
		}
		warnings := scheduler.EditWarnings(s, assignments, day, shift,
			run.Year, run.Month, cfg.Generator.Settings())
		logger.Debug("Edit checked",
			zap.String("run_id", runID),
			zap.String("staff_id", staffID),
			zap.Int("day", day),
			zap.Int("warnings", len(warnings)))
		return warnings, nil
	}

	return nil, fmt.Errorf("no staff with id %s", staffID)
}
