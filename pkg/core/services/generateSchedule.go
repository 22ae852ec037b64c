package services

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jakechorley/carehome-rota/internal/config"
	"github.com/jakechorley/carehome-rota/pkg/core/model"
	"github.com/jakechorley/carehome-rota/pkg/core/scheduler"
	"github.com/jakechorley/carehome-rota/pkg/db"
)

// GenerateScheduleStore defines the database operations the generation
// service needs
type GenerateScheduleStore interface {
	GetStaff(ctx context.Context) ([]db.StaffRecord, error)
	GetOffRequests(ctx context.Context, year, month int) ([]db.OffRequest, error)
	InsertScheduleRun(run *db.ScheduleRun) error
	InsertScheduleEntries(entries []db.ScheduleEntry) error
}

// GenerateScheduleResult is what a generation run produces
type GenerateScheduleResult struct {
	Run   db.ScheduleRun
	Staff []model.Staff
	// Result carries the assignment table and the warnings list
	Result *scheduler.Result
}

// GenerateSchedule loads the roster and the month's requested-off days,
// runs the schedule generator, and stores the resulting run. The schedule
// comes back best-effort: constraint failures are warnings on the result,
// never errors. rng may be nil outside tests.
func GenerateSchedule(
	ctx context.Context,
	database GenerateScheduleStore,
	logger *zap.Logger,
	cfg *config.Config,
	year, month int,
	rng *rand.Rand,
) (*GenerateScheduleResult, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("month must be 1-12, got %d", month)
	}

	logger.Debug("Generating schedule", zap.Int("year", year), zap.Int("month", month))

	records, err := database.GetStaff(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff: %w", err)
	}
	if len(records) == 0 {
		logger.Warn("Roster is empty; the generated schedule will only carry warnings")
	}

	staff := make([]model.Staff, 0, len(records))
	for _, r := range records {
		staff = append(staff, r.ToStaff())
	}

	// Stored one-off requests plus the recurring unavailability rules
	stored, err := database.GetOffRequests(ctx, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch off requests: %w", err)
	}
	requests := ExpandStaffRules(cfg.StaffRules, year, month)
	for _, r := range stored {
		requests[r.StaffID] = append(requests[r.StaffID], r.Day)
	}

	logger.Debug("Inputs assembled",
		zap.Int("staff", len(staff)),
		zap.Int("stored_requests", len(stored)),
		zap.Int("rule_staff", len(cfg.StaffRules)))

	result := scheduler.Generate(staff, year, month, requests, cfg.Generator.Settings(), rng)

	run := db.ScheduleRun{
		ID:           uuid.New().String(),
		Year:         year,
		Month:        month,
		GeneratedAt:  time.Now().UTC().Format(time.RFC3339),
		WarningCount: len(result.Warnings),
	}
	if err := database.InsertScheduleRun(&run); err != nil {
		return nil, fmt.Errorf("failed to insert schedule run: %w", err)
	}

	entries := make([]db.ScheduleEntry, 0, len(staff)*31)
	for _, s := range staff {
		row := result.Assignments[s.ID]
		for day := 1; day <= len(row); day++ {
			entries = append(entries, db.ScheduleEntry{
				ID:      uuid.New().String(),
				RunID:   run.ID,
				StaffID: s.ID,
				Day:     day,
				Shift:   row[day].String(),
			})
		}
	}
	if err := database.InsertScheduleEntries(entries); err != nil {
		return nil, fmt.Errorf("failed to insert schedule entries: %w", err)
	}

	logger.Info("Schedule generated",
		zap.String("run_id", run.ID),
		zap.Int("staff", len(staff)),
		zap.Int("warnings", len(result.Warnings)))

	return &GenerateScheduleResult{Run: run, Staff: staff, Result: result}, nil
}
