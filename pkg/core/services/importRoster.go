package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/carehome-rota/internal/config"
	"github.com/jakechorley/carehome-rota/pkg/db"
)

// ImportRosterStore defines the database operations the roster import needs
type ImportRosterStore interface {
	InsertStaff(records []db.StaffRecord) error
}

// RosterClient defines the sheets operations the roster import needs
type RosterClient interface {
	ListRoster(spreadsheetID, tab string) ([]db.StaffRecord, error)
}

// ImportRoster reads the manager-maintained roster tab and stores its
// staff records
func ImportRoster(
	ctx context.Context,
	database ImportRosterStore,
	client RosterClient,
	cfg *config.Config,
	logger *zap.Logger,
) ([]db.StaffRecord, error) {
	if cfg.RosterSheetID == "" {
		return nil, fmt.Errorf("no roster sheet configured")
	}
	tab := cfg.RosterTab
	if tab == "" {
		tab = "Roster"
	}

	records, err := client.ListRoster(cfg.RosterSheetID, tab)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster: %w", err)
	}

	if err := database.InsertStaff(records); err != nil {
		return nil, fmt.Errorf("failed to insert staff: %w", err)
	}

	logger.Info("Roster imported", zap.Int("staff", len(records)))
	return records, nil
}
