package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jakechorley/carehome-rota/internal/config"
	"github.com/jakechorley/carehome-rota/pkg/clients/formsclient"
	"github.com/jakechorley/carehome-rota/pkg/db"
)

// ImportRequestsStore defines the database operations the import needs
type ImportRequestsStore interface {
	GetStaff(ctx context.Context) ([]db.StaffRecord, error)
	InsertOffRequests(requests []db.OffRequest) error
}

// OffRequestFormClient defines the forms operations the import needs
type OffRequestFormClient interface {
	GetOffRequestResponses(formID string, year, month int) ([]formsclient.OffRequestResponse, error)
}

// ImportOffRequestsResult summarises one import
type ImportOffRequestsResult struct {
	Imported     []db.OffRequest
	UnknownNames []string
}

// ImportOffRequests pulls the requested-off form responses for a month,
// resolves staff by their roster name, and stores the matched days.
// Responses naming nobody on the roster are reported, not fatal.
func ImportOffRequests(
	ctx context.Context,
	database ImportRequestsStore,
	formsClient OffRequestFormClient,
	cfg *config.Config,
	logger *zap.Logger,
	year, month int,
) (*ImportOffRequestsResult, error) {
	if cfg.OffRequestFormID == "" {
		return nil, fmt.Errorf("no off-request form configured")
	}

	logger.Debug("Importing off requests", zap.Int("year", year), zap.Int("month", month))

	records, err := database.GetStaff(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff: %w", err)
	}
	idByName := make(map[string]string, len(records))
	for _, r := range records {
		idByName[r.Name] = r.ID
	}

	responses, err := formsClient.GetOffRequestResponses(cfg.OffRequestFormID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch form responses: %w", err)
	}

	result := &ImportOffRequestsResult{}
	for _, response := range responses {
		staffID, known := idByName[response.StaffName]
		if !known {
			logger.Warn("Form response names nobody on the roster",
				zap.String("name", response.StaffName),
				zap.String("email", response.Email))
			result.UnknownNames = append(result.UnknownNames, response.StaffName)
			continue
		}
		for _, day := range response.Days {
			result.Imported = append(result.Imported, db.OffRequest{
				ID:      uuid.New().String(),
				StaffID: staffID,
				Year:    year,
				Month:   month,
				Day:     day,
			})
		}
	}

	if err := database.InsertOffRequests(result.Imported); err != nil {
		return nil, fmt.Errorf("failed to insert off requests: %w", err)
	}

	logger.Info("Off requests imported",
		zap.Int("imported", len(result.Imported)),
		zap.Int("unknown_names", len(result.UnknownNames)))

	return result, nil
}
