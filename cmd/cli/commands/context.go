package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/jakechorley/carehome-rota/internal/config"
	"github.com/jakechorley/carehome-rota/pkg/clients/formsclient"
	"github.com/jakechorley/carehome-rota/pkg/clients/gmailclient"
	"github.com/jakechorley/carehome-rota/pkg/clients/sheetsclient"
	"github.com/jakechorley/carehome-rota/pkg/db"
	"github.com/jakechorley/carehome-rota/pkg/postgres"
	"github.com/jakechorley/carehome-rota/pkg/sheetssql"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg          *config.Config
	SheetsClient *sheetsclient.Client
	FormsClient  *formsclient.Client
	GmailClient  *gmailclient.Client
	Database     db.Database

	// Concrete store handles for the backend-specific initStore command;
	// exactly one is non-nil depending on the configured backend
	SheetsStore   *sheetssql.DB
	PostgresStore *postgres.DB

	Logger *zap.Logger
	Ctx    context.Context
}
