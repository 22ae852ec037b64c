package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jakechorley/carehome-rota/cmd/cli/commands"
	"github.com/jakechorley/carehome-rota/internal/config"
	"github.com/jakechorley/carehome-rota/pkg/clients/formsclient"
	"github.com/jakechorley/carehome-rota/pkg/clients/gmailclient"
	"github.com/jakechorley/carehome-rota/pkg/clients/sheetsclient"
	"github.com/jakechorley/carehome-rota/pkg/db"
	"github.com/jakechorley/carehome-rota/pkg/postgres"
	"github.com/jakechorley/carehome-rota/pkg/sheetssql"
	"github.com/jakechorley/carehome-rota/pkg/utils/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := os.Getenv("CAREHOME_ROTA_CONFIG")
	if configPath == "" {
		configPath = "config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, err := logging.InitLogger(cfg.Environment)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx := context.Background()
	app := &commands.AppContext{Cfg: cfg, Logger: logger, Ctx: ctx}

	// The Google clients share one OAuth token; the first client built
	// runs the flow if none is cached
	app.SheetsClient, err = sheetsclient.NewClient(ctx, cfg.OAuth, cfg.Environment)
	if err != nil {
		return fmt.Errorf("failed to create sheets client: %w", err)
	}
	app.FormsClient, err = formsclient.NewClient(ctx, cfg.OAuth, cfg.Environment)
	if err != nil {
		return fmt.Errorf("failed to create forms client: %w", err)
	}
	app.GmailClient, err = gmailclient.NewClient(ctx, cfg.OAuth, cfg.Environment)
	if err != nil {
		return fmt.Errorf("failed to create gmail client: %w", err)
	}

	switch cfg.DatabaseBackend {
	case "postgres":
		store, err := postgres.NewDB(ctx, cfg.PostgresURL)
		if err != nil {
			return fmt.Errorf("failed to connect to postgres: %w", err)
		}
		defer store.Close()
		app.PostgresStore = store
		app.Database = store
	default:
		ssql := sheetssql.NewDB(app.SheetsClient, cfg.DatabaseSheetID)
		app.SheetsStore = ssql
		app.Database = db.NewDB(ssql)
	}

	rootCmd := &cobra.Command{
		Use:           "carehome-rota",
		Short:         "Monthly shift-schedule generator for a small care facility",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		commands.InitStoreCmd(app),
		commands.ImportRosterCmd(app),
		commands.ImportRequestsCmd(app),
		commands.GenerateScheduleCmd(app),
		commands.ValidateScheduleCmd(app),
		commands.CheckEditCmd(app),
		commands.PublishScheduleCmd(app),
	)

	return rootCmd.Execute()
}
