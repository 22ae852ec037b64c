package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/carehome-rota/pkg/db"
)

// InitStoreCmd creates the initStore command, which prepares whichever
// backend the config selects: tabs for the sheets store, migrations for
// postgres
func InitStoreCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "initStore",
		Short: "Create the store's tables if they are missing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case app.PostgresStore != nil:
				if err := app.PostgresStore.RunMigrations(app.Ctx); err != nil {
					return err
				}
				fmt.Println("\n✓ Postgres migrations applied")

			case app.SheetsStore != nil:
				schema, err := db.Schema()
				if err != nil {
					return err
				}
				if err := app.SheetsStore.EnsureTables(schema); err != nil {
					return err
				}
				fmt.Println("\n✓ Sheet store tables ensured")

			default:
				return fmt.Errorf("no store configured")
			}

			return nil
		},
	}
}
