package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/carehome-rota/pkg/core/services"
)

// ImportRosterCmd creates the importRoster command
func ImportRosterCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "importRoster",
		Short: "Import staff records from the roster spreadsheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := services.ImportRoster(app.Ctx, app.Database, app.SheetsClient, app.Cfg, app.Logger)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Imported %d staff records\n\n", len(records))
			for _, r := range records {
				fmt.Printf("  %-24s %-5s night=%s\n", r.Name, r.Kind, r.Night)
			}
			fmt.Println()

			return nil
		},
	}
}
