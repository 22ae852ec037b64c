package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/carehome-rota/pkg/core/services"
)

// ImportRequestsCmd creates the importRequests command
func ImportRequestsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "importRequests <year> <month>",
		Short: "Import requested-off days from the staff form",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, err := parseYearMonth(args)
			if err != nil {
				return err
			}

			result, err := services.ImportOffRequests(app.Ctx, app.Database, app.FormsClient,
				app.Cfg, app.Logger, year, month)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Imported %d requested-off days\n", len(result.Imported))
			for _, name := range result.UnknownNames {
				fmt.Printf("  ! %q is not on the roster; response skipped\n", name)
			}
			fmt.Println()

			return nil
		},
	}
}
