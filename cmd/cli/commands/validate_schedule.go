package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/carehome-rota/pkg/core/services"
)

// ValidateScheduleCmd creates the validateSchedule command
func ValidateScheduleCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validateSchedule <run-id>",
		Short: "Re-check a stored schedule against the hard rules",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			warnings, err := services.ValidateSchedule(app.Ctx, app.Database, app.Logger, app.Cfg, args[0])
			if err != nil {
				return err
			}

			if len(warnings) == 0 {
				fmt.Println("\n✓ Schedule is clean")
				return nil
			}

			fmt.Printf("\n%d warnings:\n\n", len(warnings))
			for _, w := range warnings {
				fmt.Printf("  ! %s\n", w)
			}
			fmt.Println()

			return nil
		},
	}
}
