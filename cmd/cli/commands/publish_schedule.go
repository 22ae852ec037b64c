package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/carehome-rota/pkg/core/services"
)

// PublishScheduleCmd creates the publishSchedule command
func PublishScheduleCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "publishSchedule <run-id>",
		Short: "Publish a stored schedule to the schedule spreadsheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schedule, err := services.PublishSchedule(app.Ctx, app.Database, app.SheetsClient,
				app.Cfg, app.Logger, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Schedule published to tab %q\n", schedule.TabTitle())
			if len(schedule.Warnings) > 0 {
				fmt.Printf("  %d warnings are listed below the grid\n", len(schedule.Warnings))
			}
			fmt.Println()

			return nil
		},
	}
}
