package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jakechorley/carehome-rota/pkg/core/services"
)

// GenerateScheduleCmd creates the generateSchedule command
func GenerateScheduleCmd(app *AppContext) *cobra.Command {
	var email bool

	cmd := &cobra.Command{
		Use:   "generateSchedule <year> <month>",
		Short: "Generate the month's shift schedule and store it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, err := parseYearMonth(args)
			if err != nil {
				return err
			}

			result, err := services.GenerateSchedule(app.Ctx, app.Database, app.Logger, app.Cfg, year, month, nil)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Schedule generated!\n\n")
			fmt.Printf("Run ID:   %s\n", result.Run.ID)
			fmt.Printf("Month:    %d-%02d\n", result.Run.Year, result.Run.Month)
			fmt.Printf("Staff:    %d\n", len(result.Staff))
			fmt.Printf("Warnings: %d\n\n", len(result.Result.Warnings))

			for _, w := range result.Result.Warnings {
				fmt.Printf("  ! %s\n", w)
			}
			if len(result.Result.Warnings) > 0 {
				fmt.Println()
			}

			if email {
				if err := services.SendWarningDigest(app.GmailClient, app.Cfg, app.Logger,
					result.Run, result.Result.Warnings); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&email, "email", false, "mail the warning digest to the manager")
	return cmd
}

// parseYearMonth parses the shared <year> <month> argument pair
func parseYearMonth(args []string) (int, int, error) {
	year, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("year must be a number: %w", err)
	}
	month, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("month must be a number: %w", err)
	}
	if month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("month must be 1-12, got %d", month)
	}
	return year, month, nil
}
