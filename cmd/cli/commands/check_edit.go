package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jakechorley/carehome-rota/pkg/core/scheduler"
	"github.com/jakechorley/carehome-rota/pkg/core/services"
)

// CheckEditCmd creates the checkEdit command: a dry run of a single cell
// edit against a stored schedule, reporting the rules the edit would break
func CheckEditCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "checkEdit <run-id> <staff-id> <day> <shift>",
		Short: "Preview the warnings a manual cell edit would cause",
		Long: "Shift is given as its display token: 休 (off), A (early), B (late), " +
			"夜 (night), 明 (night-off), A残 (overtime), P (part)",
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			runID, staffID := args[0], args[1]

			day, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("day must be a number: %w", err)
			}
			shift, ok := scheduler.ParseShiftType(args[3])
			if !ok {
				return fmt.Errorf("unknown shift token %q", args[3])
			}

			warnings, err := services.CheckEdit(app.Ctx, app.Database, app.Logger, app.Cfg,
				runID, staffID, day, shift)
			if err != nil {
				return err
			}

			if len(warnings) == 0 {
				fmt.Println("\n✓ Edit is clean")
				return nil
			}

			fmt.Printf("\nThis edit would cause %d warnings:\n\n", len(warnings))
			for _, w := range warnings {
				fmt.Printf("  ! %s\n", w)
			}
			fmt.Println()

			return nil
		},
	}
}
