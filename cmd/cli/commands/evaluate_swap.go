package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tmarler/pawshift/pkg/core/services"
)

// EvaluateSwapCmd creates the evaluateSwap command
func EvaluateSwapCmd(app *AppContext) *cobra.Command {
	var targetShiftID int64

	cmd := &cobra.Command{
		Use:   "evaluateSwap <shift_id> [target_staff_id]",
		Short: "Validate a shift swap, or rank qualified takers for an open swap",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			shiftID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("shift_id must be a number: %w", err)
			}
			var targetStaffID int64
			if len(args) == 2 {
				targetStaffID, err = strconv.ParseInt(args[1], 10, 64)
				if err != nil {
					return fmt.Errorf("target_staff_id must be a number: %w", err)
				}
			}

			eval, err := services.EvaluateSwap(app.Ctx, app.Database, app.Logger, app.Cfg.EngineLimits(), shiftID, targetStaffID, targetShiftID)
			if err != nil {
				return err
			}

			sh := eval.Shift
			fmt.Printf("\nShift %d: %s %s-%s (%s)\n\n", sh.ID, sh.Date, sh.Start, sh.End, sh.Role)

			if eval.Validation != nil {
				for _, e := range eval.Validation.Errors {
					fmt.Printf("  ✗ %s\n", e)
				}
				for _, w := range eval.Validation.Warnings {
					fmt.Printf("  ! %s\n", w)
				}
				if eval.Validation.OK() {
					fmt.Printf("\n✓ Swap may be submitted\n\n")
					return nil
				}
				fmt.Println()
				cmd.SilenceUsage = true
				return fmt.Errorf("swap is not valid")
			}

			if len(eval.Qualified) == 0 {
				fmt.Printf("No one is qualified to take this shift\n\n")
				return nil
			}
			fmt.Printf("Qualified takers:\n")
			for i, c := range eval.Qualified {
				marker := " "
				if c.RoleMatch {
					marker = "*"
				}
				note := ""
				if c.WouldExceedOvertime {
					note = " (would exceed weekly hours)"
				}
				fmt.Printf("  %2d. %s %s (%.1fh this week)%s\n", i+1, marker, c.Staff.Name, c.WeeklyHours, note)
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().Int64Var(&targetShiftID, "target-shift", 0, "Shift offered back to the requester in exchange")
	return cmd
}
