package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tmarler/pawshift/pkg/core/services"
)

// CheckShiftCmd creates the checkShift command
func CheckShiftCmd(app *AppContext) *cobra.Command {
	var role string
	var excludeShiftID int64

	cmd := &cobra.Command{
		Use:   "checkShift <staff_id> <date> <start> <end>",
		Short: "Check a candidate shift for conflicts before saving it",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			staffID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("staff_id must be a number: %w", err)
			}

			result, err := services.CheckShift(app.Ctx, app.Database, app.Logger, app.Cfg.EngineLimits(), services.CheckShiftParams{
				StaffID:        staffID,
				Date:           args[1],
				StartTime:      args[2],
				EndTime:        args[3],
				Role:           role,
				ExcludeShiftID: excludeShiftID,
			})
			if err != nil {
				return err
			}

			if len(result.Conflicts) == 0 {
				fmt.Printf("\n✓ No conflicts found\n\n")
				return nil
			}

			fmt.Printf("\nFound %d conflict(s):\n\n", len(result.Conflicts))
			for i, c := range result.Conflicts {
				fmt.Printf("  %2d. [%s] %s: %s\n", i+1, c.Severity, c.Type, c.Message)
			}
			fmt.Println()

			if result.Blocking {
				cmd.SilenceUsage = true
				return fmt.Errorf("critical conflicts found, the shift cannot be saved")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", "", "Role the shift will be worked as")
	cmd.Flags().Int64Var(&excludeShiftID, "exclude-shift", 0, "Shift being edited, excluded from conflict checks")
	return cmd
}
