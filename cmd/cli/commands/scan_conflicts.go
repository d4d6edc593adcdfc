package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tmarler/pawshift/pkg/core/services"
)

// ScanConflictsCmd creates the scanConflicts command
func ScanConflictsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "scanConflicts <from_date> <to_date>",
		Short: "Scan the whole roster for conflicts in a date range",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := services.ScanConflicts(app.Ctx, app.Database, app.Logger, app.Cfg.EngineLimits(), args[0], args[1])
			if err != nil {
				return err
			}

			fmt.Printf("\nScan %s (%s to %s)\n\n", result.ScanID, result.FromDate, result.ToDate)

			if len(result.Report.Findings) == 0 {
				fmt.Printf("✓ No conflicts found\n")
			} else {
				fmt.Printf("Found %d conflict(s):\n\n", len(result.Report.Findings))
				for i, c := range result.Report.Findings {
					fmt.Printf("  %2d. [%s] %s: %s\n", i+1, c.Severity, c.Type, c.Message)
				}
			}

			if len(result.Report.SkippedShiftIDs) > 0 {
				fmt.Printf("\nSkipped %d shift(s) referencing unknown staff:", len(result.Report.SkippedShiftIDs))
				for _, id := range result.Report.SkippedShiftIDs {
					fmt.Printf(" %d", id)
				}
				fmt.Println()
			}
			fmt.Println()

			return nil
		},
	}
}
