package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tmarler/pawshift/pkg/core/services"
)

// CoverageCmd creates the coverage command
func CoverageCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "coverage <date>",
		Short: "Show the hourly staffing coverage heatmap for a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := services.BuildCoverageReport(app.Ctx, app.Database, app.Logger, app.Cfg, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("\nCoverage for %s\n\n", report.Date)
			fmt.Printf("  %-6s %-13s %6s %4s %6s  %s\n", "slot", "level", "staff", "min", "ratio", "breakdown")
			for _, s := range report.Slots {
				fmt.Printf("  %-6s %-13s %6d %4d %6.2f  daycare=%d boarding=%d grooming=%d desk=%d\n",
					s.Slot, s.Level, s.StaffCount, s.MinRequired, s.Ratio,
					s.Breakdown.Daycare, s.Breakdown.Boarding, s.Breakdown.Grooming, s.Breakdown.FrontDesk)
			}
			fmt.Printf("\n%d of %d slot(s) understaffed\n\n", report.Understaffed, len(report.Slots))

			return nil
		},
	}
}
