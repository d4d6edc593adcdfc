package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tmarler/pawshift/pkg/core/services"
)

// FindCoverCmd creates the findCover command
func FindCoverCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "findCover <shift_id>",
		Short: "List staff who could cover a vacated shift",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shiftID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("shift_id must be a number: %w", err)
			}

			options, err := services.FindCoverage(app.Ctx, app.Database, app.Logger, shiftID)
			if err != nil {
				return err
			}

			sh := options.Shift
			fmt.Printf("\nShift %d: %s %s-%s (%s)\n\n", sh.ID, sh.Date, sh.Start, sh.End, sh.Role)

			if len(options.Available) == 0 {
				fmt.Printf("No one is available to cover this shift\n\n")
				return nil
			}

			fmt.Printf("Available at %s:\n", sh.Start)
			for i, st := range options.Available {
				fmt.Printf("  %2d. %s (%s)\n", i+1, st.Name, st.Role)
			}

			if len(options.Suggested) > 0 {
				fmt.Printf("\nSuggested replacements (full shift):\n")
				for i, st := range options.Suggested {
					fmt.Printf("  %2d. %s (%s)\n", i+1, st.Name, st.Role)
				}
			}
			fmt.Println()

			return nil
		},
	}
}
