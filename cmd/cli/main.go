package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tmarler/pawshift/cmd/cli/commands"
	"github.com/tmarler/pawshift/internal/config"
	"github.com/tmarler/pawshift/pkg/postgres"
	"github.com/tmarler/pawshift/pkg/utils/logging"
)

var (
	verbose    bool
	configPath string
	app        *commands.AppContext
	database   *postgres.DB
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pawshift",
		Short: "Pawshift CLI - Check staff schedules for conflicts and coverage gaps",
		Long:  `A CLI tool for detecting shift conflicts, evaluating staffing coverage, and finding cover for a pet care facility roster.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.Logger != nil {
				app.Logger.Sync()
			}
			if database != nil {
				database.Close()
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug output on the console")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file")

	rootCmd.AddCommand(commands.CheckShiftCmd(appRef()))
	rootCmd.AddCommand(commands.ScanConflictsCmd(appRef()))
	rootCmd.AddCommand(commands.CoverageCmd(appRef()))
	rootCmd.AddCommand(commands.FindCoverCmd(appRef()))
	rootCmd.AddCommand(commands.EvaluateSwapCmd(appRef()))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// appRef returns the shared AppContext, allocating it before initApp has
// populated it so command constructors can capture the pointer.
func appRef() *commands.AppContext {
	if app == nil {
		app = &commands.AppContext{Ctx: context.Background()}
	}
	return app
}

// initApp sets up the logger, config and database for a command run
func initApp() error {
	app = appRef()

	var err error
	app.Logger, err = logging.InitLogger(verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if configPath != "" {
		app.Cfg, err = config.LoadFromPath(configPath)
	} else {
		app.Cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded", zap.Int64("facility_id", app.Cfg.FacilityID))

	database, err = postgres.NewDB(app.Ctx, app.Cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.RunMigrations(app.Ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	app.Database = database

	return nil
}
