package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ncobase/taskboard/config"
	"github.com/ncobase/taskboard/data"
	"github.com/ncobase/taskboard/logging/logger"

	_ "github.com/ncobase/taskboard/data/mysql"
	_ "github.com/ncobase/taskboard/data/postgres"
	_ "github.com/ncobase/taskboard/data/sqlite"
)

// NewMigrateCommand creates the migrate command
func NewMigrateCommand(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:     "migrate",
		Aliases: []string{"m"},
		Args:    cobra.NoArgs,
		Short:   "Create or update the database schema",
		Long:    `Create the projects and tasks tables, adding missing columns and indexes. Existing data is kept.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(*configFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			return runMigrate(cmd.Context(), cfg)
		},
	}
}

func runMigrate(ctx context.Context, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}

	l, cleanupLogger, err := logger.ProvideLogger(cfg.Logger)
	if err != nil {
		return err
	}
	defer cleanupLogger()

	// Only the database is needed; migrate explicitly below.
	dataCfg := *cfg.Data
	db := *dataCfg.Database
	db.Migrate = false
	dataCfg.Database = &db
	dataCfg.Redis = nil

	d, cleanup, err := data.New(ctx, &dataCfg)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer cleanup()

	if err := d.Migrate(ctx); err != nil {
		return err
	}
	l.Info(ctx, "schema migrated", "driver", db.Master.Driver)
	return nil
}
