package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quizzle-app/quizzle/internal/database"
)

func newMigrateCommand() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration commands",
	}

	migrateCmd.AddCommand(
		newMigrateDirectionCommand(database.MigrateUp, "Apply all pending migrations"),
		newMigrateDirectionCommand(database.MigrateDown, "Revert all migrations"),
	)
	return migrateCmd
}

func newMigrateDirectionCommand(command database.MigrateCommand, short string) *cobra.Command {
	return &cobra.Command{
		Use:   string(command),
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("loadConfig() > %w", err)
			}
			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Open() > %w", err)
			}
			defer func() {
				_ = db.Close()
			}()

			return database.Migrate(db, command)
		},
	}
}
