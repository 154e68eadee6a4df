package main

import (
	"fmt"

	"github.com/project/bookypedia/db"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateShort = map[db.Command]string{
	db.Up:     "Apply pending migrations",
	db.Down:   "Roll back the last migration",
	db.Status: "Show migration status",
	db.Reset:  "Roll back every migration and apply them again, dropping all data",
}

func newMigrateCmd(dbURL *string) *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	for _, command := range []db.Command{db.Up, db.Down, db.Status, db.Reset} {
		migrateCmd.AddCommand(&cobra.Command{
			Use:   string(command),
			Short: migrateShort[command],
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				command, err := db.ParseCommand(cmd.Name())
				if err != nil {
					return err
				}

				cfg, err := loadConfig(*dbURL)
				if err != nil {
					return err
				}

				l, err := zap.NewDevelopment()
				if err != nil {
					return fmt.Errorf("can not initialize logger: %w", err)
				}
				defer func() { _ = l.Sync() }()

				return db.Migrate(cmd.Context(), cfg.PG.URL, command, l)
			},
		})
	}

	return migrateCmd
}
