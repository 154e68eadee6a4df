package main

import (
	"fmt"

	"github.com/project/bookypedia/config"
	"github.com/project/bookypedia/internal/app"
	"github.com/project/bookypedia/pkg/logger"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var dbURL string

	rootCmd := &cobra.Command{
		Use:   "bookypedia",
		Short: "Catalog of authors and books",
		Long: `Bookypedia keeps a catalog of authors and their books in PostgreSQL.

Without a subcommand it applies pending migrations and starts an interactive
session on stdin. Type Help in the session to list the commands.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(dbURL)
			if err != nil {
				return err
			}

			l, err := logger.NewFileLogger(cfg.Log.File)
			if err != nil {
				return fmt.Errorf("can not initialize logger: %w", err)
			}
			defer func() { _ = l.Sync() }()

			return app.Run(cmd.Context(), l, cfg, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	rootCmd.PersistentFlags().StringVar(&dbURL, "db-url", "", "PostgreSQL connection URL, overrides BOOKYPEDIA_DB_URL")
	rootCmd.AddCommand(newMigrateCmd(&dbURL))

	return rootCmd
}

func loadConfig(dbURL string) (*config.Config, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, fmt.Errorf("can not get application config: %w", err)
	}

	if dbURL != "" {
		cfg.PG.URL = dbURL
	}
	return cfg, nil
}
