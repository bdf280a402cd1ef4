package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/artem13815/hrboard/pkg/storage/postgres"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations and print the schema version",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := loadConfig()
		if err != nil {
			return err
		}
		defer log.Sync()
		if cfg.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required")
		}

		ctx := cmd.Context()
		pool, err := postgres.Connect(ctx, cfg.DatabaseURL, postgres.Options{MaxConns: 2})
		if err != nil {
			return fmt.Errorf("postgres connect: %w", err)
		}
		defer pool.Close()

		if err := postgres.Migrate(ctx, pool); err != nil {
			return err
		}
		v, err := postgres.MigrationVersion(ctx, pool)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "schema version %d\n", v)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
