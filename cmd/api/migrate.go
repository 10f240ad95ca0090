package main

import (
	"errors"

	"github.com/spf13/cobra"

	pg "vetstock/internal/adapters/storage/postgres"
	"vetstock/internal/config"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all up migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if cfg.DBDSN == "" {
			return errors.New("DB_DSN is required")
		}
		if err := pg.Migrate(cfg.DBDSN); err != nil {
			return err
		}
		cmd.Println("migrations applied")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
}
