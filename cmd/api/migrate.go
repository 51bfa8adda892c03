package main

import (
	"github.com/spf13/cobra"

	"github.com/georgemunganga/stockroom-api/internal/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the inventory and usersdb tables if missing",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := bootstrap()
		if err != nil {
			return err
		}
		defer log.Sync()

		db, err := database.Open(cmd.Context(), cfg.Database)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := database.Migrate(cmd.Context(), db); err != nil {
			return err
		}
		log.Info("Schema is up to date")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
