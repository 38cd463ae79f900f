package main

import (
	"github.com/spf13/cobra"

	"github.com/trezcool/roster/storage/database"
)

var runMigrationFunc = database.RunMigration // mockable

func (cli *commandLine) migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate COMMAND [ARGS]",
		Short: "Run a migration command against the data file",
		Long: `Run a migration command against the data file.
Commands: up, up-by-one, up-to VERSION, down, down-to VERSION, redo, reset, status, version, fix`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := cli.openDB()
			if err != nil {
				return err
			}
			return runMigrationFunc(cmd.Context(), db, args[0], args[1:]...)
		},
	}
}
