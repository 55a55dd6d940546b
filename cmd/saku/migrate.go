package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sakumate/saku/internal/cli"
	"github.com/sakumate/saku/internal/config"
	"github.com/sakumate/saku/internal/storage"
)

func migrateCmd() *cobra.Command {
	var flagStatus bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			dbPath := viper.GetString("database.path")
			if dbPath == "" {
				dbPath = config.DefaultDatabasePath
			}
			dbPath = config.ExpandPath(dbPath)

			store, err := storage.NewSQLiteStorage(dbPath)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if flagStatus {
				version, err := store.SchemaVersion(ctx)
				if err != nil {
					return err
				}
				fmt.Printf("Schema version: %d (latest: %d)\n", version, storage.ExpectedSchemaVersion)
				if version < storage.ExpectedSchemaVersion {
					fmt.Println(cli.StyleWarning("Migrations pending. Run 'saku migrate' to apply them."))
				} else {
					fmt.Println(cli.StyleSuccess("Database is up to date."))
				}
				return nil
			}

			if err := store.Migrate(ctx); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}

			fmt.Println(cli.StyleSuccess("Migrations applied."))
			return nil
		},
	}

	cmd.Flags().BoolVar(&flagStatus, "status", false, "show the schema version without migrating")

	return cmd
}
