package cli

import (
	"github.com/spf13/cobra"

	"github.com/thinhdnn/ai-test-management-sub002/pkg/db/sqlc"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the schema in the configured database",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		return sqlc.CreateLocalTables(cmd.Context(), db)
	},
}
