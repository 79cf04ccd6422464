package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thinhdnn/ai-test-management-sub002/pkg/db/sqlc/gen"
	"github.com/thinhdnn/ai-test-management-sub002/pkg/idwrap"
	"github.com/thinhdnn/ai-test-management-sub002/pkg/service/scaseversion"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot <test-case-id>",
	Short: "Create an immutable version of a test case and its steps",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		testCaseID, err := idwrap.NewText(args[0])
		if err != nil {
			return fmt.Errorf("invalid test case id: %w", err)
		}

		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		tvs := scaseversion.New(gen.New(db), logger)

		version, err := tvs.Snapshot(cmd.Context(), db, testCaseID)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), version.ID.String())
		return nil
	},
}
