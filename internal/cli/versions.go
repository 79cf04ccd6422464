package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/thinhdnn/ai-test-management-sub002/pkg/db/sqlc/gen"
	"github.com/thinhdnn/ai-test-management-sub002/pkg/idwrap"
	"github.com/thinhdnn/ai-test-management-sub002/pkg/model/mstepversion"
	"github.com/thinhdnn/ai-test-management-sub002/pkg/service/scaseversion"
)

type versionOut struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	CreatedAt string           `json:"created_at"`
	Steps     []stepVersionOut `json:"steps,omitempty"`
}

type stepVersionOut struct {
	Order    int64  `json:"order"`
	Action   string `json:"action"`
	Data     string `json:"data,omitempty"`
	Expected string `json:"expected,omitempty"`
	Selector string `json:"selector,omitempty"`
	Disabled bool   `json:"disabled,omitempty"`
}

var versionsCmd = &cobra.Command{
	Use:   "versions <test-case-id> [version-id]",
	Short: "List a test case's versions, or show one with its frozen steps",
	Args:  cobra.RangeArgs(1, 2),
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

		var out []versionOut
		if len(args) == 2 {
			versionID, err := idwrap.NewText(args[1])
			if err != nil {
				return fmt.Errorf("invalid version id: %w", err)
			}
			version, steps, err := tvs.Retrieve(cmd.Context(), versionID, testCaseID)
			if err != nil {
				return err
			}
			out = append(out, versionOut{
				ID:        version.ID.String(),
				Name:      version.Name,
				CreatedAt: version.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
				Steps:     convertStepVersions(steps),
			})
		} else {
			versions, err := tvs.ListVersions(cmd.Context(), testCaseID)
			if err != nil {
				return err
			}
			for _, version := range versions {
				out = append(out, versionOut{
					ID:        version.ID.String(),
					Name:      version.Name,
					CreatedAt: version.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
				})
			}
		}

		encoded, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
		return nil
	},
}

func convertStepVersions(steps []mstepversion.TestStepVersion) []stepVersionOut {
	converted := make([]stepVersionOut, 0, len(steps))
	for _, step := range steps {
		converted = append(converted, stepVersionOut{
			Order:    step.Order,
			Action:   step.Action,
			Data:     step.Data,
			Expected: step.Expected,
			Selector: step.Selector,
			Disabled: step.Disabled,
		})
	}
	return converted
}
