package scaseversion

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/thinhdnn/ai-test-management-sub002/pkg/db/sqlc/gen"
	"github.com/thinhdnn/ai-test-management-sub002/pkg/dbtime"
	"github.com/thinhdnn/ai-test-management-sub002/pkg/idwrap"
	"github.com/thinhdnn/ai-test-management-sub002/pkg/model/mcaseversion"
	"github.com/thinhdnn/ai-test-management-sub002/pkg/model/mstepversion"

	testmandb "github.com/thinhdnn/ai-test-management-sub002/pkg/db"
)

var (
	ErrNoVersionFound  = sql.ErrNoRows
	ErrNoTestCaseFound = sql.ErrNoRows
)

// TestCaseVersionService creates and reads immutable snapshots of a test
// case and its steps. Version rows are append-only: there is no update or
// delete path on purpose.
type TestCaseVersionService struct {
	queries *gen.Queries
	logger  *slog.Logger
}

func New(queries *gen.Queries, logger *slog.Logger) TestCaseVersionService {
	return TestCaseVersionService{queries: queries, logger: logger}
}

func (tvs TestCaseVersionService) TX(tx *sql.Tx) TestCaseVersionService {
	return TestCaseVersionService{queries: tvs.queries.WithTx(tx), logger: tvs.logger}
}

func ConvertToModelVersion(v gen.TestCaseVersion) mcaseversion.TestCaseVersion {
	return mcaseversion.TestCaseVersion{
		ID:         v.ID,
		TestCaseID: v.TestCaseID,
		Name:       v.Name,
		CreatedAt:  v.CreatedAt,
	}
}

func ConvertToModelStepVersion(v gen.TestStepVersion) mstepversion.TestStepVersion {
	return mstepversion.TestStepVersion{
		ID:        v.ID,
		VersionID: v.VersionID,
		Order:     v.StepOrder,
		Action:    v.Action,
		Data:      v.Data,
		Expected:  v.Expected,
		Selector:  v.Selector,
		Code:      v.Code,
		Disabled:  v.Disabled,
	}
}

// Snapshot copies the live test case and every live step (with its
// current order) into the version tables as one transaction, so a reader
// never observes a version with only part of its steps.
func (tvs TestCaseVersionService) Snapshot(ctx context.Context, db *sql.DB, testCaseID idwrap.IDWrap) (*mcaseversion.TestCaseVersion, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer testmandb.TxnRollback(tx)

	txQueries := tvs.queries.WithTx(tx)

	tc, err := txQueries.GetTestCase(ctx, testCaseID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNoTestCaseFound
		}
		return nil, err
	}

	steps, err := txQueries.GetTestStepsByTestCaseID(ctx, testCaseID)
	if err != nil && err != sql.ErrNoRows {
		return nil, err
	}

	version := mcaseversion.TestCaseVersion{
		ID:         idwrap.NewNow(),
		TestCaseID: tc.ID,
		Name:       tc.Name,
		CreatedAt:  dbtime.DBNow(),
	}

	err = txQueries.CreateTestCaseVersion(ctx, gen.CreateTestCaseVersionParams{
		ID:         version.ID,
		TestCaseID: version.TestCaseID,
		Name:       version.Name,
		CreatedAt:  version.CreatedAt,
	})
	if err != nil {
		return nil, err
	}

	for _, step := range steps {
		err = txQueries.CreateTestStepVersion(ctx, gen.CreateTestStepVersionParams{
			ID:        idwrap.NewNow(),
			VersionID: version.ID,
			StepOrder: step.StepOrder,
			Action:    step.Action,
			Data:      step.Data,
			Expected:  step.Expected,
			Selector:  step.Selector,
			Code:      step.Code,
			Disabled:  step.Disabled,
		})
		if err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	tvs.logger.InfoContext(ctx, "test case snapshot created",
		slog.String("test_case_id", tc.ID.String()),
		slog.String("version_id", version.ID.String()),
		slog.Int("steps", len(steps)))

	return &version, nil
}

// Retrieve returns a version and its step versions ordered by frozen
// order. A version owned by a different test case is reported exactly
// like a missing one so guessed ids leak nothing.
func (tvs TestCaseVersionService) Retrieve(ctx context.Context, versionID, expectedTestCaseID idwrap.IDWrap) (*mcaseversion.TestCaseVersion, []mstepversion.TestStepVersion, error) {
	version, err := tvs.queries.GetTestCaseVersion(ctx, versionID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil, ErrNoVersionFound
		}
		return nil, nil, err
	}

	if version.TestCaseID.Compare(expectedTestCaseID) != 0 {
		return nil, nil, ErrNoVersionFound
	}

	rows, err := tvs.queries.GetTestStepVersionsByVersionID(ctx, versionID)
	if err != nil && err != sql.ErrNoRows {
		return nil, nil, err
	}

	stepVersions := make([]mstepversion.TestStepVersion, 0, len(rows))
	for _, row := range rows {
		stepVersions = append(stepVersions, ConvertToModelStepVersion(row))
	}

	converted := ConvertToModelVersion(version)
	return &converted, stepVersions, nil
}

// ListVersions returns a test case's versions newest first.
func (tvs TestCaseVersionService) ListVersions(ctx context.Context, testCaseID idwrap.IDWrap) ([]mcaseversion.TestCaseVersion, error) {
	rows, err := tvs.queries.GetTestCaseVersionsByTestCaseID(ctx, testCaseID)
	if err != nil {
		if err == sql.ErrNoRows {
			return []mcaseversion.TestCaseVersion{}, nil
		}
		return nil, err
	}
	versions := make([]mcaseversion.TestCaseVersion, 0, len(rows))
	for _, row := range rows {
		versions = append(versions, ConvertToModelVersion(row))
	}
	return versions, nil
}
