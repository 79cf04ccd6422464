package scaseversion_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thinhdnn/ai-test-management-sub002/pkg/idwrap"
	"github.com/thinhdnn/ai-test-management-sub002/pkg/logger/mocklogger"
	"github.com/thinhdnn/ai-test-management-sub002/pkg/model/mproject"
	"github.com/thinhdnn/ai-test-management-sub002/pkg/model/mtestcase"
	"github.com/thinhdnn/ai-test-management-sub002/pkg/model/mteststep"
	"github.com/thinhdnn/ai-test-management-sub002/pkg/mutation"
	"github.com/thinhdnn/ai-test-management-sub002/pkg/service/scaseversion"
	"github.com/thinhdnn/ai-test-management-sub002/pkg/testutil"
)

func seedCaseWithSteps(t *testing.T, ctx context.Context, base *testutil.BaseDBQueries, n int) (testutil.BaseTestServices, idwrap.IDWrap, []mteststep.TestStep) {
	t.Helper()
	services := base.GetBaseServices()

	projectID := idwrap.NewNow()
	require.NoError(t, services.Ps.CreateProject(ctx, &mproject.Project{ID: projectID, Name: "Search"}))

	caseID := idwrap.NewNow()
	require.NoError(t, services.Tcs.CreateTestCase(ctx, &mtestcase.TestCase{
		ID:        caseID,
		ProjectID: projectID,
		Name:      "Filter results",
		Order:     1,
	}))

	steps := make([]mteststep.TestStep, 0, n)
	for i := 1; i <= n; i++ {
		step := mteststep.TestStep{
			ID:         idwrap.NewNow(),
			TestCaseID: caseID,
			Order:      int64(i),
			Action:     fmt.Sprintf("type query %d", i),
			Expected:   fmt.Sprintf("results for %d", i),
		}
		require.NoError(t, services.Tss.CreateTestStep(ctx, &step))
		steps = append(steps, step)
	}
	return services, caseID, steps
}

func TestSnapshotAndRetrieve(t *testing.T) {
	ctx := context.Background()
	base := testutil.CreateBaseDB(ctx, t)
	defer base.Close()

	services, caseID, steps := seedCaseWithSteps(t, ctx, base, 3)

	version, err := services.Tvs.Snapshot(ctx, base.DB, caseID)
	require.NoError(t, err)
	assert.Equal(t, caseID, version.TestCaseID)
	assert.Equal(t, "Filter results", version.Name)

	got, gotSteps, err := services.Tvs.Retrieve(ctx, version.ID, caseID)
	require.NoError(t, err)
	assert.Equal(t, version.ID, got.ID)
	require.Len(t, gotSteps, 3)
	for i, sv := range gotSteps {
		assert.Equal(t, int64(i+1), sv.Order)
		assert.Equal(t, steps[i].Action, sv.Action)
		assert.Equal(t, steps[i].Expected, sv.Expected)
	}
}

func TestVersionImmutableUnderLiveMutation(t *testing.T) {
	ctx := context.Background()
	base := testutil.CreateBaseDB(ctx, t)
	defer base.Close()

	services, caseID, steps := seedCaseWithSteps(t, ctx, base, 3)

	version, err := services.Tvs.Snapshot(ctx, base.DB, caseID)
	require.NoError(t, err)

	_, before, err := services.Tvs.Retrieve(ctx, version.ID, caseID)
	require.NoError(t, err)

	// Shuffle and shrink the live steps after the snapshot was taken.
	svc := mutation.New(base.DB, base.Queries, mocklogger.NewMockLogger())
	require.NoError(t, svc.ReorderSteps(ctx, mutation.ReorderStepsRequest{
		TestCaseID: caseID,
		Items: []mutation.PositionUpdate{
			{ID: steps[2].ID, Order: 1},
			{ID: steps[1].ID, Order: 2},
			{ID: steps[0].ID, Order: 3},
		},
	}))
	_, err = svc.BulkDeleteSteps(ctx, mutation.BulkDeleteStepsRequest{
		TestCaseID: caseID,
		StepIDs:    []idwrap.IDWrap{steps[1].ID},
	})
	require.NoError(t, err)

	_, after, err := services.Tvs.Retrieve(ctx, version.ID, caseID)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestRetrieveScopeMismatch(t *testing.T) {
	ctx := context.Background()
	base := testutil.CreateBaseDB(ctx, t)
	defer base.Close()

	services, caseID, _ := seedCaseWithSteps(t, ctx, base, 1)

	version, err := services.Tvs.Snapshot(ctx, base.DB, caseID)
	require.NoError(t, err)

	// A guessed version id with the wrong owning test case behaves
	// exactly like a missing version.
	got, gotSteps, err := services.Tvs.Retrieve(ctx, version.ID, idwrap.NewNow())
	require.ErrorIs(t, err, scaseversion.ErrNoVersionFound)
	assert.Nil(t, got)
	assert.Nil(t, gotSteps)
}

func TestRetrieveMissingVersion(t *testing.T) {
	ctx := context.Background()
	base := testutil.CreateBaseDB(ctx, t)
	defer base.Close()

	services, caseID, _ := seedCaseWithSteps(t, ctx, base, 1)

	_, _, err := services.Tvs.Retrieve(ctx, idwrap.NewNow(), caseID)
	require.ErrorIs(t, err, scaseversion.ErrNoVersionFound)
}

func TestSnapshotMissingTestCase(t *testing.T) {
	ctx := context.Background()
	base := testutil.CreateBaseDB(ctx, t)
	defer base.Close()

	services := base.GetBaseServices()
	_, err := services.Tvs.Snapshot(ctx, base.DB, idwrap.NewNow())
	require.ErrorIs(t, err, scaseversion.ErrNoTestCaseFound)
}

func TestListVersionsNewestFirst(t *testing.T) {
	ctx := context.Background()
	base := testutil.CreateBaseDB(ctx, t)
	defer base.Close()

	services, caseID, _ := seedCaseWithSteps(t, ctx, base, 1)

	first, err := services.Tvs.Snapshot(ctx, base.DB, caseID)
	require.NoError(t, err)
	second, err := services.Tvs.Snapshot(ctx, base.DB, caseID)
	require.NoError(t, err)

	versions, err := services.Tvs.ListVersions(ctx, caseID)
	require.NoError(t, err)
	require.Len(t, versions, 2)
	assert.Equal(t, second.ID, versions[0].ID)
	assert.Equal(t, first.ID, versions[1].ID)
}

func TestSnapshotOfEmptyCaseHasNoSteps(t *testing.T) {
	ctx := context.Background()
	base := testutil.CreateBaseDB(ctx, t)
	defer base.Close()

	services, caseID, _ := seedCaseWithSteps(t, ctx, base, 0)

	version, err := services.Tvs.Snapshot(ctx, base.DB, caseID)
	require.NoError(t, err)

	_, gotSteps, err := services.Tvs.Retrieve(ctx, version.ID, caseID)
	require.NoError(t, err)
	assert.Empty(t, gotSteps)
}
