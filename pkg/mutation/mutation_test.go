package mutation_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thinhdnn/ai-test-management-sub002/pkg/idwrap"
	"github.com/thinhdnn/ai-test-management-sub002/pkg/logger/mocklogger"
	"github.com/thinhdnn/ai-test-management-sub002/pkg/model/mproject"
	"github.com/thinhdnn/ai-test-management-sub002/pkg/model/mtestcase"
	"github.com/thinhdnn/ai-test-management-sub002/pkg/model/mteststep"
	"github.com/thinhdnn/ai-test-management-sub002/pkg/mutation"
	"github.com/thinhdnn/ai-test-management-sub002/pkg/testutil"
)

type fixture struct {
	base      *testutil.BaseDBQueries
	services  testutil.BaseTestServices
	svc       *mutation.Service
	projectID idwrap.IDWrap
	caseID    idwrap.IDWrap
}

func newFixture(t *testing.T) (*fixture, context.Context) {
	t.Helper()
	ctx := context.Background()

	base := testutil.CreateBaseDB(ctx, t)
	t.Cleanup(base.Close)

	services := base.GetBaseServices()
	svc := mutation.New(base.DB, base.Queries, mocklogger.NewMockLogger())

	f := &fixture{
		base:      base,
		services:  services,
		svc:       svc,
		projectID: idwrap.NewNow(),
		caseID:    idwrap.NewNow(),
	}

	err := services.Ps.CreateProject(ctx, &mproject.Project{ID: f.projectID, Name: "Checkout"})
	require.NoError(t, err)

	err = services.Tcs.CreateTestCase(ctx, &mtestcase.TestCase{
		ID:        f.caseID,
		ProjectID: f.projectID,
		Name:      "Guest checkout",
		Order:     1,
	})
	require.NoError(t, err)

	return f, ctx
}

// seedSteps creates n steps with dense orders 1..n and returns them in
// order.
func (f *fixture) seedSteps(t *testing.T, ctx context.Context, n int) []mteststep.TestStep {
	t.Helper()
	steps := make([]mteststep.TestStep, 0, n)
	for i := 1; i <= n; i++ {
		step := mteststep.TestStep{
			ID:         idwrap.NewNow(),
			TestCaseID: f.caseID,
			Order:      int64(i),
			Action:     fmt.Sprintf("click #button-%d", i),
			Expected:   fmt.Sprintf("button %d pressed", i),
		}
		require.NoError(t, f.services.Tss.CreateTestStep(ctx, &step))
		steps = append(steps, step)
	}
	return steps
}

func (f *fixture) stepOrders(t *testing.T, ctx context.Context) map[idwrap.IDWrap]int64 {
	t.Helper()
	steps, err := f.services.Tss.GetStepsByTestCaseID(ctx, f.caseID)
	require.NoError(t, err)
	orders := make(map[idwrap.IDWrap]int64, len(steps))
	for _, step := range steps {
		orders[step.ID] = step.Order
	}
	return orders
}
