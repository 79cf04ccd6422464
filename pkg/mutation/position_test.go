package mutation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thinhdnn/ai-test-management-sub002/pkg/errkind"
	"github.com/thinhdnn/ai-test-management-sub002/pkg/idwrap"
	"github.com/thinhdnn/ai-test-management-sub002/pkg/mutation"
)

func TestUpdateStepPositionWritesSingleRow(t *testing.T) {
	f, ctx := newFixture(t)
	steps := f.seedSteps(t, ctx, 3)

	err := f.svc.UpdateStepPosition(ctx, mutation.UpdateStepPositionRequest{
		StepID: steps[0].ID,
		Order:  42,
	})
	require.NoError(t, err)

	orders := f.stepOrders(t, ctx)
	assert.Equal(t, int64(42), orders[steps[0].ID])
	// Siblings are deliberately left alone.
	assert.Equal(t, int64(2), orders[steps[1].ID])
	assert.Equal(t, int64(3), orders[steps[2].ID])
}

func TestUpdateStepPositionNegativeOrder(t *testing.T) {
	f, ctx := newFixture(t)
	steps := f.seedSteps(t, ctx, 1)

	err := f.svc.UpdateStepPosition(ctx, mutation.UpdateStepPositionRequest{
		StepID: steps[0].ID,
		Order:  -1,
	})
	require.Error(t, err)
	assert.True(t, errkind.IsValidation(err))
}

func TestUpdateStepPositionMissingStep(t *testing.T) {
	f, ctx := newFixture(t)

	err := f.svc.UpdateStepPosition(ctx, mutation.UpdateStepPositionRequest{
		StepID: idwrap.NewNow(),
		Order:  1,
	})
	require.Error(t, err)
	assert.True(t, errkind.IsNotFound(err))
}

func TestUpdateTestCasePosition(t *testing.T) {
	f, ctx := newFixture(t)

	err := f.svc.UpdateTestCasePosition(ctx, mutation.UpdateTestCasePositionRequest{
		TestCaseID: f.caseID,
		Order:      7,
	})
	require.NoError(t, err)

	tc, err := f.services.Tcs.GetTestCase(ctx, f.caseID)
	require.NoError(t, err)
	assert.Equal(t, int64(7), tc.Order)
}
