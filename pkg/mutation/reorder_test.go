package mutation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thinhdnn/ai-test-management-sub002/pkg/errkind"
	"github.com/thinhdnn/ai-test-management-sub002/pkg/idwrap"
	"github.com/thinhdnn/ai-test-management-sub002/pkg/mutation"
)

func TestReorderStepsPersistsCallerOrders(t *testing.T) {
	f, ctx := newFixture(t)
	steps := f.seedSteps(t, ctx, 3)

	err := f.svc.ReorderSteps(ctx, mutation.ReorderStepsRequest{
		TestCaseID: f.caseID,
		Items: []mutation.PositionUpdate{
			{ID: steps[0].ID, Order: 3},
			{ID: steps[1].ID, Order: 1},
			{ID: steps[2].ID, Order: 2},
		},
	})
	require.NoError(t, err)

	got, err := f.services.Tss.GetStepsByTestCaseID(ctx, f.caseID)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, steps[1].ID, got[0].ID)
	assert.Equal(t, steps[2].ID, got[1].ID)
	assert.Equal(t, steps[0].ID, got[2].ID)
}

func TestReorderStepsKeepsNonContiguousOrders(t *testing.T) {
	f, ctx := newFixture(t)
	steps := f.seedSteps(t, ctx, 2)

	// Caller-supplied absolute orders are persisted as given, gaps
	// included.
	err := f.svc.ReorderSteps(ctx, mutation.ReorderStepsRequest{
		TestCaseID: f.caseID,
		Items: []mutation.PositionUpdate{
			{ID: steps[0].ID, Order: 10},
			{ID: steps[1].ID, Order: 20},
		},
	})
	require.NoError(t, err)

	orders := f.stepOrders(t, ctx)
	assert.Equal(t, int64(10), orders[steps[0].ID])
	assert.Equal(t, int64(20), orders[steps[1].ID])
}

func TestReorderStepsIdempotent(t *testing.T) {
	f, ctx := newFixture(t)
	steps := f.seedSteps(t, ctx, 3)

	req := mutation.ReorderStepsRequest{
		TestCaseID: f.caseID,
		Items: []mutation.PositionUpdate{
			{ID: steps[2].ID, Order: 1},
			{ID: steps[0].ID, Order: 2},
			{ID: steps[1].ID, Order: 3},
		},
	}

	require.NoError(t, f.svc.ReorderSteps(ctx, req))
	after1 := f.stepOrders(t, ctx)

	require.NoError(t, f.svc.ReorderSteps(ctx, req))
	after2 := f.stepOrders(t, ctx)

	assert.Equal(t, after1, after2)
}

func TestReorderStepsUnknownStepRollsBack(t *testing.T) {
	f, ctx := newFixture(t)
	steps := f.seedSteps(t, ctx, 2)
	before := f.stepOrders(t, ctx)

	err := f.svc.ReorderSteps(ctx, mutation.ReorderStepsRequest{
		TestCaseID: f.caseID,
		Items: []mutation.PositionUpdate{
			{ID: steps[0].ID, Order: 2},
			{ID: idwrap.NewNow(), Order: 1},
		},
	})
	require.Error(t, err)
	assert.True(t, errkind.IsNotFound(err))

	// Nothing may be written when any requested id is unknown.
	assert.Equal(t, before, f.stepOrders(t, ctx))
}

func TestReorderStepsEmptyItems(t *testing.T) {
	f, ctx := newFixture(t)

	err := f.svc.ReorderSteps(ctx, mutation.ReorderStepsRequest{
		TestCaseID: f.caseID,
		Items:      nil,
	})
	require.Error(t, err)
	assert.True(t, errkind.IsValidation(err))
}

func TestReorderStepsMissingTestCase(t *testing.T) {
	f, ctx := newFixture(t)

	err := f.svc.ReorderSteps(ctx, mutation.ReorderStepsRequest{
		TestCaseID: idwrap.NewNow(),
		Items:      []mutation.PositionUpdate{{ID: idwrap.NewNow(), Order: 1}},
	})
	require.Error(t, err)
	assert.True(t, errkind.IsNotFound(err))
}

func TestReorderTestCases(t *testing.T) {
	f, ctx := newFixture(t)

	second, err := f.svc.CreateTestCase(ctx, mutation.CreateTestCaseRequest{
		ProjectID: f.projectID,
		Name:      "Returning customer checkout",
	})
	require.NoError(t, err)
	require.Equal(t, int64(2), second.Order)

	err = f.svc.ReorderTestCases(ctx, mutation.ReorderTestCasesRequest{
		ProjectID: f.projectID,
		Items: []mutation.PositionUpdate{
			{ID: second.ID, Order: 1},
			{ID: f.caseID, Order: 2},
		},
	})
	require.NoError(t, err)

	cases, err := f.services.Tcs.GetTestCasesByProjectID(ctx, f.projectID)
	require.NoError(t, err)
	require.Len(t, cases, 2)
	assert.Equal(t, second.ID, cases[0].ID)
	assert.Equal(t, f.caseID, cases[1].ID)
}
