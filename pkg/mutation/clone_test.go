package mutation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thinhdnn/ai-test-management-sub002/pkg/errkind"
	"github.com/thinhdnn/ai-test-management-sub002/pkg/idwrap"
	"github.com/thinhdnn/ai-test-management-sub002/pkg/model/mtestcase"
	"github.com/thinhdnn/ai-test-management-sub002/pkg/model/mteststep"
	"github.com/thinhdnn/ai-test-management-sub002/pkg/mutation"
)

func TestCloneStepAppendsAtEnd(t *testing.T) {
	f, ctx := newFixture(t)
	steps := f.seedSteps(t, ctx, 5)

	clone, err := f.svc.CloneStep(ctx, mutation.CloneStepRequest{
		ProjectID:  f.projectID,
		TestCaseID: f.caseID,
		StepID:     steps[2].ID,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(6), clone.Order)
	assert.NotEqual(t, steps[2].ID, clone.ID)
	assert.Equal(t, steps[2].Action, clone.Action)
	assert.Equal(t, steps[2].Expected, clone.Expected)

	got, err := f.services.Tss.GetStepsByTestCaseID(ctx, f.caseID)
	require.NoError(t, err)
	require.Len(t, got, 6)
	assert.Equal(t, clone.ID, got[5].ID)
}

func TestCloneStepResetsDisabledFlag(t *testing.T) {
	f, ctx := newFixture(t)

	source := mteststep.TestStep{
		ID:         idwrap.NewNow(),
		TestCaseID: f.caseID,
		Order:      1,
		Action:     "fill #email",
		Data:       "user@example.com",
		Disabled:   true,
	}
	require.NoError(t, f.services.Tss.CreateTestStep(ctx, &source))

	clone, err := f.svc.CloneStep(ctx, mutation.CloneStepRequest{
		ProjectID:  f.projectID,
		TestCaseID: f.caseID,
		StepID:     source.ID,
	})
	require.NoError(t, err)

	// Clones come back enabled no matter what the source was.
	assert.False(t, clone.Disabled)
	assert.Equal(t, source.Data, clone.Data)
}

func TestCloneStepScopeMismatch(t *testing.T) {
	f, ctx := newFixture(t)

	// A valid step that lives in a different test case of the same
	// project must read as not found for the destination case.
	otherCase := mtestcase.TestCase{
		ID:        idwrap.NewNow(),
		ProjectID: f.projectID,
		Name:      "Other case",
		Order:     2,
	}
	require.NoError(t, f.services.Tcs.CreateTestCase(ctx, &otherCase))

	foreign := mteststep.TestStep{
		ID:         idwrap.NewNow(),
		TestCaseID: otherCase.ID,
		Order:      1,
		Action:     "press Enter",
	}
	require.NoError(t, f.services.Tss.CreateTestStep(ctx, &foreign))

	_, err := f.svc.CloneStep(ctx, mutation.CloneStepRequest{
		ProjectID:  f.projectID,
		TestCaseID: f.caseID,
		StepID:     foreign.ID,
	})
	require.Error(t, err)
	assert.True(t, errkind.IsNotFound(err))

	got, err := f.services.Tss.GetStepsByTestCaseID(ctx, f.caseID)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCloneStepCrossProjectAncestry(t *testing.T) {
	f, ctx := newFixture(t)
	steps := f.seedSteps(t, ctx, 1)

	// The full chain is verified, so a wrong project id also reads as
	// not found even though case and step match.
	_, err := f.svc.CloneStep(ctx, mutation.CloneStepRequest{
		ProjectID:  idwrap.NewNow(),
		TestCaseID: f.caseID,
		StepID:     steps[0].ID,
	})
	require.Error(t, err)
	assert.True(t, errkind.IsNotFound(err))
}

func TestCloneStepMissingSource(t *testing.T) {
	f, ctx := newFixture(t)

	_, err := f.svc.CloneStep(ctx, mutation.CloneStepRequest{
		ProjectID:  f.projectID,
		TestCaseID: f.caseID,
		StepID:     idwrap.NewNow(),
	})
	require.Error(t, err)
	assert.True(t, errkind.IsNotFound(err))
}

func TestCloneTestCaseAppendsAtEnd(t *testing.T) {
	f, ctx := newFixture(t)

	clone, err := f.svc.CloneTestCase(ctx, mutation.CloneTestCaseRequest{
		ProjectID:  f.projectID,
		TestCaseID: f.caseID,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(2), clone.Order)
	assert.Equal(t, "Guest checkout Copy", clone.Name)
	assert.NotEqual(t, f.caseID, clone.ID)
}

func TestCloneTestCaseWrongProject(t *testing.T) {
	f, ctx := newFixture(t)

	_, err := f.svc.CloneTestCase(ctx, mutation.CloneTestCaseRequest{
		ProjectID:  idwrap.NewNow(),
		TestCaseID: f.caseID,
	})
	require.Error(t, err)
	assert.True(t, errkind.IsNotFound(err))
}
