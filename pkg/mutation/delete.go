package mutation

import (
	"context"
	"database/sql"
	"errors"

	"github.com/thinhdnn/ai-test-management-sub002/pkg/db/sqlc/gen"
	"github.com/thinhdnn/ai-test-management-sub002/pkg/dbtime"
	"github.com/thinhdnn/ai-test-management-sub002/pkg/errkind"
	"github.com/thinhdnn/ai-test-management-sub002/pkg/idwrap"
	"github.com/thinhdnn/ai-test-management-sub002/pkg/ordering"
)

type BulkDeleteStepsRequest struct {
	ActorID    *idwrap.IDWrap
	StepIDs    []idwrap.IDWrap `validate:"required,min=1"`
	TestCaseID idwrap.IDWrap   `validate:"required"`
}

// BulkDeleteSteps removes the given steps from a test case and reindexes
// the survivors to a dense 1..N sequence, all in one transaction. Ids
// that do not belong to the test case are ignored; the returned count
// covers actual deletions only.
func (s *Service) BulkDeleteSteps(ctx context.Context, req BulkDeleteStepsRequest) (int, error) {
	if err := s.checkRequest(req); err != nil {
		return 0, err
	}

	scope, err := s.begin(ctx)
	if err != nil {
		return 0, err
	}
	defer scope.rollback()

	if _, err := scope.q.GetTestCase(ctx, req.TestCaseID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, errkind.NotFound("test case not found")
		}
		return 0, errkind.Store(err)
	}

	steps, err := scope.q.GetTestStepsByTestCaseID(ctx, req.TestCaseID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return 0, errkind.Store(err)
	}

	doomed := make(map[idwrap.IDWrap]struct{}, len(req.StepIDs))
	for _, id := range req.StepIDs {
		doomed[id] = struct{}{}
	}

	deleted := 0
	remaining := make([]idwrap.IDWrap, 0, len(steps))
	for _, step := range steps {
		if _, ok := doomed[step.ID]; ok {
			if err := scope.q.DeleteTestStep(ctx, step.ID); err != nil {
				return 0, errkind.Store(err)
			}
			scope.track(Event{Entity: EntityTestStep, Op: OpDelete, ID: step.ID})
			deleted++
			continue
		}
		remaining = append(remaining, step.ID)
	}

	now := dbtime.DBNow()
	for _, pos := range ordering.ComputeReindexAfterRemoval(remaining) {
		err := scope.q.UpdateTestStepOrder(ctx, gen.UpdateTestStepOrderParams{
			StepOrder: pos.Order,
			UpdatedBy: req.ActorID,
			UpdatedAt: now,
			ID:        pos.ID,
		})
		if err != nil {
			return 0, errkind.Store(err)
		}
		scope.track(Event{Entity: EntityTestStep, Op: OpReorder, ID: pos.ID})
	}

	if err := s.commit(ctx, scope, "bulk_delete_steps"); err != nil {
		return 0, err
	}
	return deleted, nil
}

type BulkDeleteTestCasesRequest struct {
	ActorID     *idwrap.IDWrap
	TestCaseIDs []idwrap.IDWrap `validate:"required,min=1"`
	ProjectID   idwrap.IDWrap   `validate:"required"`
}

// BulkDeleteTestCases removes test cases from a project and reindexes
// the surviving cases densely. Step rows go away through the store's
// cascade on test_case_id.
func (s *Service) BulkDeleteTestCases(ctx context.Context, req BulkDeleteTestCasesRequest) (int, error) {
	if err := s.checkRequest(req); err != nil {
		return 0, err
	}

	scope, err := s.begin(ctx)
	if err != nil {
		return 0, err
	}
	defer scope.rollback()

	if _, err := scope.q.GetProject(ctx, req.ProjectID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, errkind.NotFound("project not found")
		}
		return 0, errkind.Store(err)
	}

	cases, err := scope.q.GetTestCasesByProjectID(ctx, req.ProjectID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return 0, errkind.Store(err)
	}

	doomed := make(map[idwrap.IDWrap]struct{}, len(req.TestCaseIDs))
	for _, id := range req.TestCaseIDs {
		doomed[id] = struct{}{}
	}

	deleted := 0
	remaining := make([]idwrap.IDWrap, 0, len(cases))
	for _, tc := range cases {
		if _, ok := doomed[tc.ID]; ok {
			if err := scope.q.DeleteTestCase(ctx, tc.ID); err != nil {
				return 0, errkind.Store(err)
			}
			scope.track(Event{Entity: EntityTestCase, Op: OpDelete, ID: tc.ID})
			deleted++
			continue
		}
		remaining = append(remaining, tc.ID)
	}

	now := dbtime.DBNow()
	for _, pos := range ordering.ComputeReindexAfterRemoval(remaining) {
		err := scope.q.UpdateTestCaseOrder(ctx, gen.UpdateTestCaseOrderParams{
			CaseOrder: pos.Order,
			UpdatedBy: req.ActorID,
			UpdatedAt: now,
			ID:        pos.ID,
		})
		if err != nil {
			return 0, errkind.Store(err)
		}
		scope.track(Event{Entity: EntityTestCase, Op: OpReorder, ID: pos.ID})
	}

	if err := s.commit(ctx, scope, "bulk_delete_test_cases"); err != nil {
		return 0, err
	}
	return deleted, nil
}
