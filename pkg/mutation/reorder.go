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

// PositionUpdate is one caller-supplied absolute position. Order values
// are persisted verbatim; the engine does not renumber a full reorder.
type PositionUpdate struct {
	ID    idwrap.IDWrap `validate:"required"`
	Order int64
}

type ReorderStepsRequest struct {
	ActorID    *idwrap.IDWrap
	Items      []PositionUpdate `validate:"required,min=1,dive"`
	TestCaseID idwrap.IDWrap    `validate:"required"`
}

// ReorderSteps rewrites the order of a test case's steps in a single
// transaction. Either every requested position becomes visible or none.
func (s *Service) ReorderSteps(ctx context.Context, req ReorderStepsRequest) error {
	if err := s.checkRequest(req); err != nil {
		return err
	}

	scope, err := s.begin(ctx)
	if err != nil {
		return err
	}
	defer scope.rollback()

	if _, err := scope.q.GetTestCase(ctx, req.TestCaseID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errkind.NotFound("test case not found")
		}
		return errkind.Store(err)
	}

	steps, err := scope.q.GetTestStepsByTestCaseID(ctx, req.TestCaseID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return errkind.Store(err)
	}

	current := make([]ordering.Position, 0, len(steps))
	for _, step := range steps {
		current = append(current, ordering.Position{ID: step.ID, Order: step.StepOrder})
	}

	assignment, err := ordering.ComputeReorder(current, requestedPositions(req.Items))
	if err != nil {
		if errors.Is(err, ordering.ErrIDNotFound) {
			return errkind.New(errkind.CodeNotFound, "step not found in test case", err)
		}
		return errkind.Store(err)
	}

	now := dbtime.DBNow()
	for _, pos := range assignment {
		err := scope.q.UpdateTestStepOrder(ctx, gen.UpdateTestStepOrderParams{
			StepOrder: pos.Order,
			UpdatedBy: req.ActorID,
			UpdatedAt: now,
			ID:        pos.ID,
		})
		if err != nil {
			return errkind.Store(err)
		}
		scope.track(Event{Entity: EntityTestStep, Op: OpReorder, ID: pos.ID})
	}

	return s.commit(ctx, scope, "reorder_steps")
}

type ReorderTestCasesRequest struct {
	ActorID   *idwrap.IDWrap
	Items     []PositionUpdate `validate:"required,min=1,dive"`
	ProjectID idwrap.IDWrap    `validate:"required"`
}

// ReorderTestCases is the project-level counterpart of ReorderSteps.
func (s *Service) ReorderTestCases(ctx context.Context, req ReorderTestCasesRequest) error {
	if err := s.checkRequest(req); err != nil {
		return err
	}

	scope, err := s.begin(ctx)
	if err != nil {
		return err
	}
	defer scope.rollback()

	if _, err := scope.q.GetProject(ctx, req.ProjectID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errkind.NotFound("project not found")
		}
		return errkind.Store(err)
	}

	cases, err := scope.q.GetTestCasesByProjectID(ctx, req.ProjectID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return errkind.Store(err)
	}

	current := make([]ordering.Position, 0, len(cases))
	for _, tc := range cases {
		current = append(current, ordering.Position{ID: tc.ID, Order: tc.CaseOrder})
	}

	assignment, err := ordering.ComputeReorder(current, requestedPositions(req.Items))
	if err != nil {
		if errors.Is(err, ordering.ErrIDNotFound) {
			return errkind.New(errkind.CodeNotFound, "test case not found in project", err)
		}
		return errkind.Store(err)
	}

	now := dbtime.DBNow()
	for _, pos := range assignment {
		err := scope.q.UpdateTestCaseOrder(ctx, gen.UpdateTestCaseOrderParams{
			CaseOrder: pos.Order,
			UpdatedBy: req.ActorID,
			UpdatedAt: now,
			ID:        pos.ID,
		})
		if err != nil {
			return errkind.Store(err)
		}
		scope.track(Event{Entity: EntityTestCase, Op: OpReorder, ID: pos.ID})
	}

	return s.commit(ctx, scope, "reorder_test_cases")
}

func requestedPositions(items []PositionUpdate) []ordering.Position {
	requested := make([]ordering.Position, 0, len(items))
	for _, item := range items {
		requested = append(requested, ordering.Position{ID: item.ID, Order: item.Order})
	}
	return requested
}
