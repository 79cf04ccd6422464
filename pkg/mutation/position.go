package mutation

import (
	"context"
	"database/sql"
	"errors"

	"github.com/thinhdnn/ai-test-management-sub002/pkg/db/sqlc/gen"
	"github.com/thinhdnn/ai-test-management-sub002/pkg/dbtime"
	"github.com/thinhdnn/ai-test-management-sub002/pkg/errkind"
	"github.com/thinhdnn/ai-test-management-sub002/pkg/idwrap"
)

type UpdateStepPositionRequest struct {
	ActorID *idwrap.IDWrap
	StepID  idwrap.IDWrap `validate:"required"`
	Order   int64         `validate:"gte=0"`
}

// UpdateStepPosition writes one step's order directly without
// renumbering its siblings. Avoiding collisions is the caller's job;
// full-set Reorder is the safe path.
func (s *Service) UpdateStepPosition(ctx context.Context, req UpdateStepPositionRequest) error {
	if err := s.checkRequest(req); err != nil {
		return err
	}

	if _, err := s.queries.GetTestStep(ctx, req.StepID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errkind.NotFound("step not found")
		}
		return errkind.Store(err)
	}

	err := s.queries.UpdateTestStepOrder(ctx, gen.UpdateTestStepOrderParams{
		StepOrder: req.Order,
		UpdatedBy: req.ActorID,
		UpdatedAt: dbtime.DBNow(),
		ID:        req.StepID,
	})
	if err != nil {
		return errkind.Store(err)
	}

	s.logEvents(ctx, "update_step_position", []Event{{Entity: EntityTestStep, Op: OpUpdate, ID: req.StepID}})
	return nil
}

type UpdateTestCasePositionRequest struct {
	ActorID    *idwrap.IDWrap
	TestCaseID idwrap.IDWrap `validate:"required"`
	Order      int64         `validate:"gte=0"`
}

// UpdateTestCasePosition is the project-level counterpart of
// UpdateStepPosition, with the same lowered guarantees.
func (s *Service) UpdateTestCasePosition(ctx context.Context, req UpdateTestCasePositionRequest) error {
	if err := s.checkRequest(req); err != nil {
		return err
	}

	if _, err := s.queries.GetTestCase(ctx, req.TestCaseID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errkind.NotFound("test case not found")
		}
		return errkind.Store(err)
	}

	err := s.queries.UpdateTestCaseOrder(ctx, gen.UpdateTestCaseOrderParams{
		CaseOrder: req.Order,
		UpdatedBy: req.ActorID,
		UpdatedAt: dbtime.DBNow(),
		ID:        req.TestCaseID,
	})
	if err != nil {
		return errkind.Store(err)
	}

	s.logEvents(ctx, "update_test_case_position", []Event{{Entity: EntityTestCase, Op: OpUpdate, ID: req.TestCaseID}})
	return nil
}
