package mutation

import (
	"context"
	"database/sql"
	"errors"

	"github.com/thinhdnn/ai-test-management-sub002/pkg/db/sqlc/gen"
	"github.com/thinhdnn/ai-test-management-sub002/pkg/dbtime"
	"github.com/thinhdnn/ai-test-management-sub002/pkg/errkind"
	"github.com/thinhdnn/ai-test-management-sub002/pkg/idwrap"
	"github.com/thinhdnn/ai-test-management-sub002/pkg/model/mtestcase"
	"github.com/thinhdnn/ai-test-management-sub002/pkg/model/mteststep"
	"github.com/thinhdnn/ai-test-management-sub002/pkg/ordering"
	"github.com/thinhdnn/ai-test-management-sub002/pkg/service/stestcase"
	"github.com/thinhdnn/ai-test-management-sub002/pkg/service/steststep"
)

type CloneStepRequest struct {
	ActorID    *idwrap.IDWrap
	ProjectID  idwrap.IDWrap `validate:"required"`
	TestCaseID idwrap.IDWrap `validate:"required"`
	StepID     idwrap.IDWrap `validate:"required"`
}

// CloneStep appends a copy of the source step to the end of its test
// case. The whole ancestry chain (step -> test case -> project) is
// checked before anything is written; any mismatch reads as not found so
// cross-project probing learns nothing. The clone is always enabled
// regardless of the source's disabled flag.
func (s *Service) CloneStep(ctx context.Context, req CloneStepRequest) (*mteststep.TestStep, error) {
	if err := s.checkRequest(req); err != nil {
		return nil, err
	}

	scope, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer scope.rollback()

	source, err := scope.q.GetTestStep(ctx, req.StepID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errkind.NotFound("step not found")
		}
		return nil, errkind.Store(err)
	}
	if source.TestCaseID.Compare(req.TestCaseID) != 0 {
		return nil, errkind.NotFound("step not found")
	}

	projectID, err := scope.q.GetTestStepProjectID(ctx, req.StepID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errkind.NotFound("step not found")
		}
		return nil, errkind.Store(err)
	}
	if projectID.Compare(req.ProjectID) != 0 {
		return nil, errkind.NotFound("step not found")
	}

	maxOrder, err := scope.q.GetTestStepMaxOrder(ctx, req.TestCaseID)
	if err != nil {
		return nil, errkind.Store(err)
	}

	now := dbtime.DBNow()
	clone := gen.TestStep{
		ID:         idwrap.NewNow(),
		TestCaseID: source.TestCaseID,
		StepOrder:  ordering.ComputeAppendOrder(maxOrder),
		Action:     source.Action,
		Data:       source.Data,
		Expected:   source.Expected,
		Selector:   source.Selector,
		Code:       source.Code,
		Disabled:   false,
		CreatedBy:  req.ActorID,
		UpdatedBy:  req.ActorID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err = scope.q.CreateTestStep(ctx, gen.CreateTestStepParams{
		ID:         clone.ID,
		TestCaseID: clone.TestCaseID,
		StepOrder:  clone.StepOrder,
		Action:     clone.Action,
		Data:       clone.Data,
		Expected:   clone.Expected,
		Selector:   clone.Selector,
		Code:       clone.Code,
		Disabled:   clone.Disabled,
		CreatedBy:  clone.CreatedBy,
		UpdatedBy:  clone.UpdatedBy,
		CreatedAt:  clone.CreatedAt,
		UpdatedAt:  clone.UpdatedAt,
	})
	if err != nil {
		return nil, errkind.Store(err)
	}
	scope.track(Event{Entity: EntityTestStep, Op: OpCreate, ID: clone.ID})

	if err := s.commit(ctx, scope, "clone_step"); err != nil {
		return nil, err
	}

	converted := steststep.ConvertToModelTestStep(clone)
	return &converted, nil
}

type CloneTestCaseRequest struct {
	ActorID    *idwrap.IDWrap
	ProjectID  idwrap.IDWrap `validate:"required"`
	TestCaseID idwrap.IDWrap `validate:"required"`
}

// CloneTestCase appends a copy of the test case row at the end of the
// project's case list. Steps are not deep-copied.
func (s *Service) CloneTestCase(ctx context.Context, req CloneTestCaseRequest) (*mtestcase.TestCase, error) {
	if err := s.checkRequest(req); err != nil {
		return nil, err
	}

	scope, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer scope.rollback()

	source, err := scope.q.GetTestCase(ctx, req.TestCaseID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errkind.NotFound("test case not found")
		}
		return nil, errkind.Store(err)
	}
	if source.ProjectID.Compare(req.ProjectID) != 0 {
		return nil, errkind.NotFound("test case not found")
	}

	maxOrder, err := scope.q.GetTestCaseMaxOrder(ctx, req.ProjectID)
	if err != nil {
		return nil, errkind.Store(err)
	}

	now := dbtime.DBNow()
	clone := gen.TestCase{
		ID:        idwrap.NewNow(),
		ProjectID: source.ProjectID,
		Name:      source.Name + " Copy",
		CaseOrder: ordering.ComputeAppendOrder(maxOrder),
		CreatedBy: req.ActorID,
		UpdatedBy: req.ActorID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = scope.q.CreateTestCase(ctx, gen.CreateTestCaseParams{
		ID:        clone.ID,
		ProjectID: clone.ProjectID,
		Name:      clone.Name,
		CaseOrder: clone.CaseOrder,
		CreatedBy: clone.CreatedBy,
		UpdatedBy: clone.UpdatedBy,
		CreatedAt: clone.CreatedAt,
		UpdatedAt: clone.UpdatedAt,
	})
	if err != nil {
		return nil, errkind.Store(err)
	}
	scope.track(Event{Entity: EntityTestCase, Op: OpCreate, ID: clone.ID})

	if err := s.commit(ctx, scope, "clone_test_case"); err != nil {
		return nil, err
	}

	converted := stestcase.ConvertToModelTestCase(clone)
	return &converted, nil
}
