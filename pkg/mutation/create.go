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

type CreateStepRequest struct {
	ActorID    *idwrap.IDWrap
	Action     string `validate:"required"`
	Data       string
	Expected   string
	Selector   string
	Code       string
	TestCaseID idwrap.IDWrap `validate:"required"`
}

// CreateStep appends a new step at the end of the test case. The order
// is recomputed from the current max inside the transaction; there is no
// ambient counter.
func (s *Service) CreateStep(ctx context.Context, req CreateStepRequest) (*mteststep.TestStep, error) {
	if err := s.checkRequest(req); err != nil {
		return nil, err
	}

	scope, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer scope.rollback()

	if _, err := scope.q.GetTestCase(ctx, req.TestCaseID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errkind.NotFound("test case not found")
		}
		return nil, errkind.Store(err)
	}

	maxOrder, err := scope.q.GetTestStepMaxOrder(ctx, req.TestCaseID)
	if err != nil {
		return nil, errkind.Store(err)
	}

	now := dbtime.DBNow()
	step := gen.TestStep{
		ID:         idwrap.NewNow(),
		TestCaseID: req.TestCaseID,
		StepOrder:  ordering.ComputeAppendOrder(maxOrder),
		Action:     req.Action,
		Data:       req.Data,
		Expected:   req.Expected,
		Selector:   req.Selector,
		Code:       req.Code,
		CreatedBy:  req.ActorID,
		UpdatedBy:  req.ActorID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err = scope.q.CreateTestStep(ctx, gen.CreateTestStepParams{
		ID:         step.ID,
		TestCaseID: step.TestCaseID,
		StepOrder:  step.StepOrder,
		Action:     step.Action,
		Data:       step.Data,
		Expected:   step.Expected,
		Selector:   step.Selector,
		Code:       step.Code,
		Disabled:   step.Disabled,
		CreatedBy:  step.CreatedBy,
		UpdatedBy:  step.UpdatedBy,
		CreatedAt:  step.CreatedAt,
		UpdatedAt:  step.UpdatedAt,
	})
	if err != nil {
		return nil, errkind.Store(err)
	}
	scope.track(Event{Entity: EntityTestStep, Op: OpCreate, ID: step.ID})

	if err := s.commit(ctx, scope, "create_step"); err != nil {
		return nil, err
	}

	converted := steststep.ConvertToModelTestStep(step)
	return &converted, nil
}

type CreateTestCaseRequest struct {
	ActorID   *idwrap.IDWrap
	Name      string        `validate:"required"`
	ProjectID idwrap.IDWrap `validate:"required"`
}

// CreateTestCase appends a new test case at the end of the project.
func (s *Service) CreateTestCase(ctx context.Context, req CreateTestCaseRequest) (*mtestcase.TestCase, error) {
	if err := s.checkRequest(req); err != nil {
		return nil, err
	}

	scope, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer scope.rollback()

	if _, err := scope.q.GetProject(ctx, req.ProjectID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errkind.NotFound("project not found")
		}
		return nil, errkind.Store(err)
	}

	maxOrder, err := scope.q.GetTestCaseMaxOrder(ctx, req.ProjectID)
	if err != nil {
		return nil, errkind.Store(err)
	}

	now := dbtime.DBNow()
	tc := gen.TestCase{
		ID:        idwrap.NewNow(),
		ProjectID: req.ProjectID,
		Name:      req.Name,
		CaseOrder: ordering.ComputeAppendOrder(maxOrder),
		CreatedBy: req.ActorID,
		UpdatedBy: req.ActorID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = scope.q.CreateTestCase(ctx, gen.CreateTestCaseParams{
		ID:        tc.ID,
		ProjectID: tc.ProjectID,
		Name:      tc.Name,
		CaseOrder: tc.CaseOrder,
		CreatedBy: tc.CreatedBy,
		UpdatedBy: tc.UpdatedBy,
		CreatedAt: tc.CreatedAt,
		UpdatedAt: tc.UpdatedAt,
	})
	if err != nil {
		return nil, errkind.Store(err)
	}
	scope.track(Event{Entity: EntityTestCase, Op: OpCreate, ID: tc.ID})

	if err := s.commit(ctx, scope, "create_test_case"); err != nil {
		return nil, err
	}

	converted := stestcase.ConvertToModelTestCase(tc)
	return &converted, nil
}
