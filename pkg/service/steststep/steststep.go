package steststep

import (
	"context"
	"database/sql"

	"github.com/thinhdnn/ai-test-management-sub002/pkg/db/sqlc/gen"
	"github.com/thinhdnn/ai-test-management-sub002/pkg/dbtime"
	"github.com/thinhdnn/ai-test-management-sub002/pkg/idwrap"
	"github.com/thinhdnn/ai-test-management-sub002/pkg/model/mteststep"
)

var ErrNoTestStepFound = sql.ErrNoRows

type TestStepService struct {
	queries *gen.Queries
}

func New(queries *gen.Queries) TestStepService {
	return TestStepService{queries: queries}
}

func (tss TestStepService) TX(tx *sql.Tx) TestStepService {
	return TestStepService{queries: tss.queries.WithTx(tx)}
}

func NewTX(ctx context.Context, tx *sql.Tx) (*TestStepService, error) {
	queries, err := gen.Prepare(ctx, tx)
	if err != nil {
		return nil, err
	}
	return &TestStepService{queries: queries}, nil
}

func ConvertToDBTestStep(step mteststep.TestStep) gen.TestStep {
	return gen.TestStep{
		ID:         step.ID,
		TestCaseID: step.TestCaseID,
		StepOrder:  step.Order,
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
	}
}

func ConvertToModelTestStep(step gen.TestStep) mteststep.TestStep {
	return mteststep.TestStep{
		ID:         step.ID,
		TestCaseID: step.TestCaseID,
		Order:      step.StepOrder,
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
	}
}

func (tss TestStepService) GetTestStep(ctx context.Context, id idwrap.IDWrap) (*mteststep.TestStep, error) {
	step, err := tss.queries.GetTestStep(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNoTestStepFound
		}
		return nil, err
	}
	converted := ConvertToModelTestStep(step)
	return &converted, nil
}

func (tss TestStepService) CreateTestStep(ctx context.Context, step *mteststep.TestStep) error {
	now := dbtime.DBNow()
	if step.CreatedAt.IsZero() {
		step.CreatedAt = now
	}
	if step.UpdatedAt.IsZero() {
		step.UpdatedAt = now
	}
	converted := ConvertToDBTestStep(*step)
	return tss.queries.CreateTestStep(ctx, gen.CreateTestStepParams{
		ID:         converted.ID,
		TestCaseID: converted.TestCaseID,
		StepOrder:  converted.StepOrder,
		Action:     converted.Action,
		Data:       converted.Data,
		Expected:   converted.Expected,
		Selector:   converted.Selector,
		Code:       converted.Code,
		Disabled:   converted.Disabled,
		CreatedBy:  converted.CreatedBy,
		UpdatedBy:  converted.UpdatedBy,
		CreatedAt:  converted.CreatedAt,
		UpdatedAt:  converted.UpdatedAt,
	})
}

func (tss TestStepService) GetStepsByTestCaseID(ctx context.Context, testCaseID idwrap.IDWrap) ([]mteststep.TestStep, error) {
	rows, err := tss.queries.GetTestStepsByTestCaseID(ctx, testCaseID)
	if err != nil {
		if err == sql.ErrNoRows {
			return []mteststep.TestStep{}, nil
		}
		return nil, err
	}
	steps := make([]mteststep.TestStep, 0, len(rows))
	for _, row := range rows {
		steps = append(steps, ConvertToModelTestStep(row))
	}
	return steps, nil
}

func (tss TestStepService) GetMaxOrder(ctx context.Context, testCaseID idwrap.IDWrap) (int64, error) {
	return tss.queries.GetTestStepMaxOrder(ctx, testCaseID)
}

// GetProjectID resolves the owning project through the step's test case,
// used by ancestry checks before clone and reorder operations.
func (tss TestStepService) GetProjectID(ctx context.Context, id idwrap.IDWrap) (idwrap.IDWrap, error) {
	projectID, err := tss.queries.GetTestStepProjectID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return idwrap.IDWrap{}, ErrNoTestStepFound
		}
		return idwrap.IDWrap{}, err
	}
	return projectID, nil
}

func (tss TestStepService) UpdateTestStep(ctx context.Context, step *mteststep.TestStep) error {
	err := tss.queries.UpdateTestStep(ctx, gen.UpdateTestStepParams{
		Action:    step.Action,
		Data:      step.Data,
		Expected:  step.Expected,
		Selector:  step.Selector,
		Code:      step.Code,
		Disabled:  step.Disabled,
		UpdatedBy: step.UpdatedBy,
		UpdatedAt: dbtime.DBNow(),
		ID:        step.ID,
	})
	if err == sql.ErrNoRows {
		return ErrNoTestStepFound
	}
	return err
}

func (tss TestStepService) UpdateTestStepOrder(ctx context.Context, id idwrap.IDWrap, order int64, updatedBy *idwrap.IDWrap) error {
	err := tss.queries.UpdateTestStepOrder(ctx, gen.UpdateTestStepOrderParams{
		StepOrder: order,
		UpdatedBy: updatedBy,
		UpdatedAt: dbtime.DBNow(),
		ID:        id,
	})
	if err == sql.ErrNoRows {
		return ErrNoTestStepFound
	}
	return err
}

func (tss TestStepService) DeleteTestStep(ctx context.Context, id idwrap.IDWrap) error {
	return tss.queries.DeleteTestStep(ctx, id)
}
