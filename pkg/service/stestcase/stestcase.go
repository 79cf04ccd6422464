package stestcase

import (
	"context"
	"database/sql"

	"github.com/thinhdnn/ai-test-management-sub002/pkg/db/sqlc/gen"
	"github.com/thinhdnn/ai-test-management-sub002/pkg/dbtime"
	"github.com/thinhdnn/ai-test-management-sub002/pkg/idwrap"
	"github.com/thinhdnn/ai-test-management-sub002/pkg/model/mtestcase"
)

var ErrNoTestCaseFound = sql.ErrNoRows

type TestCaseService struct {
	queries *gen.Queries
}

func New(queries *gen.Queries) TestCaseService {
	return TestCaseService{queries: queries}
}

func (tcs TestCaseService) TX(tx *sql.Tx) TestCaseService {
	return TestCaseService{queries: tcs.queries.WithTx(tx)}
}

func NewTX(ctx context.Context, tx *sql.Tx) (*TestCaseService, error) {
	queries, err := gen.Prepare(ctx, tx)
	if err != nil {
		return nil, err
	}
	return &TestCaseService{queries: queries}, nil
}

func ConvertToDBTestCase(tc mtestcase.TestCase) gen.TestCase {
	return gen.TestCase{
		ID:        tc.ID,
		ProjectID: tc.ProjectID,
		Name:      tc.Name,
		CaseOrder: tc.Order,
		CreatedBy: tc.CreatedBy,
		UpdatedBy: tc.UpdatedBy,
		CreatedAt: tc.CreatedAt,
		UpdatedAt: tc.UpdatedAt,
	}
}

func ConvertToModelTestCase(tc gen.TestCase) mtestcase.TestCase {
	return mtestcase.TestCase{
		ID:        tc.ID,
		ProjectID: tc.ProjectID,
		Name:      tc.Name,
		Order:     tc.CaseOrder,
		CreatedBy: tc.CreatedBy,
		UpdatedBy: tc.UpdatedBy,
		CreatedAt: tc.CreatedAt,
		UpdatedAt: tc.UpdatedAt,
	}
}

func (tcs TestCaseService) GetTestCase(ctx context.Context, id idwrap.IDWrap) (*mtestcase.TestCase, error) {
	tc, err := tcs.queries.GetTestCase(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNoTestCaseFound
		}
		return nil, err
	}
	converted := ConvertToModelTestCase(tc)
	return &converted, nil
}

func (tcs TestCaseService) CreateTestCase(ctx context.Context, tc *mtestcase.TestCase) error {
	now := dbtime.DBNow()
	if tc.CreatedAt.IsZero() {
		tc.CreatedAt = now
	}
	if tc.UpdatedAt.IsZero() {
		tc.UpdatedAt = now
	}
	converted := ConvertToDBTestCase(*tc)
	return tcs.queries.CreateTestCase(ctx, gen.CreateTestCaseParams{
		ID:        converted.ID,
		ProjectID: converted.ProjectID,
		Name:      converted.Name,
		CaseOrder: converted.CaseOrder,
		CreatedBy: converted.CreatedBy,
		UpdatedBy: converted.UpdatedBy,
		CreatedAt: converted.CreatedAt,
		UpdatedAt: converted.UpdatedAt,
	})
}

func (tcs TestCaseService) GetTestCasesByProjectID(ctx context.Context, projectID idwrap.IDWrap) ([]mtestcase.TestCase, error) {
	rows, err := tcs.queries.GetTestCasesByProjectID(ctx, projectID)
	if err != nil {
		if err == sql.ErrNoRows {
			return []mtestcase.TestCase{}, nil
		}
		return nil, err
	}
	cases := make([]mtestcase.TestCase, 0, len(rows))
	for _, row := range rows {
		cases = append(cases, ConvertToModelTestCase(row))
	}
	return cases, nil
}

func (tcs TestCaseService) GetMaxOrder(ctx context.Context, projectID idwrap.IDWrap) (int64, error) {
	return tcs.queries.GetTestCaseMaxOrder(ctx, projectID)
}

func (tcs TestCaseService) UpdateTestCase(ctx context.Context, tc *mtestcase.TestCase) error {
	err := tcs.queries.UpdateTestCase(ctx, gen.UpdateTestCaseParams{
		Name:      tc.Name,
		UpdatedBy: tc.UpdatedBy,
		UpdatedAt: dbtime.DBNow(),
		ID:        tc.ID,
	})
	if err == sql.ErrNoRows {
		return ErrNoTestCaseFound
	}
	return err
}

func (tcs TestCaseService) UpdateTestCaseOrder(ctx context.Context, id idwrap.IDWrap, order int64, updatedBy *idwrap.IDWrap) error {
	err := tcs.queries.UpdateTestCaseOrder(ctx, gen.UpdateTestCaseOrderParams{
		CaseOrder: order,
		UpdatedBy: updatedBy,
		UpdatedAt: dbtime.DBNow(),
		ID:        id,
	})
	if err == sql.ErrNoRows {
		return ErrNoTestCaseFound
	}
	return err
}

func (tcs TestCaseService) DeleteTestCase(ctx context.Context, id idwrap.IDWrap) error {
	return tcs.queries.DeleteTestCase(ctx, id)
}
