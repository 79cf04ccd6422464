package testutil

import (
	"context"
	"database/sql"
	"log/slog"
	"testing"

	"github.com/thinhdnn/ai-test-management-sub002/pkg/db/dbtest"
	"github.com/thinhdnn/ai-test-management-sub002/pkg/db/sqlc/gen"
	"github.com/thinhdnn/ai-test-management-sub002/pkg/logger/mocklogger"
	"github.com/thinhdnn/ai-test-management-sub002/pkg/service/scaseversion"
	"github.com/thinhdnn/ai-test-management-sub002/pkg/service/sproject"
	"github.com/thinhdnn/ai-test-management-sub002/pkg/service/stestcase"
	"github.com/thinhdnn/ai-test-management-sub002/pkg/service/steststep"
)

type BaseDBQueries struct {
	Queries *gen.Queries
	DB      *sql.DB
	t       *testing.T
	ctx     context.Context
}

type BaseTestServices struct {
	DB  *sql.DB
	Ps  sproject.ProjectService
	Tcs stestcase.TestCaseService
	Tss steststep.TestStepService
	Tvs scaseversion.TestCaseVersionService
}

func CreateBaseDB(ctx context.Context, t *testing.T) *BaseDBQueries {
	db, err := dbtest.GetTestDB(ctx)
	if err != nil {
		t.Fatal(err)
	}
	queries, err := gen.Prepare(ctx, db)
	if err != nil {
		t.Fatal(err)
	}

	return &BaseDBQueries{Queries: queries, t: t, ctx: ctx, DB: db}
}

func (b BaseDBQueries) GetBaseServices() BaseTestServices {
	queries := b.Queries
	mockLogger := mocklogger.NewMockLogger()
	return BaseTestServices{
		DB:  b.DB,
		Ps:  sproject.New(queries),
		Tcs: stestcase.New(queries),
		Tss: steststep.New(queries),
		Tvs: scaseversion.New(queries, mockLogger),
	}
}

func (b BaseDBQueries) Close() {
	if err := b.Queries.Close(); err != nil {
		b.t.Error(err)
	}
	if err := b.DB.Close(); err != nil {
		b.t.Error(err)
	}
}

func (b BaseDBQueries) Logger() *slog.Logger {
	return mocklogger.NewMockLogger()
}

func AssertFatal[c comparable](t *testing.T, expected, got c) {
	t.Helper()
	if got != expected {
		t.Fatalf("got %v, expected %v", got, expected)
	}
}

func Assert[c comparable](t *testing.T, expected, got c) {
	t.Helper()
	if got != expected {
		t.Errorf("got %v, expected %v", got, expected)
	}
}
