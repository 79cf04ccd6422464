package sproject

import (
	"context"
	"database/sql"

	"github.com/thinhdnn/ai-test-management-sub002/pkg/db/sqlc/gen"
	"github.com/thinhdnn/ai-test-management-sub002/pkg/dbtime"
	"github.com/thinhdnn/ai-test-management-sub002/pkg/idwrap"
	"github.com/thinhdnn/ai-test-management-sub002/pkg/model/mproject"
)

var ErrNoProjectFound = sql.ErrNoRows

type ProjectService struct {
	queries *gen.Queries
}

func New(queries *gen.Queries) ProjectService {
	return ProjectService{queries: queries}
}

func (ps ProjectService) TX(tx *sql.Tx) ProjectService {
	return ProjectService{queries: ps.queries.WithTx(tx)}
}

func NewTX(ctx context.Context, tx *sql.Tx) (*ProjectService, error) {
	queries, err := gen.Prepare(ctx, tx)
	if err != nil {
		return nil, err
	}
	return &ProjectService{queries: queries}, nil
}

func ConvertToDBProject(project mproject.Project) gen.Project {
	return gen.Project{
		ID:        project.ID,
		Name:      project.Name,
		CreatedAt: project.CreatedAt,
		UpdatedAt: project.UpdatedAt,
	}
}

func ConvertToModelProject(project gen.Project) mproject.Project {
	return mproject.Project{
		ID:        project.ID,
		Name:      project.Name,
		CreatedAt: project.CreatedAt,
		UpdatedAt: project.UpdatedAt,
	}
}

func (ps ProjectService) GetProject(ctx context.Context, id idwrap.IDWrap) (*mproject.Project, error) {
	project, err := ps.queries.GetProject(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNoProjectFound
		}
		return nil, err
	}
	converted := ConvertToModelProject(project)
	return &converted, nil
}

func (ps ProjectService) CreateProject(ctx context.Context, project *mproject.Project) error {
	now := dbtime.DBNow()
	if project.CreatedAt.IsZero() {
		project.CreatedAt = now
	}
	if project.UpdatedAt.IsZero() {
		project.UpdatedAt = now
	}
	converted := ConvertToDBProject(*project)
	return ps.queries.CreateProject(ctx, gen.CreateProjectParams{
		ID:        converted.ID,
		Name:      converted.Name,
		CreatedAt: converted.CreatedAt,
		UpdatedAt: converted.UpdatedAt,
	})
}
