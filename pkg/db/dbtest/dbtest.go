package dbtest

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/thinhdnn/ai-test-management-sub002/pkg/db/sqlc"
	"github.com/thinhdnn/ai-test-management-sub002/pkg/db/sqlc/gen"
)

// GetTestDB opens a uniquely named in-memory database so parallel tests
// never share state, and creates the schema.
func GetTestDB(ctx context.Context) (*sql.DB, error) {
	uniqueName := ulid.Make().String()
	connStr := fmt.Sprintf("file:testdb_%s?mode=memory&cache=shared", uniqueName)

	db, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, err
	}

	if err := sqlc.CreateLocalTables(ctx, db); err != nil {
		return nil, err
	}

	return db, nil
}

func GetTestPreparedQueries(ctx context.Context) (*gen.Queries, error) {
	db, err := GetTestDB(ctx)
	if err != nil {
		return nil, err
	}
	return gen.Prepare(ctx, db)
}
