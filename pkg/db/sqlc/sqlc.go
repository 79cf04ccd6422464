package sqlc

import (
	"context"
	"database/sql"
	_ "embed"
	"strings"

	"github.com/pingcap/log"
)

//go:embed schema.sql
var ddl string

// CreateLocalTables executes schema.sql statement by statement. It is used
// for tests and for local single-file databases.
func CreateLocalTables(ctx context.Context, db *sql.DB) error {
	modifiedDDL := strings.ReplaceAll(ddl, "CREATE TABLE ", "CREATE TABLE IF NOT EXISTS ")
	modifiedDDL = strings.ReplaceAll(modifiedDDL, "CREATE INDEX ", "CREATE INDEX IF NOT EXISTS ")

	for _, stmt := range strings.Split(modifiedDDL, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			if strings.Contains(err.Error(), "already exists") {
				log.Warn("schema object already exists, ignoring: " + err.Error())
				continue
			}
			return err
		}
	}
	return nil
}
