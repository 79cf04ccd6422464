// Package mutation is the only writer of sibling-set order values. Every
// structural change (reorder, bulk delete, clone, single reposition) goes
// through one of its operations; each operation validates its input
// before touching the store and applies all writes in one transaction.
package mutation

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/thinhdnn/ai-test-management-sub002/pkg/db/sqlc/gen"
	"github.com/thinhdnn/ai-test-management-sub002/pkg/errkind"
)

type Service struct {
	db       *sql.DB
	queries  *gen.Queries
	validate *validator.Validate
	logger   *slog.Logger
}

func New(db *sql.DB, queries *gen.Queries, logger *slog.Logger) *Service {
	return &Service{
		db:       db,
		queries:  queries,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

// checkRequest runs struct validation and maps failures to the
// validation error kind so no store access happens for malformed input.
func (s *Service) checkRequest(req any) error {
	if err := s.validate.Struct(req); err != nil {
		return errkind.New(errkind.CodeValidation, "invalid request: "+err.Error(), err)
	}
	return nil
}

// txScope is a per-operation unit of work: one transaction, tx-bound
// queries, and the cascade events collected while it runs.
type txScope struct {
	tx     *sql.Tx
	q      *gen.Queries
	events []Event
}

func (s *Service) begin(ctx context.Context) (*txScope, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errkind.Store(err)
	}
	return &txScope{tx: tx, q: s.queries.WithTx(tx), events: make([]Event, 0, 16)}, nil
}

func (t *txScope) track(e Event) {
	t.events = append(t.events, e)
}

func (t *txScope) rollback() {
	if t.tx != nil {
		_ = t.tx.Rollback()
		t.tx = nil
	}
}

// commit commits the transaction and then logs the collected events.
// Events are only visible after a successful commit.
func (s *Service) commit(ctx context.Context, t *txScope, op string) error {
	if err := t.tx.Commit(); err != nil {
		return errkind.Store(err)
	}
	t.tx = nil
	s.logEvents(ctx, op, t.events)
	return nil
}
