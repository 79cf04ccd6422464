package mutation

import (
	"context"
	"log/slog"

	"github.com/goccy/go-json"

	"github.com/thinhdnn/ai-test-management-sub002/pkg/idwrap"
)

type EntityKind string

const (
	EntityTestCase EntityKind = "test_case"
	EntityTestStep EntityKind = "test_step"
)

type OpKind string

const (
	OpCreate  OpKind = "create"
	OpUpdate  OpKind = "update"
	OpDelete  OpKind = "delete"
	OpReorder OpKind = "reorder"
)

// Event records one committed write for the audit log.
type Event struct {
	Entity EntityKind
	Op     OpKind
	ID     idwrap.IDWrap
}

func (e Event) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Entity string `json:"entity"`
		Op     string `json:"op"`
		ID     string `json:"id"`
	}{
		Entity: string(e.Entity),
		Op:     string(e.Op),
		ID:     e.ID.String(),
	})
}

func (s *Service) logEvents(ctx context.Context, op string, events []Event) {
	if len(events) == 0 {
		return
	}
	payload, err := json.Marshal(events)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to encode mutation events", slog.String("op", op))
		return
	}
	s.logger.InfoContext(ctx, "mutation committed",
		slog.String("op", op),
		slog.Int("writes", len(events)),
		slog.String("events", string(payload)))
}
