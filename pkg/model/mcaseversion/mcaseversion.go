package mcaseversion

import (
	"time"

	"github.com/thinhdnn/ai-test-management-sub002/pkg/idwrap"
)

// TestCaseVersion is an immutable point-in-time copy of a test case's
// scalar fields. Rows are append-only; nothing in the codebase updates
// or deletes them.
type TestCaseVersion struct {
	Name       string
	ID         idwrap.IDWrap
	TestCaseID idwrap.IDWrap
	CreatedAt  time.Time
}
