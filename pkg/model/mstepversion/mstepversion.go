package mstepversion

import (
	"github.com/thinhdnn/ai-test-management-sub002/pkg/idwrap"
)

// TestStepVersion freezes a step's content and its order at snapshot
// time. The order is never touched by later live reordering.
type TestStepVersion struct {
	Action    string
	Data      string
	Expected  string
	Selector  string
	Code      string
	ID        idwrap.IDWrap
	VersionID idwrap.IDWrap
	Order     int64
	Disabled  bool
}
