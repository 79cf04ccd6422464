package mteststep

import (
	"time"

	"github.com/thinhdnn/ai-test-management-sub002/pkg/idwrap"
)

type TestStep struct {
	CreatedBy  *idwrap.IDWrap
	UpdatedBy  *idwrap.IDWrap
	Action     string
	Data       string
	Expected   string
	Selector   string
	Code       string
	ID         idwrap.IDWrap
	TestCaseID idwrap.IDWrap
	Order      int64
	Disabled   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
