package mtestcase

import (
	"time"

	"github.com/thinhdnn/ai-test-management-sub002/pkg/idwrap"
)

type TestCase struct {
	CreatedBy *idwrap.IDWrap
	UpdatedBy *idwrap.IDWrap
	Name      string
	ID        idwrap.IDWrap
	ProjectID idwrap.IDWrap
	Order     int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
