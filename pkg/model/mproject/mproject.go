package mproject

import (
	"time"

	"github.com/thinhdnn/ai-test-management-sub002/pkg/idwrap"
)

type Project struct {
	Name      string
	ID        idwrap.IDWrap
	CreatedAt time.Time
	UpdatedAt time.Time
}
