package roles

import (
	"time"

	"github.com/jalon-pm/jalon/internal/rbac"
)

// Role is a stored role definition. The same shape serves system roles
// and project roles; IsProjectRole marks the latter. Grants are already
// normalized to strict booleans by the repository.
type Role struct {
	ID            int64
	Name          string
	Description   string
	IsProjectRole bool
	Grants        rbac.Grants
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
