package projects

import (
	"time"

	"github.com/jalon-pm/jalon/internal/rbac"
)

// Project represents a project record as the permission layer sees it:
// identity plus participation. Charters, tasks, sprints and budget live
// in the host application.
type Project struct {
	ID             int64
	Name           string
	Code           string
	ManagerID      int64
	ProductOwnerID int64
	Members        []rbac.Member
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Membership projects the participation view consumed by the access gate.
func (p Project) Membership() rbac.Membership {
	return rbac.Membership{
		ProjectID:      p.ID,
		ManagerID:      p.ManagerID,
		ProductOwnerID: p.ProductOwnerID,
		Members:        p.Members,
	}
}

// Decision is the full answer for one actor, project and permission:
// the coarse gate outcome plus the fine-grained merged grant set.
type Decision struct {
	Allowed bool
	Grants  rbac.Grants
}
