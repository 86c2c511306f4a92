// Package rbac implements the two-tier permission model: a user's system
// role merged with an optional per-project role, most restrictive wins.
package rbac

// Grants is the role-shaped pair of boolean maps every role carries.
// A key absent from a map is equivalent to false.
type Grants struct {
	Permissions  map[string]bool
	VisibleMenus map[string]bool
}

// Actor is the engine's view of the requesting user. Role is the system
// role; nil means no role is assigned and every check denies.
type Actor struct {
	ID   int64
	Role *Grants
}

// Member is one entry of a project member list.
type Member struct {
	UserID int64
	RoleID int64
}

// Membership captures who participates in a project: the manager
// (chef de projet), the product owner, and the member list.
type Membership struct {
	ProjectID      int64
	ManagerID      int64
	ProductOwnerID int64
	Members        []Member
}

// IsParticipant reports whether the user manages, owns, or belongs to
// the project.
func (m Membership) IsParticipant(userID int64) bool {
	if userID == 0 {
		return false
	}
	if m.ManagerID == userID || m.ProductOwnerID == userID {
		return true
	}
	for _, member := range m.Members {
		if member.UserID == userID {
			return true
		}
	}
	return false
}

// MemberRoleID returns the project-role reference for a listed member,
// or zero when the user is not in the member list.
func (m Membership) MemberRoleID(userID int64) int64 {
	for _, member := range m.Members {
		if member.UserID == userID {
			return member.RoleID
		}
	}
	return 0
}
