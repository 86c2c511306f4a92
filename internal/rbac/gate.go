package rbac

// CanAccessProjectResource decides whether an actor may touch a
// project-scoped resource at all. The checks short-circuit in order:
//
//  1. no system role denies,
//  2. adminConfig bypasses membership entirely,
//  3. the system role is the ceiling: if it denies the permission,
//     membership cannot grant it,
//  4. otherwise the actor must be a project participant.
//
// Project roles are deliberately not consulted here; callers needing the
// fine-grained merged answer resolve the actor's project role and use
// HasPermission.
func CanAccessProjectResource(actor *Actor, membership Membership, key string) bool {
	if actor == nil || actor.Role == nil {
		return false
	}
	if HasPermission(actor, PermAdminConfig, nil) {
		return true
	}
	if !HasPermission(actor, key, nil) {
		return false
	}
	return membership.IsParticipant(actor.ID)
}
