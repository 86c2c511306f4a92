package rbac

// HasPermission reports whether the actor holds the permission after
// merging the system role with the optional project role. Nil actor or
// missing system role denies.
func HasPermission(actor *Actor, key string, projectGrants *Grants) bool {
	if actor == nil || actor.Role == nil {
		return false
	}
	return Merge(*actor.Role, projectGrants).Permissions[key]
}

// IsMenuVisible reports whether a menu is visible to the actor after the
// merge. Same denial rules as HasPermission.
func IsMenuVisible(actor *Actor, key string, projectGrants *Grants) bool {
	if actor == nil || actor.Role == nil {
		return false
	}
	return Merge(*actor.Role, projectGrants).VisibleMenus[key]
}

// MergedGrants returns the full effective grant set for the actor.
// A roleless actor gets empty, non-nil maps.
func MergedGrants(actor *Actor, projectGrants *Grants) Grants {
	if actor == nil || actor.Role == nil {
		return Grants{Permissions: map[string]bool{}, VisibleMenus: map[string]bool{}}
	}
	return Merge(*actor.Role, projectGrants)
}

// VisibleMenus lists the catalog menu keys visible to the actor, in
// catalog order. Keys outside the catalog never appear, even when a
// malformed role document marks them true.
func VisibleMenus(actor *Actor, projectGrants *Grants) []string {
	merged := MergedGrants(actor, projectGrants)
	visible := make([]string, 0, len(menuKeys))
	for _, key := range menuKeys {
		if merged.VisibleMenus[key] {
			visible = append(visible, key)
		}
	}
	return visible
}

// Access bundles the derived capability flags the UI consumes. Each flag
// is backed by exactly one catalog permission.
type Access struct {
	CanViewBudget           bool `json:"canViewBudget"`
	CanModifyBudget         bool `json:"canModifyBudget"`
	CanViewTimesheets       bool `json:"canViewTimesheets"`
	CanSubmitTimesheet      bool `json:"canSubmitTimesheet"`
	CanViewReports          bool `json:"canViewReports"`
	CanViewAudit            bool `json:"canViewAudit"`
	CanManageMembers        bool `json:"canManageMembers"`
	CanChangeRoles          bool `json:"canChangeRoles"`
	CanManageTasks          bool `json:"canManageTasks"`
	CanMoveTasks            bool `json:"canMoveTasks"`
	CanPrioritizeBacklog    bool `json:"canPrioritizeBacklog"`
	CanManageSprints        bool `json:"canManageSprints"`
	CanValidateDeliverables bool `json:"canValidateDeliverables"`
	CanComment              bool `json:"canComment"`
	CanManageFiles          bool `json:"canManageFiles"`
	CanEditProject          bool `json:"canEditProject"`
	CanCreateProject        bool `json:"canCreateProject"`
	CanDeleteProject        bool `json:"canDeleteProject"`
	CanViewAllProjects      bool `json:"canViewAllProjects"`
}

// AccessibleData derives the capability bundle from the merged grant set.
// A roleless actor gets the zero bundle.
func AccessibleData(actor *Actor, projectGrants *Grants) Access {
	if actor == nil || actor.Role == nil {
		return Access{}
	}
	perms := Merge(*actor.Role, projectGrants).Permissions
	return Access{
		CanViewBudget:           perms[PermVoirBudget],
		CanModifyBudget:         perms[PermModifierBudget],
		CanViewTimesheets:       perms[PermVoirTempsPasses],
		CanSubmitTimesheet:      perms[PermSaisirTemps],
		CanViewReports:          perms[PermGenererRapports],
		CanViewAudit:            perms[PermVoirAudit],
		CanManageMembers:        perms[PermGererMembresProjet],
		CanChangeRoles:          perms[PermChangerRoleMembre],
		CanManageTasks:          perms[PermGererTaches],
		CanMoveTasks:            perms[PermDeplacerTaches],
		CanPrioritizeBacklog:    perms[PermPrioriserBacklog],
		CanManageSprints:        perms[PermGererSprints],
		CanValidateDeliverables: perms[PermValiderLivrable],
		CanComment:              perms[PermCommenter],
		CanManageFiles:          perms[PermGererFichiers],
		CanEditProject:          perms[PermModifierCharteProjet],
		CanCreateProject:        perms[PermCreerProjet],
		CanDeleteProject:        perms[PermSupprimerProjet],
		CanViewAllProjects:      perms[PermVoirTousProjets],
	}
}
