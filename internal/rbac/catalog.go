package rbac

// Permission keys recognized by the platform. The wire names are the
// French identifiers carried by stored role documents.
const (
	PermVoirTousProjets       = "voirTousProjets"
	PermVoirSesProjets        = "voirSesProjets"
	PermCreerProjet           = "creerProjet"
	PermSupprimerProjet       = "supprimerProjet"
	PermModifierCharteProjet  = "modifierCharteProjet"
	PermGererMembresProjet    = "gererMembresProjet"
	PermChangerRoleMembre     = "changerRoleMembre"
	PermGererTaches           = "gererTaches"
	PermDeplacerTaches        = "deplacerTaches"
	PermPrioriserBacklog      = "prioriserBacklog"
	PermGererSprints          = "gererSprints"
	PermModifierBudget        = "modifierBudget"
	PermVoirBudget            = "voirBudget"
	PermVoirTempsPasses       = "voirTempsPasses"
	PermSaisirTemps           = "saisirTemps"
	PermValiderLivrable       = "validerLivrable"
	PermGererFichiers         = "gererFichiers"
	PermCommenter             = "commenter"
	PermRecevoirNotifications = "recevoirNotifications"
	PermGenererRapports       = "genererRapports"
	PermVoirAudit             = "voirAudit"
	PermGererUtilisateurs     = "gererUtilisateurs"
	PermAdminConfig           = "adminConfig"
)

// Menu keys recognized by the navigation layer.
const (
	MenuPortfolio     = "portfolio"
	MenuProjects      = "projects"
	MenuKanban        = "kanban"
	MenuBacklog       = "backlog"
	MenuSprints       = "sprints"
	MenuRoadmap       = "roadmap"
	MenuTasks         = "tasks"
	MenuFiles         = "files"
	MenuComments      = "comments"
	MenuTimesheets    = "timesheets"
	MenuBudget        = "budget"
	MenuReports       = "reports"
	MenuNotifications = "notifications"
	MenuAdmin         = "admin"
)

var permissionKeys = []string{
	PermVoirTousProjets,
	PermVoirSesProjets,
	PermCreerProjet,
	PermSupprimerProjet,
	PermModifierCharteProjet,
	PermGererMembresProjet,
	PermChangerRoleMembre,
	PermGererTaches,
	PermDeplacerTaches,
	PermPrioriserBacklog,
	PermGererSprints,
	PermModifierBudget,
	PermVoirBudget,
	PermVoirTempsPasses,
	PermSaisirTemps,
	PermValiderLivrable,
	PermGererFichiers,
	PermCommenter,
	PermRecevoirNotifications,
	PermGenererRapports,
	PermVoirAudit,
	PermGererUtilisateurs,
	PermAdminConfig,
}

var menuKeys = []string{
	MenuPortfolio,
	MenuProjects,
	MenuKanban,
	MenuBacklog,
	MenuSprints,
	MenuRoadmap,
	MenuTasks,
	MenuFiles,
	MenuComments,
	MenuTimesheets,
	MenuBudget,
	MenuReports,
	MenuNotifications,
	MenuAdmin,
}

var (
	permissionKeySet = keySet(permissionKeys)
	menuKeySet       = keySet(menuKeys)
)

func keySet(keys []string) map[string]struct{} {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set
}

// PermissionKeys returns the catalog of permission keys in declaration order.
func PermissionKeys() []string {
	return append([]string(nil), permissionKeys...)
}

// MenuKeys returns the catalog of menu keys in declaration order.
func MenuKeys() []string {
	return append([]string(nil), menuKeys...)
}

// IsPermissionKey reports whether key belongs to the permission catalog.
func IsPermissionKey(key string) bool {
	_, ok := permissionKeySet[key]
	return ok
}

// IsMenuKey reports whether key belongs to the menu catalog.
func IsMenuKey(key string) bool {
	_, ok := menuKeySet[key]
	return ok
}
