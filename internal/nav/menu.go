// Package nav holds the navigation configuration consumed by the UI shell.
package nav

import "github.com/jalon-pm/jalon/internal/rbac"

// Item is one navigation entry. Key doubles as the menu-visibility key;
// Permission is the catalog permission required to use the screen behind
// the entry.
type Item struct {
	Key        string `json:"key"`
	Label      string `json:"label"`
	Path       string `json:"path"`
	Permission string `json:"permission"`
}

var items = []Item{
	{Key: rbac.MenuPortfolio, Label: "Portefeuille", Path: "/portfolio", Permission: rbac.PermVoirTousProjets},
	{Key: rbac.MenuProjects, Label: "Projets", Path: "/projects", Permission: rbac.PermVoirSesProjets},
	{Key: rbac.MenuKanban, Label: "Kanban", Path: "/kanban", Permission: rbac.PermDeplacerTaches},
	{Key: rbac.MenuBacklog, Label: "Backlog", Path: "/backlog", Permission: rbac.PermPrioriserBacklog},
	{Key: rbac.MenuSprints, Label: "Sprints", Path: "/sprints", Permission: rbac.PermGererSprints},
	{Key: rbac.MenuRoadmap, Label: "Feuille de route", Path: "/roadmap", Permission: rbac.PermVoirSesProjets},
	{Key: rbac.MenuTasks, Label: "Tâches", Path: "/tasks", Permission: rbac.PermGererTaches},
	{Key: rbac.MenuFiles, Label: "Fichiers", Path: "/files", Permission: rbac.PermGererFichiers},
	{Key: rbac.MenuComments, Label: "Commentaires", Path: "/comments", Permission: rbac.PermCommenter},
	{Key: rbac.MenuTimesheets, Label: "Temps passés", Path: "/timesheets", Permission: rbac.PermVoirTempsPasses},
	{Key: rbac.MenuBudget, Label: "Budget", Path: "/budget", Permission: rbac.PermVoirBudget},
	{Key: rbac.MenuReports, Label: "Rapports", Path: "/reports", Permission: rbac.PermGenererRapports},
	{Key: rbac.MenuNotifications, Label: "Notifications", Path: "/notifications", Permission: rbac.PermRecevoirNotifications},
	{Key: rbac.MenuAdmin, Label: "Administration", Path: "/admin", Permission: rbac.PermAdminConfig},
}

// Items returns the full navigation table in display order.
func Items() []Item {
	return append([]Item(nil), items...)
}

// Filter returns the entries the actor may see. An entry requires both
// its permission granted and its menu key visible in the merged set; a
// permitted-but-hidden entry stays hidden.
func Filter(actor *rbac.Actor, projectGrants *rbac.Grants) []Item {
	merged := rbac.MergedGrants(actor, projectGrants)
	visible := make([]Item, 0, len(items))
	for _, item := range items {
		if merged.Permissions[item.Permission] && merged.VisibleMenus[item.Key] {
			visible = append(visible, item)
		}
	}
	return visible
}
