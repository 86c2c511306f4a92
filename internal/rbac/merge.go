package rbac

// Merge combines a system role with an optional project role into one
// effective grant set. A project role can only restrict: a key is granted
// iff the system role grants it and, when a project role is present, the
// project role grants it too. The output covers the union of keys seen in
// either input; it is computed fresh on every call and shares no storage
// with the inputs.
func Merge(system Grants, project *Grants) Grants {
	if project == nil {
		return Grants{
			Permissions:  cloneGrantMap(system.Permissions),
			VisibleMenus: cloneGrantMap(system.VisibleMenus),
		}
	}
	return Grants{
		Permissions:  intersectGrantMaps(system.Permissions, project.Permissions),
		VisibleMenus: intersectGrantMaps(system.VisibleMenus, project.VisibleMenus),
	}
}

func cloneGrantMap(src map[string]bool) map[string]bool {
	out := make(map[string]bool, len(src))
	for key, granted := range src {
		out[key] = granted
	}
	return out
}

// intersectGrantMaps ANDs two grant maps over the union of their keys.
// A key missing from one side counts as false, never as skipped.
func intersectGrantMaps(system, project map[string]bool) map[string]bool {
	out := make(map[string]bool, len(system)+len(project))
	for key, granted := range system {
		out[key] = granted && project[key]
	}
	for key := range project {
		if _, seen := out[key]; !seen {
			out[key] = false
		}
	}
	return out
}
