package rbac

// NormalizeGrantMap validates a raw grant document at the ingestion
// boundary. Only the exact JSON boolean true grants a key; strings,
// numbers, objects and every other truthy value normalize to false.
// Stored role documents are not trusted to be well formed.
func NormalizeGrantMap(raw map[string]any) map[string]bool {
	out := make(map[string]bool, len(raw))
	for key, value := range raw {
		granted, ok := value.(bool)
		out[key] = ok && granted
	}
	return out
}

// NormalizeGrants builds a Grants value from two raw documents.
func NormalizeGrants(permissions, menus map[string]any) Grants {
	return Grants{
		Permissions:  NormalizeGrantMap(permissions),
		VisibleMenus: NormalizeGrantMap(menus),
	}
}
