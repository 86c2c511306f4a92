package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeGrantMapRejectsTruthyNonBooleans(t *testing.T) {
	raw := map[string]any{
		"granted": true,
		"string":  "yes",
		"number":  1,
		"float":   1.0,
		"object":  map[string]any{"nested": true},
		"list":    []any{true},
		"denied":  false,
		"nothing": nil,
	}

	normalized := NormalizeGrantMap(raw)
	assert.True(t, normalized["granted"])
	for _, key := range []string{"string", "number", "float", "object", "list", "denied", "nothing"} {
		assert.False(t, normalized[key], "value for %q must not grant", key)
	}
}

func TestNormalizedGrantsDenyThroughFacade(t *testing.T) {
	role := NormalizeGrants(
		map[string]any{PermVoirBudget: "yes", PermSaisirTemps: 1, PermCommenter: true},
		map[string]any{MenuBudget: "true"},
	)
	actor := &Actor{ID: 1, Role: &role}

	require.False(t, HasPermission(actor, PermVoirBudget, nil))
	require.False(t, HasPermission(actor, PermSaisirTemps, nil))
	require.True(t, HasPermission(actor, PermCommenter, nil))
	require.False(t, IsMenuVisible(actor, MenuBudget, nil))
}

func TestNormalizeGrantsEmptyDocuments(t *testing.T) {
	grants := NormalizeGrants(nil, nil)
	require.NotNil(t, grants.Permissions)
	require.NotNil(t, grants.VisibleMenus)
	require.Empty(t, grants.Permissions)
}

func TestCatalogSizes(t *testing.T) {
	require.Len(t, PermissionKeys(), 23)
	require.Len(t, MenuKeys(), 14)

	require.True(t, IsPermissionKey(PermAdminConfig))
	require.False(t, IsPermissionKey("adminconfig"))
	require.True(t, IsMenuKey(MenuPortfolio))
	require.False(t, IsMenuKey("settings"))
}

func TestCatalogReturnsCopies(t *testing.T) {
	keys := PermissionKeys()
	keys[0] = "tampered"
	require.NotEqual(t, keys[0], PermissionKeys()[0])
}
