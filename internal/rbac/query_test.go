package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allTrueGrants() *Grants {
	grants := &Grants{Permissions: map[string]bool{}, VisibleMenus: map[string]bool{}}
	for _, key := range PermissionKeys() {
		grants.Permissions[key] = true
	}
	for _, key := range MenuKeys() {
		grants.VisibleMenus[key] = true
	}
	return grants
}

func TestHasPermissionRolelessActorDenied(t *testing.T) {
	cases := map[string]*Actor{
		"nil actor":    nil,
		"zero actor":   {},
		"explicit nil": {ID: 7, Role: nil},
	}
	for name, actor := range cases {
		for _, key := range PermissionKeys() {
			assert.False(t, HasPermission(actor, key, nil), "%s key %s", name, key)
		}
	}
}

func TestMergedGrantsRolelessActorEmptyMaps(t *testing.T) {
	merged := MergedGrants(nil, nil)
	require.NotNil(t, merged.Permissions)
	require.NotNil(t, merged.VisibleMenus)
	require.Empty(t, merged.Permissions)
	require.Empty(t, merged.VisibleMenus)
}

func TestMergedGrantsIdempotent(t *testing.T) {
	actor := &Actor{ID: 1, Role: &Grants{
		Permissions:  map[string]bool{PermVoirBudget: true, PermSaisirTemps: false},
		VisibleMenus: map[string]bool{MenuBudget: true},
	}}
	project := &Grants{
		Permissions:  map[string]bool{PermVoirBudget: true},
		VisibleMenus: map[string]bool{MenuBudget: false},
	}

	first := MergedGrants(actor, project)
	second := MergedGrants(actor, project)
	require.Equal(t, first, second)
}

func TestVisibleMenusFiltersNonCatalogKeys(t *testing.T) {
	actor := &Actor{ID: 1, Role: &Grants{VisibleMenus: map[string]bool{
		MenuProjects: true,
		MenuKanban:   true,
		MenuAdmin:    false,
		"backdoor":   true,
	}}}

	visible := VisibleMenus(actor, nil)
	assert.ElementsMatch(t, []string{MenuProjects, MenuKanban}, visible)
}

func TestVisibleMenusRolelessActorEmpty(t *testing.T) {
	visible := VisibleMenus(&Actor{ID: 3}, nil)
	require.NotNil(t, visible)
	require.Empty(t, visible)
}

func TestSuperAdminScenario(t *testing.T) {
	admin := &Actor{ID: 1, Role: allTrueGrants()}

	require.Len(t, VisibleMenus(admin, nil), 14)
	for _, key := range PermissionKeys() {
		assert.True(t, HasPermission(admin, key, nil), "key %s", key)
	}
}

func TestGuestScenario(t *testing.T) {
	guest := &Actor{ID: 2, Role: &Grants{
		Permissions:  map[string]bool{PermVoirSesProjets: true},
		VisibleMenus: map[string]bool{MenuPortfolio: true, MenuProjects: true},
	}}

	require.Len(t, VisibleMenus(guest, nil), 2)
	require.True(t, HasPermission(guest, PermVoirSesProjets, nil))
	require.False(t, HasPermission(guest, PermAdminConfig, nil))
}

func TestAccessibleDataMapping(t *testing.T) {
	actor := &Actor{ID: 4, Role: &Grants{Permissions: map[string]bool{
		PermVoirBudget:      true,
		PermGererTaches:     true,
		PermSupprimerProjet: true,
	}}}

	access := AccessibleData(actor, nil)
	assert.True(t, access.CanViewBudget)
	assert.True(t, access.CanManageTasks)
	assert.True(t, access.CanDeleteProject)
	assert.False(t, access.CanModifyBudget)
	assert.False(t, access.CanViewAudit)
	assert.False(t, access.CanCreateProject)
}

func TestAccessibleDataProjectRoleRestricts(t *testing.T) {
	actor := &Actor{ID: 4, Role: allTrueGrants()}
	project := &Grants{Permissions: map[string]bool{PermCommenter: true}}

	access := AccessibleData(actor, project)
	assert.True(t, access.CanComment)
	assert.False(t, access.CanViewBudget)
	assert.False(t, access.CanViewAllProjects)
}

func TestAccessibleDataRolelessActorZero(t *testing.T) {
	require.Equal(t, Access{}, AccessibleData(nil, nil))
	require.Equal(t, Access{}, AccessibleData(&Actor{ID: 9}, allTrueGrants()))
}
