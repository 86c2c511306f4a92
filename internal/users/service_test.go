package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jalon-pm/jalon/internal/rbac"
	"github.com/jalon-pm/jalon/internal/shared"
)

type stubUserRepo struct {
	users map[int64]User
}

func (s *stubUserRepo) GetUser(ctx context.Context, id int64) (User, error) {
	user, ok := s.users[id]
	if !ok {
		return User{}, shared.ErrNotFound
	}
	return user, nil
}

type stubGrants struct {
	byRole map[int64]*rbac.Grants
}

func (s *stubGrants) SystemGrants(ctx context.Context, roleID int64) (*rbac.Grants, error) {
	return s.byRole[roleID], nil
}

func TestActorResolvesSystemRole(t *testing.T) {
	repo := &stubUserRepo{users: map[int64]User{
		1: {ID: 1, IsActive: true, RoleID: 10},
	}}
	grants := &stubGrants{byRole: map[int64]*rbac.Grants{
		10: {Permissions: map[string]bool{rbac.PermVoirSesProjets: true}},
	}}
	svc := NewService(repo, grants)

	actor, err := svc.Actor(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, actor.Role)
	require.True(t, rbac.HasPermission(actor, rbac.PermVoirSesProjets, nil))
}

func TestActorUnknownUserHasNoRole(t *testing.T) {
	svc := NewService(&stubUserRepo{users: map[int64]User{}}, &stubGrants{})

	actor, err := svc.Actor(context.Background(), 7)
	require.NoError(t, err)
	require.Nil(t, actor.Role)
	require.False(t, rbac.HasPermission(actor, rbac.PermVoirSesProjets, nil))
}

func TestActorInactiveUserHasNoRole(t *testing.T) {
	repo := &stubUserRepo{users: map[int64]User{
		2: {ID: 2, IsActive: false, RoleID: 10},
	}}
	grants := &stubGrants{byRole: map[int64]*rbac.Grants{
		10: {Permissions: map[string]bool{rbac.PermAdminConfig: true}},
	}}
	svc := NewService(repo, grants)

	actor, err := svc.Actor(context.Background(), 2)
	require.NoError(t, err)
	require.Nil(t, actor.Role)
}

func TestActorDanglingRoleReference(t *testing.T) {
	repo := &stubUserRepo{users: map[int64]User{
		3: {ID: 3, IsActive: true, RoleID: 99},
	}}
	svc := NewService(repo, &stubGrants{byRole: map[int64]*rbac.Grants{}})

	actor, err := svc.Actor(context.Background(), 3)
	require.NoError(t, err)
	require.Nil(t, actor.Role)
}
