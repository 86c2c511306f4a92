package projects

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jalon-pm/jalon/internal/rbac"
	"github.com/jalon-pm/jalon/internal/shared"
)

type stubProjectRepo struct {
	projects map[int64]Project
}

func (s *stubProjectRepo) GetProject(ctx context.Context, id int64) (Project, error) {
	project, ok := s.projects[id]
	if !ok {
		return Project{}, shared.ErrNotFound
	}
	return project, nil
}

func (s *stubProjectRepo) Membership(ctx context.Context, projectID int64) (rbac.Membership, error) {
	project, err := s.GetProject(ctx, projectID)
	if err != nil {
		return rbac.Membership{}, err
	}
	return project.Membership(), nil
}

func (s *stubProjectRepo) MemberRoleID(ctx context.Context, projectID, userID int64) (int64, error) {
	project, ok := s.projects[projectID]
	if !ok {
		return 0, nil
	}
	return project.Membership().MemberRoleID(userID), nil
}

type stubGrantsSource struct {
	byRole map[int64]*rbac.Grants
}

func (s *stubGrantsSource) ProjectGrants(ctx context.Context, roleID int64) (*rbac.Grants, error) {
	return s.byRole[roleID], nil
}

type recordedDecision struct {
	actorID, projectID int64
	permission         string
	allowed            bool
}

type stubRecorder struct {
	mu        sync.Mutex
	decisions []recordedDecision
}

func (s *stubRecorder) RecordAccess(ctx context.Context, actorID, projectID int64, permission string, allowed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.decisions = append(s.decisions, recordedDecision{actorID, projectID, permission, allowed})
}

func testService(recorder AccessRecorder) (*Service, *stubProjectRepo, *stubGrantsSource) {
	repo := &stubProjectRepo{projects: map[int64]Project{
		1: {
			ID:             1,
			Name:           "Refonte portail",
			ManagerID:      10,
			ProductOwnerID: 11,
			Members:        []rbac.Member{{UserID: 12, RoleID: 40}},
		},
	}}
	grants := &stubGrantsSource{byRole: map[int64]*rbac.Grants{
		40: {
			Permissions:  map[string]bool{rbac.PermGererTaches: true},
			VisibleMenus: map[string]bool{rbac.MenuTasks: true},
		},
	}}
	return NewService(repo, grants, recorder), repo, grants
}

func memberActor(id int64, perms map[string]bool) *rbac.Actor {
	return &rbac.Actor{ID: id, Role: &rbac.Grants{Permissions: perms}}
}

func TestCanAccessParticipants(t *testing.T) {
	recorder := &stubRecorder{}
	svc, _, _ := testService(recorder)
	perms := map[string]bool{rbac.PermGererTaches: true}

	for _, id := range []int64{10, 11, 12} {
		allowed, err := svc.CanAccess(context.Background(), memberActor(id, perms), 1, rbac.PermGererTaches)
		require.NoError(t, err)
		assert.True(t, allowed, "user %d", id)
	}

	allowed, err := svc.CanAccess(context.Background(), memberActor(13, perms), 1, rbac.PermGererTaches)
	require.NoError(t, err)
	assert.False(t, allowed)

	require.Len(t, recorder.decisions, 4)
	assert.Equal(t, recordedDecision{13, 1, rbac.PermGererTaches, false}, recorder.decisions[3])
}

func TestCanAccessUnknownProject(t *testing.T) {
	svc, _, _ := testService(nil)
	_, err := svc.CanAccess(context.Background(), memberActor(10, map[string]bool{rbac.PermGererTaches: true}), 404, rbac.PermGererTaches)
	require.ErrorIs(t, err, shared.ErrNotFound)
}

func TestEvaluateMergesProjectRole(t *testing.T) {
	svc, _, _ := testService(nil)
	actor := memberActor(12, map[string]bool{
		rbac.PermGererTaches:    true,
		rbac.PermModifierBudget: true,
	})

	decision, err := svc.Evaluate(context.Background(), actor, 1, rbac.PermGererTaches)
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
	assert.True(t, decision.Grants.Permissions[rbac.PermGererTaches])
	// The project role does not carry modifierBudget, so the merge denies it.
	assert.False(t, decision.Grants.Permissions[rbac.PermModifierBudget])
}

func TestEvaluateManagerWithoutProjectRoleKeepsSystemGrants(t *testing.T) {
	svc, _, _ := testService(nil)
	actor := memberActor(10, map[string]bool{rbac.PermVoirBudget: true})

	decision, err := svc.Evaluate(context.Background(), actor, 1, rbac.PermVoirBudget)
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
	assert.True(t, decision.Grants.Permissions[rbac.PermVoirBudget], "no project role means the system grants pass through")
}

func TestEvaluateNilActorDenies(t *testing.T) {
	svc, _, _ := testService(nil)
	decision, err := svc.Evaluate(context.Background(), nil, 1, rbac.PermGererTaches)
	require.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Empty(t, decision.Grants.Permissions)
}

func TestProjectGrantsForNonMember(t *testing.T) {
	svc, _, _ := testService(nil)

	grants, err := svc.ProjectGrantsFor(context.Background(), memberActor(10, nil), 1)
	require.NoError(t, err)
	require.Nil(t, grants, "manager is not a listed member and has no project role")

	grants, err = svc.ProjectGrantsFor(context.Background(), memberActor(12, nil), 1)
	require.NoError(t, err)
	require.NotNil(t, grants)
}
