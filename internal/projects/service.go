package projects

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/jalon-pm/jalon/internal/rbac"
	"github.com/jalon-pm/jalon/internal/shared"
)

// RepositoryPort defines data access methods for projects.
type RepositoryPort interface {
	GetProject(ctx context.Context, id int64) (Project, error)
	Membership(ctx context.Context, projectID int64) (rbac.Membership, error)
	MemberRoleID(ctx context.Context, projectID, userID int64) (int64, error)
}

// GrantsSource resolves project-role references to grant sets.
type GrantsSource interface {
	ProjectGrants(ctx context.Context, roleID int64) (*rbac.Grants, error)
}

// AccessRecorder appends to the access-decision audit trail.
type AccessRecorder interface {
	RecordAccess(ctx context.Context, actorID, projectID int64, permission string, allowed bool)
}

// Service answers project-scoped permission questions.
type Service struct {
	repo     RepositoryPort
	grants   GrantsSource
	recorder AccessRecorder
}

// NewService builds Service instance. recorder may be nil.
func NewService(repo RepositoryPort, grants GrantsSource, recorder AccessRecorder) *Service {
	return &Service{repo: repo, grants: grants, recorder: recorder}
}

// CanAccess runs the coarse resource gate and records the decision.
// An unknown project denies with ErrNotFound untouched so callers can 404.
func (s *Service) CanAccess(ctx context.Context, actor *rbac.Actor, projectID int64, permission string) (bool, error) {
	membership, err := s.repo.Membership(ctx, projectID)
	if err != nil {
		return false, err
	}
	allowed := rbac.CanAccessProjectResource(actor, membership, permission)
	if s.recorder != nil && actor != nil {
		s.recorder.RecordAccess(ctx, actor.ID, projectID, permission, allowed)
	}
	return allowed, nil
}

// Evaluate answers both questions at once: the coarse gate outcome for
// the permission, and the fine-grained merged grant set with the actor's
// project role applied. Membership and the project role resolve
// concurrently; they are independent lookups.
func (s *Service) Evaluate(ctx context.Context, actor *rbac.Actor, projectID int64, permission string) (Decision, error) {
	if actor == nil {
		return Decision{Grants: rbac.MergedGrants(nil, nil)}, nil
	}

	var (
		membership    rbac.Membership
		projectGrants *rbac.Grants
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		membership, err = s.repo.Membership(gctx, projectID)
		return err
	})
	g.Go(func() error {
		roleID, err := s.repo.MemberRoleID(gctx, projectID, actor.ID)
		if err != nil || roleID == 0 {
			return err
		}
		projectGrants, err = s.grants.ProjectGrants(gctx, roleID)
		return err
	})
	if err := g.Wait(); err != nil {
		return Decision{}, err
	}

	decision := Decision{
		Allowed: rbac.CanAccessProjectResource(actor, membership, permission),
		Grants:  rbac.MergedGrants(actor, projectGrants),
	}
	if s.recorder != nil {
		s.recorder.RecordAccess(ctx, actor.ID, projectID, permission, decision.Allowed)
	}
	return decision, nil
}

// ProjectGrantsFor resolves the actor's project role for one project and
// returns its grant set, nil when the actor is not a listed member or the
// project does not exist. Serves the fine-grained merge of the /me
// endpoints.
func (s *Service) ProjectGrantsFor(ctx context.Context, actor *rbac.Actor, projectID int64) (*rbac.Grants, error) {
	if actor == nil {
		return nil, nil
	}
	roleID, err := s.repo.MemberRoleID(ctx, projectID, actor.ID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if roleID == 0 {
		return nil, nil
	}
	return s.grants.ProjectGrants(ctx, roleID)
}
