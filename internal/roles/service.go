package roles

import (
	"context"
	"errors"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jalon-pm/jalon/internal/rbac"
	"github.com/jalon-pm/jalon/internal/shared"
)

// RepositoryPort defines data access methods for roles.
type RepositoryPort interface {
	GetRole(ctx context.Context, id int64) (Role, error)
	ListRoles(ctx context.Context) ([]Role, error)
}

// Service handles role business logic. Role administration lives in the
// host application; this service only reads.
type Service struct {
	repo RepositoryPort
}

// NewService builds Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

// ListRoles returns all roles sorted by name. Role names are French, so
// ordering uses French collation rather than byte order.
func (s *Service) ListRoles(ctx context.Context) ([]Role, error) {
	roles, err := s.repo.ListRoles(ctx)
	if err != nil {
		return nil, err
	}
	collator := collate.New(language.French, collate.IgnoreCase)
	sort.SliceStable(roles, func(i, j int) bool {
		return collator.CompareString(roles[i].Name, roles[j].Name) < 0
	})
	return roles, nil
}

// SystemGrants resolves a system role reference to its grant set.
// A zero or dangling reference yields nil grants, not an error: a user
// without a role simply has no permissions.
func (s *Service) SystemGrants(ctx context.Context, roleID int64) (*rbac.Grants, error) {
	return s.grants(ctx, roleID)
}

// ProjectGrants resolves a project role reference, same rules as
// SystemGrants.
func (s *Service) ProjectGrants(ctx context.Context, roleID int64) (*rbac.Grants, error) {
	return s.grants(ctx, roleID)
}

func (s *Service) grants(ctx context.Context, roleID int64) (*rbac.Grants, error) {
	if roleID == 0 {
		return nil, nil
	}
	role, err := s.repo.GetRole(ctx, roleID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	grants := role.Grants
	return &grants, nil
}
