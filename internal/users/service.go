package users

import (
	"context"
	"errors"

	"github.com/jalon-pm/jalon/internal/rbac"
	"github.com/jalon-pm/jalon/internal/shared"
)

// RepositoryPort defines data access methods for users.
type RepositoryPort interface {
	GetUser(ctx context.Context, id int64) (User, error)
}

// GrantsSource resolves role references to grant sets.
type GrantsSource interface {
	SystemGrants(ctx context.Context, roleID int64) (*rbac.Grants, error)
}

// Service builds the rbac view of users.
type Service struct {
	repo   RepositoryPort
	grants GrantsSource
}

// NewService builds Service instance.
func NewService(repo RepositoryPort, grants GrantsSource) *Service {
	return &Service{repo: repo, grants: grants}
}

// Actor loads a user and resolves their system role into an rbac.Actor.
// Unknown users, inactive accounts, and dangling role references all
// produce an actor without a role, which denies every check downstream.
func (s *Service) Actor(ctx context.Context, userID int64) (*rbac.Actor, error) {
	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return &rbac.Actor{ID: userID}, nil
		}
		return nil, err
	}
	if !user.IsActive {
		return &rbac.Actor{ID: user.ID}, nil
	}
	grants, err := s.grants.SystemGrants(ctx, user.RoleID)
	if err != nil {
		return nil, err
	}
	return &rbac.Actor{ID: user.ID, Role: grants}, nil
}
