package users

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jalon-pm/jalon/internal/shared"
)

// Repository provides PostgreSQL backed persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// GetUser fetches a user by ID. Tenant schemas migrated from the legacy
// product store the role reference in either role_id or role; the
// COALESCE canonicalizes the split here so the rest of the system only
// ever sees RoleID.
func (r *Repository) GetUser(ctx context.Context, id int64) (User, error) {
	var (
		user   User
		roleID *int64
	)
	err := r.pool.QueryRow(ctx, `
		SELECT id, email, name, is_active, COALESCE(role_id, role), created_at, updated_at
		FROM users
		WHERE id = $1`, id).
		Scan(&user.ID, &user.Email, &user.Name, &user.IsActive, &roleID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return User{}, shared.ErrNotFound
		}
		return User{}, err
	}
	if roleID != nil {
		user.RoleID = *roleID
	}
	return user, nil
}
