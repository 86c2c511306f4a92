package projects

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jalon-pm/jalon/internal/rbac"
	"github.com/jalon-pm/jalon/internal/shared"
)

// Repository provides PostgreSQL backed persistence. Project rows keep
// the legacy column names (chef_projet, product_owner) of the tenant
// schemas.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// GetProject fetches a project with its member list.
func (r *Repository) GetProject(ctx context.Context, id int64) (Project, error) {
	var project Project
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, code, chef_projet, product_owner, created_at, updated_at
		FROM projects
		WHERE id = $1`, id).
		Scan(&project.ID, &project.Name, &project.Code, &project.ManagerID, &project.ProductOwnerID, &project.CreatedAt, &project.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return Project{}, shared.ErrNotFound
		}
		return Project{}, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT user_id, role_id
		FROM project_members
		WHERE project_id = $1
		ORDER BY position`, id)
	if err != nil {
		return Project{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var member rbac.Member
		if err := rows.Scan(&member.UserID, &member.RoleID); err != nil {
			return Project{}, err
		}
		project.Members = append(project.Members, member)
	}
	if err := rows.Err(); err != nil {
		return Project{}, err
	}
	return project, nil
}

// Membership resolves the participation view for the access gate.
func (r *Repository) Membership(ctx context.Context, projectID int64) (rbac.Membership, error) {
	project, err := r.GetProject(ctx, projectID)
	if err != nil {
		return rbac.Membership{}, err
	}
	return project.Membership(), nil
}

// MemberRoleID returns the project-role reference of a listed member,
// zero when the user is not in the member list.
func (r *Repository) MemberRoleID(ctx context.Context, projectID, userID int64) (int64, error) {
	var roleID int64
	err := r.pool.QueryRow(ctx, `
		SELECT role_id
		FROM project_members
		WHERE project_id = $1 AND user_id = $2`, projectID, userID).
		Scan(&roleID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return 0, nil
		}
		return 0, err
	}
	return roleID, nil
}
