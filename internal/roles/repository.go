package roles

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/singleflight"

	"github.com/jalon-pm/jalon/internal/rbac"
	"github.com/jalon-pm/jalon/internal/shared"
)

// Repository provides PostgreSQL backed persistence. Role documents are
// stored with JSONB permission and menu maps; grant values are validated
// as strict booleans on the way in. Concurrent fetches of the same role
// are collapsed with singleflight.
type Repository struct {
	pool  *pgxpool.Pool
	group singleflight.Group
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// GetRole fetches a role by ID.
func (r *Repository) GetRole(ctx context.Context, id int64) (Role, error) {
	result, err, _ := r.group.Do(strconv.FormatInt(id, 10), func() (any, error) {
		return r.fetchRole(ctx, id)
	})
	if err != nil {
		return Role{}, err
	}
	return result.(Role), nil
}

func (r *Repository) fetchRole(ctx context.Context, id int64) (Role, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, description, is_project_role, permissions, visible_menus, created_at, updated_at
		FROM roles
		WHERE id = $1`, id)
	role, err := scanRole(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return Role{}, shared.ErrNotFound
		}
		return Role{}, err
	}
	return role, nil
}

// ListRoles returns all roles.
func (r *Repository) ListRoles(ctx context.Context) ([]Role, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, description, is_project_role, permissions, visible_menus, created_at, updated_at
		FROM roles
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []Role
	for rows.Next() {
		role, err := scanRole(rows)
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return roles, nil
}

func scanRole(row pgx.Row) (Role, error) {
	var (
		role     Role
		permsDoc []byte
		menusDoc []byte
	)
	if err := row.Scan(&role.ID, &role.Name, &role.Description, &role.IsProjectRole, &permsDoc, &menusDoc, &role.CreatedAt, &role.UpdatedAt); err != nil {
		return Role{}, err
	}
	perms, err := decodeGrantDoc(permsDoc)
	if err != nil {
		return Role{}, fmt.Errorf("roles: decode permissions for role %d: %w", role.ID, err)
	}
	menus, err := decodeGrantDoc(menusDoc)
	if err != nil {
		return Role{}, fmt.Errorf("roles: decode visible menus for role %d: %w", role.ID, err)
	}
	role.Grants = rbac.NormalizeGrants(perms, menus)
	return role, nil
}

func decodeGrantDoc(doc []byte) (map[string]any, error) {
	if len(doc) == 0 {
		return nil, nil
	}
	var raw map[string]any
	if err := json.Unmarshal(doc, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}
