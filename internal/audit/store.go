package audit

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

// Store writes access-decision entries into access_audit.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore returns a new Store.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Record persists the entry. A duplicate entry ID means the task was
// delivered more than once; the second delivery is a no-op.
func (s *Store) Record(ctx context.Context, entry Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO access_audit (id, actor_id, project_id, permission, decision, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		entry.ID, entry.ActorID, entry.ProjectID, entry.Permission, entry.Decision, entry.OccurredAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == "access_audit_pkey" {
			return nil
		}
		return err
	}
	return nil
}
