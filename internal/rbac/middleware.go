package rbac

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// MembershipResolver loads project membership for the access gate.
type MembershipResolver interface {
	Membership(ctx context.Context, projectID int64) (Membership, error)
}

// Middleware wires authorization guards for HTTP handlers. Every guard
// fails closed: a missing actor, a denied permission, or a resolver
// failure all produce 403.
type Middleware struct {
	Memberships MembershipResolver
	Logger      *slog.Logger
}

// RequireAny ensures the current actor holds at least one of the
// permissions at the system level.
func (m Middleware) RequireAny(perms ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(perms) == 0 {
				next.ServeHTTP(w, r)
				return
			}
			actor := ActorFromContext(r.Context())
			for _, perm := range perms {
				if HasPermission(actor, perm, nil) {
					next.ServeHTTP(w, r)
					return
				}
			}
			forbid(w)
		})
	}
}

// RequireAll ensures the current actor holds every permission at the
// system level.
func (m Middleware) RequireAll(perms ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor := ActorFromContext(r.Context())
			for _, perm := range perms {
				if !HasPermission(actor, perm, nil) {
					forbid(w)
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireProjectAccess runs the project resource gate against the
// {projectID} route parameter before the handler executes.
func (m Middleware) RequireProjectAccess(perm string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor := ActorFromContext(r.Context())
			if actor == nil || actor.Role == nil {
				forbid(w)
				return
			}
			projectID, err := strconv.ParseInt(chi.URLParam(r, "projectID"), 10, 64)
			if err != nil {
				http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
				return
			}
			if m.Memberships == nil {
				forbid(w)
				return
			}
			membership, err := m.Memberships.Membership(r.Context(), projectID)
			if err != nil {
				if m.Logger != nil {
					m.Logger.Error("resolve membership", slog.Int64("project_id", projectID), slog.Any("error", err))
				}
				forbid(w)
				return
			}
			if !CanAccessProjectResource(actor, membership, perm) {
				forbid(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func forbid(w http.ResponseWriter) {
	http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
}
