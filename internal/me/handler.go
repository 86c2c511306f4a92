// Package me exposes the current-user permission surface the UI shell
// consumes: merged grants, visible menus, capability flags, navigation.
package me

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jalon-pm/jalon/internal/nav"
	"github.com/jalon-pm/jalon/internal/platform/httpx"
	"github.com/jalon-pm/jalon/internal/rbac"
)

// ProjectGrantsSource resolves the actor's project role for one project.
type ProjectGrantsSource interface {
	ProjectGrantsFor(ctx context.Context, actor *rbac.Actor, projectID int64) (*rbac.Grants, error)
}

// Handler answers permission queries for the authenticated user. Every
// endpoint accepts an optional ?project=<id> parameter narrowing the
// answer with the caller's project role for that project.
type Handler struct {
	logger        *slog.Logger
	projectGrants ProjectGrantsSource
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, projectGrants ProjectGrantsSource) *Handler {
	return &Handler{logger: logger, projectGrants: projectGrants}
}

// MountRoutes registers the current-user routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/permissions", h.permissions)
	r.Get("/menus", h.menus)
	r.Get("/access", h.access)
	r.Get("/nav", h.navigation)
}

func (h *Handler) permissions(w http.ResponseWriter, r *http.Request) {
	actor, projectGrants, ok := h.resolve(w, r)
	if !ok {
		return
	}
	merged := rbac.MergedGrants(actor, projectGrants)
	httpx.JSON(w, http.StatusOK, map[string]any{
		"permissions":  merged.Permissions,
		"visibleMenus": merged.VisibleMenus,
	})
}

func (h *Handler) menus(w http.ResponseWriter, r *http.Request) {
	actor, projectGrants, ok := h.resolve(w, r)
	if !ok {
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"menus": rbac.VisibleMenus(actor, projectGrants),
	})
}

func (h *Handler) access(w http.ResponseWriter, r *http.Request) {
	actor, projectGrants, ok := h.resolve(w, r)
	if !ok {
		return
	}
	httpx.JSON(w, http.StatusOK, rbac.AccessibleData(actor, projectGrants))
}

func (h *Handler) navigation(w http.ResponseWriter, r *http.Request) {
	actor, projectGrants, ok := h.resolve(w, r)
	if !ok {
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"items": nav.Filter(actor, projectGrants),
	})
}

// resolve extracts the actor and, when requested, their project grants.
// An anonymous actor is not an error: the endpoints answer with empty,
// all-denied results.
func (h *Handler) resolve(w http.ResponseWriter, r *http.Request) (*rbac.Actor, *rbac.Grants, bool) {
	actor := rbac.ActorFromContext(r.Context())

	raw := r.URL.Query().Get("project")
	if raw == "" {
		return actor, nil, true
	}
	projectID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || projectID <= 0 {
		httpx.RespondError(w, httpx.ErrValidation)
		return nil, nil, false
	}
	grants, err := h.projectGrants.ProjectGrantsFor(r.Context(), actor, projectID)
	if err != nil {
		h.logger.Error("resolve project grants", slog.Int64("project_id", projectID), slog.Any("error", err))
		httpx.RespondError(w, err)
		return nil, nil, false
	}
	return actor, grants, true
}
