package projects

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/jalon-pm/jalon/internal/platform/httpx"
	"github.com/jalon-pm/jalon/internal/rbac"
	"github.com/jalon-pm/jalon/internal/shared"
)

// Handler exposes project-scoped permission endpoints.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validate: validator.New()}
}

// MountRoutes registers project routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/{projectID}/access", h.checkAccess)
	r.Get("/{projectID}/grants", h.mergedGrants)
}

type accessQuery struct {
	Permission string `validate:"required"`
}

func (h *Handler) checkAccess(w http.ResponseWriter, r *http.Request) {
	projectID, ok := h.projectID(w, r)
	if !ok {
		return
	}
	query := accessQuery{Permission: r.URL.Query().Get("permission")}
	if err := h.validate.Struct(query); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: permission parameter required", httpx.ErrValidation))
		return
	}
	if !rbac.IsPermissionKey(query.Permission) {
		httpx.RespondError(w, fmt.Errorf("%w: unknown permission", httpx.ErrValidation))
		return
	}

	actor := rbac.ActorFromContext(r.Context())
	allowed, err := h.service.CanAccess(r.Context(), actor, projectID, query.Permission)
	if err != nil {
		h.respondServiceError(w, "check project access", err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"projectId":  projectID,
		"permission": query.Permission,
		"allowed":    allowed,
	})
}

func (h *Handler) mergedGrants(w http.ResponseWriter, r *http.Request) {
	projectID, ok := h.projectID(w, r)
	if !ok {
		return
	}
	actor := rbac.ActorFromContext(r.Context())
	grants, err := h.service.ProjectGrantsFor(r.Context(), actor, projectID)
	if err != nil {
		h.respondServiceError(w, "resolve project grants", err)
		return
	}
	merged := rbac.MergedGrants(actor, grants)
	httpx.JSON(w, http.StatusOK, map[string]any{
		"projectId":    projectID,
		"permissions":  merged.Permissions,
		"visibleMenus": merged.VisibleMenus,
	})
}

func (h *Handler) projectID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "projectID"), 10, 64)
	if err != nil || id <= 0 {
		httpx.RespondError(w, httpx.ErrNotFound)
		return 0, false
	}
	return id, true
}

func (h *Handler) respondServiceError(w http.ResponseWriter, msg string, err error) {
	if errors.Is(err, shared.ErrNotFound) {
		httpx.RespondError(w, httpx.ErrNotFound)
		return
	}
	h.logger.Error(msg, slog.Any("error", err))
	httpx.RespondError(w, err)
}
