package roles

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jalon-pm/jalon/internal/platform/httpx"
	"github.com/jalon-pm/jalon/internal/rbac"
)

// Handler exposes read-only role endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
	rbac    rbac.Middleware
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, service *Service, rbac rbac.Middleware) *Handler {
	return &Handler{logger: logger, service: service, rbac: rbac}
}

// MountRoutes registers role routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(h.rbac.RequireAny(rbac.PermGererUtilisateurs, rbac.PermAdminConfig))
		r.Get("/", h.listRoles)
	})
}

type roleView struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	IsProjectRole bool            `json:"isProjectRole"`
	Permissions   map[string]bool `json:"permissions"`
	VisibleMenus  map[string]bool `json:"visibleMenus"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

func (h *Handler) listRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.service.ListRoles(r.Context())
	if err != nil {
		h.logger.Error("list roles", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	views := make([]roleView, 0, len(roles))
	for _, role := range roles {
		views = append(views, roleView{
			ID:            role.ID,
			Name:          role.Name,
			Description:   role.Description,
			IsProjectRole: role.IsProjectRole,
			Permissions:   role.Grants.Permissions,
			VisibleMenus:  role.Grants.VisibleMenus,
			CreatedAt:     role.CreatedAt,
			UpdatedAt:     role.UpdatedAt,
		})
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"roles": views})
}
