package reports

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/saluddigital/portal/internal/platform/auth"
	"github.com/saluddigital/portal/pkg/pagination"
)

// UserResolver maps the authenticated subject to the internal user id.
type UserResolver interface {
	ResolveUserID(ctx context.Context, authID string) (uuid.UUID, error)
}

type Handler struct {
	svc   *Service
	users UserResolver
}

func NewHandler(svc *Service, users UserResolver) *Handler {
	return &Handler{svc: svc, users: users}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/reports", h.ListReports)
}

func (h *Handler) ListReports(c echo.Context) error {
	ctx := c.Request().Context()
	authID := auth.AuthIDFromContext(ctx)
	if authID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "no authenticated user")
	}
	userID, err := h.users.ResolveUserID(ctx, authID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "user not found")
	}
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListByUser(ctx, userID, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg))
}
