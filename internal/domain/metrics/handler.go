package metrics

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/saluddigital/portal/internal/platform/auth"
)

// UserResolver maps the authenticated subject to the internal user id.
// Implemented by the identity service; declared here to avoid a domain
// import cycle.
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
	api.GET("/health-data", h.GetHealthData)
}

func (h *Handler) GetHealthData(c echo.Context) error {
	ctx := c.Request().Context()
	authID := auth.AuthIDFromContext(ctx)
	if authID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "no authenticated user")
	}
	userID, err := h.users.ResolveUserID(ctx, authID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "user not found")
	}
	data, err := h.svc.HealthData(ctx, userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, data)
}
