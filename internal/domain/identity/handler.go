package identity

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/saluddigital/portal/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/me", h.GetMe)
	api.GET("/me/profile", h.GetProfile)
}

func (h *Handler) GetMe(c echo.Context) error {
	ctx := c.Request().Context()
	authID := auth.AuthIDFromContext(ctx)
	if authID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "no authenticated user")
	}
	u, err := h.svc.ResolveUser(ctx, authID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "user not found")
	}
	return c.JSON(http.StatusOK, u)
}

func (h *Handler) GetProfile(c echo.Context) error {
	ctx := c.Request().Context()
	authID := auth.AuthIDFromContext(ctx)
	if authID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "no authenticated user")
	}
	p, err := h.svc.Profile(ctx, authID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "user not found")
	}
	return c.JSON(http.StatusOK, p)
}
