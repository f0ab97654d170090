package forms

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/saluddigital/portal/internal/platform/auth"
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
	api.GET("/forms", h.ListForms)
	api.GET("/forms/:id", h.GetForm)
	api.POST("/submissions", h.SubmitAnswers)
}

func (h *Handler) ListForms(c echo.Context) error {
	items, err := h.svc.ListForms(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetForm(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	f, err := h.svc.GetForm(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "form not found")
	}
	return c.JSON(http.StatusOK, f)
}

type submitRequest struct {
	FormID  uuid.UUID       `json:"form_id"`
	Answers json.RawMessage `json:"answers"`
}

func (h *Handler) SubmitAnswers(c echo.Context) error {
	ctx := c.Request().Context()
	authID := auth.AuthIDFromContext(ctx)
	if authID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "no authenticated user")
	}
	userID, err := h.users.ResolveUserID(ctx, authID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "user not found")
	}
	var req submitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	sub, err := h.svc.SubmitAnswers(ctx, userID, req.FormID, req.Answers)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, sub)
}
