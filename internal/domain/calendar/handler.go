package calendar

import (
	"context"
	"net/http"
	"time"

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
	api.GET("/calendar", h.GetOverview)
	api.GET("/daily-logs", h.ListDailyLogs)
	api.POST("/daily-logs", h.SaveDailyLog)
	api.GET("/appointments", h.ListAppointments)
}

type saveDailyLogRequest struct {
	Date    string `json:"date"`
	Mood    Mood   `json:"mood"`
	Comment string `json:"comment"`
}

type dailyLogsResponse struct {
	Logs []*DailyLog `json:"logs"`
}

func (h *Handler) currentUser(c echo.Context) (uuid.UUID, error) {
	ctx := c.Request().Context()
	authID := auth.AuthIDFromContext(ctx)
	if authID == "" {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "no authenticated user")
	}
	userID, err := h.users.ResolveUserID(ctx, authID)
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusNotFound, "user not found")
	}
	return userID, nil
}

func (h *Handler) GetOverview(c echo.Context) error {
	userID, err := h.currentUser(c)
	if err != nil {
		return err
	}
	ov, err := h.svc.Overview(c.Request().Context(), userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, ov)
}

func (h *Handler) ListDailyLogs(c echo.Context) error {
	userID, err := h.currentUser(c)
	if err != nil {
		return err
	}
	logs, err := h.svc.Logs(c.Request().Context(), userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, dailyLogsResponse{Logs: logs})
}

// SaveDailyLog returns the refreshed log set on success, so the calendar's
// day markers always reflect server truth.
func (h *Handler) SaveDailyLog(c echo.Context) error {
	userID, err := h.currentUser(c)
	if err != nil {
		return err
	}
	var req saveDailyLogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if !req.Mood.Valid() {
		// Caller-visible validation error; no write was attempted.
		return echo.NewHTTPError(http.StatusBadRequest, "mood must be one of: buena, regular, mala")
	}
	if _, err := time.Parse(time.DateOnly, req.Date); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "date must be YYYY-MM-DD")
	}
	logs, err := h.svc.SaveDailyLog(c.Request().Context(), userID, req.Date, req.Mood, req.Comment)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not save daily log")
	}
	return c.JSON(http.StatusOK, dailyLogsResponse{Logs: logs})
}

func (h *Handler) ListAppointments(c echo.Context) error {
	userID, err := h.currentUser(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	if day := c.QueryParam("date"); day != "" {
		appts, err := h.svc.AppointmentsOn(ctx, userID, day)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return c.JSON(http.StatusOK, appts)
	}
	appts, err := h.svc.Appointments(ctx, userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, appts)
}
