package metrics

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/saluddigital/portal/internal/platform/auth"
)

type mockUserResolver struct {
	userID uuid.UUID
	err    error
}

func (m *mockUserResolver) ResolveUserID(_ context.Context, _ string) (uuid.UUID, error) {
	return m.userID, m.err
}

func newHealthDataContext(e *echo.Echo, authID string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/health-data", nil)
	if authID != "" {
		req = req.WithContext(auth.WithAuthID(req.Context(), authID))
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandler_GetHealthData(t *testing.T) {
	svc := NewService(&mockSubmissionRepo{}, testClassifier())
	h := NewHandler(svc, &mockUserResolver{userID: uuid.New()})
	e := echo.New()

	c, rec := newHealthDataContext(e, "auth0|abc")
	if err := h.GetHealthData(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, key := range []string{`"general"`, `"nutrition"`, `"sleep"`} {
		if !strings.Contains(body, key) {
			t.Errorf("response missing %s: %s", key, body)
		}
	}
}

func TestHandler_GetHealthData_Unauthenticated(t *testing.T) {
	svc := NewService(&mockSubmissionRepo{}, testClassifier())
	h := NewHandler(svc, &mockUserResolver{userID: uuid.New()})
	e := echo.New()

	c, _ := newHealthDataContext(e, "")
	err := h.GetHealthData(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %v", err)
	}
}

func TestHandler_GetHealthData_UnknownUser(t *testing.T) {
	svc := NewService(&mockSubmissionRepo{}, testClassifier())
	h := NewHandler(svc, &mockUserResolver{err: fmt.Errorf("no row")})
	e := echo.New()

	c, _ := newHealthDataContext(e, "auth0|abc")
	err := h.GetHealthData(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %v", err)
	}
}

func TestHandler_GetHealthData_ServiceError(t *testing.T) {
	svc := NewService(&mockSubmissionRepo{err: fmt.Errorf("db down")}, testClassifier())
	h := NewHandler(svc, &mockUserResolver{userID: uuid.New()})
	e := echo.New()

	c, _ := newHealthDataContext(e, "auth0|abc")
	err := h.GetHealthData(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %v", err)
	}
}
