package metrics

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
)

type mockSubmissionRepo struct {
	subs []*Submission
	err  error
}

func (m *mockSubmissionRepo) ListByUser(_ context.Context, _ uuid.UUID) ([]*Submission, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.subs, nil
}

func TestService_HealthData(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	repo := &mockSubmissionRepo{subs: []*Submission{
		sub(testGeneralForm, `{"peso": 70, "fuma": "no"}`, now),
		sub(testNutritionForm, `{"comidas_al_dia": 3}`, now.Add(time.Hour)),
		sub(testSleepForm, `{"horas_sueno": 8}`, now.Add(2*time.Hour)),
		sub("unrelated-form", `{"peso": 999}`, now.Add(3*time.Hour)),
	}}
	svc := NewService(repo, testClassifier())

	data, err := svc.HealthData(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(data.General) != 1 || data.General[0].Numbers["peso"] != 70 {
		t.Errorf("general = %+v, want one point peso 70", data.General)
	}
	if len(data.Nutrition) != 1 || data.Nutrition[0].Numbers["comidas_dia"] != 3 {
		t.Errorf("nutrition = %+v, want one point comidas_dia 3", data.Nutrition)
	}
	if len(data.Sleep) != 1 || data.Sleep[0].Numbers["horas_sueno"] != 8 {
		t.Errorf("sleep = %+v, want one point horas_sueno 8", data.Sleep)
	}
}

func TestService_HealthData_NoSubmissions(t *testing.T) {
	svc := NewService(&mockSubmissionRepo{}, testClassifier())

	data, err := svc.HealthData(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.General == nil || data.Nutrition == nil || data.Sleep == nil {
		t.Errorf("series must be empty, not nil: %+v", data)
	}
}

func TestService_HealthData_RequiresUser(t *testing.T) {
	svc := NewService(&mockSubmissionRepo{}, testClassifier())
	if _, err := svc.HealthData(context.Background(), uuid.Nil); err == nil {
		t.Error("expected error for nil user id")
	}
}

func TestService_HealthData_RepoError(t *testing.T) {
	svc := NewService(&mockSubmissionRepo{err: fmt.Errorf("db down")}, testClassifier())
	if _, err := svc.HealthData(context.Background(), uuid.New()); err == nil {
		t.Error("expected repository error to propagate")
	}
}

func TestService_HealthData_ResponseShape(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	repo := &mockSubmissionRepo{subs: []*Submission{
		sub(testGeneralForm, `{"Presión Arterial": "120/80"}`, now),
	}}
	svc := NewService(repo, testClassifier())

	data, err := svc.HealthData(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	raw, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded struct {
		General []map[string]interface{} `json:"general"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(decoded.General) != 1 {
		t.Fatalf("general length = %d", len(decoded.General))
	}
	point := decoded.General[0]
	if point["date"] != "01/05/2024" {
		t.Errorf("date = %v, want 01/05/2024", point["date"])
	}
	if point["sistolica"] != 120.0 || point["diastolica"] != 80.0 {
		t.Errorf("pressure = %v/%v, want 120/80", point["sistolica"], point["diastolica"])
	}
}
