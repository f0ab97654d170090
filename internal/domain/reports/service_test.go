package reports

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

type mockReportRepo struct {
	reports []*Report
	err     error
}

func (m *mockReportRepo) ListByUser(_ context.Context, userID uuid.UUID, limit, offset int) ([]*Report, int, error) {
	if m.err != nil {
		return nil, 0, m.err
	}
	var mine []*Report
	for _, r := range m.reports {
		if r.UserID == userID {
			mine = append(mine, r)
		}
	}
	total := len(mine)
	if offset > len(mine) {
		offset = len(mine)
	}
	mine = mine[offset:]
	if limit < len(mine) {
		mine = mine[:limit]
	}
	return mine, total, nil
}

func TestService_ListByUser(t *testing.T) {
	userID := uuid.New()
	repo := &mockReportRepo{reports: []*Report{
		{ID: uuid.New(), UserID: userID, FormTitle: "Salud General", CreatedAt: time.Now()},
		{ID: uuid.New(), UserID: userID, FormTitle: "Sueño", CreatedAt: time.Now()},
		{ID: uuid.New(), UserID: uuid.New(), FormTitle: "someone else's", CreatedAt: time.Now()},
	}}
	svc := NewService(repo)

	items, total, err := svc.ListByUser(context.Background(), userID, 20, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 2 || len(items) != 2 {
		t.Errorf("got %d items (total %d), want 2", len(items), total)
	}
}

func TestService_ListByUser_Pagination(t *testing.T) {
	userID := uuid.New()
	repo := &mockReportRepo{}
	for i := 0; i < 5; i++ {
		repo.reports = append(repo.reports, &Report{ID: uuid.New(), UserID: userID})
	}
	svc := NewService(repo)

	items, total, err := svc.ListByUser(context.Background(), userID, 2, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 5 {
		t.Errorf("total = %d, want 5", total)
	}
	if len(items) != 1 {
		t.Errorf("got %d items, want 1 on the last page", len(items))
	}
}

func TestService_ListByUser_RequiresUser(t *testing.T) {
	svc := NewService(&mockReportRepo{})
	if _, _, err := svc.ListByUser(context.Background(), uuid.Nil, 20, 0); err == nil {
		t.Error("expected error for nil user id")
	}
}
