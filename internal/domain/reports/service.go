package reports

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Service struct {
	reports ReportRepository
}

func NewService(reports ReportRepository) *Service {
	return &Service{reports: reports}
}

// ListByUser returns the user's reports, newest first. The user scope is
// mandatory: report rows carry PHI and must never be listed across users.
func (s *Service) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Report, int, error) {
	if userID == uuid.Nil {
		return nil, 0, fmt.Errorf("user id is required")
	}
	return s.reports.ListByUser(ctx, userID, limit, offset)
}
