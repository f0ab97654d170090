package reports

import (
	"context"

	"github.com/google/uuid"
)

type ReportRepository interface {
	// ListByUser returns the user's reports newest-first. Listing is always
	// scoped to one user; there is deliberately no unscoped variant.
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Report, int, error)
}
