package metrics

import (
	"context"

	"github.com/google/uuid"
)

type SubmissionRepository interface {
	// ListByUser returns all of a user's submissions ordered by
	// created_at ascending, ties broken by storage order.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Submission, error)
}
