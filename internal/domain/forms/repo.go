package forms

import (
	"context"

	"github.com/google/uuid"
)

type FormRepository interface {
	List(ctx context.Context) ([]*Form, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Form, error)
}

type SubmissionRepository interface {
	Create(ctx context.Context, sub *Submission) error
}
