package identity

import (
	"context"

	"github.com/google/uuid"
)

type UserRepository interface {
	GetByAuthID(ctx context.Context, authID string) (*User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
}

type ProfileRepository interface {
	// GetByUser returns nil without error when the user has no profile yet.
	GetByUser(ctx context.Context, userID uuid.UUID) (*PatientProfile, error)
}
