package identity

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Service struct {
	users    UserRepository
	profiles ProfileRepository
}

func NewService(users UserRepository, profiles ProfileRepository) *Service {
	return &Service{users: users, profiles: profiles}
}

// ResolveUser maps the external auth subject to the portal user row.
// Identity must resolve before any per-user query is issued.
func (s *Service) ResolveUser(ctx context.Context, authID string) (*User, error) {
	if authID == "" {
		return nil, fmt.Errorf("auth id is required")
	}
	return s.users.GetByAuthID(ctx, authID)
}

// ResolveUserID is the narrow form the other domains depend on.
func (s *Service) ResolveUserID(ctx context.Context, authID string) (uuid.UUID, error) {
	u, err := s.ResolveUser(ctx, authID)
	if err != nil {
		return uuid.Nil, err
	}
	return u.ID, nil
}

// Profile resolves the user and loads their patient record. The record may
// be nil; the view renders a placeholder in that case.
func (s *Service) Profile(ctx context.Context, authID string) (*Profile, error) {
	u, err := s.ResolveUser(ctx, authID)
	if err != nil {
		return nil, err
	}
	p, err := s.profiles.GetByUser(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	return &Profile{User: u, Profile: p}, nil
}
