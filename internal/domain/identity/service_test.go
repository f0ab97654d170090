package identity

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
)

type mockUserRepo struct {
	byAuthID map[string]*User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{byAuthID: make(map[string]*User)}
}

func (m *mockUserRepo) add(authID, email string) *User {
	u := &User{ID: uuid.New(), AuthID: authID, Email: email, CreatedAt: time.Now()}
	m.byAuthID[authID] = u
	return u
}

func (m *mockUserRepo) GetByAuthID(_ context.Context, authID string) (*User, error) {
	u, ok := m.byAuthID[authID]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return u, nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (*User, error) {
	for _, u := range m.byAuthID {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, fmt.Errorf("not found")
}

type mockProfileRepo struct {
	byUser map[uuid.UUID]*PatientProfile
}

func newMockProfileRepo() *mockProfileRepo {
	return &mockProfileRepo{byUser: make(map[uuid.UUID]*PatientProfile)}
}

func (m *mockProfileRepo) GetByUser(_ context.Context, userID uuid.UUID) (*PatientProfile, error) {
	return m.byUser[userID], nil
}

func TestService_ResolveUser(t *testing.T) {
	users := newMockUserRepo()
	u := users.add("auth0|abc", "ana@example.com")
	svc := NewService(users, newMockProfileRepo())

	got, err := svc.ResolveUser(context.Background(), "auth0|abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != u.ID {
		t.Errorf("resolved wrong user: %v", got.ID)
	}

	if _, err := svc.ResolveUser(context.Background(), "auth0|nobody"); err == nil {
		t.Error("expected error for unknown subject")
	}
	if _, err := svc.ResolveUser(context.Background(), ""); err == nil {
		t.Error("expected error for empty subject")
	}
}

func TestService_ResolveUserID(t *testing.T) {
	users := newMockUserRepo()
	u := users.add("auth0|abc", "ana@example.com")
	svc := NewService(users, newMockProfileRepo())

	id, err := svc.ResolveUserID(context.Background(), "auth0|abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != u.ID {
		t.Errorf("id = %v, want %v", id, u.ID)
	}
}

func TestService_Profile_MissingRecord(t *testing.T) {
	users := newMockUserRepo()
	users.add("auth0|abc", "ana@example.com")
	svc := NewService(users, newMockProfileRepo())

	p, err := svc.Profile(context.Background(), "auth0|abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.User == nil {
		t.Error("user missing from profile view")
	}
	if p.Profile != nil {
		t.Errorf("expected nil patient record, got %+v", p.Profile)
	}
}

func TestService_Profile(t *testing.T) {
	users := newMockUserRepo()
	u := users.add("auth0|abc", "ana@example.com")
	profiles := newMockProfileRepo()
	gender := "f"
	profiles.byUser[u.ID] = &PatientProfile{ID: uuid.New(), UserID: u.ID, Gender: &gender}
	svc := NewService(users, profiles)

	p, err := svc.Profile(context.Background(), "auth0|abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Profile == nil || p.Profile.UserID != u.ID {
		t.Errorf("profile = %+v, want record for %v", p.Profile, u.ID)
	}
}
