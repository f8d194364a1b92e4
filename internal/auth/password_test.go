package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/vritti-hub/slicingpie/internal/models"
)

// memoryUserStore is an in-memory UserStorage for authenticator tests.
type memoryUserStore struct {
	users []*models.User
}

func (m *memoryUserStore) CreateUser(ctx context.Context, user *models.User) error {
	m.users = append(m.users, user)
	return nil
}

func (m *memoryUserStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memoryUserStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memoryUserStore) CountUsers(ctx context.Context) (int, error) {
	return len(m.users), nil
}

func TestRegisterBootstrapsRoles(t *testing.T) {
	a := NewPasswordAuthenticator(&memoryUserStore{})
	ctx := context.Background()

	first, err := a.Register(ctx, "first@example.com", "First", "password123")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if first.Role != models.RoleAdmin {
		t.Errorf("first account role = %q, want admin", first.Role)
	}

	second, err := a.Register(ctx, "second@example.com", "Second", "password123")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if second.Role != models.RoleMember {
		t.Errorf("second account role = %q, want member", second.Role)
	}
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	a := NewPasswordAuthenticator(&memoryUserStore{})

	if _, err := a.Register(context.Background(), "a@example.com", "A", "short"); !errors.Is(err, ErrWeakPassword) {
		t.Errorf("expected ErrWeakPassword, got %v", err)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	a := NewPasswordAuthenticator(&memoryUserStore{})
	ctx := context.Background()

	if _, err := a.Register(ctx, "a@example.com", "A", "password123"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if _, err := a.Register(ctx, "a@example.com", "A Again", "password123"); !errors.Is(err, ErrEmailExists) {
		t.Errorf("expected ErrEmailExists, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	a := NewPasswordAuthenticator(&memoryUserStore{})
	ctx := context.Background()

	if _, err := a.Register(ctx, "a@example.com", "A", "password123"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	user, err := a.Authenticate(ctx, "a@example.com", "password123")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if user.Email != "a@example.com" {
		t.Errorf("Email = %q", user.Email)
	}

	if _, err := a.Authenticate(ctx, "a@example.com", "wrong-password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := a.Authenticate(ctx, "nobody@example.com", "password123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}
}
