package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/PrandiF/gevp-back/internal/core/domain"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) add(username, password, role string) {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	r.users[username] = &domain.User{
		ID:           username,
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	}
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		clone := *u
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	for name, u := range r.users {
		if u.ID == id {
			delete(r.users, name)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	repo.add("gevp", "secret123", domain.RoleMember)
	svc := NewAuthService(repo, "test-secret", time.Hour)

	token, user, err := svc.Login(context.Background(), "gevp", "secret123")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if user.Username != "gevp" || user.Role != domain.RoleMember {
		t.Fatalf("unexpected user: %+v", user)
	}
	if token.Value == "" {
		t.Fatalf("expected signed token")
	}
	if time.Until(token.Expires) <= 0 {
		t.Fatalf("token already expired: %v", token.Expires)
	}

	// The signed token must embed username and role.
	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(token.Value, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil {
		t.Fatalf("parsing issued token: %v", err)
	}
	if claims["username"] != "gevp" || claims["role"] != domain.RoleMember {
		t.Fatalf("unexpected claims: %v", claims)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	repo.add("gevp", "secret123", domain.RoleMember)
	svc := NewAuthService(repo, "test-secret", time.Hour)

	_, _, err := svc.Login(context.Background(), "gevp", "nope")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "test-secret", time.Hour)

	_, _, err := svc.Login(context.Background(), "ghost", "whatever")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Login_EmptyFields(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "test-secret", time.Hour)

	if _, _, err := svc.Login(context.Background(), "", "pass"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for empty username, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "user", ""); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for empty password, got %v", err)
	}
}

func TestAuthService_Verify_RoundTrip(t *testing.T) {
	repo := newStubUserRepo()
	repo.add("staff1", "pw", domain.RoleStaff)
	svc := NewAuthService(repo, "test-secret", time.Hour)

	token, _, err := svc.Login(context.Background(), "staff1", "pw")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	claims, err := svc.Verify(token.Value)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if claims.Username != "staff1" || claims.Role != domain.RoleStaff {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Verify_Expired(t *testing.T) {
	repo := newStubUserRepo()
	repo.add("gevp", "pw", domain.RoleMember)
	svc := NewAuthService(repo, "test-secret", -time.Minute)
	// negative TTL falls back to the default, so issue with a hand-built
	// expired token instead
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": "gevp",
		"role":     domain.RoleMember,
		"exp":      time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := expired.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing test token: %v", err)
	}

	if _, err := svc.Verify(signed); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for expired token, got %v", err)
	}
}

func TestAuthService_Verify_Tampered(t *testing.T) {
	repo := newStubUserRepo()
	repo.add("gevp", "pw", domain.RoleMember)
	svc := NewAuthService(repo, "test-secret", time.Hour)

	token, _, err := svc.Login(context.Background(), "gevp", "pw")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	otherSvc := NewAuthService(repo, "another-secret", time.Hour)
	if _, err := otherSvc.Verify(token.Value); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong secret, got %v", err)
	}

	if _, err := svc.Verify(token.Value + "x"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for tampered token, got %v", err)
	}
}

func TestAuthService_Verify_BadRole(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "test-secret", time.Hour)

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": "gevp",
		"role":     "superadmin",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	signed, err := tok.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing test token: %v", err)
	}

	if _, err := svc.Verify(signed); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown role, got %v", err)
	}
}
