package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/PrandiF/gevp-back/internal/api/metrics"
	"github.com/PrandiF/gevp-back/internal/core/domain"
	"github.com/PrandiF/gevp-back/internal/core/ports"
)

// AuthService implements login, token verification and user administration.
type AuthService struct {
	repo      ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(repo ports.UserRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 7 * 24 * time.Hour
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Login authenticates a user by username and password. An unknown username
// yields ErrUserNotFound; a wrong password yields ErrInvalidCredentials. On
// success it returns a signed session token embedding {username, role}.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.SessionToken, *domain.User, error) {
	if username == "" || password == "" {
		return nil, nil, domain.ErrValidation
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("unknown_user").Inc()
		return nil, nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("bad_password").Inc()
		return nil, nil, domain.ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return token, user, nil
}

// Verify parses and validates a session token, returning its claims.
// Expired, tampered or otherwise malformed tokens yield ErrInvalidCredentials.
func (s *AuthService) Verify(token string) (*ports.TokenClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidCredentials
	}

	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)
	if username == "" || !domain.ValidRole(role) {
		return nil, domain.ErrInvalidCredentials
	}
	return &ports.TokenClaims{Username: username, Role: role}, nil
}

func (s *AuthService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *AuthService) DeleteUser(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *AuthService) issueToken(user *domain.User) (*ports.SessionToken, error) {
	exp := time.Now().UTC().Add(s.tokenTTL)
	claims := jwt.MapClaims{
		"username": user.Username,
		"role":     user.Role,
		"exp":      exp.Unix(),
		"iat":      time.Now().UTC().Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, err
	}
	return &ports.SessionToken{Value: signed, Expires: exp}, nil
}
