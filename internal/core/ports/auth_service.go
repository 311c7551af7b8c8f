package ports

import (
	"context"
	"time"

	"github.com/PrandiF/gevp-back/internal/core/domain"
)

// SessionToken is a signed bearer token plus its expiry, issued on login and
// carried by the client in the "token" cookie.
type SessionToken struct {
	Value   string
	Expires time.Time
}

// TokenClaims is the payload embedded in a session token.
type TokenClaims struct {
	Username string
	Role     string
}

// AuthService implements login, token verification and user administration.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*SessionToken, *domain.User, error)
	Verify(token string) (*TokenClaims, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	DeleteUser(ctx context.Context, id string) error
}
