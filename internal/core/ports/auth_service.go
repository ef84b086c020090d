package ports

import (
	"context"

	"github.com/havenly/havenly-api/internal/core/domain"
)

// RegisterInput carries a self-service registration request.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string // raw role string; parsed and restricted by the service
}

// TokenClaims is the verified identity extracted from a bearer token.
type TokenClaims struct {
	UserID string
	Email  string
	Role   domain.Role
	JTI    string
	// ExpiresAt is the token expiry as a Unix timestamp.
	ExpiresAt int64
}

// AuthService defines authentication use cases.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Verify resolves a bearer token into its user record, rejecting revoked
	// tokens. This backs GET /auth/me.
	Verify(ctx context.Context, token string) (*domain.User, error)
	// Logout revokes the token for the remainder of its lifetime.
	Logout(ctx context.Context, token string) error
}
