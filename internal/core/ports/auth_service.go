package ports

import (
	"context"

	"github.com/priyanaka6261/property-portal-backend/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, email, password string, role domain.Role) (*domain.User, error)
	// Login verifies credentials and returns a signed bearer token.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// ValidateToken resolves a bearer token to claims. It fails closed: any
	// signature mismatch, malformed payload, or past expiry yields
	// domain.ErrInvalidToken, never partial claims.
	ValidateToken(token string) (domain.Claims, error)
	// Profile loads the account behind an authenticated user id.
	Profile(ctx context.Context, userID int64) (*domain.User, error)
}
