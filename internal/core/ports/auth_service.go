package ports

import (
	"context"

	"github.com/storefront/storefront-api/internal/core/domain"
)

type AuthService interface {
	// Login returns the caller's bearer token.
	Login(ctx context.Context, username, password string) (string, error)
	// Authenticate resolves a bearer token to its user or fails with
	// domain.ErrUnauthorized.
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}
