package ports

import (
	"context"

	"github.com/storefront/storefront-api/internal/core/domain"
)

// UserRepository gives access to the user records loaded at startup.
// Returned users are copies; the cart is changed only through UpdateCart.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// FindByCredentials returns the first user whose username and password
	// both match exactly, or domain.ErrUserNotFound.
	FindByCredentials(ctx context.Context, username, password string) (*domain.User, error)
	// UpdateCart replaces the user's cart with mutate's result while holding
	// the user's lock and returns a copy of the stored cart.
	UpdateCart(ctx context.Context, username string, mutate func(domain.Cart) domain.Cart) (domain.Cart, error)
}
