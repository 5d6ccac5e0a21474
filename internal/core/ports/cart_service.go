package ports

import (
	"context"

	"github.com/storefront/storefront-api/internal/core/domain"
)

// CartService is the authenticated cart API. Every call takes the caller's
// bearer token.
type CartService interface {
	GetCart(ctx context.Context, token string) (domain.Cart, error)
	AddToCart(ctx context.Context, token string, line domain.CartLine) (domain.Cart, error)
	RemoveFromCart(ctx context.Context, token string, productID domain.ID) (domain.Cart, error)
	IncrementQuantity(ctx context.Context, token string, productID domain.ID) (domain.Cart, error)
}
