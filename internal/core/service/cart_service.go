package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/storefront/storefront-api/internal/core/domain"
	"github.com/storefront/storefront-api/internal/core/ports"
)

// CartService implements the authenticated cart operations. Every operation
// authenticates the token before touching the cart.
type CartService struct {
	auth  ports.AuthService
	users ports.UserRepository
	log   zerolog.Logger
}

func NewCartService(auth ports.AuthService, users ports.UserRepository, log zerolog.Logger) *CartService {
	return &CartService{auth: auth, users: users, log: log}
}

// GetCart returns the caller's cart as stored.
func (s *CartService) GetCart(ctx context.Context, token string) (domain.Cart, error) {
	user, err := s.auth.Authenticate(ctx, token)
	if err != nil {
		return nil, err
	}
	return user.Cart.Clone(), nil
}

// AddToCart appends line verbatim. Lines for the same product are not merged.
func (s *CartService) AddToCart(ctx context.Context, token string, line domain.CartLine) (domain.Cart, error) {
	return s.mutate(ctx, token, "add", func(cart domain.Cart) domain.Cart {
		return append(cart, line)
	})
}

// RemoveFromCart drops every line that refers to productID.
func (s *CartService) RemoveFromCart(ctx context.Context, token string, productID domain.ID) (domain.Cart, error) {
	return s.mutate(ctx, token, "remove", func(cart domain.Cart) domain.Cart {
		return cart.Without(productID)
	})
}

// IncrementQuantity raises the quantity of the lines that refer to productID
// and hold at least one unit. Lines that do not qualify are removed from the
// cart.
func (s *CartService) IncrementQuantity(ctx context.Context, token string, productID domain.ID) (domain.Cart, error) {
	return s.mutate(ctx, token, "increment", func(cart domain.Cart) domain.Cart {
		return cart.IncrementMatching(productID)
	})
}

func (s *CartService) mutate(ctx context.Context, token, op string, fn func(domain.Cart) domain.Cart) (domain.Cart, error) {
	user, err := s.auth.Authenticate(ctx, token)
	if err != nil {
		return nil, err
	}

	cart, err := s.users.UpdateCart(ctx, user.Username(), fn)
	if err != nil {
		return nil, fmt.Errorf("cart %s: %w", op, err)
	}

	s.log.Debug().
		Str("username", user.Username()).
		Str("op", op).
		Int("lines", len(cart)).
		Msg("cart updated")
	return cart, nil
}
