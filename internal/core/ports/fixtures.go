package ports

import (
	"context"

	"github.com/storefront/storefront-api/internal/core/domain"
)

// Fixtures is the initial data set the process starts from.
type Fixtures struct {
	Brands   []domain.Brand
	Products []domain.Product
	Users    []domain.User
}

// FixtureSource loads the initial data set once at startup.
type FixtureSource interface {
	Load(ctx context.Context) (*Fixtures, error)
}
