package ports

import (
	"context"

	"github.com/storefront/storefront-api/internal/core/domain"
)

// CatalogRepository exposes the read-only catalog.
type CatalogRepository interface {
	Brands(ctx context.Context) ([]domain.Brand, error)
	Products(ctx context.Context) ([]domain.Product, error)
}
