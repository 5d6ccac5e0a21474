package ports

import (
	"context"

	"github.com/storefront/storefront-api/internal/core/domain"
)

// CatalogService answers catalog queries. Empty results fail with
// domain.ErrNotFound.
type CatalogService interface {
	ListBrands(ctx context.Context) ([]domain.Brand, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	ProductsByBrand(ctx context.Context, brandID domain.ID) ([]domain.Product, error)
	Search(ctx context.Context, query string) ([]domain.Product, error)
}
