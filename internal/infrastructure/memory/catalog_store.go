package memory

import (
	"context"

	"github.com/storefront/storefront-api/internal/core/domain"
)

// CatalogStore implements ports.CatalogRepository over immutable slices.
type CatalogStore struct {
	brands   []domain.Brand
	products []domain.Product
}

func NewCatalogStore(brands []domain.Brand, products []domain.Product) *CatalogStore {
	return &CatalogStore{
		brands:   append([]domain.Brand(nil), brands...),
		products: append([]domain.Product(nil), products...),
	}
}

func (s *CatalogStore) Brands(context.Context) ([]domain.Brand, error) {
	return append([]domain.Brand(nil), s.brands...), nil
}

func (s *CatalogStore) Products(context.Context) ([]domain.Product, error) {
	return append([]domain.Product(nil), s.products...), nil
}

// Counts returns the number of brands and products loaded.
func (s *CatalogStore) Counts() (brands, products int) {
	return len(s.brands), len(s.products)
}
