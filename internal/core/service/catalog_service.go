package service

import (
	"context"
	"strings"

	"github.com/storefront/storefront-api/internal/core/domain"
	"github.com/storefront/storefront-api/internal/core/ports"
)

type CatalogService struct {
	repo ports.CatalogRepository
}

func NewCatalogService(repo ports.CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	brands, err := s.repo.Brands(ctx)
	if err != nil {
		return nil, err
	}
	if len(brands) == 0 {
		return nil, domain.ErrNotFound
	}
	return brands, nil
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.Products(ctx)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, domain.ErrNotFound
	}
	return products, nil
}

// ProductsByBrand returns the products whose category is brandID.
func (s *CatalogService) ProductsByBrand(ctx context.Context, brandID domain.ID) ([]domain.Product, error) {
	return s.filter(ctx, func(p domain.Product) bool {
		return p.CategoryID == brandID
	})
}

// Search matches query against product names and descriptions, ignoring case.
func (s *CatalogService) Search(ctx context.Context, query string) ([]domain.Product, error) {
	if query == "" {
		return nil, domain.ErrMalformedRequest
	}
	q := strings.ToLower(query)
	return s.filter(ctx, func(p domain.Product) bool {
		return strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q)
	})
}

func (s *CatalogService) filter(ctx context.Context, keep func(domain.Product) bool) ([]domain.Product, error) {
	products, err := s.repo.Products(ctx)
	if err != nil {
		return nil, err
	}
	var out []domain.Product
	for _, p := range products {
		if keep(p) {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil, domain.ErrNotFound
	}
	return out, nil
}
