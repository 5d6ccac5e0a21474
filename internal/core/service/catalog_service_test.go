package service

import (
	"context"
	"errors"
	"testing"

	"github.com/storefront/storefront-api/internal/core/domain"
)

type stubCatalogRepo struct {
	brands   []domain.Brand
	products []domain.Product
	err      error
}

func (r *stubCatalogRepo) Brands(context.Context) ([]domain.Brand, error) {
	return r.brands, r.err
}

func (r *stubCatalogRepo) Products(context.Context) ([]domain.Product, error) {
	return r.products, r.err
}

func sampleCatalog() *stubCatalogRepo {
	return &stubCatalogRepo{
		brands: []domain.Brand{{ID: "1", Name: "Oakley"}, {ID: "2", Name: "Ray Ban"}},
		products: []domain.Product{
			{ID: "1", CategoryID: "1", Name: "Superglasses", Description: "The best glasses in the world"},
			{ID: "2", CategoryID: "1", Name: "Black Sunglasses", Description: "Keep the sun out"},
			{ID: "3", CategoryID: "2", Name: "Brown Sunglasses", Description: "Classic look"},
		},
	}
}

func TestCatalogService_ListBrands(t *testing.T) {
	svc := NewCatalogService(sampleCatalog())
	brands, err := svc.ListBrands(context.Background())
	if err != nil {
		t.Fatalf("ListBrands: %v", err)
	}
	if len(brands) != 2 {
		t.Fatalf("expected 2 brands, got %d", len(brands))
	}
}

func TestCatalogService_EmptyCatalogIsNotFound(t *testing.T) {
	svc := NewCatalogService(&stubCatalogRepo{})
	if _, err := svc.ListBrands(context.Background()); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("ListBrands: expected ErrNotFound, got %v", err)
	}
	if _, err := svc.ListProducts(context.Background()); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("ListProducts: expected ErrNotFound, got %v", err)
	}
}

func TestCatalogService_ProductsByBrand(t *testing.T) {
	svc := NewCatalogService(sampleCatalog())

	products, err := svc.ProductsByBrand(context.Background(), "1")
	if err != nil {
		t.Fatalf("ProductsByBrand: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if _, err := svc.ProductsByBrand(context.Background(), "42"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown brand, got %v", err)
	}
}

func TestCatalogService_Search(t *testing.T) {
	svc := NewCatalogService(sampleCatalog())

	got, err := svc.Search(context.Background(), "SUNGLASSES")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 name matches, got %d", len(got))
	}

	got, err = svc.Search(context.Background(), "world")
	if err != nil || len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("expected description match on product 1, got %+v, %v", got, err)
	}

	if _, err := svc.Search(context.Background(), "zzz"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.Search(context.Background(), ""); !errors.Is(err, domain.ErrMalformedRequest) {
		t.Fatalf("expected ErrMalformedRequest, got %v", err)
	}
}

func TestCatalogService_PropagatesRepoError(t *testing.T) {
	boom := errors.New("boom")
	svc := NewCatalogService(&stubCatalogRepo{err: boom})
	if _, err := svc.ListProducts(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected repo error, got %v", err)
	}
}
