package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storefront/storefront-api/internal/core/domain"
	"github.com/storefront/storefront-api/internal/core/ports"
)

// CatalogHandler serves the public, read-only catalog routes.
type CatalogHandler struct {
	service ports.CatalogService
}

func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// Brands handles GET /api/brands.
//
// @Summary      List brands
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   domain.Brand
// @Failure      404  {object}  errorResponse
// @Router       /brands [get]
func (h *CatalogHandler) Brands(c echo.Context) error {
	brands, err := h.service.ListBrands(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, brands)
}

// BrandProducts handles GET /api/brands/:id/products.
//
// @Summary      List the products of a brand
// @Tags         catalog
// @Produce      json
// @Param        id   path      string  true  "Brand ID"
// @Success      200  {array}   domain.Product
// @Failure      404  {object}  errorResponse
// @Router       /brands/{id}/products [get]
func (h *CatalogHandler) BrandProducts(c echo.Context) error {
	products, err := h.service.ProductsByBrand(c.Request().Context(), domain.ID(c.Param("id")))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Products handles GET /api/products.
//
// @Summary      List products
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   domain.Product
// @Failure      404  {object}  errorResponse
// @Router       /products [get]
func (h *CatalogHandler) Products(c echo.Context) error {
	products, err := h.service.ListProducts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Search handles GET /api/search?query=.
//
// @Summary      Search products by name or description
// @Tags         catalog
// @Produce      json
// @Param        query  query     string  true  "Search term"
// @Success      200    {array}   domain.Product
// @Failure      400    {object}  errorResponse
// @Failure      404    {object}  errorResponse
// @Router       /search [get]
func (h *CatalogHandler) Search(c echo.Context) error {
	products, err := h.service.Search(c.Request().Context(), c.QueryParam("query"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}
