package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storefront/storefront-api/internal/api/metrics"
	"github.com/storefront/storefront-api/internal/api/middleware"
	"github.com/storefront/storefront-api/internal/core/domain"
	"github.com/storefront/storefront-api/internal/core/ports"
)

// CartHandler serves /api/me/cart. Routes are expected behind
// middleware.AccessToken.
type CartHandler struct {
	service ports.CartService
	binder  echo.DefaultBinder
}

func NewCartHandler(service ports.CartService) *CartHandler {
	return &CartHandler{service: service}
}

// Get handles GET /api/me/cart.
//
// @Summary      Get the caller's cart
// @Tags         cart
// @Produce      json
// @Param        accessToken  query     string  true  "Access token"
// @Success      200          {array}   cartLineRequest
// @Failure      401          {object}  errorResponse
// @Router       /me/cart [get]
func (h *CartHandler) Get(c echo.Context) error {
	cart, err := h.service.GetCart(c.Request().Context(), middleware.TokenFrom(c))
	return h.respond(c, "get", cart, err)
}

// Add handles POST /api/me/cart. The body is appended to the cart as sent.
//
// @Summary      Add a line to the caller's cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        accessToken  query     string           true  "Access token"
// @Param        body         body      cartLineRequest  true  "Cart line"
// @Success      200          {array}   cartLineRequest
// @Failure      400          {object}  errorResponse
// @Failure      401          {object}  errorResponse
// @Router       /me/cart [post]
func (h *CartHandler) Add(c echo.Context) error {
	var line domain.CartLine
	if err := h.binder.BindBody(c, &line); err != nil {
		var he *echo.HTTPError
		if errors.As(err, &he) && he.Code == http.StatusUnsupportedMediaType {
			return err
		}
		return fmt.Errorf("%w: invalid cart line", domain.ErrMalformedRequest)
	}

	cart, err := h.service.AddToCart(c.Request().Context(), middleware.TokenFrom(c), line)
	return h.respond(c, "add", cart, err)
}

// Remove handles DELETE /api/me/cart/:productId.
//
// @Summary      Remove every line for a product
// @Tags         cart
// @Produce      json
// @Param        accessToken  query     string  true  "Access token"
// @Param        productId    path      string  true  "Product ID"
// @Success      200          {array}   cartLineRequest
// @Failure      401          {object}  errorResponse
// @Router       /me/cart/{productId} [delete]
func (h *CartHandler) Remove(c echo.Context) error {
	cart, err := h.service.RemoveFromCart(c.Request().Context(), middleware.TokenFrom(c), domain.ID(c.Param("productId")))
	return h.respond(c, "remove", cart, err)
}

// Increment handles POST /api/me/cart/:productId. Lines that do not refer to
// the product, or that hold no units, are removed from the cart.
//
// @Summary      Increment the quantity of a product
// @Tags         cart
// @Produce      json
// @Param        accessToken  query     string  true  "Access token"
// @Param        productId    path      string  true  "Product ID"
// @Success      200          {array}   cartLineRequest
// @Failure      401          {object}  errorResponse
// @Router       /me/cart/{productId} [post]
func (h *CartHandler) Increment(c echo.Context) error {
	cart, err := h.service.IncrementQuantity(c.Request().Context(), middleware.TokenFrom(c), domain.ID(c.Param("productId")))
	return h.respond(c, "increment", cart, err)
}

func (h *CartHandler) respond(c echo.Context, op string, cart domain.Cart, err error) error {
	switch {
	case err == nil:
		metrics.CartOperationsTotal.WithLabelValues(op, "ok").Inc()
	case errors.Is(err, domain.ErrUnauthorized):
		metrics.CartOperationsTotal.WithLabelValues(op, "unauthorized").Inc()
		return err
	default:
		metrics.CartOperationsTotal.WithLabelValues(op, "error").Inc()
		return err
	}
	if cart == nil {
		cart = domain.Cart{}
	}
	return c.JSON(http.StatusOK, cart)
}
