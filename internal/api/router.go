package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/storefront/storefront-api/docs"
	"github.com/storefront/storefront-api/internal/api/handler"
	"github.com/storefront/storefront-api/internal/api/middleware"
	"github.com/storefront/storefront-api/internal/core/ports"
	"github.com/storefront/storefront-api/internal/core/service"
)

// Deps are the collaborators the router wires into handlers.
type Deps struct {
	Auth    ports.AuthService
	Cart    ports.CartService
	Catalog ports.CatalogService

	// Counts feeds the readiness probe.
	Counts handler.FixtureCounts
	// Mongo is pinged by the readiness probe; nil when fixtures come from files.
	Mongo *mongo.Database

	Log      zerolog.Logger
	Reporter service.FaultReporter

	// Registerer and Gatherer back the HTTP metrics and /metrics. Nil selects
	// the Prometheus default registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log, d.Reporter)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(d.Log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "storefront",
		Registerer: d.Registerer,
	}))

	authHandler := handler.NewAuthHandler(d.Auth)
	cartHandler := handler.NewCartHandler(d.Cart)
	catalogHandler := handler.NewCatalogHandler(d.Catalog)

	api := e.Group("/api")

	// --- Catalog (public) ---
	api.GET("/brands", catalogHandler.Brands)
	api.GET("/brands/:id/products", catalogHandler.BrandProducts)
	api.GET("/products", catalogHandler.Products)
	api.GET("/search", catalogHandler.Search)

	// --- Auth ---
	api.POST("/login", authHandler.Login)

	// --- Cart (token required) ---
	cart := api.Group("/me/cart", middleware.AccessToken())
	cart.GET("", cartHandler.Get)
	cart.POST("", cartHandler.Add)
	cart.DELETE("/:productId", cartHandler.Remove)
	cart.POST("/:productId", cartHandler.Increment)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(d.Counts, d.Mongo)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Operations ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: d.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
