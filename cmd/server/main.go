// Command server runs the storefront API.
package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/storefront/storefront-api/internal/api"
	"github.com/storefront/storefront-api/internal/api/metrics"
	"github.com/storefront/storefront-api/internal/core/ports"
	"github.com/storefront/storefront-api/internal/core/service"
	"github.com/storefront/storefront-api/internal/infrastructure/config"
	mongodb "github.com/storefront/storefront-api/internal/infrastructure/db/mongo"
	"github.com/storefront/storefront-api/internal/infrastructure/fixtures"
	"github.com/storefront/storefront-api/internal/infrastructure/memory"
	"github.com/storefront/storefront-api/internal/infrastructure/observability"
	"github.com/storefront/storefront-api/pkg/logger"
)

// @title           Storefront API
// @version         1.0
// @description     Catalog, login and per-user cart backed by in-memory fixtures.
// @BasePath        /api
//
// @securityDefinitions.apikey  AccessToken
// @in                          query
// @name                        accessToken
func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := logger.New(logger.Options{})
		bootLog.Fatal().Err(err).Msg("load config")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty,
		Service: "storefront-api",
	})

	if err := observability.InitSentry(cfg.SentryDSN, cfg.Env); err != nil {
		log.Error().Err(err).Msg("init sentry")
	}
	defer observability.FlushSentry()

	if err := run(ctx, cfg, log); err != nil {
		log.Error().Err(err).Msg("server stopped")
		observability.FlushSentry()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	source, db, closeDB, err := fixtureSource(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeDB()

	data, err := source.Load(ctx)
	if err != nil {
		return err
	}

	users := memory.NewUserStore(data.Users)
	catalog := memory.NewCatalogStore(data.Brands, data.Products)
	brandCount, productCount := catalog.Counts()
	log.Info().
		Str("source", cfg.Fixtures.Source).
		Int("users", users.Len()).
		Int("brands", brandCount).
		Int("products", productCount).
		Msg("fixtures loaded")

	reporter := observability.SentryReporter{}
	tokens := service.NewTokenRegistry(cfg.Auth.TokenTTL)
	auth := service.NewAuthService(
		users,
		service.NewLoginThrottle(cfg.Auth.MaxLoginAttempts),
		tokens,
		reporter,
		log.With().Str("component", "auth").Logger(),
	)
	cart := service.NewCartService(auth, users, log.With().Str("component", "cart").Logger())

	if err := metrics.RegisterSessionGauge(prometheus.DefaultRegisterer, tokens.Len); err != nil {
		return err
	}

	e := api.NewRouter(api.Deps{
		Auth:    auth,
		Cart:    cart,
		Catalog: service.NewCatalogService(catalog),
		Counts: func() (int, int, int) {
			b, p := catalog.Counts()
			return users.Len(), b, p
		},
		Mongo:    db,
		Log:      log,
		Reporter: reporter,
	})

	srv := &http.Server{
		Addr:        net.JoinHostPort("", cfg.Port),
		Handler:     e,
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("env", cfg.Env).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Dur("timeout", cfg.ShutdownTimeout).Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

// fixtureSource selects where the initial data set is read from. The returned
// database is nil unless fixtures come from MongoDB.
func fixtureSource(ctx context.Context, cfg *config.Config, log zerolog.Logger) (ports.FixtureSource, *mongo.Database, func(), error) {
	if cfg.Fixtures.Source != config.FixtureSourceMongo {
		return fixtures.NewFileSource(cfg.Fixtures.Dir), nil, func() {}, nil
	}

	client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database}, log)
	if err != nil {
		return nil, nil, nil, err
	}
	closeDB := func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		_ = client.Disconnect(ctx)
	}
	return mongodb.NewFixtureSource(db), db, closeDB, nil
}
