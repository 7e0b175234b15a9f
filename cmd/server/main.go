package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/cookeasy/backend/config"
	httpDelivery "github.com/cookeasy/backend/internal/delivery/http"
	"github.com/cookeasy/backend/internal/domain"
	"github.com/cookeasy/backend/internal/infrastructure/cache"
	"github.com/cookeasy/backend/internal/infrastructure/catalog"
	"github.com/cookeasy/backend/internal/infrastructure/gemini"
	"github.com/cookeasy/backend/internal/infrastructure/memory"
	"github.com/cookeasy/backend/internal/usecase"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}
	if !cfg.IsProduction() {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})
	}

	logger.Info().
		Str("environment", cfg.Server.Environment).
		Str("port", cfg.Server.Port).
		Str("cache", cfg.Cache.Type).
		Msg("starting CookEasy backend")

	if err := run(cfg); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

func run(cfg *config.Config) error {
	ctx := context.Background()

	analysisCache, err := newCache(ctx, cfg)
	if err != nil {
		return err
	}
	defer analysisCache.Close()

	extractor := newExtractor(ctx, cfg)

	// State stores, each with a single owner
	catalogs := catalog.NewStore()
	resolver := usecase.NewResolver(catalogs, usecase.ResolverConfig{
		Seed:   cfg.Resolver.Seed,
		Logger: &logger,
	})
	products := memory.NewProductStore(resolver.SeedProducts())
	recipes := memory.NewRecipeStore(catalog.RecommendedRecipes())
	orders := memory.NewOrderStore(catalog.InitialOrders())
	sessions := memory.NewSessionStore(catalog.NewSession)

	logger.Info().
		Int("catalog_items", catalogs.Size()).
		Int("products", products.Size()).
		Msg("catalog loaded")

	nav := usecase.NewNavigator()
	review := usecase.NewReviewService(sessions, products, recipes, resolver, nav, logger)

	services := httpDelivery.Services{
		Auth: usecase.NewAuthService(usecase.AuthConfig{
			Secret:   cfg.Auth.JWTSecret,
			TokenTTL: cfg.Auth.TokenTTL,
		}, logger),
		Catalog: usecase.NewCatalogService(catalogs, products, recipes, resolver),
		Review:  review,
		Analysis: usecase.NewAnalysisService(analysisCache, extractor, review, usecase.AnalysisServiceConfig{
			CacheTTL: cfg.Cache.TTL,
		}, logger),
		Cart: usecase.NewCartService(sessions, products, orders, nav, logger),
		Checkout: usecase.NewCheckoutService(sessions, orders, nav, usecase.CheckoutConfig{
			PaymentDelay: cfg.Checkout.PaymentDelay,
		}, logger),
		Navigation: usecase.NewNavigationService(sessions, products, recipes, catalogs, nav),
		Profile:    usecase.NewProfileService(sessions, orders),
		Admin:      usecase.NewAdminService(products, recipes, orders, logger),
	}

	handler := httpDelivery.NewHandler(services, cfg.Server.MaxUploadMB<<20, logger)
	router := httpDelivery.SetupRouter(cfg, handler, logger)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", server.Addr).Msg("server listening")
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case sig := <-shutdown:
		logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
		return server.Close()
	}
	return nil
}

// closableCache is a cache backend that holds resources
type closableCache interface {
	domain.CacheRepository
	io.Closer
}

func newCache(ctx context.Context, cfg *config.Config) (closableCache, error) {
	if cfg.Cache.Type != "redis" {
		return cache.NewMemoryCache(), nil
	}

	redisCache, err := cache.NewRedisCache(cfg.Cache.RedisURL, cfg.Cache.Prefix, logger)
	if err != nil {
		return nil, err
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := redisCache.Ping(pingCtx); err != nil {
		redisCache.Close()
		return nil, err
	}
	return redisCache, nil
}

func newExtractor(ctx context.Context, cfg *config.Config) domain.IngredientExtractor {
	if cfg.Gemini.APIKey == "" {
		logger.Warn().Msg("COOKEASY_GEMINI_API_KEY not set; image analysis will fail")
		return gemini.Unavailable{}
	}

	client, err := gemini.NewClient(ctx, gemini.Config{
		APIKey:            cfg.Gemini.APIKey,
		Model:             cfg.Gemini.Model,
		Timeout:           cfg.Gemini.Timeout,
		RequestsPerMinute: cfg.Gemini.RequestsPerMinute,
		Burst:             cfg.Gemini.Burst,
	}, logger)
	if err != nil {
		logger.Error().Err(err).Msg("gemini client unavailable; image analysis will fail")
		return gemini.Unavailable{}
	}
	logger.Info().Str("model", cfg.Gemini.Model).Msg("gemini client configured")
	return client
}
