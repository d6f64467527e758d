// Package main is the entry point for the flight reservations gateway.
//
//	@title			Flight Reservations API
//	@version		1.0.0
//	@description	Flight reservation gateway: airport search, offer search with airline names, price confirmation and booking.
//
//	@contact.name	API Support
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	// Import generated docs for swagger
	_ "github.com/flight-search/flight-reservations/docs"

	flighthttp "github.com/flight-search/flight-reservations/internal/adapter/http"
	"github.com/flight-search/flight-reservations/internal/adapter/http/middleware"
	"github.com/flight-search/flight-reservations/internal/adapter/provider/amadeus"
	"github.com/flight-search/flight-reservations/internal/config"
	"github.com/flight-search/flight-reservations/internal/domain"
	"github.com/flight-search/flight-reservations/internal/infrastructure/cache"
	"github.com/flight-search/flight-reservations/internal/infrastructure/logger"
	"github.com/flight-search/flight-reservations/internal/usecase"
)

const (
	shutdownTimeout  = 10 * time.Second
	redisDialTimeout = 5 * time.Second
	airportKeyPrefix = "airport:"
)

func main() {
	cfg := config.MustLoad()

	log := logger.New(logger.Config{
		Level:        cfg.Logging.Level,
		Format:       cfg.Logging.Format,
		EnableCaller: cfg.IsDevelopment(),
		ServiceName:  logger.ServiceName,
	})

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("provider_base_url", cfg.Provider.BaseURL).
		Bool("redis", cfg.RedisEnabled()).
		Msg("Configuration loaded")

	provider := amadeus.NewClient(amadeus.Config{
		BaseURL:      cfg.Provider.BaseURL,
		APIKey:       cfg.Provider.APIKey,
		APISecret:    cfg.Provider.APISecret,
		Timeout:      cfg.Provider.Timeout,
		RateLimitRPS: cfg.Provider.RateLimitRPS,
		MaxAttempts:  cfg.Provider.MaxAttempts,
	}, log.Logger)

	airportCache, redisClient := setupAirportCache(cfg, log)

	resolver := usecase.NewAirportResolver(provider, airportCache, cfg.Cache.BatchConcurrency,
		log.WithComponent("airport_resolver").Logger)
	service := usecase.NewReservationService(provider, resolver,
		log.WithComponent("reservation_service").Logger)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log.Logger)

	handler := flighthttp.NewReservationHandler(service, log.WithComponent("http").Logger)
	flighthttp.RegisterRoutes(e, handler)
	flighthttp.RegisterSwagger(e)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, redisClient, log)
}

// setupAirportCache builds the in-memory airport cache, layered over Redis when
// REDIS_ADDR is set. An unreachable Redis is logged and the memory tier is used alone.
func setupAirportCache(cfg *config.Config, log *logger.Logger) (cache.Cache[domain.Airport], *redis.Client) {
	local := cache.NewMemory[domain.Airport]()
	if !cfg.RedisEnabled() {
		return local, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisDialTimeout)
	defer cancel()

	client, err := cache.NewRedisClient(ctx, cache.RedisConfig{
		Addr:     cfg.Cache.RedisAddr,
		Password: cfg.Cache.RedisPassword,
		DB:       cfg.Cache.RedisDB,
	})
	if err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, using in-memory airport cache only")
		return local, nil
	}

	log.Info().Str("addr", cfg.Cache.RedisAddr).Msg("Airport cache backed by Redis")
	shared := cache.NewRedis[domain.Airport](client, airportKeyPrefix)
	return cache.NewTiered[domain.Airport](local, shared, log.WithComponent("airport_cache").Logger), client
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, redisClient *redis.Client, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing redis client")
		}
	}

	log.Info().Msg("Server stopped")
}
