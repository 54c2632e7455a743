// Package main is the entry point for the hotel search aggregation service.
//
//	@title						Hotel Search Aggregation API
//	@version					1.0.0
//	@description				A hotel search aggregation service that combines supplier price and static content feeds into unified, filterable results.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/hotel-search/hotel-search-aggregation-service/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
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

	// Import generated docs for swagger
	_ "github.com/hotel-search/hotel-search-aggregation-service/docs"

	hotelhttp "github.com/hotel-search/hotel-search-aggregation-service/internal/adapter/http"
	"github.com/hotel-search/hotel-search-aggregation-service/internal/adapter/http/middleware"
	"github.com/hotel-search/hotel-search-aggregation-service/internal/adapter/upstream"
	"github.com/hotel-search/hotel-search-aggregation-service/internal/cache"
	"github.com/hotel-search/hotel-search-aggregation-service/internal/config"
	"github.com/hotel-search/hotel-search-aggregation-service/internal/infrastructure/logger"
	"github.com/hotel-search/hotel-search-aggregation-service/internal/infrastructure/poll"
	"github.com/hotel-search/hotel-search-aggregation-service/internal/infrastructure/timeutil"
	"github.com/hotel-search/hotel-search-aggregation-service/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize structured logger
	appLog := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "hotel-search",
	})

	appLog.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Msg("Configuration loaded")

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Result cache over the wall clock
	resultCache := cache.New(cfg.Cache.TTL, timeutil.NewRealClock())

	// Upstream gateway
	gateway := upstream.NewClient(upstream.Config{
		PriceJobURL:    cfg.Upstream.PriceJobURL,
		StaticInfoURL:  cfg.Upstream.StaticInfoURL,
		PartnerID:      cfg.Upstream.PartnerID,
		RequestTimeout: cfg.Upstream.RequestTimeout,
		Poll: poll.Config{
			MaxAttempts: cfg.Upstream.PollMaxAttempts,
			Interval:    cfg.Upstream.PollInterval,
		},
	}, appLog)

	// Use case and handler
	searchUseCase := usecase.NewHotelSearchUseCase(gateway, resultCache, usecase.Config{
		PartnerID: cfg.Upstream.PartnerID,
		Log:       appLog,
	})
	handler := hotelhttp.NewHotelHandler(searchUseCase)

	// Routes behind the middleware chain (request ID, request logging,
	// panic recovery); health stays outside so probes skip the log noise.
	hotelhttp.RegisterRoutesWithMiddleware(e, handler, middleware.Chain(appLog.Logger)...)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		appLog.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e, resultCache, appLog)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, resultCache *cache.Cache, appLog *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	appLog.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		appLog.Error().Err(err).Msg("Error during server shutdown")
	}

	resultCache.Close()
	appLog.Info().Msg("Server stopped")
}
