package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/weatherbuddy/weather-assistant/internal/api/http"
	"github.com/weatherbuddy/weather-assistant/internal/config"
	"github.com/weatherbuddy/weather-assistant/internal/gazetteer"
	"github.com/weatherbuddy/weather-assistant/internal/geocode"
	"github.com/weatherbuddy/weather-assistant/internal/httpclient"
	"github.com/weatherbuddy/weather-assistant/internal/resolver"
	"github.com/weatherbuddy/weather-assistant/internal/scheduler"
	"github.com/weatherbuddy/weather-assistant/internal/speller"
	"github.com/weatherbuddy/weather-assistant/internal/store"
	"github.com/weatherbuddy/weather-assistant/internal/weather"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound calls, wrapped with retry and a
	// circuit breaker.
	client := httpclient.New(&http.Client{Timeout: cfg.HTTPTimeout}, httpclient.Config{
		MaxRetries: cfg.MaxRetries,
		BaseDelay:  cfg.BaseDelay,
		MaxDelay:   cfg.MaxDelay,
		Timeout:    cfg.HTTPTimeout,
	})

	// Location knowledge: gazetteer, learned spelling corrections, and
	// remote geocoding fallbacks.
	gaz := gazetteer.New()
	checker := speller.New(store.NewFileCorrections(cfg.CorrectionsFile))
	geocoder := geocode.Chain{
		geocode.NewOpenWeather(client, cfg.WeatherAPIKey),
		geocode.NewGoogle(cfg.GoogleGeocoderAPIKey),
	}

	// Core service orchestrating resolution and weather fetches.
	service := weather.NewService(client, gaz, checker, geocoder, cfg.WeatherAPIKey, cfg.DefaultLocation)

	// In-memory snapshot store with configured retention, refreshed on a
	// schedule for favorite locations.
	memStore := store.NewMemoryStore(cfg.StoreMaxHistory, cfg.StoreMaxAge)
	if len(cfg.FavoriteLocations) > 0 && service.Available() {
		sched := scheduler.New(cfg.FavoriteLocations, cfg.RefreshInterval, service, memStore)
		if err := sched.Start(); err != nil {
			log.Fatalf("failed to start scheduler: %v", err)
		}
		defer sched.Stop()
	}

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "weather-assistant",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "ok",
			"service":   "weather-assistant",
			"live_data": service.Available(),
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, service, resolver.New(gaz), memStore)

	// Start server with graceful shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
