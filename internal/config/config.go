package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	// WeatherAPIKey is the OpenWeatherMap credential. An empty key leaves
	// the service in fallback mode: location resolution still works, but
	// no live data is fetched.
	WeatherAPIKey string

	// GoogleGeocoderAPIKey enables the secondary geocoding fallback.
	GoogleGeocoderAPIKey string

	// DefaultLocation is used when a query contains no location.
	DefaultLocation string

	// FavoriteLocations are refreshed periodically in the background.
	FavoriteLocations []string

	// RefreshInterval controls how often favorites are refreshed.
	RefreshInterval time.Duration

	// Recent-snapshot store retention.
	StoreMaxHistory int
	StoreMaxAge     time.Duration

	// CorrectionsFile is where learned spelling corrections persist.
	CorrectionsFile string

	// Outbound request resilience.
	MaxRetries  int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	HTTPTimeout time.Duration

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.WeatherAPIKey = os.Getenv("WEATHER_API_KEY")
	cfg.GoogleGeocoderAPIKey = os.Getenv("GOOGLE_GEOCODER_API_KEY")
	cfg.DefaultLocation = getenvDefault("WEATHER_DEFAULT_LOCATION", "New York")

	if favs := os.Getenv("WEATHER_FAVORITE_LOCATIONS"); favs != "" {
		for _, loc := range strings.Split(favs, ",") {
			if loc = strings.TrimSpace(loc); loc != "" {
				cfg.FavoriteLocations = append(cfg.FavoriteLocations, loc)
			}
		}
	}

	interval, err := getenvDuration("REFRESH_INTERVAL", "15m")
	if err != nil {
		return nil, fmt.Errorf("invalid REFRESH_INTERVAL: %w", err)
	}
	cfg.RefreshInterval = interval

	cfg.StoreMaxHistory = getenvInt("STORE_MAX_HISTORY", 96) // roughly 24h at 15-minute intervals
	maxAge, err := getenvDuration("STORE_MAX_AGE", "24h")
	if err != nil {
		return nil, fmt.Errorf("invalid STORE_MAX_AGE: %w", err)
	}
	cfg.StoreMaxAge = maxAge

	cfg.CorrectionsFile = getenvDefault("LEARNED_CORRECTIONS_FILE", "learned_corrections.json")

	cfg.MaxRetries = getenvInt("REQUEST_MAX_RETRIES", 3)
	baseDelay, err := getenvDuration("REQUEST_BASE_DELAY", "1s")
	if err != nil {
		return nil, fmt.Errorf("invalid REQUEST_BASE_DELAY: %w", err)
	}
	cfg.BaseDelay = baseDelay

	maxDelay, err := getenvDuration("REQUEST_MAX_DELAY", "60s")
	if err != nil {
		return nil, fmt.Errorf("invalid REQUEST_MAX_DELAY: %w", err)
	}
	cfg.MaxDelay = maxDelay

	timeout, err := getenvDuration("HTTP_TIMEOUT", "10s")
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvDuration(key, def string) (time.Duration, error) {
	return time.ParseDuration(getenvDefault(key, def))
}
