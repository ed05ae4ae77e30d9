package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "New York", cfg.DefaultLocation)
	assert.Empty(t, cfg.FavoriteLocations)
	assert.Equal(t, 15*time.Minute, cfg.RefreshInterval)
	assert.Equal(t, 96, cfg.StoreMaxHistory)
	assert.Equal(t, 24*time.Hour, cfg.StoreMaxAge)
	assert.Equal(t, "learned_corrections.json", cfg.CorrectionsFile)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, time.Second, cfg.BaseDelay)
	assert.Equal(t, time.Minute, cfg.MaxDelay)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "8080", cfg.Port)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("WEATHER_API_KEY", "abc123")
	t.Setenv("WEATHER_DEFAULT_LOCATION", "Chennai")
	t.Setenv("WEATHER_FAVORITE_LOCATIONS", "London, Tokyo ,,Mumbai")
	t.Setenv("REFRESH_INTERVAL", "5m")
	t.Setenv("REQUEST_MAX_RETRIES", "5")
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "abc123", cfg.WeatherAPIKey)
	assert.Equal(t, "Chennai", cfg.DefaultLocation)
	assert.Equal(t, []string{"London", "Tokyo", "Mumbai"}, cfg.FavoriteLocations)
	assert.Equal(t, 5*time.Minute, cfg.RefreshInterval)
	assert.Equal(t, 5, cfg.MaxRetries)
	assert.Equal(t, "9090", cfg.Port)
}

func TestLoadInvalidDuration(t *testing.T) {
	t.Setenv("REFRESH_INTERVAL", "often")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REFRESH_INTERVAL")
}
