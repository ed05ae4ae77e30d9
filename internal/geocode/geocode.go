// Package geocode provides best-effort external geocoding fallbacks for
// place names the gazetteer does not know.
package geocode

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/kelvins/geocoder"

	"github.com/weatherbuddy/weather-assistant/internal/httpclient"
)

// Coordinates is a latitude/longitude pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Geocoder resolves a free-text place name to coordinates. The second
// return value is false when the place could not be resolved for any
// reason; geocoding is best-effort and never returns an error.
type Geocoder interface {
	Lookup(ctx context.Context, place string) (Coordinates, bool)
}

// OpenWeatherGeocoder uses the OpenWeatherMap direct-geocoding endpoint.
type OpenWeatherGeocoder struct {
	apiKey  string
	baseURL string
	client  *httpclient.Client
}

// NewOpenWeather creates a geocoder backed by the shared resilient client.
func NewOpenWeather(client *httpclient.Client, apiKey string) *OpenWeatherGeocoder {
	return &OpenWeatherGeocoder{
		apiKey:  apiKey,
		baseURL: "http://api.openweathermap.org/geo/1.0/direct",
		client:  client,
	}
}

func (g *OpenWeatherGeocoder) Lookup(ctx context.Context, place string) (Coordinates, bool) {
	params := url.Values{}
	params.Set("q", place)
	params.Set("limit", "1")
	params.Set("appid", g.apiKey)

	body, err := g.client.Do(ctx, httpclient.Request{
		Method:      http.MethodGet,
		URL:         g.baseURL,
		Params:      params,
		Timeout:     5 * time.Second,
		ErrorPrefix: "location lookup service temporarily unavailable",
	})
	if err != nil {
		log.Printf("WARN: geocoding %q failed: %v", place, err)
		return Coordinates{}, false
	}

	var hits []struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	}
	if err := json.Unmarshal(body, &hits); err != nil || len(hits) == 0 {
		return Coordinates{}, false
	}
	return Coordinates{Lat: hits[0].Lat, Lon: hits[0].Lon}, true
}

// GoogleGeocoder is a secondary fallback through the Google Geocoding API.
// It is inert when no API key is configured.
type GoogleGeocoder struct {
	configured bool
}

// NewGoogle sets up the Google geocoding fallback. The kelvins/geocoder
// package keys off a package-level API key.
func NewGoogle(apiKey string) *GoogleGeocoder {
	if apiKey != "" {
		geocoder.ApiKey = apiKey
	}
	return &GoogleGeocoder{configured: apiKey != ""}
}

func (g *GoogleGeocoder) Lookup(_ context.Context, place string) (Coordinates, bool) {
	if !g.configured {
		return Coordinates{}, false
	}

	loc, err := geocoder.Geocoding(geocoder.Address{City: place})
	if err != nil {
		log.Printf("WARN: google geocoding %q failed: %v", place, err)
		return Coordinates{}, false
	}
	return Coordinates{Lat: loc.Latitude, Lon: loc.Longitude}, true
}

// Chain tries each geocoder in order and returns the first hit.
type Chain []Geocoder

func (c Chain) Lookup(ctx context.Context, place string) (Coordinates, bool) {
	for _, g := range c {
		if coords, ok := g.Lookup(ctx, place); ok {
			return coords, true
		}
	}
	return Coordinates{}, false
}
