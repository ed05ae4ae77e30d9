// Package weather orchestrates location resolution, coordinate lookup,
// resilient fetching and formatting into normalized weather results. The
// service never returns an error or panics past its boundary: every query
// produces a structured result with a success flag.
package weather

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/weatherbuddy/weather-assistant/internal/gazetteer"
	"github.com/weatherbuddy/weather-assistant/internal/geocode"
	"github.com/weatherbuddy/weather-assistant/internal/httpclient"
	"github.com/weatherbuddy/weather-assistant/internal/speller"
)

// resolveThreshold is the minimum gazetteer confidence for proceeding with
// a resolved name. The boundary is inclusive.
const resolveThreshold = 0.8

// samplesPerDay is the provider's three-hour forecast cadence.
const samplesPerDay = 8

const defaultForecastDays = 3

// Service is the top-level weather orchestrator.
type Service struct {
	apiKey          string
	baseURL         string
	client          *httpclient.Client
	gaz             *gazetteer.Gazetteer
	checker         *speller.Checker
	geocoder        geocode.Geocoder
	defaultLocation string
	clock           clockwork.Clock
}

// NewService wires the orchestrator. An empty apiKey puts the service into
// permanent fallback mode: resolution still works, no network calls happen.
func NewService(client *httpclient.Client, gaz *gazetteer.Gazetteer, checker *speller.Checker, geocoder geocode.Geocoder, apiKey, defaultLocation string) *Service {
	if defaultLocation == "" {
		defaultLocation = "New York"
	}
	s := &Service{
		apiKey:          apiKey,
		baseURL:         "https://api.openweathermap.org/data/2.5",
		client:          client,
		gaz:             gaz,
		checker:         checker,
		geocoder:        geocoder,
		defaultLocation: defaultLocation,
		clock:           clockwork.NewRealClock(),
	}
	if apiKey == "" {
		log.Printf("INFO: weather service unavailable - no API key configured")
	}
	return s
}

// Available reports whether live weather data can be fetched at all.
func (s *Service) Available() bool {
	return s.apiKey != ""
}

// Gazetteer exposes the location store for resolution endpoints.
func (s *Service) Gazetteer() *gazetteer.Gazetteer {
	return s.gaz
}

// CurrentWeather resolves the location and fetches current conditions.
func (s *Service) CurrentWeather(ctx context.Context, location string) Current {
	if location == "" {
		location = s.defaultLocation
	}
	if !s.Available() {
		return s.fallbackCurrent(location, fmt.Sprintf(
			"I'd love to get the current weather for %s, but I need a weather API key to access real-time data. You can get a free API key from OpenWeatherMap and add it to your configuration.",
			location))
	}

	res := s.resolve(location)
	if res.clarify {
		return Current{
			Success:            false,
			Location:           location,
			NeedsClarification: true,
			Suggestions:        res.suggestions,
			Message:            res.message,
		}
	}

	coords, ok := s.coordinates(ctx, res.location)
	if !ok {
		return s.fallbackCurrent(res.location, fmt.Sprintf("Sorry, I couldn't find coordinates for %s.", res.location))
	}

	body, err := s.client.Do(ctx, httpclient.Request{
		Method:      http.MethodGet,
		URL:         s.baseURL + "/weather",
		Params:      s.weatherParams(coords, nil),
		Timeout:     10 * time.Second,
		ErrorPrefix: "Weather service temporarily unavailable",
	})
	if err != nil {
		log.Printf("ERROR: weather fetch for %s failed: %v", res.location, err)
		return s.fallbackCurrent(res.location, err.Error())
	}

	result, err := formatCurrent(body, res.location, s.clock.Now())
	if err != nil {
		log.Printf("ERROR: weather data formatting for %s failed: %v", res.location, err)
		return s.fallbackCurrent(res.location, fmt.Sprintf("Sorry, I couldn't read the weather data for %s.", res.location))
	}
	return result
}

// GetForecast resolves the location and fetches a multi-day forecast.
// The fetch window follows days, but formatting never returns more than
// maxForecastDays entries.
func (s *Service) GetForecast(ctx context.Context, location string, days int) Forecast {
	if location == "" {
		location = s.defaultLocation
	}
	if days <= 0 {
		days = defaultForecastDays
	}

	if !s.Available() {
		return s.fallbackForecast(location, fmt.Sprintf(
			"Weather forecast for %s requires a weather API key. Get a free one from OpenWeatherMap to enable real-time weather updates!",
			location))
	}

	res := s.resolve(location)
	if res.clarify {
		return Forecast{
			Success:            false,
			Location:           location,
			NeedsClarification: true,
			Suggestions:        res.suggestions,
			Message:            res.message,
		}
	}

	coords, ok := s.coordinates(ctx, res.location)
	if !ok {
		return s.fallbackForecast(res.location, fmt.Sprintf("Sorry, I couldn't find coordinates for %s.", res.location))
	}

	extra := url.Values{}
	extra.Set("cnt", strconv.Itoa(days*samplesPerDay))

	body, err := s.client.Do(ctx, httpclient.Request{
		Method:      http.MethodGet,
		URL:         s.baseURL + "/forecast",
		Params:      s.weatherParams(coords, extra),
		Timeout:     10 * time.Second,
		ErrorPrefix: "Forecast service temporarily unavailable",
	})
	if err != nil {
		log.Printf("ERROR: forecast fetch for %s failed: %v", res.location, err)
		return s.fallbackForecast(res.location, err.Error())
	}

	result, err := formatForecast(body, res.location, s.clock.Now())
	if err != nil {
		log.Printf("ERROR: forecast data formatting for %s failed: %v", res.location, err)
		return s.fallbackForecast(res.location, fmt.Sprintf("Sorry, I couldn't read the forecast data for %s.", res.location))
	}
	return result
}

// LearnCorrection records user feedback about a misspelled location.
func (s *Service) LearnCorrection(original, corrected string) {
	s.checker.Learn(original, corrected)
	log.Printf("INFO: learned location correction: %s -> %s", original, corrected)
}

// CheckSpelling runs the corrections table against free text.
func (s *Service) CheckSpelling(text string) (string, float64, []string) {
	return s.checker.Check(text)
}

// resolution is the outcome of the RESOLVE step.
type resolution struct {
	location    string
	clarify     bool
	suggestions []string
	message     string
}

// resolve runs the gazetteer over the input. At or above the threshold the
// canonical name wins; below it, suggestions trigger a clarification and
// their absence lets the original string through for geocoding.
func (s *Service) resolve(location string) resolution {
	found := s.gaz.FindLocation(location)
	if found.Confidence >= resolveThreshold && found.Match != "" {
		return resolution{location: found.Match}
	}
	if len(found.Suggestions) > 0 {
		shortlist := found.Suggestions
		if len(shortlist) > 3 {
			shortlist = shortlist[:3]
		}
		return resolution{
			clarify:     true,
			suggestions: found.Suggestions,
			message:     fmt.Sprintf("Did you mean: %s?", strings.Join(shortlist, ", ")),
		}
	}
	return resolution{location: location}
}

// coordinates finds lat/lon for a resolved location, trying the gazetteer
// first and falling back to external geocoding.
func (s *Service) coordinates(ctx context.Context, location string) (geocode.Coordinates, bool) {
	if rec, ok := s.gaz.GetLocationInfo(location); ok {
		return geocode.Coordinates{Lat: rec.Lat, Lon: rec.Lon}, true
	}
	if s.geocoder == nil {
		return geocode.Coordinates{}, false
	}
	return s.geocoder.Lookup(ctx, location)
}

func (s *Service) weatherParams(coords geocode.Coordinates, extra url.Values) url.Values {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(coords.Lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(coords.Lon, 'f', -1, 64))
	params.Set("appid", s.apiKey)
	params.Set("units", "metric")
	for k, vs := range extra {
		for _, v := range vs {
			params.Add(k, v)
		}
	}
	return params
}

func (s *Service) fallbackCurrent(location, message string) Current {
	return Current{
		Success:  false,
		Location: location,
		Fallback: true,
		Message:  message,
	}
}

func (s *Service) fallbackForecast(location, message string) Forecast {
	return Forecast{
		Success:  false,
		Location: location,
		Fallback: true,
		Message:  message,
	}
}
