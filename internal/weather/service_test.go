package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weatherbuddy/weather-assistant/internal/gazetteer"
	"github.com/weatherbuddy/weather-assistant/internal/geocode"
	"github.com/weatherbuddy/weather-assistant/internal/httpclient"
	"github.com/weatherbuddy/weather-assistant/internal/speller"
)

const currentBody = `{
	"weather": [{"description": "clear sky"}],
	"main": {"temp": 31.2, "feels_like": 33.8, "humidity": 60, "pressure": 1011},
	"wind": {"speed": 2.1, "deg": 90}
}`

type stubGeocoder struct {
	coords geocode.Coordinates
	ok     bool
	calls  atomic.Int32
}

func (s *stubGeocoder) Lookup(_ context.Context, _ string) (geocode.Coordinates, bool) {
	s.calls.Add(1)
	return s.coords, s.ok
}

func newTestService(t *testing.T, apiKey string, handler http.Handler) (*Service, *atomic.Int32) {
	t.Helper()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if handler != nil {
			handler.ServeHTTP(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	client := httpclient.New(&http.Client{Timeout: 5 * time.Second}, httpclient.Config{MaxRetries: 1})
	svc := NewService(client, gazetteer.New(), speller.New(nil), nil, apiKey, "")
	svc.baseURL = srv.URL
	return svc, &hits
}

func TestCurrentWeatherWithoutAPIKey(t *testing.T) {
	svc, hits := newTestService(t, "", nil)

	res := svc.CurrentWeather(context.Background(), "Madurai")
	assert.False(t, res.Success)
	assert.True(t, res.Fallback)
	assert.Contains(t, res.Message, "API key")
	assert.Equal(t, int32(0), hits.Load(), "no network call may happen without a key")
}

func TestCurrentWeatherHappyPath(t *testing.T) {
	svc, hits := newTestService(t, "secret", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/weather", r.URL.Path)
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		assert.Equal(t, "secret", r.URL.Query().Get("appid"))
		assert.NotEmpty(t, r.URL.Query().Get("lat"))
		assert.NotEmpty(t, r.URL.Query().Get("lon"))
		_, _ = w.Write([]byte(currentBody))
	}))

	res := svc.CurrentWeather(context.Background(), "Madurai")
	require.True(t, res.Success)
	assert.Equal(t, "Madurai", res.Location)
	assert.Equal(t, 31, res.Temperature.Celsius)
	assert.Equal(t, 88, res.Temperature.Fahrenheit)
	assert.Equal(t, "Clear Sky", res.Description)
	assert.Equal(t, 60, res.Humidity)
	assert.Equal(t, int32(1), hits.Load())
}

func TestCurrentWeatherResolvesAliasAndTypos(t *testing.T) {
	svc, _ := newTestService(t, "secret", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(currentBody))
	}))

	// "chenai" scores well above the resolve threshold against Chennai.
	res := svc.CurrentWeather(context.Background(), "chenai")
	require.True(t, res.Success)
	assert.Equal(t, "Chennai", res.Location)
}

func TestCurrentWeatherClarifiesAmbiguousLocation(t *testing.T) {
	svc, hits := newTestService(t, "secret", nil)

	// "gerpan" sits between the fuzzy and resolve thresholds, with Germany
	// as a viable suggestion.
	res := svc.CurrentWeather(context.Background(), "gerpan")
	assert.False(t, res.Success)
	assert.True(t, res.NeedsClarification)
	assert.Contains(t, res.Suggestions, "Germany")
	assert.Contains(t, res.Message, "Did you mean:")
	assert.Equal(t, int32(0), hits.Load(), "clarification must not hit the network")
}

func TestCurrentWeatherBoundaryConfidenceProceeds(t *testing.T) {
	svc, hits := newTestService(t, "secret", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(currentBody))
	}))

	// "qzxvw" vs "Qzxvb" scores exactly 0.8; the boundary is inclusive.
	svc.gaz.AddLocation("Qzxvb", 10.0, 20.0, "", gazetteer.TypeCity)

	res := svc.CurrentWeather(context.Background(), "qzxvw")
	require.True(t, res.Success)
	assert.Equal(t, "Qzxvb", res.Location)
	assert.Equal(t, int32(1), hits.Load())
}

func TestCurrentWeatherGeocoderFallback(t *testing.T) {
	svc, _ := newTestService(t, "secret", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "11.41", r.URL.Query().Get("lat"))
		_, _ = w.Write([]byte(currentBody))
	}))
	geo := &stubGeocoder{coords: geocode.Coordinates{Lat: 11.41, Lon: 76.7}, ok: true}
	svc.geocoder = geo

	// Unknown to the gazetteer with no close suggestions, so the literal
	// string flows through to external geocoding.
	res := svc.CurrentWeather(context.Background(), "Zzyzx")
	require.True(t, res.Success)
	assert.Equal(t, int32(1), geo.calls.Load())
}

func TestCurrentWeatherUnresolvableCoordinates(t *testing.T) {
	svc, hits := newTestService(t, "secret", nil)
	svc.geocoder = &stubGeocoder{ok: false}

	res := svc.CurrentWeather(context.Background(), "Zzyzx")
	assert.False(t, res.Success)
	assert.True(t, res.Fallback)
	assert.Contains(t, res.Message, "coordinates")
	assert.Equal(t, int32(0), hits.Load())
}

func TestCurrentWeatherFetchFailureFallsBack(t *testing.T) {
	svc, _ := newTestService(t, "secret", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))

	res := svc.CurrentWeather(context.Background(), "Madurai")
	assert.False(t, res.Success)
	assert.True(t, res.Fallback)
	assert.Contains(t, res.Message, "Weather service temporarily unavailable")
}

func TestCurrentWeatherMalformedPayloadFallsBack(t *testing.T) {
	svc, _ := newTestService(t, "secret", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"cod": 200}`))
	}))

	res := svc.CurrentWeather(context.Background(), "Madurai")
	assert.False(t, res.Success)
	assert.True(t, res.Fallback)
}

func TestCurrentWeatherDefaultsLocation(t *testing.T) {
	svc, _ := newTestService(t, "", nil)

	res := svc.CurrentWeather(context.Background(), "")
	assert.Equal(t, "New York", res.Location)
}

func TestGetForecastWithoutAPIKey(t *testing.T) {
	svc, hits := newTestService(t, "", nil)

	res := svc.GetForecast(context.Background(), "Madurai", 3)
	assert.False(t, res.Success)
	assert.True(t, res.Fallback)
	assert.Equal(t, int32(0), hits.Load())
}

func TestGetForecastHappyPath(t *testing.T) {
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	body := `{"list": [` +
		sampleJSON(monday.Add(12*time.Hour), 19, 27, "clear sky") + `,` +
		sampleJSON(monday.AddDate(0, 0, 1).Add(12*time.Hour), 17, 25, "light rain") + `]}`

	svc, _ := newTestService(t, "secret", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/forecast", r.URL.Path)
		assert.Equal(t, "24", r.URL.Query().Get("cnt"), "three days at eight samples each")
		_, _ = w.Write([]byte(body))
	}))

	res := svc.GetForecast(context.Background(), "Madurai", 3)
	require.True(t, res.Success)
	require.Len(t, res.Days, 2)
	assert.Equal(t, "Monday", res.Days[0].Day)
	assert.Equal(t, "Monday: 19°C to 27°C, Clear Sky", res.Days[0].Summary)
}

func TestGetForecastClarifiesAmbiguousLocation(t *testing.T) {
	svc, hits := newTestService(t, "secret", nil)

	res := svc.GetForecast(context.Background(), "gerpan", 3)
	assert.True(t, res.NeedsClarification)
	assert.Equal(t, int32(0), hits.Load())
}

func TestLearnCorrectionReachesSpeller(t *testing.T) {
	svc, _ := newTestService(t, "", nil)

	svc.LearnCorrection("madurei", "Madurai")

	corrected, confidence, _ := svc.CheckSpelling("madurei")
	assert.Equal(t, "Madurai", corrected)
	assert.Equal(t, 1.0, confidence)
}
