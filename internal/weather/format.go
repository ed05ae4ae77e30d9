package weather

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// maxForecastDays caps how many days a formatted forecast may carry.
const maxForecastDays = 3

// noonHour is the earliest local hour a sample may represent its day.
const noonHour = 12

var errMalformedPayload = errors.New("malformed provider payload")

type currentPayload struct {
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Main *struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
		Pressure  int     `json:"pressure"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
		Deg   float64 `json:"deg"`
	} `json:"wind"`
}

type forecastPayload struct {
	List []forecastSample `json:"list"`
}

type forecastSample struct {
	Dt   int64 `json:"dt"`
	Main struct {
		TempMin float64 `json:"temp_min"`
		TempMax float64 `json:"temp_max"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
}

// formatCurrent turns a raw provider body into a Current result.
// The Fahrenheit values are derived from the rounded Celsius ones, matching
// what users see side by side.
func formatCurrent(body json.RawMessage, location string, now time.Time) (Current, error) {
	var payload currentPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return Current{}, fmt.Errorf("%w: %v", errMalformedPayload, err)
	}
	if len(payload.Weather) == 0 || payload.Main == nil {
		return Current{}, errMalformedPayload
	}

	tempC := roundInt(payload.Main.Temp)
	feelsC := roundInt(payload.Main.FeelsLike)

	return Current{
		Success:       true,
		Location:      location,
		Temperature:   Temperature{Celsius: tempC, Fahrenheit: toFahrenheit(tempC)},
		FeelsLike:     Temperature{Celsius: feelsC, Fahrenheit: toFahrenheit(feelsC)},
		Description:   titleCase(payload.Weather[0].Description),
		Humidity:      payload.Main.Humidity,
		Pressure:      payload.Main.Pressure,
		WindSpeed:     payload.Wind.Speed,
		WindDirection: payload.Wind.Deg,
		Timestamp:     now,
	}, nil
}

// formatForecast reduces the provider's three-hour samples to at most one
// entry per calendar day, keeping the first sample at or after noon, capped
// at maxForecastDays. Sample timestamps are UTC per the provider contract.
func formatForecast(body json.RawMessage, location string, now time.Time) (Forecast, error) {
	var payload forecastPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return Forecast{}, fmt.Errorf("%w: %v", errMalformedPayload, err)
	}
	if len(payload.List) == 0 {
		return Forecast{}, errMalformedPayload
	}

	var (
		days    []ForecastDay
		lastDay string
	)
	for _, sample := range payload.List {
		ts := time.Unix(sample.Dt, 0).UTC()
		day := ts.Format("2006-01-02")
		if day == lastDay || ts.Hour() < noonHour {
			continue
		}
		if len(sample.Weather) == 0 {
			return Forecast{}, errMalformedPayload
		}
		lastDay = day

		label := ts.Weekday().String()
		minC := roundInt(sample.Main.TempMin)
		maxC := roundInt(sample.Main.TempMax)
		desc := titleCase(sample.Weather[0].Description)

		days = append(days, ForecastDay{
			Day:         label,
			MinCelsius:  minC,
			MaxCelsius:  maxC,
			Description: desc,
			Summary:     fmt.Sprintf("%s: %d°C to %d°C, %s", label, minC, maxC, desc),
		})
		if len(days) >= maxForecastDays {
			break
		}
	}

	return Forecast{
		Success:   true,
		Location:  location,
		Days:      days,
		Timestamp: now,
	}, nil
}

func roundInt(v float64) int {
	return int(math.Round(v))
}

func toFahrenheit(celsius int) int {
	return roundInt(float64(celsius)*9.0/5.0 + 32)
}

// titleCase capitalizes each word of a provider description ("light rain"
// becomes "Light Rain"). A fresh caser per call: cases.Caser is not safe
// for concurrent use.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}
