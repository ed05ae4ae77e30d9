package weather

import (
	"time"
)

// Temperature carries both measurement units so the rendering layer can
// honor a stored unit preference without re-deriving values.
type Temperature struct {
	Celsius    int `json:"celsius"`
	Fahrenheit int `json:"fahrenheit"`
}

// Current is the normalized current-weather result. It is built once per
// query and never mutated after construction. Exactly one of three shapes
// is populated: a successful reading, a clarification request, or a
// fallback explanation.
type Current struct {
	Success  bool   `json:"success"`
	Location string `json:"location"`

	Temperature   Temperature `json:"temperature"`
	FeelsLike     Temperature `json:"feels_like"`
	Description   string      `json:"description,omitempty"`
	Humidity      int         `json:"humidity,omitempty"`
	Pressure      int         `json:"pressure,omitempty"`
	WindSpeed     float64     `json:"wind_speed,omitempty"`
	WindDirection float64     `json:"wind_direction,omitempty"`
	Timestamp     time.Time   `json:"timestamp"`

	NeedsClarification bool     `json:"needs_clarification,omitempty"`
	Suggestions        []string `json:"spelling_suggestions,omitempty"`
	Fallback           bool     `json:"fallback,omitempty"`
	Message            string   `json:"message,omitempty"`
}

// ForecastDay is one formatted day of a forecast.
type ForecastDay struct {
	Day         string `json:"date"`
	MinCelsius  int    `json:"temperature_min"`
	MaxCelsius  int    `json:"temperature_max"`
	Description string `json:"description"`
	Summary     string `json:"summary"`
}

// Forecast is the normalized multi-day forecast result, with the same
// three-shape contract as Current.
type Forecast struct {
	Success  bool   `json:"success"`
	Location string `json:"location"`

	Days      []ForecastDay `json:"forecasts,omitempty"`
	Timestamp time.Time     `json:"timestamp"`

	NeedsClarification bool     `json:"needs_clarification,omitempty"`
	Suggestions        []string `json:"spelling_suggestions,omitempty"`
	Fallback           bool     `json:"fallback,omitempty"`
	Message            string   `json:"message,omitempty"`
}
