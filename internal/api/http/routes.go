package httpapi

import (
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/weatherbuddy/weather-assistant/internal/gazetteer"
	"github.com/weatherbuddy/weather-assistant/internal/resolver"
	"github.com/weatherbuddy/weather-assistant/internal/store"
	"github.com/weatherbuddy/weather-assistant/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app. The q query
// parameter accepts free text ("weather in chenai"), not just bare names;
// extraction and spelling correction happen before the service is asked.
func RegisterRoutes(app *fiber.App, service *weather.Service, res *resolver.Resolver, memStore *store.MemoryStore) {
	v1 := app.Group("/api/v1")

	v1.Get("/weather/current", func(c *fiber.Ctx) error {
		query := c.Query("q")
		if query == "" {
			return fiber.NewError(fiber.StatusBadRequest, "q query parameter is required")
		}

		location := res.ExtractLocation(query)
		result := service.CurrentWeather(c.Context(), location)
		return c.JSON(result)
	})

	v1.Get("/weather/forecast", func(c *fiber.Ctx) error {
		query := c.Query("q")
		if query == "" {
			return fiber.NewError(fiber.StatusBadRequest, "q query parameter is required")
		}

		days, err := parseDays(c.Query("days"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		location := res.ExtractLocation(query)
		result := service.GetForecast(c.Context(), location, days)
		return c.JSON(result)
	})

	v1.Get("/weather/recent", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"snapshots": memStore.Latest(),
		})
	})

	v1.Get("/weather/history", func(c *fiber.Ctx) error {
		var req historyQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		snapshots, err := memStore.GetRange(req.Location, req.From, req.To)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "no weather history for requested range")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch weather history")
		}

		return c.JSON(fiber.Map{
			"location":  req.Location,
			"from":      req.From,
			"to":        req.To,
			"snapshots": snapshots,
		})
	})

	v1.Get("/locations/resolve", func(c *fiber.Ctx) error {
		query := c.Query("q")
		if query == "" {
			return fiber.NewError(fiber.StatusBadRequest, "q query parameter is required")
		}

		resolution := service.Gazetteer().FindLocation(query)
		return c.JSON(resolution)
	})

	v1.Post("/locations", func(c *fiber.Ctx) error {
		var req addLocationRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		service.Gazetteer().AddLocation(req.Name, req.Lat, req.Lon, req.Country, gazetteer.Type(req.Type))
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"name": req.Name,
		})
	})

	v1.Get("/corrections/check", func(c *fiber.Ctx) error {
		query := c.Query("q")
		if query == "" {
			return fiber.NewError(fiber.StatusBadRequest, "q query parameter is required")
		}

		corrected, confidence, suggestions := service.CheckSpelling(query)
		return c.JSON(fiber.Map{
			"corrected":   corrected,
			"confidence":  confidence,
			"suggestions": suggestions,
		})
	})

	v1.Post("/corrections", func(c *fiber.Ctx) error {
		var req learnCorrectionRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		service.LearnCorrection(req.Original, req.Corrected)
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"original":  req.Original,
			"corrected": req.Corrected,
		})
	})
}

// addLocationRequest is the body for registering a custom gazetteer entry.
type addLocationRequest struct {
	Name    string  `json:"name" validate:"required"`
	Lat     float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lon     float64 `json:"lon" validate:"gte=-180,lte=180"`
	Country string  `json:"country"`
	Type    string  `json:"type" validate:"omitempty,oneof=city country state"`
}

// learnCorrectionRequest is the body for teaching the spell checker.
type learnCorrectionRequest struct {
	Original  string `json:"original" validate:"required"`
	Corrected string `json:"corrected" validate:"required"`
}

// historyQuery holds query parameters for the history endpoint.
type historyQuery struct {
	Location string    `validate:"required"`
	From     time.Time `validate:"required"`
	To       time.Time `validate:"required,gtefield=From"`
}

func (h *historyQuery) bind(c *fiber.Ctx) error {
	h.Location = c.Query("location")

	fromStr := c.Query("from")
	toStr := c.Query("to")
	if fromStr == "" || toStr == "" {
		return errors.New("from and to query parameters are required")
	}

	from, err := parseTime(fromStr)
	if err != nil {
		return err
	}
	to, err := parseTime(toStr)
	if err != nil {
		return err
	}

	h.From = from
	h.To = to
	return nil
}

// parseDays parses the optional days parameter; 0 lets the service default.
func parseDays(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	days, err := strconv.Atoi(s)
	if err != nil || days < 1 {
		return 0, errors.New("days must be a positive integer")
	}
	return days, nil
}

// parseTime tries to parse either RFC3339 or Unix seconds.
func parseTime(s string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts, nil
	}
	if unix, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(unix, 0).UTC(), nil
	}
	return time.Time{}, errors.New("invalid time format; use RFC3339 or unix seconds")
}
