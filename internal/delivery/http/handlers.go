package http

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/citycast/backend/internal/domain"
	"github.com/citycast/backend/internal/service"
)

// lookupTimeout caps the whole geocode+forecast chain for one request
const lookupTimeout = 15 * time.Second

// fallbackPage is served when the template directory is missing, so the
// API stays usable from a bare binary
const fallbackPage = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>CityCast</title></head>
<body>
<h1>CityCast</h1>
<p>Templates not found. The JSON API is available at /api/v1/weather?city=...</p>
</body>
</html>`

// Handler contains all HTTP handlers
type Handler struct {
	lookupSvc *service.LookupService
	repo      service.LookupRepository
}

// NewHandler creates a new handler
func NewHandler(lookupSvc *service.LookupService, repo service.LookupRepository) *Handler {
	return &Handler{
		lookupSvc: lookupSvc,
		repo:      repo,
	}
}

// Index serves the lookup page
func (h *Handler) Index(c *fiber.Ctx) error {
	if err := c.Render("index", fiber.Map{"Title": "CityCast"}); err != nil {
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.SendString(fallbackPage)
	}
	return nil
}

// HealthCheck returns service health status
func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	dbStatus := "ok"
	if err := h.repo.Health(c.Context()); err != nil {
		dbStatus = "unavailable"
	}

	return c.JSON(fiber.Map{
		"status":   "ok",
		"service":  "citycast-backend",
		"version":  "1.0.0",
		"database": dbStatus,
	})
}

// GetWeather resolves ?city= to current weather. A blank city is a 400,
// any lookup failure is a 404 with a single user-facing message.
func (h *Handler) GetWeather(c *fiber.Ctx) error {
	city := c.Query("city")

	ctx, cancel := context.WithTimeout(c.Context(), lookupTimeout)
	defer cancel()

	weather, err := h.lookupSvc.Lookup(ctx, city)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyCity) {
			return fiber.NewError(fiber.StatusBadRequest, "City name is required")
		}
		return fiber.NewError(fiber.StatusNotFound, domain.CityNotFoundMessage)
	}

	return c.JSON(domain.WeatherResponse{
		Data:    weather,
		Success: true,
	})
}

// GetStats returns aggregate lookup counters
func (h *Handler) GetStats(c *fiber.Ctx) error {
	stats, err := h.repo.Stats(c.Context())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch lookup stats")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    stats,
	})
}
