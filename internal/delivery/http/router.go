package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/citycast/backend/internal/service"
)

// ErrorHandler renders every fiber error as the JSON envelope the
// lookup page expects
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

// SetupRoutes configures all HTTP routes
func SetupRoutes(app *fiber.App, lookupSvc *service.LookupService, repo service.LookupRepository) {
	handler := NewHandler(lookupSvc, repo)

	// Lookup page
	app.Get("/", handler.Index)

	// Health check
	app.Get("/health", handler.HealthCheck)

	// API v1 routes
	api := app.Group("/api/v1")
	{
		api.Get("/weather", handler.GetWeather)
		api.Get("/stats", handler.GetStats)
	}
}
